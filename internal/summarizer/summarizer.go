// Package summarizer generates condensed text from extracted page content
package summarizer

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const systemPrompt = "Summarize the following article text in a few short paragraphs."

// Client calls the Anthropic Messages API to summarize text. The output
// length is bounded by the configured max-token budget.
type Client struct {
	api       anthropic.Client
	model     anthropic.Model
	maxTokens int64
}

// New creates a summarizer client for the given model and token budget
func New(apiKey, model string, maxTokens int64) *Client {
	return &Client{
		api:       anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:     anthropic.Model(model),
		maxTokens: maxTokens,
	}
}

// Summarize sends the text to the generation backend and returns the
// generated summary. The context bounds the whole call.
func (c *Client) Summarize(ctx context.Context, text string) (string, error) {
	msg, err := c.api.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(text)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("generation request failed: %w", err)
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}

	summary := strings.TrimSpace(b.String())
	if summary == "" {
		return "", fmt.Errorf("generation returned no text")
	}
	return summary, nil
}
