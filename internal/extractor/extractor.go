// Package extractor retrieves the readable text content of a web page
package extractor

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
)

// Extractor fetches pages and distills them to their article text. The
// underlying http.Client is shared across jobs; every call acquires its
// own request and response and releases them on all exit paths.
type Extractor struct {
	client *http.Client
}

// New creates an extractor around the given HTTP client. A nil client
// falls back to a default one.
func New(client *http.Client) *Extractor {
	if client == nil {
		client = &http.Client{}
	}
	return &Extractor{client: client}
}

// Extract fetches the page at rawURL and returns its readable text
// content. The context bounds the whole fetch.
func (e *Extractor) Extract(ctx context.Context, rawURL string) (string, error) {
	pageURL, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid page url: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch page: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to fetch page, status code: %d", resp.StatusCode)
	}

	// Let go-readability find the main content
	parser := readability.NewParser()
	article, err := parser.Parse(resp.Body, pageURL)
	if err != nil {
		return "", fmt.Errorf("failed to distill page: %w", err)
	}

	text := flattenContent(article.Content)
	if text == "" {
		text = strings.TrimSpace(article.TextContent)
	}
	if text == "" {
		return "", fmt.Errorf("no readable content found")
	}
	return text, nil
}

// flattenContent walks the distilled article HTML and joins the text of
// its content-bearing tags into plain paragraphs.
func flattenContent(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}

	var blocks []string
	doc.Find("h1,h2,h3,h4,p,li,pre").Each(func(_ int, s *goquery.Selection) {
		if text := normalizeText(s.Text()); text != "" {
			blocks = append(blocks, text)
		}
	})
	return strings.Join(blocks, "\n\n")
}

func normalizeText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
