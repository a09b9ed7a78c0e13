package extractor

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func articlePage() string {
	var paragraphs strings.Builder
	for i := 0; i < 8; i++ {
		fmt.Fprintf(&paragraphs,
			"<p>Paragraph %d explains in some detail how to configure the device, "+
				"walks through each of the settings screens one at a time, and points "+
				"out the options that most people end up changing after a fresh setup.</p>\n", i)
	}
	return `<!DOCTYPE html>
<html>
<head><title>How to Do a Thing</title></head>
<body>
<nav><a href="/">Home</a><a href="/reviews">Reviews</a></nav>
<article>
<h1>How to Do a Thing</h1>
` + paragraphs.String() + `
</article>
<footer>Copyright notice and unrelated boilerplate.</footer>
</body>
</html>`
}

func TestExtract(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(articlePage()))
	}))
	defer server.Close()

	e := New(server.Client())
	text, err := e.Extract(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Contains(t, text, "Paragraph 0")
	assert.Contains(t, text, "Paragraph 7")
	assert.NotContains(t, text, "<p>")
}

func TestExtractNon200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	e := New(server.Client())
	_, err := e.Extract(context.Background(), server.URL)
	assert.Error(t, err)
}

func TestExtractUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	url := server.URL
	server.Close()

	e := New(nil)
	_, err := e.Extract(context.Background(), url)
	assert.Error(t, err)
}

func TestExtractContextTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
		_, _ = w.Write([]byte(articlePage()))
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	e := New(server.Client())
	_, err := e.Extract(ctx, server.URL)
	assert.Error(t, err)
}
