// Package extract fetches a source page and pulls out its visible text.
//
// The resolution pipeline treats content extraction as a collaborator:
// it only needs opaque text to bind to {TEXT}. This package provides
// the shipped implementation for plain web pages; callers with richer
// sources (rendered apps, APIs) supply their own Extractor.
package extract

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/net/html"
)

// Extractor produces the text content of a source URL.
type Extractor interface {
	Extract(ctx context.Context, url string) (string, error)
}

// DefaultMaxRunes caps extracted text so prompts stay a sane size.
const DefaultMaxRunes = 4000

// HTTPExtractor fetches a page over HTTP and extracts its visible text.
type HTTPExtractor struct {
	client   *http.Client
	maxRunes int
}

// Config contains configuration for the HTTP extractor.
type Config struct {
	// Timeout for the fetch.
	Timeout time.Duration

	// MaxRunes caps the extracted text (defaults to DefaultMaxRunes).
	MaxRunes int
}

// New creates a new HTTP extractor.
func New(config Config) *HTTPExtractor {
	timeout := config.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	maxRunes := config.MaxRunes
	if maxRunes == 0 {
		maxRunes = DefaultMaxRunes
	}
	return &HTTPExtractor{
		client:   &http.Client{Timeout: timeout},
		maxRunes: maxRunes,
	}
}

// Extract fetches url and returns the page's visible text with
// whitespace collapsed.
func (e *HTTPExtractor) Extract(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("fetch of %s returned status %d", url, resp.StatusCode)
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	text := truncateRunes(Text(doc), e.maxRunes)
	log.Debug().Str("url", url).Int("text_len", len(text)).Msg("Extracted page text")

	if text == "" {
		return "", fmt.Errorf("no text content found at %s", url)
	}
	return text, nil
}

// Text walks an HTML node tree and collects visible text, skipping
// script, style, and head content. Runs of whitespace collapse to a
// single space.
func Text(doc *html.Node) string {
	var words []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "head", "template":
				return
			}
		}
		if n.Type == html.TextNode {
			words = append(words, strings.Fields(n.Data)...)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return strings.Join(words, " ")
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
