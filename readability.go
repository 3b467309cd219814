package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	readability "github.com/go-shiori/go-readability"
)

// ReadabilityScraper extracts article text locally with go-readability. It
// needs no API credential, at the cost of Firecrawl's rendering quality.
type ReadabilityScraper struct {
	client *http.Client
}

func NewReadabilityScraper() *ReadabilityScraper {
	return &ReadabilityScraper{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Scrape fetches the target URL and runs readability extraction over it.
func (r *ReadabilityScraper) Scrape(ctx context.Context, targetURL string) (string, error) {
	parsedURL, err := url.Parse(targetURL)
	if err != nil {
		return "", fmt.Errorf("invalid URL: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "GET", targetURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "hnthread/1.0 (article fetcher)")
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	slog.Debug("Scraping article locally", "url", targetURL)

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errScrapeConnection, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: HTTP %d %s", errScrapeResponse, resp.StatusCode, resp.Status)
	}

	article, err := readability.FromReader(resp.Body, parsedURL)
	if err != nil {
		return "", fmt.Errorf("%w: readability extraction: %v", errScrapeResponse, err)
	}

	if strings.TrimSpace(article.TextContent) == "" {
		return "", errMissingContent
	}

	slog.Debug("Readability extraction succeeded", "url", targetURL, "title", article.Title)
	return article.TextContent, nil
}
