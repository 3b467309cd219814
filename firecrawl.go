package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const firecrawlEndpoint = "https://api.firecrawl.dev/v2/scrape"

// firecrawlMaxAge lets Firecrawl serve page snapshots up to two days old.
const firecrawlMaxAge = 172800000

// Scrape collaborator error kinds, distinguishable with errors.Is.
var (
	errMissingCredential = errors.New("missing Firecrawl API key")
	errScrapeConnection  = errors.New("scrape connection failed")
	errScrapeResponse    = errors.New("scrape response error")
	errMissingContent    = errors.New("missing content field")
)

// ArticleScraper returns rendered article text for a URL.
type ArticleScraper interface {
	Scrape(ctx context.Context, url string) (string, error)
}

// FirecrawlClient scrapes pages through the Firecrawl API.
type FirecrawlClient struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

// NewFirecrawlClient creates a Firecrawl client with the given API key. An
// empty key is allowed here; Scrape reports it as a credential error.
func NewFirecrawlClient(apiKey string) *FirecrawlClient {
	return &FirecrawlClient{
		apiKey:   apiKey,
		endpoint: firecrawlEndpoint,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Scrape requests a markdown rendering of the target URL. A single attempt is
// made per call; any retrying is Firecrawl's business.
func (f *FirecrawlClient) Scrape(ctx context.Context, targetURL string) (string, error) {
	if f.apiKey == "" {
		return "", fmt.Errorf("%w: set FIRECRAWL_API_KEY in the environment or .env, or pass -api-key", errMissingCredential)
	}

	payload := firecrawlRequest{
		URL:             targetURL,
		OnlyMainContent: true,
		MaxAge:          firecrawlMaxAge,
		Parsers:         []string{"pdf"},
		Formats:         []string{"markdown"},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode scrape request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", f.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+f.apiKey)
	req.Header.Set("Content-Type", "application/json")

	slog.Debug("Scraping article through Firecrawl", "url", targetURL)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errScrapeConnection, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: reading body: %v", errScrapeConnection, err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: HTTP %d: %s", errScrapeResponse, resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var decoded firecrawlResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return "", fmt.Errorf("%w: failed to parse JSON: %v", errScrapeResponse, err)
	}

	if decoded.Data == nil || decoded.Data.Markdown == nil {
		return "", errMissingContent
	}

	slog.Debug("Firecrawl scrape succeeded", "url", targetURL, "markdownSize", len(*decoded.Data.Markdown))
	return *decoded.Data.Markdown, nil
}
