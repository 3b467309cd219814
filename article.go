package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"strings"
)

// Skip reasons surfaced in FetchOutcome and rendered as warning banners.
const (
	skipNoURL     = "no external article URL"
	skipForumLink = "story links to the forum itself"
)

// isForumURL reports whether a story URL points back into Hacker News. Text
// posts carry a relative item link instead of an external address.
func isForumURL(u string) bool {
	return strings.HasPrefix(u, hnBaseURL) || strings.HasPrefix(u, "item?id=")
}

// fetchArticle decides whether to fetch the story's linked article and
// classifies the outcome. The discussion never depends on this succeeding;
// every path here produces a FetchOutcome, not an error. A nil db disables
// the cache.
func fetchArticle(ctx context.Context, db *sql.DB, scraper ArticleScraper, storyURL string) FetchOutcome {
	if storyURL == "" {
		return articleSkipped(skipNoURL)
	}
	if isForumURL(storyURL) {
		return articleSkipped(skipForumLink)
	}

	if db != nil {
		cached, err := getCachedArticle(db, storyURL)
		if err != nil {
			slog.Warn("Error reading article cache", "error", err, "url", storyURL)
		}
		if cached != nil {
			if cached.FetchSuccess {
				return articleFetched(cached.Markdown)
			}
			// Recent failure; don't retry the site until the entry expires.
			slog.Debug("Skipping scrape due to recent cached failure", "url", storyURL)
			return articleFailed(errors.New(cached.Detail))
		}
	}

	markdown, err := scraper.Scrape(ctx, storyURL)
	if err != nil {
		slog.Warn("Article fetch failed", "url", storyURL, "error", err)
		if db != nil {
			if cacheErr := cacheArticle(db, storyURL, "", err.Error(), false); cacheErr != nil {
				slog.Warn("Failed to cache scrape failure", "error", cacheErr, "url", storyURL)
			}
		}
		return articleFailed(err)
	}

	if db != nil {
		if cacheErr := cacheArticle(db, storyURL, markdown, "", true); cacheErr != nil {
			slog.Warn("Failed to cache scraped article", "error", cacheErr, "url", storyURL)
		}
	}

	return articleFetched(markdown)
}
