package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

var errInvalidItemRef = errors.New("invalid item reference")

// extractItemID accepts a bare numeric id or any URL carrying an item?id=
// query and returns the id.
func extractItemID(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if idx := strings.Index(ref, "item?id="); idx >= 0 {
		ref = ref[idx+len("item?id="):]
		if amp := strings.IndexByte(ref, '&'); amp >= 0 {
			ref = ref[:amp]
		}
	}

	if ref == "" {
		return "", fmt.Errorf("%w: empty item id", errInvalidItemRef)
	}
	for _, r := range ref {
		if r < '0' || r > '9' {
			return "", fmt.Errorf("%w: %q", errInvalidItemRef, ref)
		}
	}

	return ref, nil
}

// getDiscussion fetches the item page, rebuilds the comment tree and merges
// in the linked article's content. Thread failures are hard errors; article
// failures are folded into the result as a degraded FetchOutcome.
func getDiscussion(ctx context.Context, baseURL, itemID string, scraper ArticleScraper, db *sql.DB, policy orphanPolicy) (*DiscussionResult, error) {
	doc, err := fetchItemDocument(ctx, baseURL, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch discussion %s: %w", itemID, err)
	}

	story := extractStoryInfo(doc)
	records := extractCommentRecords(doc)
	forest, attached := buildCommentTree(records, policy)

	if dropped := len(records) - attached; dropped > 0 {
		slog.Warn("Dropped malformed comment records", "itemID", itemID, "dropped", dropped)
	}

	outcome := fetchArticle(ctx, db, scraper, story.URL)

	return assembleDiscussion(story, forest, attached, outcome), nil
}

// assembleDiscussion is a pure merge of the three inputs; it cannot fail.
// Callers must treat a non-fetched article as a degraded but valid result.
func assembleDiscussion(story StoryInfo, comments []*Comment, totalComments int, article FetchOutcome) *DiscussionResult {
	return &DiscussionResult{
		Story:         story,
		Comments:      comments,
		TotalComments: totalComments,
		Article:       article,
	}
}
