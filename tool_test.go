package main

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestGetDiscussionContent_ArticleThenDiscussion(t *testing.T) {
	server := newTestItemServer(t, testItemPage)

	scraper := &fakeScraper{markdown: "# The Linked Article\n\nContent here"}
	blob, err := GetDiscussionContent(context.Background(), server.URL, "100", scraper, nil, dropOrphans)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	articleIdx := strings.Index(blob, "# ARTICLE CONTENT")
	discussionIdx := strings.Index(blob, "# HACKER NEWS DISCUSSION")
	if articleIdx == -1 || discussionIdx == -1 {
		t.Fatal("Expected both section headers")
	}
	if articleIdx > discussionIdx {
		t.Error("Article section must come before the discussion")
	}
	if !strings.Contains(blob, "# The Linked Article") {
		t.Error("Expected scraped article content")
	}
	if !strings.Contains(blob, "STORY: Example Story") {
		t.Error("Expected compact story header")
	}
	if !strings.Contains(blob, "COMMENT [bob @") {
		t.Error("Expected compact comment output")
	}
}

func TestGetDiscussionContent_FailedArticleInBand(t *testing.T) {
	server := newTestItemServer(t, testItemPage)

	scraper := &fakeScraper{err: errors.New("connection refused")}
	blob, err := GetDiscussionContent(context.Background(), server.URL, "100", scraper, nil, dropOrphans)
	if err != nil {
		t.Fatalf("Article failure must stay in-band: %v", err)
	}

	if !strings.Contains(blob, "[Error fetching article content: connection refused]") {
		t.Error("Expected bracketed failure notice")
	}
	if !strings.Contains(blob, "TOTAL_COMMENTS: 3") {
		t.Error("Discussion must still be present")
	}
}

func TestGetDiscussionContent_TextPostNotice(t *testing.T) {
	page := strings.Replace(testItemPage, `href="https://example.com/post"`, `href="item?id=100"`, 1)
	server := newTestItemServer(t, page)

	scraper := &fakeScraper{markdown: "should not be used"}
	blob, err := GetDiscussionContent(context.Background(), server.URL, "100", scraper, nil, dropOrphans)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !strings.Contains(blob, "[No external article content: story links to the forum itself]") {
		t.Errorf("Expected bracketed skip notice, got:\n%s", blob)
	}
	if scraper.calls != 0 {
		t.Errorf("Scraper should not be called for forum links, got %d calls", scraper.calls)
	}
}

func TestGetDiscussionContent_InvalidReference(t *testing.T) {
	scraper := &fakeScraper{}
	_, err := GetDiscussionContent(context.Background(), hnBaseURL, "not-an-id", scraper, nil, dropOrphans)
	if !errors.Is(err, errInvalidItemRef) {
		t.Errorf("Expected invalid reference error, got %v", err)
	}
}
