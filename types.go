package main

import "time"

// CommentRecord is a single comment as it appears in the item page's flat
// stream, before the reply hierarchy is rebuilt. Order of appearance in the
// page is significant and preserved everywhere downstream.
type CommentRecord struct {
	ID     string
	Author string
	Time   string
	Text   string
	Depth  int
}

// Comment is a node in the reconstructed discussion tree. Replies keep the
// original document order of the children.
type Comment struct {
	ID      string
	Author  string
	Time    string
	Text    string
	Depth   int
	Replies []*Comment
}

// StoryInfo holds the story's title and metadata from the item page header.
// Fields are left empty when the page omits them; renderers substitute "N/A".
type StoryInfo struct {
	Title  string
	URL    string
	Author string
	Points string
	Time   string
}

// ArticleStatus tags the outcome of the linked-article fetch.
type ArticleStatus int

const (
	ArticleFetched ArticleStatus = iota
	ArticleSkipped
	ArticleFailed
)

// FetchOutcome is the tagged result of attempting to retrieve the article
// linked from a story. Markdown is set only for ArticleFetched, Reason only
// for ArticleSkipped and ArticleFailed.
type FetchOutcome struct {
	Status   ArticleStatus
	Markdown string
	Reason   string
}

func articleFetched(markdown string) FetchOutcome {
	return FetchOutcome{Status: ArticleFetched, Markdown: markdown}
}

func articleSkipped(reason string) FetchOutcome {
	return FetchOutcome{Status: ArticleSkipped, Reason: reason}
}

func articleFailed(err error) FetchOutcome {
	return FetchOutcome{Status: ArticleFailed, Reason: err.Error()}
}

// DiscussionResult is the merged, read-only artifact produced per request.
// A non-fetched article still leaves Story and Comments complete and valid.
type DiscussionResult struct {
	Story         StoryInfo
	Comments      []*Comment
	TotalComments int
	Article       FetchOutcome
}

// firecrawlRequest is the JSON payload for the Firecrawl scrape endpoint.
type firecrawlRequest struct {
	URL             string   `json:"url"`
	OnlyMainContent bool     `json:"onlyMainContent"`
	MaxAge          int64    `json:"maxAge"`
	Parsers         []string `json:"parsers"`
	Formats         []string `json:"formats"`
}

// firecrawlResponse is the scrape endpoint's response envelope. Markdown is a
// pointer so a missing content field is distinguishable from an empty one.
type firecrawlResponse struct {
	Success bool               `json:"success"`
	Data    *firecrawlDocument `json:"data"`
	Error   string             `json:"error"`
}

type firecrawlDocument struct {
	Markdown *string `json:"markdown"`
}

// ArticleCache represents a cached article scrape in the database.
type ArticleCache struct {
	ID           int
	URL          string
	Markdown     string
	Detail       string
	FetchedAt    time.Time
	ExpiresAt    time.Time
	FetchSuccess bool
}
