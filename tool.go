package main

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// GetDiscussionContent is the single operation exposed to automation hosts:
// given an item id or URL it returns one text blob with the article content
// first and the discussion after it. Article problems are reported in-band as
// bracketed notices so a host never has to handle a partial failure; only an
// invalid reference or a failed thread fetch produce an error.
func GetDiscussionContent(ctx context.Context, baseURL, ref string, scraper ArticleScraper, db *sql.DB, policy orphanPolicy) (string, error) {
	itemID, err := extractItemID(ref)
	if err != nil {
		return "", err
	}

	result, err := getDiscussion(ctx, baseURL, itemID, scraper, db, policy)
	if err != nil {
		return "", err
	}

	var article string
	switch result.Article.Status {
	case ArticleFetched:
		article = result.Article.Markdown
	case ArticleSkipped:
		article = fmt.Sprintf("[No external article content: %s]", result.Article.Reason)
	case ArticleFailed:
		article = fmt.Sprintf("[Error fetching article content: %s]", result.Article.Reason)
	}

	var b strings.Builder
	b.WriteString("# ARTICLE CONTENT\n\n")
	b.WriteString(article + "\n\n")
	b.WriteString("---\n\n")
	b.WriteString("# HACKER NEWS DISCUSSION\n\n")
	writeCompactHeader(&b, result)
	writeCompactComments(&b, result)

	return b.String(), nil
}
