package main

import (
	"fmt"
	"time"

	"github.com/gorilla/feeds"
)

// generateDiscussionFeed renders a discussion as an Atom feed with one entry
// per top-level comment, the shape per-item comment feeds usually take. The
// caller supplies now so output stays reproducible in tests.
func generateDiscussionFeed(result *DiscussionResult, now time.Time) (string, error) {
	feed := &feeds.Feed{
		Title: orNA(result.Story.Title),
		Description: fmt.Sprintf("Author: %s | Points: %s | Comments: %d",
			orNA(result.Story.Author), orNA(result.Story.Points), result.TotalComments),
		Link:    &feeds.Link{Href: orNA(result.Story.URL), Rel: "alternate", Type: "text/html"},
		Created: now,
		Updated: now,
	}

	for _, comment := range result.Comments {
		title := fmt.Sprintf("Comment by %s", comment.Author)
		if replies := countReplies(comment); replies > 0 {
			title = fmt.Sprintf("%s (%d replies)", title, replies)
		}

		feed.Items = append(feed.Items, &feeds.Item{
			Title: title,
			Link:  &feeds.Link{Href: fmt.Sprintf("%s/item?id=%s", hnBaseURL, comment.ID)},
			Id:    fmt.Sprintf("tag:news.ycombinator.com:%s", comment.ID),
			Author: &feeds.Author{
				Name: comment.Author,
			},
			Description: comment.Text,
			Created:     now,
		})
	}

	atom, err := feed.ToAtom()
	if err != nil {
		return "", fmt.Errorf("failed to generate feed: %w", err)
	}

	return atom, nil
}

// countReplies counts all nodes beneath a comment.
func countReplies(c *Comment) int {
	total := 0
	for _, reply := range c.Replies {
		total += 1 + countReplies(reply)
	}
	return total
}
