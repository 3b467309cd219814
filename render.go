package main

import (
	"fmt"
	"strings"
)

// Both renderers are pure functions of DiscussionResult: same input, same
// bytes out, no I/O.

// renderVerbose projects a discussion into the human-readable layout with
// banners, labeled fields and two-space indentation per reply level.
func renderVerbose(result *DiscussionResult) string {
	var b strings.Builder
	banner := strings.Repeat("=", 80)

	b.WriteString(banner + "\n")
	b.WriteString("HACKER NEWS STORY\n")
	b.WriteString(banner + "\n")
	fmt.Fprintf(&b, "Title: %s\n", orNA(result.Story.Title))
	fmt.Fprintf(&b, "URL: %s\n", orNA(result.Story.URL))
	fmt.Fprintf(&b, "Author: %s\n", orNA(result.Story.Author))
	fmt.Fprintf(&b, "Points: %s\n", orNA(result.Story.Points))
	fmt.Fprintf(&b, "Time: %s\n", orNA(result.Story.Time))
	fmt.Fprintf(&b, "Total Comments: %d\n", result.TotalComments)
	b.WriteString(banner + "\n\n")

	if warning := articleWarning(result.Article); warning != "" {
		fmt.Fprintf(&b, "Warning: %s\n\n", warning)
	}

	b.WriteString("COMMENTS\n")
	b.WriteString(banner + "\n")
	for i, comment := range result.Comments {
		fmt.Fprintf(&b, "\n[Comment %d]\n", i+1)
		writeCommentVerbose(&b, comment, 0)
	}

	if result.Article.Status == ArticleFetched {
		b.WriteString("\n" + banner + "\n")
		b.WriteString("URL CONTENT\n")
		b.WriteString(banner + "\n")
		b.WriteString(result.Article.Markdown + "\n")
	}

	return b.String()
}

func writeCommentVerbose(b *strings.Builder, c *Comment, indent int) {
	prefix := strings.Repeat("  ", indent)

	b.WriteString(prefix + strings.Repeat("─", 60) + "\n")
	fmt.Fprintf(b, "%sAuthor: %s\n", prefix, c.Author)
	fmt.Fprintf(b, "%sTime: %s\n", prefix, c.Time)
	fmt.Fprintf(b, "%sID: %s\n", prefix, c.ID)
	fmt.Fprintf(b, "%sText:\n", prefix)
	for _, line := range strings.Split(c.Text, "\n") {
		fmt.Fprintf(b, "%s  %s\n", prefix, line)
	}

	if len(c.Replies) > 0 {
		fmt.Fprintf(b, "%sReplies: %d\n", prefix, len(c.Replies))
		for _, reply := range c.Replies {
			writeCommentVerbose(b, reply, indent+1)
		}
	}
}

// renderCompact projects a discussion into the token-minimized layout: one
// header line per comment, bodies unindented beyond the nesting prefix.
func renderCompact(result *DiscussionResult) string {
	var b strings.Builder

	writeCompactHeader(&b, result)

	if warning := articleWarning(result.Article); warning != "" {
		fmt.Fprintf(&b, "WARNING: %s\n\n", warning)
	}

	writeCompactComments(&b, result)

	if result.Article.Status == ArticleFetched {
		banner := strings.Repeat("=", 80)
		b.WriteString(banner + "\n")
		b.WriteString("URL CONTENT\n")
		b.WriteString(banner + "\n")
		b.WriteString(result.Article.Markdown + "\n")
	}

	return b.String()
}

func writeCompactHeader(b *strings.Builder, result *DiscussionResult) {
	fmt.Fprintf(b, "STORY: %s\n", orNA(result.Story.Title))
	fmt.Fprintf(b, "URL: %s\n", orNA(result.Story.URL))
	fmt.Fprintf(b, "AUTHOR: %s | POINTS: %s | TIME: %s\n",
		orNA(result.Story.Author), orNA(result.Story.Points), orNA(result.Story.Time))
	fmt.Fprintf(b, "TOTAL_COMMENTS: %d\n\n", result.TotalComments)
}

func writeCompactComments(b *strings.Builder, result *DiscussionResult) {
	for i, comment := range result.Comments {
		fmt.Fprintf(b, "COMMENT #%d\n", i+1)
		writeCommentCompact(b, comment, 0)
		b.WriteString("\n")
	}
}

func writeCommentCompact(b *strings.Builder, c *Comment, indent int) {
	prefix := strings.Repeat("  ", indent)

	kind := "COMMENT"
	if indent > 0 {
		kind = "REPLY"
	}
	fmt.Fprintf(b, "%s%s [%s @ %s] ID: %s\n", prefix, kind, c.Author, c.Time, c.ID)

	for _, line := range strings.Split(c.Text, "\n") {
		b.WriteString(prefix + line + "\n")
	}

	// A blank line only between top-level comments that have replies.
	if indent == 0 && len(c.Replies) > 0 {
		b.WriteString("\n")
	}

	for _, reply := range c.Replies {
		writeCommentCompact(b, reply, indent+1)
	}
}

// articleWarning returns the one-line banner for a degraded result, or ""
// when the article was fetched.
func articleWarning(outcome FetchOutcome) string {
	switch outcome.Status {
	case ArticleSkipped:
		return outcome.Reason
	case ArticleFailed:
		return "Failed to fetch URL content: " + outcome.Reason
	default:
		return ""
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
