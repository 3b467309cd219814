package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

const hnBaseURL = "https://news.ycombinator.com"

// indentUnit is the pixel width of one level of comment indentation on the
// item page; the spacer image's width attribute is always a multiple of it.
const indentUnit = 40

// deletedSentinel stands in for authors and bodies the page no longer shows.
const deletedSentinel = "[deleted]"

// fetchItemDocument retrieves and parses the item page for a story.
func fetchItemDocument(ctx context.Context, baseURL, itemID string) (*goquery.Document, error) {
	url := fmt.Sprintf("%s/item?id=%s", baseURL, itemID)
	slog.Debug("Fetching item page", "url", url)

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch item page: %w", err)
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status code error: %d %s", res.StatusCode, res.Status)
	}

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse item page: %w", err)
	}

	return doc, nil
}

// extractStoryInfo pulls the story title and metadata from an item page.
func extractStoryInfo(doc *goquery.Document) StoryInfo {
	var story StoryInfo

	title := doc.Find(".titleline > a:first-child").First()
	story.Title = title.Text()
	story.URL = title.AttrOr("href", "")

	subtext := doc.Find("td.subtext").First()
	story.Points = strings.TrimSpace(subtext.Find(".score").Text())
	story.Author = subtext.Find(".hnuser").Text()
	if age := subtext.Find(".age"); age.Length() > 0 {
		story.Time = age.AttrOr("title", strings.TrimSpace(age.Text()))
	}

	slog.Debug("Extracted story info",
		"title", story.Title,
		"url", story.URL,
		"author", story.Author,
		"points", story.Points)

	return story
}

// extractCommentRecords returns the page's comments as a flat sequence in
// document order, depth derived from the indent spacer width.
func extractCommentRecords(doc *goquery.Document) []CommentRecord {
	var records []CommentRecord

	doc.Find("tr.athing.comtr").Each(func(i int, s *goquery.Selection) {
		records = append(records, extractCommentRecord(s))
	})

	slog.Debug("Extracted comment records", "count", len(records))
	return records
}

func extractCommentRecord(s *goquery.Selection) CommentRecord {
	record := CommentRecord{ID: s.AttrOr("id", "")}

	if width := s.Find("td.ind img").AttrOr("width", ""); width != "" {
		if px, err := strconv.Atoi(width); err == nil {
			record.Depth = px / indentUnit
		}
	}

	record.Author = s.Find("a.hnuser").First().Text()
	if record.Author == "" {
		record.Author = deletedSentinel
	}

	if age := s.Find("span.age").First(); age.Length() > 0 {
		record.Time = age.AttrOr("title", strings.TrimSpace(age.Text()))
	}

	text := s.Find("div.commtext").First()
	if text.Length() == 0 {
		record.Text = deletedSentinel
		return record
	}
	record.Text = commentBodyText(text)

	return record
}

// commentBodyText flattens a comment's text container into newline-separated
// plain text. External links are replaced by their href, recovering anchor
// text the page renders truncated, and the reply affordance is dropped.
func commentBodyText(sel *goquery.Selection) string {
	var segments []string

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			if text := strings.TrimSpace(n.Data); text != "" {
				segments = append(segments, text)
			}
			return
		case html.ElementNode:
			switch n.Data {
			case "a":
				if href := nodeAttr(n, "href"); strings.HasPrefix(href, "http") {
					segments = append(segments, href)
					return
				}
			case "span":
				if strings.Contains(nodeAttr(n, "class"), "reply") {
					return
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	for _, n := range sel.Nodes {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	return strings.Join(segments, "\n")
}

func nodeAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}
