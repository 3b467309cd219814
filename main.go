package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the CLI. Exit codes: 0 full success, 1 invalid input or fatal
// transport error, 2 discussion rendered but article content unavailable.
func run(args []string) int {
	fs := flag.NewFlagSet("hnthread", flag.ContinueOnError)
	compact := fs.Bool("compact", false, "compact LLM-optimized output format")
	feedOut := fs.Bool("feed", false, "Atom feed output (one entry per top-level comment)")
	apiKey := fs.String("api-key", "", "Firecrawl API key (overrides FIRECRAWL_API_KEY)")
	scraperMode := fs.String("scraper", "firecrawl", "article scraper: firecrawl or local")
	orphans := fs.String("orphans", "drop", "policy for replies with no open ancestor: drop or adopt")
	dbPath := fs.String("db", defaultDBPath(), "article cache database path (empty disables caching)")
	verbose := fs.Bool("verbose", false, "enable debug logging")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: hnthread [flags] <item-id-or-url>")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 1
	}

	setupLogging(*verbose)

	if fs.NArg() != 1 {
		fs.Usage()
		return 1
	}
	if *compact && *feedOut {
		fmt.Fprintln(os.Stderr, "Error: -compact and -feed are mutually exclusive")
		return 1
	}

	itemID, err := extractItemID(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	policy, err := orphanPolicyFromString(*orphans)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	var scraper ArticleScraper
	switch *scraperMode {
	case "firecrawl":
		scraper = NewFirecrawlClient(loadAPIKey(*apiKey))
	case "local":
		scraper = NewReadabilityScraper()
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown scraper %q (want firecrawl or local)\n", *scraperMode)
		return 1
	}

	var db *sql.DB
	if *dbPath != "" {
		db, err = initDB(*dbPath)
		if err != nil {
			slog.Error("Failed to open article cache", "error", err, "path", *dbPath)
			return 1
		}
		defer func() { _ = db.Close() }()

		if err := cleanupExpiredArticleCache(db); err != nil {
			slog.Warn("Failed to clean up article cache", "error", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	result, err := getDiscussion(ctx, hnBaseURL, itemID, scraper, db, policy)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	switch {
	case *feedOut:
		atom, err := generateDiscussionFeed(result, time.Now())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Print(atom)
	case *compact:
		fmt.Print(renderCompact(result))
	default:
		fmt.Print(renderVerbose(result))
	}

	if result.Article.Status != ArticleFetched {
		return 2
	}
	return 0
}
