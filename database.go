package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// defaultDBPath puts the article cache next to the executable.
func defaultDBPath() string {
	exePath, err := os.Executable()
	if err != nil {
		slog.Warn("Error getting executable path, using working directory", "error", err)
		return "hnthread.db"
	}
	return filepath.Join(filepath.Dir(exePath), "hnthread.db")
}

// initDB opens the article cache database and creates the schema if needed.
func initDB(dbPath string) (*sql.DB, error) {
	slog.Debug("Initializing database", "path", dbPath)

	db, err := sql.Open("sqlite", dbPath) // Use "sqlite" driver name
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	createCacheTable := `
	CREATE TABLE IF NOT EXISTS article_cache (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		url TEXT NOT NULL UNIQUE,
		markdown TEXT,
		detail TEXT,                            -- failure detail for unsuccessful scrapes
		fetched_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		expires_at TIMESTAMP,
		fetch_success BOOLEAN DEFAULT TRUE
	)`
	if _, err := db.Exec(createCacheTable); err != nil {
		return nil, fmt.Errorf("failed to create article_cache table: %w", err)
	}

	createIndexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_article_cache_url ON article_cache(url)",
		"CREATE INDEX IF NOT EXISTS idx_article_cache_expires ON article_cache(expires_at)",
	}
	for _, indexSQL := range createIndexes {
		if _, err := db.Exec(indexSQL); err != nil {
			return nil, fmt.Errorf("failed to create article_cache index: %w", err)
		}
	}

	slog.Debug("Database initialized successfully")
	return db, nil
}

// getCachedArticle retrieves a still-valid cache entry for a URL, or nil.
func getCachedArticle(db *sql.DB, url string) (*ArticleCache, error) {
	slog.Debug("Checking article cache", "url", url)

	query := `
		SELECT id, url, markdown, detail, fetched_at, expires_at, fetch_success
		FROM article_cache
		WHERE url = ? AND expires_at > ?`

	var cache ArticleCache
	err := db.QueryRow(query, url, time.Now()).Scan(
		&cache.ID,
		&cache.URL,
		&cache.Markdown,
		&cache.Detail,
		&cache.FetchedAt,
		&cache.ExpiresAt,
		&cache.FetchSuccess,
	)

	if err == sql.ErrNoRows {
		slog.Debug("No cached article found", "url", url)
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to query article cache: %w", err)
	}

	slog.Debug("Found cached article", "url", url, "success", cache.FetchSuccess)
	return &cache, nil
}

// cacheArticle stores a scrape result. Successful scrapes live 7 days,
// failures 1 day to avoid hammering broken sites.
func cacheArticle(db *sql.DB, url, markdown, detail string, fetchSuccess bool) error {
	slog.Debug("Caching article scrape", "url", url, "success", fetchSuccess)

	var expiresAt time.Time
	if fetchSuccess {
		expiresAt = time.Now().Add(7 * 24 * time.Hour)
	} else {
		expiresAt = time.Now().Add(24 * time.Hour)
	}

	query := `
		INSERT INTO article_cache (url, markdown, detail, fetched_at, expires_at, fetch_success)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET
			markdown = excluded.markdown,
			detail = excluded.detail,
			fetched_at = excluded.fetched_at,
			expires_at = excluded.expires_at,
			fetch_success = excluded.fetch_success`

	_, err := db.Exec(query, url, markdown, detail, time.Now(), expiresAt, fetchSuccess)
	if err != nil {
		return fmt.Errorf("failed to cache article: %w", err)
	}

	return nil
}

// cleanupExpiredArticleCache removes expired cache entries.
func cleanupExpiredArticleCache(db *sql.DB) error {
	result, err := db.Exec("DELETE FROM article_cache WHERE expires_at < ?", time.Now())
	if err != nil {
		return fmt.Errorf("failed to cleanup expired cache: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected > 0 {
		slog.Debug("Cleaned up expired article cache entries", "count", rowsAffected)
	}

	return nil
}
