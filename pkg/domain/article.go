package domain

import "time"

// Article represents a single normalized news item produced by the feed
// collector. Articles live only in the in-memory snapshot and are replaced
// wholesale on every refresh, never mutated individually.
type Article struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Link          string    `json:"link"`
	Description   string    `json:"description"`
	Source        string    `json:"source"`
	SourceDisplay string    `json:"source_display"`
	Author        string    `json:"author"`
	PublishedAt   time.Time `json:"published_at"`
	Category      string    `json:"category"`
	Tags          []string  `json:"tags"`
	ImageURL      string    `json:"image_url,omitempty"`
	WordCount     int       `json:"word_count"`
}

// Snapshot is the current set of fetched articles, newest first, plus the
// time the fetch completed. Owned exclusively by the orchestrator and
// replaced atomically as a whole.
type Snapshot struct {
	Articles  []Article `json:"news"`
	FetchedAt time.Time `json:"timestamp"`
}

// SourceInfo describes a configured news source for the API catalog
type SourceInfo struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

// SourceStatus is the result of probing a single source feed
type SourceStatus struct {
	Success      bool   `json:"success"`
	ArticleCount int    `json:"article_count,omitempty"`
	FeedTitle    string `json:"feed_title,omitempty"`
	LastUpdated  string `json:"last_updated,omitempty"`
	Error        string `json:"error,omitempty"`
}
