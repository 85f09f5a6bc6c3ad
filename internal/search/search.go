// Package search indexes published news in Meilisearch for the public site search.
package search

import "time"

// NewsDocument is the data we index for a news item.
type NewsDocument struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Content     string `json:"content"`
	Author      string `json:"author"`
	CategoryID  int    `json:"categoryId"`
	PublishedAt int64  `json:"publishedAt"`
}

// Hit is a single search result.
type Hit struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Snippet     string    `json:"snippet"`
	CategoryID  int       `json:"categoryId"`
	PublishedAt time.Time `json:"publishedAt"`
}

// Query describes a search request.
type Query struct {
	Text       string
	CategoryID int // 0 = all categories
	Limit      int
	Offset     int
}
