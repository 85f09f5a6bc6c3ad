package rpc

import (
	"time"

	"github.com/daniilsolovey/newsroom/internal/newsportal"
)

type NewsFilter struct {
	//tagId optional tag filter
	TagID *int `json:"tagId,omitempty"`
	//categoryId optional category filter
	CategoryID *int `json:"categoryId,omitempty"`
	//page=1 page number (1-based)
	Page *int `json:"page,omitempty"`
	//pageSize=10 items per page
	PageSize *int `json:"pageSize,omitempty"`
}

func (f NewsFilter) ToModel() newsportal.NewsFilter {
	filter := newsportal.NewsFilter{
		TagID:      f.TagID,
		CategoryID: f.CategoryID,
	}
	if f.Page != nil {
		filter.Page = *f.Page
	}
	if f.PageSize != nil {
		filter.PageSize = *f.PageSize
	}

	return filter
}

type NewsCountRequest struct {
	TagID      *int `json:"tagId,omitempty"`
	CategoryID *int `json:"categoryId,omitempty"`
}

type NewsByIDRequest struct {
	ID int `json:"id"`
}

type Category struct {
	CategoryID int    `json:"categoryId"`
	Title      string `json:"title"`
	Slug       string `json:"slug"`
	Color      string `json:"color"`
}

type Tag struct {
	TagID    int    `json:"tagId"`
	Title    string `json:"title"`
	StatusID int    `json:"statusId"`
}

type News struct {
	NewsID      int       `json:"newsId"`
	CategoryID  int       `json:"categoryId"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Content     string    `json:"content"`
	Author      string    `json:"author"`
	PublishedAt time.Time `json:"publishedAt"`
	Category    Category  `json:"category"`
	Tags        []Tag     `json:"tags"`
}

type NewsSummary struct {
	NewsID      int       `json:"newsId"`
	CategoryID  int       `json:"categoryId"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Author      string    `json:"author"`
	PublishedAt time.Time `json:"publishedAt"`
	Category    Category  `json:"category"`
	Tags        []Tag     `json:"tags"`
}

type FeaturedConfig struct {
	NewsIDs   []int      `json:"newsIds"`
	Version   int        `json:"version"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
	UpdatedBy string     `json:"updatedBy,omitempty"`
}

type SetOrderRequest struct {
	//newsIds ordered news ids, at most 5
	NewsIDs []int `json:"newsIds"`
	//version version of the list the caller read, -1 to skip the check
	Version int `json:"version"`
}

type FeaturedNews struct {
	NewsID      int       `json:"newsId"`
	Position    int       `json:"position"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	CoverImage  string    `json:"coverImage,omitempty"`
	PublishedAt time.Time `json:"publishedAt"`
	ViewCount   int       `json:"viewCount"`
	Category    Category  `json:"category"`
}
