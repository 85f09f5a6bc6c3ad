package rpc

import "github.com/daniilsolovey/newsroom/internal/newsportal"

func NewNews(n newsportal.News) News {
	news := News{
		NewsID:      n.ID,
		CategoryID:  n.CategoryID,
		Title:       n.Title,
		Slug:        n.Slug,
		Author:      n.Author,
		PublishedAt: n.PublishedAt,
		Category:    NewCategory(n.Category),
		Tags:        NewTags(n.Tags),
	}
	if n.Content != nil {
		news.Content = *n.Content
	}

	return news
}

func NewNewsSummary(n newsportal.News) NewsSummary {
	summary := NewsSummary{
		NewsID:      n.ID,
		CategoryID:  n.CategoryID,
		Title:       n.Title,
		Slug:        n.Slug,
		Author:      n.Author,
		PublishedAt: n.PublishedAt,
		Category:    NewCategory(n.Category),
		Tags:        NewTags(n.Tags),
	}

	return summary
}

func NewCategory(c newsportal.Category) Category {
	return Category{
		CategoryID: c.ID,
		Title:      c.Title,
		Slug:       c.Slug,
		Color:      c.Color,
	}
}

func NewTag(t newsportal.Tag) Tag {
	return Tag{
		TagID:    t.ID,
		Title:    t.Title,
		StatusID: t.StatusID,
	}
}

func NewFeaturedConfig(cfg *newsportal.FeaturedConfig) FeaturedConfig {
	if cfg == nil {
		return FeaturedConfig{NewsIDs: []int{}}
	}

	out := FeaturedConfig{
		NewsIDs:   cfg.NewsIDs,
		Version:   cfg.Version,
		UpdatedBy: cfg.UpdatedBy,
	}
	if out.NewsIDs == nil {
		out.NewsIDs = []int{}
	}
	if !cfg.UpdatedAt.IsZero() {
		updatedAt := cfg.UpdatedAt
		out.UpdatedAt = &updatedAt
	}

	return out
}

func NewFeaturedNews(f newsportal.FeaturedNews) FeaturedNews {
	return FeaturedNews{
		NewsID:      f.NewsID,
		Position:    f.Position,
		Title:       f.Title,
		Slug:        f.Slug,
		CoverImage:  f.CoverImage,
		PublishedAt: f.PublishedAt,
		ViewCount:   f.ViewCount,
		Category: Category{
			CategoryID: f.Category.CategoryID,
			Title:      f.Category.Title,
			Slug:       f.Category.Slug,
			Color:      f.Category.Color,
		},
	}
}
