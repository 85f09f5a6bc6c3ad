package rest

import (
	"github.com/daniilsolovey/newsroom/internal/analytics"
	"github.com/daniilsolovey/newsroom/internal/newsportal"
	"github.com/daniilsolovey/newsroom/internal/search"
)

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func NewNews(n newsportal.News) News {
	news := News{
		NewsID:      n.ID,
		CategoryID:  n.CategoryID,
		Title:       n.Title,
		Slug:        n.Slug,
		Content:     derefString(n.Content),
		Author:      n.Author,
		CoverImage:  derefString(n.CoverImage),
		PublishedAt: n.PublishedAt,
		UpdatedAt:   n.UpdatedAt,
		ViewCount:   n.ViewCount,
		StatusID:    n.StatusID,
		Category:    NewCategory(n.Category),
		Tags:        NewTags(n.Tags),
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
		CoverImage:  derefString(n.CoverImage),
		PublishedAt: n.PublishedAt,
		ViewCount:   n.ViewCount,
		Category:    NewCategory(n.Category),
		Tags:        NewTags(n.Tags),
	}

	return summary
}

func NewCategory(c newsportal.Category) Category {
	return Category{
		CategoryID:  c.ID,
		Title:       c.Title,
		Slug:        c.Slug,
		Color:       c.Color,
		OrderNumber: c.OrderNumber,
		StatusID:    c.StatusID,
	}
}

func NewTag(t newsportal.Tag) Tag {
	return Tag{
		TagID:    t.ID,
		Title:    t.Title,
		Slug:     t.Slug,
		StatusID: t.StatusID,
	}
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
		Category: FeaturedCategory{
			CategoryID: f.Category.CategoryID,
			Title:      f.Category.Title,
			Slug:       f.Category.Slug,
			Color:      f.Category.Color,
		},
	}
}

// NewFeaturedConfig converts cfg; a nil cfg is the never-saved empty list at version 0.
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

func NewBanner(b newsportal.Banner) Banner {
	return Banner{
		BannerID:    b.ID,
		Title:       b.Title,
		ImageURL:    b.ImageURL,
		LinkURL:     b.LinkURL,
		Placement:   b.Placement,
		OrderNumber: b.OrderNumber,
		StartsAt:    b.StartsAt,
		EndsAt:      b.EndsAt,
		StatusID:    b.StatusID,
		CreatedAt:   b.CreatedAt,
	}
}

func NewBannerStats(s analytics.BannerStats) BannerStats {
	days := make([]BannerDayStats, len(s.Days))
	for i, d := range s.Days {
		days[i] = BannerDayStats{Date: d.Date, Impressions: d.Impressions, Clicks: d.Clicks}
	}

	return BannerStats{
		BannerID:    s.BannerID,
		Impressions: s.Impressions,
		Clicks:      s.Clicks,
		Days:        days,
	}
}

func NewMedia(m newsportal.Media) Media {
	return Media{
		MediaID:     m.ID,
		URL:         m.URL,
		FileName:    m.FileName,
		ContentType: m.ContentType,
		Size:        m.Size,
		Stored:      m.ObjectKey != "",
		UploadedBy:  m.UploadedBy,
		CreatedAt:   m.CreatedAt,
	}
}

func NewUser(u newsportal.User) User {
	return User{
		UserID:      u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Role:        u.Role,
		StatusID:    u.StatusID,
		CreatedAt:   u.CreatedAt,
	}
}

func NewSettings(s newsportal.Settings) Settings {
	out := Settings{
		SiteName:     s.SiteName,
		Tagline:      s.Tagline,
		ContactEmail: s.ContactEmail,
		LogoURL:      s.LogoURL,
		UpdatedBy:    s.UpdatedBy,
	}
	if !s.UpdatedAt.IsZero() {
		updatedAt := s.UpdatedAt
		out.UpdatedAt = &updatedAt
	}

	return out
}

func NewRoadmapRequest(r newsportal.RoadmapRequest) RoadmapRequest {
	return RoadmapRequest{
		RequestID:   r.ID,
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
		Votes:       r.Votes,
		CreatedBy:   r.CreatedBy,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func NewRoadmapTimelineEntry(e newsportal.RoadmapTimelineEntry) RoadmapTimelineEntry {
	return RoadmapTimelineEntry{
		FromStatus: e.FromStatus,
		ToStatus:   e.ToStatus,
		ChangedBy:  e.ChangedBy,
		Note:       e.Note,
		ChangedAt:  e.ChangedAt,
	}
}

func NewSubscription(s newsportal.Subscription) Subscription {
	return Subscription{
		Email:          s.Email,
		Active:         s.Active,
		SubscribedAt:   s.SubscribedAt,
		UnsubscribedAt: s.UnsubscribedAt,
	}
}

func NewSearchHit(h search.Hit) SearchHit {
	return SearchHit{
		NewsID:      h.ID,
		Title:       h.Title,
		Slug:        h.Slug,
		Snippet:     h.Snippet,
		CategoryID:  h.CategoryID,
		PublishedAt: h.PublishedAt,
	}
}
