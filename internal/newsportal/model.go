package newsportal

import (
	"time"

	"github.com/daniilsolovey/newsroom/internal/db"
)

type Category struct {
	db.Category
}

type Tag struct {
	db.Tag
}

type News struct {
	db.News
	Category Category
	Tags     []Tag
}

type Banner struct {
	db.Banner
}

// Active reports whether the banner is published and inside its display window.
func (b Banner) Active(now time.Time) bool {
	if b.StatusID != db.StatusPublished {
		return false
	}
	if b.StartsAt != nil && now.Before(*b.StartsAt) {
		return false
	}
	if b.EndsAt != nil && !now.Before(*b.EndsAt) {
		return false
	}
	return true
}

type Media struct {
	db.Media
}

type User struct {
	db.User
}

type Settings struct {
	db.Settings
}

type RoadmapRequest struct {
	db.RoadmapRequest
}

type RoadmapTimelineEntry struct {
	db.RoadmapTimelineEntry
}

type Subscription struct {
	db.NewsletterSubscription
}
