package rest

import (
	"time"
)

type Category struct {
	CategoryID  int    `json:"categoryId"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Color       string `json:"color"`
	OrderNumber int    `json:"orderNumber"`
	StatusID    int    `json:"statusId"`
}

type Tag struct {
	TagID    int    `json:"tagId"`
	Title    string `json:"title"`
	Slug     string `json:"slug"`
	StatusID int    `json:"statusId"`
}

type News struct {
	NewsID      int        `json:"newsId"`
	CategoryID  int        `json:"categoryId"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Content     string     `json:"content"`
	Author      string     `json:"author"`
	CoverImage  string     `json:"coverImage,omitempty"`
	PublishedAt time.Time  `json:"publishedAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
	ViewCount   int        `json:"viewCount"`
	StatusID    int        `json:"statusId"`
	Category    Category   `json:"category"`
	Tags        []Tag      `json:"tags"`
}

type NewsSummary struct {
	NewsID      int       `json:"newsId"`
	CategoryID  int       `json:"categoryId"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Author      string    `json:"author"`
	CoverImage  string    `json:"coverImage,omitempty"`
	PublishedAt time.Time `json:"publishedAt"`
	ViewCount   int       `json:"viewCount"`
	Category    Category  `json:"category"`
	Tags        []Tag     `json:"tags"`
}

type NewsRequest struct {
	TagID      *int `query:"tagId"`
	CategoryID *int `query:"categoryId"`
	Page       int  `query:"page"`
	PageSize   int  `query:"pageSize"`
}

type FeaturedCategory struct {
	CategoryID int    `json:"categoryId"`
	Title      string `json:"title"`
	Slug       string `json:"slug"`
	Color      string `json:"color"`
}

type FeaturedNews struct {
	NewsID      int              `json:"newsId"`
	Position    int              `json:"position"`
	Title       string           `json:"title"`
	Slug        string           `json:"slug"`
	CoverImage  string           `json:"coverImage,omitempty"`
	PublishedAt time.Time        `json:"publishedAt"`
	ViewCount   int              `json:"viewCount"`
	Category    FeaturedCategory `json:"category"`
}

type FeaturedConfig struct {
	NewsIDs   []int      `json:"newsIds"`
	Version   int        `json:"version"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
	UpdatedBy string     `json:"updatedBy,omitempty"`
}

type FeaturedOrderRequest struct {
	NewsIDs []int `json:"newsIds"`
}

type FeaturedItemRequest struct {
	NewsID int `json:"newsId"`
}

type FeaturedMoveRequest struct {
	From int `json:"from"`
	To   int `json:"to"`
}

type Banner struct {
	BannerID    int        `json:"bannerId"`
	Title       string     `json:"title"`
	ImageURL    string     `json:"imageUrl"`
	LinkURL     string     `json:"linkUrl,omitempty"`
	Placement   string     `json:"placement"`
	OrderNumber int        `json:"orderNumber"`
	StartsAt    *time.Time `json:"startsAt,omitempty"`
	EndsAt      *time.Time `json:"endsAt,omitempty"`
	StatusID    int        `json:"statusId"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type BannerDayStats struct {
	Date        string `json:"date"`
	Impressions int64  `json:"impressions"`
	Clicks      int64  `json:"clicks"`
}

type BannerStats struct {
	BannerID    int              `json:"bannerId"`
	Impressions int64            `json:"impressions"`
	Clicks      int64            `json:"clicks"`
	Days        []BannerDayStats `json:"days"`
}

type Media struct {
	MediaID     int       `json:"mediaId"`
	URL         string    `json:"url"`
	FileName    string    `json:"fileName"`
	ContentType string    `json:"contentType"`
	Size        int64     `json:"size"`
	Stored      bool      `json:"stored"`
	UploadedBy  string    `json:"uploadedBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

type User struct {
	UserID      int       `json:"userId"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName"`
	Role        string    `json:"role"`
	StatusID    int       `json:"statusId"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Settings struct {
	SiteName     string     `json:"siteName"`
	Tagline      string     `json:"tagline"`
	ContactEmail string     `json:"contactEmail,omitempty"`
	LogoURL      string     `json:"logoUrl,omitempty"`
	UpdatedAt    *time.Time `json:"updatedAt,omitempty"`
	UpdatedBy    string     `json:"updatedBy,omitempty"`
}

type RoadmapRequest struct {
	RequestID   int        `json:"requestId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Votes       int        `json:"votes"`
	CreatedBy   string     `json:"createdBy"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

type RoadmapTimelineEntry struct {
	FromStatus string    `json:"fromStatus"`
	ToStatus   string    `json:"toStatus"`
	ChangedBy  string    `json:"changedBy"`
	Note       string    `json:"note,omitempty"`
	ChangedAt  time.Time `json:"changedAt"`
}

type RoadmapStatusRequest struct {
	Status string `json:"status"`
	Note   string `json:"note"`
}

type NewsStatusRequest struct {
	StatusID int `json:"statusId"`
}

type Subscription struct {
	Email          string     `json:"email"`
	Active         bool       `json:"active"`
	SubscribedAt   time.Time  `json:"subscribedAt"`
	UnsubscribedAt *time.Time `json:"unsubscribedAt,omitempty"`
}

type SubscribeRequest struct {
	Email string `json:"email"`
}

type SearchHit struct {
	NewsID      int       `json:"newsId"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Snippet     string    `json:"snippet,omitempty"`
	CategoryID  int       `json:"categoryId"`
	PublishedAt time.Time `json:"publishedAt"`
}

type SearchResult struct {
	Hits  []SearchHit `json:"hits"`
	Total int         `json:"total"`
}
