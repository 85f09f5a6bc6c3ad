// nolint
//
//lint:file-ignore U1000 ignore unused code, it's generated
package db

import (
	"time"
)

var Columns = struct {
	Banner struct {
		ID, Title, ImageURL, LinkURL, Placement, OrderNumber, StartsAt, EndsAt, StatusID, CreatedAt string
	}
	Category struct {
		ID, Title, Slug, Color, OrderNumber, StatusID string
	}
	Featured struct {
		ID, NewsIDs, Version, UpdatedAt, UpdatedBy string
	}
	Media struct {
		ID, ObjectKey, URL, FileName, ContentType, Size, UploadedBy, CreatedAt string
	}
	News struct {
		ID, CategoryID, Title, Slug, Content, Author, CoverImage, PublishedAt, UpdatedAt, TagIDs, ViewCount, StatusID string

		Category string
	}
	NewsletterSubscription struct {
		ID, Email, Active, SubscribedAt, UnsubscribedAt string
	}
	RoadmapRequest struct {
		ID, Title, Description, Status, Votes, CreatedBy, CreatedAt, UpdatedAt string
	}
	RoadmapTimelineEntry struct {
		ID, RequestID, FromStatus, ToStatus, ChangedBy, Note, ChangedAt string
	}
	Settings struct {
		ID, SiteName, Tagline, ContactEmail, LogoURL, UpdatedAt, UpdatedBy string
	}
	Tag struct {
		ID, Title, Slug, StatusID string
	}
	User struct {
		ID, Email, DisplayName, Role, StatusID, CreatedAt string
	}
}{
	Banner: struct {
		ID, Title, ImageURL, LinkURL, Placement, OrderNumber, StartsAt, EndsAt, StatusID, CreatedAt string
	}{
		ID:          "bannerId",
		Title:       "title",
		ImageURL:    "imageUrl",
		LinkURL:     "linkUrl",
		Placement:   "placement",
		OrderNumber: "orderNumber",
		StartsAt:    "startsAt",
		EndsAt:      "endsAt",
		StatusID:    "statusId",
		CreatedAt:   "createdAt",
	},
	Category: struct {
		ID, Title, Slug, Color, OrderNumber, StatusID string
	}{
		ID:          "categoryId",
		Title:       "title",
		Slug:        "slug",
		Color:       "color",
		OrderNumber: "orderNumber",
		StatusID:    "statusId",
	},
	Featured: struct {
		ID, NewsIDs, Version, UpdatedAt, UpdatedBy string
	}{
		ID:        "featuredId",
		NewsIDs:   "newsIds",
		Version:   "version",
		UpdatedAt: "updatedAt",
		UpdatedBy: "updatedBy",
	},
	Media: struct {
		ID, ObjectKey, URL, FileName, ContentType, Size, UploadedBy, CreatedAt string
	}{
		ID:          "mediaId",
		ObjectKey:   "objectKey",
		URL:         "url",
		FileName:    "fileName",
		ContentType: "contentType",
		Size:        "size",
		UploadedBy:  "uploadedBy",
		CreatedAt:   "createdAt",
	},
	News: struct {
		ID, CategoryID, Title, Slug, Content, Author, CoverImage, PublishedAt, UpdatedAt, TagIDs, ViewCount, StatusID string

		Category string
	}{
		ID:          "newsId",
		CategoryID:  "categoryId",
		Title:       "title",
		Slug:        "slug",
		Content:     "content",
		Author:      "author",
		CoverImage:  "coverImage",
		PublishedAt: "publishedAt",
		UpdatedAt:   "updatedAt",
		TagIDs:      "tagIds",
		ViewCount:   "viewCount",
		StatusID:    "statusId",

		Category: "Category",
	},
	NewsletterSubscription: struct {
		ID, Email, Active, SubscribedAt, UnsubscribedAt string
	}{
		ID:             "subscriptionId",
		Email:          "email",
		Active:         "active",
		SubscribedAt:   "subscribedAt",
		UnsubscribedAt: "unsubscribedAt",
	},
	RoadmapRequest: struct {
		ID, Title, Description, Status, Votes, CreatedBy, CreatedAt, UpdatedAt string
	}{
		ID:          "requestId",
		Title:       "title",
		Description: "description",
		Status:      "status",
		Votes:       "votes",
		CreatedBy:   "createdBy",
		CreatedAt:   "createdAt",
		UpdatedAt:   "updatedAt",
	},
	RoadmapTimelineEntry: struct {
		ID, RequestID, FromStatus, ToStatus, ChangedBy, Note, ChangedAt string
	}{
		ID:         "entryId",
		RequestID:  "requestId",
		FromStatus: "fromStatus",
		ToStatus:   "toStatus",
		ChangedBy:  "changedBy",
		Note:       "note",
		ChangedAt:  "changedAt",
	},
	Settings: struct {
		ID, SiteName, Tagline, ContactEmail, LogoURL, UpdatedAt, UpdatedBy string
	}{
		ID:           "settingsId",
		SiteName:     "siteName",
		Tagline:      "tagline",
		ContactEmail: "contactEmail",
		LogoURL:      "logoUrl",
		UpdatedAt:    "updatedAt",
		UpdatedBy:    "updatedBy",
	},
	Tag: struct {
		ID, Title, Slug, StatusID string
	}{
		ID:       "tagId",
		Title:    "title",
		Slug:     "slug",
		StatusID: "statusId",
	},
	User: struct {
		ID, Email, DisplayName, Role, StatusID, CreatedAt string
	}{
		ID:          "userId",
		Email:       "email",
		DisplayName: "displayName",
		Role:        "role",
		StatusID:    "statusId",
		CreatedAt:   "createdAt",
	},
}

var Tables = struct {
	Banner struct {
		Name, Alias string
	}
	Category struct {
		Name, Alias string
	}
	Featured struct {
		Name, Alias string
	}
	Media struct {
		Name, Alias string
	}
	News struct {
		Name, Alias string
	}
	NewsletterSubscription struct {
		Name, Alias string
	}
	RoadmapRequest struct {
		Name, Alias string
	}
	RoadmapTimelineEntry struct {
		Name, Alias string
	}
	Settings struct {
		Name, Alias string
	}
	Status struct {
		Name, Alias string
	}
	Tag struct {
		Name, Alias string
	}
	User struct {
		Name, Alias string
	}
}{
	Banner: struct {
		Name, Alias string
	}{
		Name:  "banners",
		Alias: "t",
	},
	Category: struct {
		Name, Alias string
	}{
		Name:  "categories",
		Alias: "t",
	},
	Featured: struct {
		Name, Alias string
	}{
		Name:  "featured",
		Alias: "t",
	},
	Media: struct {
		Name, Alias string
	}{
		Name:  "media",
		Alias: "t",
	},
	News: struct {
		Name, Alias string
	}{
		Name:  "news",
		Alias: "t",
	},
	NewsletterSubscription: struct {
		Name, Alias string
	}{
		Name:  "newsletterSubscriptions",
		Alias: "t",
	},
	RoadmapRequest: struct {
		Name, Alias string
	}{
		Name:  "roadmapRequests",
		Alias: "t",
	},
	RoadmapTimelineEntry: struct {
		Name, Alias string
	}{
		Name:  "roadmapTimeline",
		Alias: "t",
	},
	Settings: struct {
		Name, Alias string
	}{
		Name:  "settings",
		Alias: "t",
	},
	Status: struct {
		Name, Alias string
	}{
		Name:  "statuses",
		Alias: "t",
	},
	Tag: struct {
		Name, Alias string
	}{
		Name:  "tags",
		Alias: "t",
	},
	User: struct {
		Name, Alias string
	}{
		Name:  "users",
		Alias: "t",
	},
}

type Banner struct {
	tableName struct{} `pg:"banners,alias:t,discard_unknown_columns"`

	ID          int        `pg:"bannerId,pk"`
	Title       string     `pg:"title,use_zero"`
	ImageURL    string     `pg:"imageUrl,use_zero"`
	LinkURL     string     `pg:"linkUrl,use_zero"`
	Placement   string     `pg:"placement,use_zero"`
	OrderNumber int        `pg:"orderNumber,use_zero"`
	StartsAt    *time.Time `pg:"startsAt"`
	EndsAt      *time.Time `pg:"endsAt"`
	StatusID    int        `pg:"statusId,use_zero"`
	CreatedAt   time.Time  `pg:"createdAt,use_zero"`
}

type Category struct {
	tableName struct{} `pg:"categories,alias:t,discard_unknown_columns"`

	ID          int    `pg:"categoryId,pk"`
	Title       string `pg:"title,use_zero"`
	Slug        string `pg:"slug,use_zero"`
	Color       string `pg:"color,use_zero"`
	OrderNumber int    `pg:"orderNumber,use_zero"`
	StatusID    int    `pg:"statusId,use_zero"`
}

type Featured struct {
	tableName struct{} `pg:"featured,alias:t,discard_unknown_columns"`

	ID        int       `pg:"featuredId,pk"`
	NewsIDs   []int     `pg:"newsIds,array,use_zero"`
	Version   int       `pg:"version,use_zero"`
	UpdatedAt time.Time `pg:"updatedAt,use_zero"`
	UpdatedBy string    `pg:"updatedBy,use_zero"`
}

type Media struct {
	tableName struct{} `pg:"media,alias:t,discard_unknown_columns"`

	ID          int       `pg:"mediaId,pk"`
	ObjectKey   string    `pg:"objectKey,use_zero"`
	URL         string    `pg:"url,use_zero"`
	FileName    string    `pg:"fileName,use_zero"`
	ContentType string    `pg:"contentType,use_zero"`
	Size        int64     `pg:"size,use_zero"`
	UploadedBy  string    `pg:"uploadedBy,use_zero"`
	CreatedAt   time.Time `pg:"createdAt,use_zero"`
}

type News struct {
	tableName struct{} `pg:"news,alias:t,discard_unknown_columns"`

	ID          int        `pg:"newsId,pk"`
	CategoryID  int        `pg:"categoryId,use_zero"`
	Title       string     `pg:"title,use_zero"`
	Slug        string     `pg:"slug,use_zero"`
	Content     *string    `pg:"content"`
	Author      string     `pg:"author,use_zero"`
	CoverImage  *string    `pg:"coverImage"`
	PublishedAt time.Time  `pg:"publishedAt,use_zero"`
	UpdatedAt   *time.Time `pg:"updatedAt"`
	TagIDs      []int      `pg:"tagIds,array,use_zero"`
	ViewCount   int        `pg:"viewCount,use_zero"`
	StatusID    int        `pg:"statusId,use_zero"`

	Category *Category `pg:"fk:categoryId,rel:has-one"`
}

type NewsletterSubscription struct {
	tableName struct{} `pg:"newsletterSubscriptions,alias:t,discard_unknown_columns"`

	ID             int        `pg:"subscriptionId,pk"`
	Email          string     `pg:"email,use_zero"`
	Active         bool       `pg:"active,use_zero"`
	SubscribedAt   time.Time  `pg:"subscribedAt,use_zero"`
	UnsubscribedAt *time.Time `pg:"unsubscribedAt"`
}

type RoadmapRequest struct {
	tableName struct{} `pg:"roadmapRequests,alias:t,discard_unknown_columns"`

	ID          int        `pg:"requestId,pk"`
	Title       string     `pg:"title,use_zero"`
	Description string     `pg:"description,use_zero"`
	Status      string     `pg:"status,use_zero"`
	Votes       int        `pg:"votes,use_zero"`
	CreatedBy   string     `pg:"createdBy,use_zero"`
	CreatedAt   time.Time  `pg:"createdAt,use_zero"`
	UpdatedAt   *time.Time `pg:"updatedAt"`
}

type RoadmapTimelineEntry struct {
	tableName struct{} `pg:"roadmapTimeline,alias:t,discard_unknown_columns"`

	ID         int       `pg:"entryId,pk"`
	RequestID  int       `pg:"requestId,use_zero"`
	FromStatus string    `pg:"fromStatus,use_zero"`
	ToStatus   string    `pg:"toStatus,use_zero"`
	ChangedBy  string    `pg:"changedBy,use_zero"`
	Note       string    `pg:"note,use_zero"`
	ChangedAt  time.Time `pg:"changedAt,use_zero"`
}

type Settings struct {
	tableName struct{} `pg:"settings,alias:t,discard_unknown_columns"`

	ID           int       `pg:"settingsId,pk"`
	SiteName     string    `pg:"siteName,use_zero"`
	Tagline      string    `pg:"tagline,use_zero"`
	ContactEmail string    `pg:"contactEmail,use_zero"`
	LogoURL      string    `pg:"logoUrl,use_zero"`
	UpdatedAt    time.Time `pg:"updatedAt,use_zero"`
	UpdatedBy    string    `pg:"updatedBy,use_zero"`
}

type Status struct {
	tableName struct{} `pg:"statuses,alias:t,discard_unknown_columns"`

	ID int `pg:"statusId,pk"`
}

type Tag struct {
	tableName struct{} `pg:"tags,alias:t,discard_unknown_columns"`

	ID       int    `pg:"tagId,pk"`
	Title    string `pg:"title,use_zero"`
	Slug     string `pg:"slug,use_zero"`
	StatusID int    `pg:"statusId,use_zero"`
}

type User struct {
	tableName struct{} `pg:"users,alias:t,discard_unknown_columns"`

	ID          int       `pg:"userId,pk"`
	Email       string    `pg:"email,use_zero"`
	DisplayName string    `pg:"displayName,use_zero"`
	Role        string    `pg:"role,use_zero"`
	StatusID    int       `pg:"statusId,use_zero"`
	CreatedAt   time.Time `pg:"createdAt,use_zero"`
}
