package newsportal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/daniilsolovey/newsroom/internal/db"
	"github.com/daniilsolovey/newsroom/internal/search"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

type NewsStore interface {
	News(ctx context.Context, tagID, categoryID *int, page, pageSize int) ([]db.News, error)
	NewsCount(ctx context.Context, tagID, categoryID *int) (int, error)
	NewsBySlug(ctx context.Context, slug string) (*db.News, error)
	AnyNewsByID(ctx context.Context, newsID int) (*db.News, error)
	NewsSlugExists(ctx context.Context, slug string, exceptID int) (bool, error)
	CreateNews(ctx context.Context, news *db.News) error
	UpdateNews(ctx context.Context, news *db.News) (bool, error)
	SetNewsStatus(ctx context.Context, newsID, statusID int) (bool, error)
	DeleteNews(ctx context.Context, newsID int) (bool, error)
	IncrementNewsViews(ctx context.Context, newsID int) error
	CategoryByID(ctx context.Context, categoryID int) (*db.Category, error)
	TagsByIDs(ctx context.Context, tagIDs []int) ([]db.Tag, error)
}

// Indexer keeps the search index in sync with published news.
type Indexer interface {
	IndexNews(doc search.NewsDocument) error
	DeleteNews(id int) error
}

// NewsInput is the editable part of a news item.
type NewsInput struct {
	CategoryID  int        `json:"categoryId" validate:"required"`
	Title       string     `json:"title" validate:"required,max=255"`
	Slug        string     `json:"slug" validate:"required,slug"`
	Content     string     `json:"content"`
	Author      string     `json:"author" validate:"required,max=255"`
	CoverImage  string     `json:"coverImage" validate:"omitempty,url"`
	PublishedAt *time.Time `json:"publishedAt"`
	TagIDs      []int      `json:"tagIds"`
	StatusID    int        `json:"statusId" validate:"oneof=1 2 3"`
}

func (in *NewsInput) normalize() {
	in.Title = strings.TrimSpace(in.Title)
	in.Author = strings.TrimSpace(in.Author)
	in.Slug = strings.TrimSpace(in.Slug)
	if in.Slug == "" {
		in.Slug = Slugify(in.Title)
	}
	if in.StatusID == 0 {
		in.StatusID = db.StatusDraft
	}
	if in.TagIDs == nil {
		in.TagIDs = []int{}
	}
}

// NewsFilter selects a page of published news.
type NewsFilter struct {
	TagID      *int
	CategoryID *int
	Page       int
	PageSize   int
}

func (f *NewsFilter) normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = DefaultPageSize
	}
	if f.PageSize > MaxPageSize {
		f.PageSize = MaxPageSize
	}
}

type NewsManager struct {
	store   NewsStore
	indexer Indexer
	log     *slog.Logger
	now     func() time.Time
}

// NewNewsManager returns a news manager. indexer may be nil when search is disabled.
func NewNewsManager(store NewsStore, indexer Indexer, log *slog.Logger) *NewsManager {
	return &NewsManager{
		store:   store,
		indexer: indexer,
		log:     log,
		now:     time.Now,
	}
}

// NewsByFilter retrieves published news with optional filtering by tag and category, with pagination.
// Results are sorted by publishedAt DESC.
func (m *NewsManager) NewsByFilter(ctx context.Context, f NewsFilter) ([]News, error) {
	f.normalize()

	dbNews, err := m.store.News(ctx, f.TagID, f.CategoryID, f.Page, f.PageSize)
	if err != nil {
		return nil, fmt.Errorf("db get news: %w", err)
	}

	result, err := m.fillTags(ctx, NewNewsList(dbNews))
	if err != nil {
		return nil, fmt.Errorf("failed to attach tags to news: %w", err)
	}

	return result, nil
}

func (m *NewsManager) NewsCount(ctx context.Context, tagID, categoryID *int) (int, error) {
	count, err := m.store.NewsCount(ctx, tagID, categoryID)
	if err != nil {
		return 0, fmt.Errorf("db get news count: %w", err)
	}

	return count, nil
}

// Recent returns the n latest published news.
func (m *NewsManager) Recent(ctx context.Context, n int) ([]News, error) {
	return m.NewsByFilter(ctx, NewsFilter{Page: 1, PageSize: n})
}

// ByID returns a news item regardless of its status, or nil if it does not exist.
func (m *NewsManager) ByID(ctx context.Context, newsID int) (*News, error) {
	dbNews, err := m.store.AnyNewsByID(ctx, newsID)
	if err != nil {
		return nil, fmt.Errorf("db get news by id: %w", err)
	} else if dbNews == nil {
		return nil, nil
	}

	result, err := m.fillTags(ctx, NewNewsList([]db.News{*dbNews}))
	if err != nil {
		return nil, fmt.Errorf("failed to attach tags to news: %w", err)
	}

	return &result[0], nil
}

// BySlug returns a published news item and counts the view. A failed view count is only logged.
func (m *NewsManager) BySlug(ctx context.Context, slug string) (*News, error) {
	dbNews, err := m.store.NewsBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("db get news by slug: %w", err)
	} else if dbNews == nil {
		return nil, nil
	}

	if err := m.store.IncrementNewsViews(ctx, dbNews.ID); err != nil {
		m.log.WarnContext(ctx, "failed to count news view", "newsId", dbNews.ID, "error", err)
	} else {
		dbNews.ViewCount++
	}

	result, err := m.fillTags(ctx, NewNewsList([]db.News{*dbNews}))
	if err != nil {
		return nil, fmt.Errorf("failed to attach tags to news: %w", err)
	}

	return &result[0], nil
}

func (m *NewsManager) Create(ctx context.Context, in NewsInput) (*News, error) {
	in.normalize()
	if err := m.validate(ctx, in, 0); err != nil {
		return nil, err
	}

	row := m.newsRow(in)
	if err := m.store.CreateNews(ctx, row); err != nil {
		if errors.Is(err, db.ErrUniqueViolation) {
			return nil, fieldError("slug", ErrSlugTaken.Error(), ErrSlugTaken)
		}
		return nil, fmt.Errorf("db create news: %w", err)
	}

	m.log.InfoContext(ctx, "news created", "newsId", row.ID, "slug", row.Slug)
	m.syncIndex(ctx, row)

	return m.ByID(ctx, row.ID)
}

func (m *NewsManager) Update(ctx context.Context, newsID int, in NewsInput) (*News, error) {
	in.normalize()
	if err := m.validate(ctx, in, newsID); err != nil {
		return nil, err
	}

	existing, err := m.store.AnyNewsByID(ctx, newsID)
	if err != nil {
		return nil, fmt.Errorf("db get news by id: %w", err)
	} else if existing == nil {
		return nil, ErrNotFound
	}

	row := m.newsRow(in)
	row.ID = newsID
	if in.PublishedAt == nil {
		row.PublishedAt = existing.PublishedAt
	}
	now := m.now()
	row.UpdatedAt = &now

	ok, err := m.store.UpdateNews(ctx, row)
	if errors.Is(err, db.ErrUniqueViolation) {
		return nil, fieldError("slug", ErrSlugTaken.Error(), ErrSlugTaken)
	} else if err != nil {
		return nil, fmt.Errorf("db update news: %w", err)
	} else if !ok {
		return nil, ErrNotFound
	}

	m.syncIndex(ctx, row)

	return m.ByID(ctx, newsID)
}

// SetStatus publishes, hides or archives a news item.
func (m *NewsManager) SetStatus(ctx context.Context, newsID, statusID int) error {
	if statusID < db.StatusPublished || statusID > db.StatusArchived {
		return fieldError("statusId", "statusId must be one of: 1 2 3", nil)
	}

	ok, err := m.store.SetNewsStatus(ctx, newsID, statusID)
	if err != nil {
		return fmt.Errorf("db set news status: %w", err)
	} else if !ok {
		return ErrNotFound
	}

	row, err := m.store.AnyNewsByID(ctx, newsID)
	if err != nil {
		m.log.WarnContext(ctx, "failed to reload news for search index", "newsId", newsID, "error", err)
	} else if row != nil {
		m.syncIndex(ctx, row)
	}

	return nil
}

func (m *NewsManager) Delete(ctx context.Context, newsID int) error {
	ok, err := m.store.DeleteNews(ctx, newsID)
	if err != nil {
		return fmt.Errorf("db delete news: %w", err)
	} else if !ok {
		return ErrNotFound
	}

	m.log.InfoContext(ctx, "news deleted", "newsId", newsID)
	if m.indexer != nil {
		if err := m.indexer.DeleteNews(newsID); err != nil {
			m.log.WarnContext(ctx, "failed to remove news from search index", "newsId", newsID, "error", err)
		}
	}

	return nil
}

func (m *NewsManager) validate(ctx context.Context, in NewsInput, exceptID int) error {
	if err := validateStruct(in); err != nil {
		return err
	}

	for _, id := range in.TagIDs {
		if id <= 0 {
			return fieldError("tagIds", fmt.Sprintf("tag id %d is invalid", id), nil)
		}
	}

	category, err := m.store.CategoryByID(ctx, in.CategoryID)
	if err != nil {
		return fmt.Errorf("db get category: %w", err)
	} else if category == nil {
		return fieldError("categoryId", "category does not exist", ErrNotFound)
	}

	taken, err := m.store.NewsSlugExists(ctx, in.Slug, exceptID)
	if err != nil {
		return fmt.Errorf("db check news slug: %w", err)
	} else if taken {
		return fieldError("slug", ErrSlugTaken.Error(), ErrSlugTaken)
	}

	return nil
}

func (m *NewsManager) newsRow(in NewsInput) *db.News {
	row := &db.News{
		CategoryID:  in.CategoryID,
		Title:       in.Title,
		Slug:        in.Slug,
		Author:      in.Author,
		PublishedAt: m.now(),
		TagIDs:      in.TagIDs,
		StatusID:    in.StatusID,
	}
	if in.PublishedAt != nil {
		row.PublishedAt = *in.PublishedAt
	}
	if in.Content != "" {
		row.Content = &in.Content
	}
	if in.CoverImage != "" {
		row.CoverImage = &in.CoverImage
	}

	return row
}

// syncIndex indexes published news and removes everything else. Failures are only logged.
func (m *NewsManager) syncIndex(ctx context.Context, row *db.News) {
	if m.indexer == nil {
		return
	}

	var err error
	if row.StatusID == db.StatusPublished {
		err = m.indexer.IndexNews(newsDocument(row))
	} else {
		err = m.indexer.DeleteNews(row.ID)
	}
	if err != nil {
		m.log.WarnContext(ctx, "failed to sync search index", "newsId", row.ID, "error", err)
	}
}

func (m *NewsManager) fillTags(ctx context.Context, list NewsList) (NewsList, error) {
	tagIDs := list.UniqueTagIDs()
	if len(tagIDs) == 0 {
		list.SetTags(nil)
		return list, nil
	}

	tags, err := m.store.TagsByIDs(ctx, tagIDs)
	if err != nil {
		return nil, fmt.Errorf("db get tags: %w", err)
	}

	list.SetTags(NewTags(tags))

	return list, nil
}

func newsDocument(row *db.News) search.NewsDocument {
	doc := search.NewsDocument{
		ID:          row.ID,
		Title:       row.Title,
		Slug:        row.Slug,
		Author:      row.Author,
		CategoryID:  row.CategoryID,
		PublishedAt: row.PublishedAt.Unix(),
	}
	if row.Content != nil {
		doc.Content = *row.Content
	}

	return doc
}
