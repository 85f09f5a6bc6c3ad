package newsportal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/daniilsolovey/newsroom/internal/db"
)

type TagStore interface {
	Tags(ctx context.Context) ([]db.Tag, error)
	TagsByIDs(ctx context.Context, tagIDs []int) ([]db.Tag, error)
	TagSlugExists(ctx context.Context, slug string) (bool, error)
	CreateTag(ctx context.Context, tag *db.Tag) error
	DeleteTag(ctx context.Context, tagID int) (bool, error)
}

type TagInput struct {
	Title string `json:"title" validate:"required,max=255"`
	Slug  string `json:"slug" validate:"required,slug"`
}

type TagManager struct {
	store TagStore
	log   *slog.Logger
}

func NewTagManager(store TagStore, log *slog.Logger) *TagManager {
	return &TagManager{
		store: store,
		log:   log,
	}
}

func (m *TagManager) Tags(ctx context.Context) ([]Tag, error) {
	list, err := m.store.Tags(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get tags: %w", err)
	}

	return NewTags(list), nil
}

func (m *TagManager) TagsByIDs(ctx context.Context, tagIDs []int) ([]Tag, error) {
	list, err := m.store.TagsByIDs(ctx, tagIDs)
	if err != nil {
		return nil, fmt.Errorf("db get tags by ids: %w", err)
	}

	return NewTags(list), nil
}

func (m *TagManager) Create(ctx context.Context, in TagInput) (*Tag, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Slug = strings.TrimSpace(in.Slug)
	if in.Slug == "" {
		in.Slug = Slugify(in.Title)
	}

	if err := validateStruct(in); err != nil {
		return nil, err
	}

	taken, err := m.store.TagSlugExists(ctx, in.Slug)
	if err != nil {
		return nil, fmt.Errorf("db check tag slug: %w", err)
	} else if taken {
		return nil, fieldError("slug", ErrSlugTaken.Error(), ErrSlugTaken)
	}

	row := &db.Tag{Title: in.Title, Slug: in.Slug, StatusID: db.StatusPublished}
	if err := m.store.CreateTag(ctx, row); errors.Is(err, db.ErrUniqueViolation) {
		return nil, fieldError("slug", ErrSlugTaken.Error(), ErrSlugTaken)
	} else if err != nil {
		return nil, fmt.Errorf("db create tag: %w", err)
	}

	m.log.InfoContext(ctx, "tag created", "tagId", row.ID, "slug", row.Slug)

	tag := NewTag(row)
	return &tag, nil
}

func (m *TagManager) Delete(ctx context.Context, tagID int) error {
	ok, err := m.store.DeleteTag(ctx, tagID)
	if err != nil {
		return fmt.Errorf("db delete tag: %w", err)
	} else if !ok {
		return ErrNotFound
	}

	m.log.InfoContext(ctx, "tag deleted", "tagId", tagID)

	return nil
}
