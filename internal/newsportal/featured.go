package newsportal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/daniilsolovey/newsroom/internal/db"
	"github.com/daniilsolovey/newsroom/internal/metrics"
)

const (
	// MaxFeatured is the maximum number of featured news items.
	MaxFeatured = 5

	// AnyVersion skips the optimistic version check on SetOrder.
	AnyVersion = -1
)

type FeaturedStore interface {
	Featured(ctx context.Context) (*db.Featured, error)
	SaveFeatured(ctx context.Context, featured *db.Featured, expectedVersion int) (bool, error)
	NewsByIDs(ctx context.Context, ids []int) ([]db.News, error)
	News(ctx context.Context, tagID, categoryID *int, page, pageSize int) ([]db.News, error)
}

// FeaturedConfig is the persisted, ordered list of featured news ids.
type FeaturedConfig struct {
	NewsIDs   []int
	Version   int
	UpdatedAt time.Time
	UpdatedBy string
}

// FeaturedNews is one display-ready featured item. Position starts at 1.
type FeaturedNews struct {
	NewsID      int
	Position    int
	Title       string
	Slug        string
	CoverImage  string
	PublishedAt time.Time
	ViewCount   int
	Category    FeaturedCategory
}

type FeaturedCategory struct {
	CategoryID int
	Title      string
	Slug       string
	Color      string
}

type FeaturedManager struct {
	store FeaturedStore
	log   *slog.Logger
	now   func() time.Time
}

func NewFeaturedManager(store FeaturedStore, log *slog.Logger) *FeaturedManager {
	return &FeaturedManager{
		store: store,
		log:   log,
		now:   time.Now,
	}
}

// Config returns the stored featured list, or nil if it was never saved.
func (m *FeaturedManager) Config(ctx context.Context) (*FeaturedConfig, error) {
	row, err := m.store.Featured(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get featured: %w", err)
	} else if row == nil {
		return nil, nil
	}

	return newFeaturedConfig(row), nil
}

// SetOrder replaces the whole featured list with ids.
// version is the Version the caller last read, 0 when no list existed, or AnyVersion.
func (m *FeaturedManager) SetOrder(ctx context.Context, ids []int, actor string, version int) (*FeaturedConfig, error) {
	if err := validateFeaturedIDs(ids); err != nil {
		metrics.FeaturedSaves.WithLabelValues("rejected").Inc()
		return nil, err
	}
	if actor == "" {
		metrics.FeaturedSaves.WithLabelValues("rejected").Inc()
		return nil, fieldError("updatedBy", "updatedBy is required", nil)
	}
	if version < AnyVersion {
		metrics.FeaturedSaves.WithLabelValues("rejected").Inc()
		return nil, fieldError("version", "version must not be negative", nil)
	}

	if version == AnyVersion {
		current, err := m.store.Featured(ctx)
		if err != nil {
			metrics.FeaturedSaves.WithLabelValues("error").Inc()
			return nil, fmt.Errorf("db get featured: %w", err)
		}
		version = 0
		if current != nil {
			version = current.Version
		}
	}

	row := &db.Featured{
		NewsIDs:   append(make([]int, 0, len(ids)), ids...),
		UpdatedAt: m.now(),
		UpdatedBy: actor,
	}

	saved, err := m.store.SaveFeatured(ctx, row, version)
	if err != nil {
		metrics.FeaturedSaves.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("db save featured: %w", err)
	}
	if !saved {
		metrics.FeaturedSaves.WithLabelValues("conflict").Inc()
		return nil, ErrVersionConflict
	}

	metrics.FeaturedSaves.WithLabelValues("ok").Inc()
	m.log.InfoContext(ctx, "featured news updated", "newsIds", row.NewsIDs, "version", row.Version, "actor", actor)

	return newFeaturedConfig(row), nil
}

// Materialize resolves the stored ids into display records. Ids whose news is missing or
// unpublished are skipped and positions are renumbered without gaps.
func (m *FeaturedManager) Materialize(ctx context.Context) ([]FeaturedNews, error) {
	cfg, err := m.store.Featured(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get featured: %w", err)
	} else if cfg == nil || len(cfg.NewsIDs) == 0 {
		return []FeaturedNews{}, nil
	}

	found, err := m.store.NewsByIDs(ctx, cfg.NewsIDs)
	if err != nil {
		return nil, fmt.Errorf("db get featured news: %w", err)
	}

	index := NewNewsList(found).IndexByID()

	result := make([]FeaturedNews, 0, len(cfg.NewsIDs))
	for _, id := range cfg.NewsIDs {
		news, ok := index[id]
		if !ok {
			continue
		}
		result = append(result, newFeaturedNews(news, len(result)+1))
	}

	return result, nil
}

// Featured is Materialize for display: failures are logged and yield an empty list.
func (m *FeaturedManager) Featured(ctx context.Context) []FeaturedNews {
	list, err := m.Materialize(ctx)
	if err != nil {
		metrics.DegradedReads.WithLabelValues("featured").Inc()
		m.log.WarnContext(ctx, "featured news unavailable", "error", err)
		return []FeaturedNews{}
	}

	return list
}

// EnsureDefault seeds the featured list with the latest published news if it was never
// saved. It reports whether this call created the list.
func (m *FeaturedManager) EnsureDefault(ctx context.Context, actor string) (bool, error) {
	cfg, err := m.store.Featured(ctx)
	if err != nil {
		return false, fmt.Errorf("db get featured: %w", err)
	} else if cfg != nil {
		return false, nil
	}

	recent, err := m.store.News(ctx, nil, nil, 1, MaxFeatured)
	if err != nil {
		return false, fmt.Errorf("db get recent news: %w", err)
	}

	ids := make([]int, 0, len(recent))
	for _, n := range recent {
		ids = append(ids, n.ID)
	}

	_, err = m.SetOrder(ctx, ids, actor, 0)
	if errors.Is(err, ErrVersionConflict) {
		// seeded concurrently
		return false, nil
	} else if err != nil {
		return false, err
	}

	return true, nil
}

func validateFeaturedIDs(ids []int) error {
	if len(ids) > MaxFeatured {
		return ErrTooManyItems
	}

	seen := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		if id <= 0 {
			return fieldError("newsIds", fmt.Sprintf("news id %d is invalid", id), nil)
		}
		if _, ok := seen[id]; ok {
			return fmt.Errorf("%w: %d", ErrDuplicateItem, id)
		}
		seen[id] = struct{}{}
	}

	return nil
}

// AddFeatured appends id to the end of ids.
func AddFeatured(ids []int, id int) ([]int, error) {
	if slices.Contains(ids, id) {
		return nil, fmt.Errorf("%w: %d", ErrDuplicateItem, id)
	}
	if len(ids) >= MaxFeatured {
		return nil, ErrTooManyItems
	}

	return append(slices.Clone(ids), id), nil
}

// RemoveFeatured drops id from ids. A missing id is not an error.
func RemoveFeatured(ids []int, id int) []int {
	out := make([]int, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

// MoveFeatured moves the item at position from to position to, both 1-based.
func MoveFeatured(ids []int, from, to int) ([]int, error) {
	if from < 1 || from > len(ids) {
		return nil, fieldError("from", fmt.Sprintf("position %d is out of range", from), nil)
	}
	if to < 1 || to > len(ids) {
		return nil, fieldError("to", fmt.Sprintf("position %d is out of range", to), nil)
	}

	out := slices.Clone(ids)
	item := out[from-1]
	out = slices.Delete(out, from-1, from)
	out = slices.Insert(out, to-1, item)

	return out, nil
}

func newFeaturedConfig(row *db.Featured) *FeaturedConfig {
	return &FeaturedConfig{
		NewsIDs:   slices.Clone(row.NewsIDs),
		Version:   row.Version,
		UpdatedAt: row.UpdatedAt,
		UpdatedBy: row.UpdatedBy,
	}
}

func newFeaturedNews(n News, position int) FeaturedNews {
	item := FeaturedNews{
		NewsID:      n.ID,
		Position:    position,
		Title:       n.Title,
		Slug:        n.Slug,
		PublishedAt: n.PublishedAt,
		ViewCount:   n.ViewCount,
		Category: FeaturedCategory{
			CategoryID: n.Category.ID,
			Title:      n.Category.Title,
			Slug:       n.Category.Slug,
			Color:      n.Category.Color,
		},
	}
	if n.CoverImage != nil {
		item.CoverImage = *n.CoverImage
	}

	return item
}
