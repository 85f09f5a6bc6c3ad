package newsportal

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/daniilsolovey/newsroom/internal/analytics"
	"github.com/daniilsolovey/newsroom/internal/db"
	"github.com/daniilsolovey/newsroom/internal/metrics"
)

type BannerStore interface {
	Banners(ctx context.Context) ([]db.Banner, error)
	ActiveBanners(ctx context.Context, placement string, now time.Time) ([]db.Banner, error)
	BannerByID(ctx context.Context, bannerID int) (*db.Banner, error)
	CreateBanner(ctx context.Context, banner *db.Banner) error
	UpdateBanner(ctx context.Context, banner *db.Banner) (bool, error)
	DeleteBanner(ctx context.Context, bannerID int) (bool, error)
}

// BannerCounter counts banner events per day.
type BannerCounter interface {
	Track(ctx context.Context, bannerID int, event string, at time.Time) error
	Stats(ctx context.Context, bannerID int, from, to time.Time) (*analytics.BannerStats, error)
	Reset(ctx context.Context, bannerID int) error
}

type BannerInput struct {
	Title       string     `json:"title" validate:"required,max=255"`
	ImageURL    string     `json:"imageUrl" validate:"required,url"`
	LinkURL     string     `json:"linkUrl" validate:"omitempty,url"`
	Placement   string     `json:"placement" validate:"required,max=64"`
	OrderNumber int        `json:"orderNumber"`
	StartsAt    *time.Time `json:"startsAt"`
	EndsAt      *time.Time `json:"endsAt"`
	StatusID    int        `json:"statusId" validate:"oneof=1 2 3"`
}

func (in *BannerInput) normalize() {
	in.Title = strings.TrimSpace(in.Title)
	in.Placement = strings.TrimSpace(in.Placement)
	if in.StatusID == 0 {
		in.StatusID = db.StatusPublished
	}
}

func (in BannerInput) validate() error {
	if err := validateStruct(in); err != nil {
		return err
	}
	if in.StartsAt != nil && in.EndsAt != nil && !in.EndsAt.After(*in.StartsAt) {
		return fieldError("endsAt", "endsAt must be after startsAt", nil)
	}
	return nil
}

type BannerManager struct {
	store   BannerStore
	counter BannerCounter
	log     *slog.Logger
	now     func() time.Time
}

func NewBannerManager(store BannerStore, counter BannerCounter, log *slog.Logger) *BannerManager {
	return &BannerManager{
		store:   store,
		counter: counter,
		log:     log,
		now:     time.Now,
	}
}

func (m *BannerManager) Banners(ctx context.Context) ([]Banner, error) {
	list, err := m.store.Banners(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get banners: %w", err)
	}

	return newBanners(list), nil
}

// Active returns the banners currently on display. Failures are logged and yield an empty list.
func (m *BannerManager) Active(ctx context.Context, placement string) []Banner {
	list, err := m.store.ActiveBanners(ctx, placement, m.now())
	if err != nil {
		metrics.DegradedReads.WithLabelValues("banners").Inc()
		m.log.WarnContext(ctx, "active banners unavailable", "placement", placement, "error", err)
		return []Banner{}
	}

	return newBanners(list)
}

func (m *BannerManager) ByID(ctx context.Context, bannerID int) (*Banner, error) {
	row, err := m.store.BannerByID(ctx, bannerID)
	if err != nil {
		return nil, fmt.Errorf("db get banner by id: %w", err)
	} else if row == nil {
		return nil, nil
	}

	return &Banner{Banner: *row}, nil
}

func (m *BannerManager) Create(ctx context.Context, in BannerInput) (*Banner, error) {
	in.normalize()
	if err := in.validate(); err != nil {
		return nil, err
	}

	row := bannerRow(in)
	row.CreatedAt = m.now()
	if err := m.store.CreateBanner(ctx, row); err != nil {
		return nil, fmt.Errorf("db create banner: %w", err)
	}

	m.log.InfoContext(ctx, "banner created", "bannerId", row.ID, "placement", row.Placement)

	return &Banner{Banner: *row}, nil
}

func (m *BannerManager) Update(ctx context.Context, bannerID int, in BannerInput) (*Banner, error) {
	in.normalize()
	if err := in.validate(); err != nil {
		return nil, err
	}

	row := bannerRow(in)
	row.ID = bannerID

	ok, err := m.store.UpdateBanner(ctx, row)
	if err != nil {
		return nil, fmt.Errorf("db update banner: %w", err)
	} else if !ok {
		return nil, ErrNotFound
	}

	return m.ByID(ctx, bannerID)
}

// Delete removes the banner and its counters.
func (m *BannerManager) Delete(ctx context.Context, bannerID int) error {
	ok, err := m.store.DeleteBanner(ctx, bannerID)
	if err != nil {
		return fmt.Errorf("db delete banner: %w", err)
	} else if !ok {
		return ErrNotFound
	}

	if err := m.counter.Reset(ctx, bannerID); err != nil {
		m.log.WarnContext(ctx, "failed to reset banner stats", "bannerId", bannerID, "error", err)
	}

	return nil
}

func (m *BannerManager) TrackImpression(ctx context.Context, bannerID int) error {
	return m.track(ctx, bannerID, analytics.EventImpression)
}

func (m *BannerManager) TrackClick(ctx context.Context, bannerID int) error {
	return m.track(ctx, bannerID, analytics.EventClick)
}

func (m *BannerManager) track(ctx context.Context, bannerID int, event string) error {
	row, err := m.store.BannerByID(ctx, bannerID)
	if err != nil {
		return fmt.Errorf("db get banner by id: %w", err)
	} else if row == nil {
		return ErrNotFound
	}

	if err := m.counter.Track(ctx, bannerID, event, m.now()); err != nil {
		return err
	}

	metrics.BannerEvents.WithLabelValues(event).Inc()

	return nil
}

// Stats sums the banner counters between from and to, both days inclusive.
func (m *BannerManager) Stats(ctx context.Context, bannerID int, from, to time.Time) (*analytics.BannerStats, error) {
	row, err := m.store.BannerByID(ctx, bannerID)
	if err != nil {
		return nil, fmt.Errorf("db get banner by id: %w", err)
	} else if row == nil {
		return nil, ErrNotFound
	}

	stats, err := m.counter.Stats(ctx, bannerID, from, to)
	if err != nil {
		return nil, fmt.Errorf("banner stats: %w", err)
	}

	return stats, nil
}

func bannerRow(in BannerInput) *db.Banner {
	return &db.Banner{
		Title:       in.Title,
		ImageURL:    in.ImageURL,
		LinkURL:     in.LinkURL,
		Placement:   in.Placement,
		OrderNumber: in.OrderNumber,
		StartsAt:    in.StartsAt,
		EndsAt:      in.EndsAt,
		StatusID:    in.StatusID,
	}
}

func newBanners(in []db.Banner) []Banner {
	out := make([]Banner, len(in))
	for i := range in {
		out[i] = Banner{Banner: in[i]}
	}
	return out
}
