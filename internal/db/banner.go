package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pg/pg/v10"
)

func (r *Repository) Banners(ctx context.Context) ([]Banner, error) {
	var banners []Banner
	err := r.db.ModelContext(ctx, &banners).
		OrderExpr(`"placement" ASC, "orderNumber" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query banners: %w", err)
	}

	return banners, nil
}

// ActiveBanners returns published banners whose display window contains now.
// An empty placement matches every placement.
func (r *Repository) ActiveBanners(ctx context.Context, placement string, now time.Time) ([]Banner, error) {
	var banners []Banner
	query := r.db.ModelContext(ctx, &banners).
		Where(`"statusId" = ?`, StatusPublished).
		Where(`"startsAt" IS NULL OR "startsAt" <= ?`, now).
		Where(`"endsAt" IS NULL OR "endsAt" > ?`, now)

	if placement != "" {
		query = query.Where(`"placement" = ?`, placement)
	}

	err := query.OrderExpr(`"orderNumber" ASC`).Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query active banners: %w", err)
	}

	return banners, nil
}

func (r *Repository) BannerByID(ctx context.Context, bannerID int) (*Banner, error) {
	banner := &Banner{}
	err := r.db.ModelContext(ctx, banner).
		Where(`"bannerId" = ?`, bannerID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get banner by id: %w", err)
	}

	return banner, nil
}

func (r *Repository) CreateBanner(ctx context.Context, banner *Banner) error {
	if _, err := r.db.ModelContext(ctx, banner).Insert(); err != nil {
		return fmt.Errorf("failed to insert banner: %w", err)
	}

	return nil
}

func (r *Repository) UpdateBanner(ctx context.Context, banner *Banner) (bool, error) {
	res, err := r.db.ModelContext(ctx, banner).
		ExcludeColumn(Columns.Banner.CreatedAt).
		WherePK().
		Update()
	if err != nil {
		return false, fmt.Errorf("failed to update banner: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

func (r *Repository) DeleteBanner(ctx context.Context, bannerID int) (bool, error) {
	res, err := r.db.ModelContext(ctx, (*Banner)(nil)).
		Where(`"bannerId" = ?`, bannerID).
		Delete()
	if err != nil {
		return false, fmt.Errorf("failed to delete banner: %w", err)
	}

	return res.RowsAffected() > 0, nil
}
