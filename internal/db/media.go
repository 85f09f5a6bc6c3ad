package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
)

func (r *Repository) Media(ctx context.Context, page, pageSize int) ([]Media, error) {
	if page < 1 || pageSize < 1 {
		return nil, fmt.Errorf(
			"page or pageSize must be greater than 0: page=%d, pageSize=%d",
			page, pageSize,
		)
	}

	var media []Media
	err := r.db.ModelContext(ctx, &media).
		OrderExpr(`"createdAt" DESC`).
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query media: %w", err)
	}

	return media, nil
}

func (r *Repository) MediaByID(ctx context.Context, mediaID int) (*Media, error) {
	media := &Media{}
	err := r.db.ModelContext(ctx, media).
		Where(`"mediaId" = ?`, mediaID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get media by id: %w", err)
	}

	return media, nil
}

// MediaObjectKeys returns the subset of keys that are referenced by a media row.
func (r *Repository) MediaObjectKeys(ctx context.Context, keys []string) ([]string, error) {
	if len(keys) == 0 {
		return []string{}, nil
	}

	var found []string
	err := r.db.ModelContext(ctx, (*Media)(nil)).
		Column(Columns.Media.ObjectKey).
		Where(`"objectKey" IN (?)`, pg.In(keys)).
		Select(&found)

	if err != nil {
		return nil, fmt.Errorf("failed to query media object keys: %w", err)
	}

	return found, nil
}

func (r *Repository) CreateMedia(ctx context.Context, media *Media) error {
	if _, err := r.db.ModelContext(ctx, media).Insert(); err != nil {
		return fmt.Errorf("failed to insert media: %w", err)
	}

	return nil
}

func (r *Repository) DeleteMedia(ctx context.Context, mediaID int) (bool, error) {
	res, err := r.db.ModelContext(ctx, (*Media)(nil)).
		Where(`"mediaId" = ?`, mediaID).
		Delete()
	if err != nil {
		return false, fmt.Errorf("failed to delete media: %w", err)
	}

	return res.RowsAffected() > 0, nil
}
