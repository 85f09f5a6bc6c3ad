package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
)

// FeaturedID is the fixed key of the featured news singleton row.
const FeaturedID = 1

// Featured returns the singleton config, or nil if it was never saved.
func (r *Repository) Featured(ctx context.Context) (*Featured, error) {
	featured := &Featured{}
	err := r.db.ModelContext(ctx, featured).
		Where(`"featuredId" = ?`, FeaturedID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get featured config: %w", err)
	}

	return featured, nil
}

// SaveFeatured replaces the singleton if its stored version still equals expectedVersion.
// expectedVersion 0 means the row must not exist yet. On success featured.Version holds
// the new version; false is returned when another writer got there first.
func (r *Repository) SaveFeatured(ctx context.Context, featured *Featured, expectedVersion int) (bool, error) {
	featured.ID = FeaturedID
	featured.Version = expectedVersion + 1

	if expectedVersion == 0 {
		res, err := r.db.ModelContext(ctx, featured).
			OnConflict("DO NOTHING").
			Insert()
		if err != nil {
			return false, fmt.Errorf("failed to insert featured config: %w", err)
		}

		return res.RowsAffected() > 0, nil
	}

	res, err := r.db.ModelContext(ctx, featured).
		Column(Columns.Featured.NewsIDs, Columns.Featured.Version, Columns.Featured.UpdatedAt, Columns.Featured.UpdatedBy).
		WherePK().
		Where(`"t"."version" = ?`, expectedVersion).
		Update()
	if err != nil {
		return false, fmt.Errorf("failed to update featured config: %w", err)
	}

	return res.RowsAffected() > 0, nil
}
