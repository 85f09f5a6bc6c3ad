package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
)

// SettingsID is the fixed key of the site settings singleton row.
const SettingsID = 1

func (r *Repository) Settings(ctx context.Context) (*Settings, error) {
	settings := &Settings{}
	err := r.db.ModelContext(ctx, settings).
		Where(`"settingsId" = ?`, SettingsID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	return settings, nil
}

func (r *Repository) SaveSettings(ctx context.Context, settings *Settings) error {
	settings.ID = SettingsID
	_, err := r.db.ModelContext(ctx, settings).
		OnConflict(`("settingsId") DO UPDATE`).
		Set(`"siteName" = EXCLUDED."siteName"`).
		Set(`"tagline" = EXCLUDED."tagline"`).
		Set(`"contactEmail" = EXCLUDED."contactEmail"`).
		Set(`"logoUrl" = EXCLUDED."logoUrl"`).
		Set(`"updatedAt" = EXCLUDED."updatedAt"`).
		Set(`"updatedBy" = EXCLUDED."updatedBy"`).
		Insert()
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	return nil
}
