package newsportal

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/daniilsolovey/newsroom/internal/db"
	"github.com/daniilsolovey/newsroom/internal/metrics"
)

// DefaultSiteName is shown until the settings are saved for the first time.
const DefaultSiteName = "Newsroom"

type SettingsStore interface {
	Settings(ctx context.Context) (*db.Settings, error)
	SaveSettings(ctx context.Context, settings *db.Settings) error
}

type SettingsInput struct {
	SiteName     string `json:"siteName" validate:"required,max=255"`
	Tagline      string `json:"tagline" validate:"max=255"`
	ContactEmail string `json:"contactEmail" validate:"omitempty,email,max=255"`
	LogoURL      string `json:"logoUrl" validate:"omitempty,url"`
}

type SettingsManager struct {
	store SettingsStore
	log   *slog.Logger
	now   func() time.Time
}

func NewSettingsManager(store SettingsStore, log *slog.Logger) *SettingsManager {
	return &SettingsManager{
		store: store,
		log:   log,
		now:   time.Now,
	}
}

func DefaultSettings() Settings {
	return Settings{Settings: db.Settings{ID: db.SettingsID, SiteName: DefaultSiteName}}
}

// Settings returns the site settings, or the defaults when they are missing or unreadable.
func (m *SettingsManager) Settings(ctx context.Context) Settings {
	row, err := m.store.Settings(ctx)
	if err != nil {
		metrics.DegradedReads.WithLabelValues("settings").Inc()
		m.log.WarnContext(ctx, "settings unavailable, using defaults", "error", err)
		return DefaultSettings()
	} else if row == nil {
		return DefaultSettings()
	}

	return Settings{Settings: *row}
}

func (m *SettingsManager) Update(ctx context.Context, in SettingsInput, actor string) (*Settings, error) {
	in.SiteName = strings.TrimSpace(in.SiteName)
	in.Tagline = strings.TrimSpace(in.Tagline)
	in.ContactEmail = strings.TrimSpace(in.ContactEmail)
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	row := &db.Settings{
		SiteName:     in.SiteName,
		Tagline:      in.Tagline,
		ContactEmail: in.ContactEmail,
		LogoURL:      in.LogoURL,
		UpdatedAt:    m.now(),
		UpdatedBy:    actor,
	}
	if err := m.store.SaveSettings(ctx, row); err != nil {
		return nil, fmt.Errorf("db save settings: %w", err)
	}

	m.log.InfoContext(ctx, "settings updated", "actor", actor)

	return &Settings{Settings: *row}, nil
}
