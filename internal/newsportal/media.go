package newsportal

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/daniilsolovey/newsroom/internal/db"
)

const (
	// MaxUploadSize is the largest accepted media file.
	MaxUploadSize = 10 << 20

	mediaPrefix = "media/"

	// orphanGrace protects objects whose media row may still be in flight.
	orphanGrace = time.Hour
	orphanBatch = 500
)

var allowedContentTypes = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"image/webp":      ".webp",
	"image/gif":       ".gif",
	"image/svg+xml":   ".svg",
	"application/pdf": ".pdf",
}

type MediaStore interface {
	Media(ctx context.Context, page, pageSize int) ([]db.Media, error)
	MediaByID(ctx context.Context, mediaID int) (*db.Media, error)
	MediaObjectKeys(ctx context.Context, keys []string) ([]string, error)
	CreateMedia(ctx context.Context, media *db.Media) error
	DeleteMedia(ctx context.Context, mediaID int) (bool, error)
}

// ObjectStore holds the uploaded file bodies.
type ObjectStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (url string, stored bool, err error)
	Remove(ctx context.Context, key string) error
	Keys(ctx context.Context, prefix string, before time.Time) ([]string, error)
}

type UploadInput struct {
	FileName    string `json:"fileName" validate:"required,max=255"`
	ContentType string `json:"contentType" validate:"required"`
	Data        []byte `json:"-"`
}

type MediaManager struct {
	store   MediaStore
	objects ObjectStore
	log     *slog.Logger
	now     func() time.Time
}

func NewMediaManager(store MediaStore, objects ObjectStore, log *slog.Logger) *MediaManager {
	return &MediaManager{
		store:   store,
		objects: objects,
		log:     log,
		now:     time.Now,
	}
}

// Upload stores the file and records it in the media library. If the object store keeps
// failing the record points at the placeholder image and has an empty object key.
func (m *MediaManager) Upload(ctx context.Context, in UploadInput, actor string) (*Media, error) {
	in.FileName = strings.TrimSpace(in.FileName)
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	ext, ok := allowedContentTypes[in.ContentType]
	if !ok {
		return nil, fieldError("contentType", fmt.Sprintf("content type %q is not allowed", in.ContentType), nil)
	}
	if len(in.Data) == 0 {
		return nil, fieldError("file", "file is empty", nil)
	}
	if len(in.Data) > MaxUploadSize {
		return nil, fieldError("file", fmt.Sprintf("file is larger than %d bytes", MaxUploadSize), nil)
	}

	now := m.now()
	key := path.Join(mediaPrefix, now.UTC().Format("2006/01"), uuid.NewString()+ext)

	url, stored, err := m.objects.Put(ctx, key, in.Data, in.ContentType)
	if err != nil {
		return nil, fmt.Errorf("store media object: %w", err)
	}
	if !stored {
		key = ""
	}

	row := &db.Media{
		ObjectKey:   key,
		URL:         url,
		FileName:    in.FileName,
		ContentType: in.ContentType,
		Size:        int64(len(in.Data)),
		UploadedBy:  actor,
		CreatedAt:   now,
	}
	if err := m.store.CreateMedia(ctx, row); err != nil {
		return nil, fmt.Errorf("db create media: %w", err)
	}

	m.log.InfoContext(ctx, "media uploaded", "mediaId", row.ID, "key", key, "stored", stored, "actor", actor)

	return &Media{Media: *row}, nil
}

func (m *MediaManager) List(ctx context.Context, page, pageSize int) ([]Media, error) {
	f := NewsFilter{Page: page, PageSize: pageSize}
	f.normalize()

	list, err := m.store.Media(ctx, f.Page, f.PageSize)
	if err != nil {
		return nil, fmt.Errorf("db get media: %w", err)
	}

	out := make([]Media, len(list))
	for i := range list {
		out[i] = Media{Media: list[i]}
	}

	return out, nil
}

// Delete removes the media record and then its object. A failed object removal is left
// for CleanupOrphans.
func (m *MediaManager) Delete(ctx context.Context, mediaID int) error {
	row, err := m.store.MediaByID(ctx, mediaID)
	if err != nil {
		return fmt.Errorf("db get media by id: %w", err)
	} else if row == nil {
		return ErrNotFound
	}

	ok, err := m.store.DeleteMedia(ctx, mediaID)
	if err != nil {
		return fmt.Errorf("db delete media: %w", err)
	} else if !ok {
		return ErrNotFound
	}

	if row.ObjectKey != "" {
		if err := m.objects.Remove(ctx, row.ObjectKey); err != nil {
			m.log.WarnContext(ctx, "failed to remove media object", "mediaId", mediaID, "key", row.ObjectKey, "error", err)
		}
	}

	return nil
}

// CleanupOrphans removes stored objects that no media record references and reports
// how many were removed. Objects younger than an hour are kept.
func (m *MediaManager) CleanupOrphans(ctx context.Context) (int, error) {
	keys, err := m.objects.Keys(ctx, mediaPrefix, m.now().Add(-orphanGrace))
	if err != nil {
		return 0, fmt.Errorf("list media objects: %w", err)
	}

	removed := 0
	for chunk := range slices.Chunk(keys, orphanBatch) {
		referenced, err := m.store.MediaObjectKeys(ctx, chunk)
		if err != nil {
			return removed, fmt.Errorf("db get media object keys: %w", err)
		}

		for _, key := range chunk {
			if slices.Contains(referenced, key) {
				continue
			}
			if err := m.objects.Remove(ctx, key); err != nil {
				return removed, err
			}
			removed++
		}
	}

	m.log.InfoContext(ctx, "media orphans removed", "count", removed, "scanned", len(keys))

	return removed, nil
}
