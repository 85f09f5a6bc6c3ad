package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pg/pg/v10"
)

const (
	StatusPublished = 1
	StatusDraft     = 2
	StatusArchived  = 3
)

// ErrUniqueViolation is returned when a write hits a unique constraint.
var ErrUniqueViolation = errors.New("unique constraint violation")

type Repository struct {
	db pg.DBI
}

func New(db pg.DBI) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Ping(ctx); err != nil {
			return err
		}
		return nil
	}

	return nil
}

func (r *Repository) Close() error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Close(); err != nil {
			return err
		}
		return nil
	}

	return nil
}

// InTx runs fn against a repository bound to a single transaction.
func (r *Repository) InTx(ctx context.Context, fn func(tx *Repository) error) error {
	return r.db.RunInTransaction(ctx, func(tx *pg.Tx) error {
		return fn(New(tx))
	})
}

func mapWriteErr(err error) error {
	var pgErr pg.Error
	if errors.As(err, &pgErr) && pgErr.Field('C') == "23505" {
		return fmt.Errorf("%w: %s", ErrUniqueViolation, pgErr.Field('n'))
	}
	return err
}

func (r *Repository) publishedNews(ctx context.Context, model interface{}) *pg.Query {
	return r.db.ModelContext(ctx, model).
		Relation("Category").
		Where(`"t"."statusId" = ?`, StatusPublished).
		Where(`"category"."statusId" = ?`, StatusPublished).
		Where(`"t"."publishedAt" < ?`, time.Now())
}

// News retrieves published news with optional filtering by tagID and categoryID, with pagination.
// Results are sorted by publishedAt DESC and include the category.
func (r *Repository) News(ctx context.Context, tagID, categoryID *int,
	page, pageSize int) ([]News, error) {

	if page < 1 || pageSize < 1 {
		return nil, fmt.Errorf(
			"page or pageSize must be greater than 0: page=%d, pageSize=%d",
			page, pageSize,
		)
	}

	offset := (page - 1) * pageSize

	var news []News
	query := r.publishedNews(ctx, &news)

	if categoryID != nil {
		query = query.Where(`"t"."categoryId" = ?`, *categoryID)
	}

	if tagID != nil {
		query = query.Where(`? = ANY("t"."tagIds")`, *tagID)
	}

	err := query.
		OrderExpr(`"t"."publishedAt" DESC`).
		Limit(pageSize).
		Offset(offset).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query news: %w", err)
	}

	return news, nil
}

func (r *Repository) NewsCount(ctx context.Context, tagID, categoryID *int) (int, error) {
	query := r.publishedNews(ctx, (*News)(nil))

	if categoryID != nil {
		query = query.Where(`"t"."categoryId" = ?`, *categoryID)
	}

	if tagID != nil {
		query = query.Where(`? = ANY("t"."tagIds")`, *tagID)
	}

	count, err := query.Count()
	if err != nil {
		return 0, fmt.Errorf("failed to get news count: %w", err)
	}

	return count, nil
}

// NewsByID returns a published news item, or nil if it is missing or not visible.
func (r *Repository) NewsByID(ctx context.Context, newsID int) (*News, error) {
	news := &News{}
	err := r.publishedNews(ctx, news).
		Where(`"t"."newsId" = ?`, newsID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get news by id: %w", err)
	}

	return news, nil
}

// NewsBySlug returns a published news item by its slug.
func (r *Repository) NewsBySlug(ctx context.Context, slug string) (*News, error) {
	news := &News{}
	err := r.publishedNews(ctx, news).
		Where(`"t"."slug" = ?`, slug).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get news by slug: %w", err)
	}

	return news, nil
}

// NewsByIDs returns the published subset of ids in no particular order.
func (r *Repository) NewsByIDs(ctx context.Context, ids []int) ([]News, error) {
	if len(ids) == 0 {
		return []News{}, nil
	}

	var news []News
	err := r.publishedNews(ctx, &news).
		Where(`"t"."newsId" IN (?)`, pg.In(ids)).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query news by ids: %w", err)
	}

	return news, nil
}

// AnyNewsByID returns a news item regardless of its status.
func (r *Repository) AnyNewsByID(ctx context.Context, newsID int) (*News, error) {
	news := &News{}
	err := r.db.ModelContext(ctx, news).
		Relation("Category").
		Where(`"t"."newsId" = ?`, newsID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get news by id: %w", err)
	}

	return news, nil
}

func (r *Repository) NewsSlugExists(ctx context.Context, slug string, exceptID int) (bool, error) {
	exists, err := r.db.ModelContext(ctx, (*News)(nil)).
		Where(`"t"."slug" = ?`, slug).
		Where(`"t"."newsId" <> ?`, exceptID).
		Exists()
	if err != nil {
		return false, fmt.Errorf("failed to check news slug: %w", err)
	}

	return exists, nil
}

func (r *Repository) CreateNews(ctx context.Context, news *News) error {
	if _, err := r.db.ModelContext(ctx, news).Insert(); err != nil {
		return fmt.Errorf("failed to insert news: %w", mapWriteErr(err))
	}

	return nil
}

// UpdateNews overwrites all editable columns. It reports false when the row is gone.
func (r *Repository) UpdateNews(ctx context.Context, news *News) (bool, error) {
	res, err := r.db.ModelContext(ctx, news).
		ExcludeColumn(Columns.News.ViewCount).
		WherePK().
		Update()
	if err != nil {
		return false, fmt.Errorf("failed to update news: %w", mapWriteErr(err))
	}

	return res.RowsAffected() > 0, nil
}

func (r *Repository) SetNewsStatus(ctx context.Context, newsID, statusID int) (bool, error) {
	res, err := r.db.ModelContext(ctx, (*News)(nil)).
		Set(`"statusId" = ?`, statusID).
		Set(`"updatedAt" = ?`, time.Now()).
		Where(`"newsId" = ?`, newsID).
		Update()
	if err != nil {
		return false, fmt.Errorf("failed to set news status: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

func (r *Repository) DeleteNews(ctx context.Context, newsID int) (bool, error) {
	res, err := r.db.ModelContext(ctx, (*News)(nil)).
		Where(`"newsId" = ?`, newsID).
		Delete()
	if err != nil {
		return false, fmt.Errorf("failed to delete news: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

// IncrementNewsViews bumps the view counter in place so concurrent readers never lose a hit.
func (r *Repository) IncrementNewsViews(ctx context.Context, newsID int) error {
	_, err := r.db.ModelContext(ctx, (*News)(nil)).
		Set(`"viewCount" = "viewCount" + 1`).
		Where(`"newsId" = ?`, newsID).
		Update()
	if err != nil {
		return fmt.Errorf("failed to increment news views: %w", err)
	}

	return nil
}

func (r *Repository) NewsCountByCategory(ctx context.Context, categoryID int) (int, error) {
	count, err := r.db.ModelContext(ctx, (*News)(nil)).
		Where(`"t"."categoryId" = ?`, categoryID).
		Count()
	if err != nil {
		return 0, fmt.Errorf("failed to count news by category: %w", err)
	}

	return count, nil
}
