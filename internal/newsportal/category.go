package newsportal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/daniilsolovey/newsroom/internal/db"
)

type CategoryStore interface {
	Categories(ctx context.Context) ([]db.Category, error)
	ActiveCategories(ctx context.Context) ([]db.Category, error)
	CategoryByID(ctx context.Context, categoryID int) (*db.Category, error)
	CategorySlugExists(ctx context.Context, slug string, exceptID int) (bool, error)
	CreateCategory(ctx context.Context, category *db.Category) error
	UpdateCategory(ctx context.Context, category *db.Category) (bool, error)
	DeleteCategory(ctx context.Context, categoryID int) (bool, error)
	NewsCountByCategory(ctx context.Context, categoryID int) (int, error)
}

type CategoryInput struct {
	Title       string `json:"title" validate:"required,max=255"`
	Slug        string `json:"slug" validate:"required,slug"`
	Color       string `json:"color" validate:"required,hexcolor"`
	OrderNumber int    `json:"orderNumber"`
	StatusID    int    `json:"statusId" validate:"oneof=1 2 3"`
}

func (in *CategoryInput) normalize() {
	in.Title = strings.TrimSpace(in.Title)
	in.Slug = strings.TrimSpace(in.Slug)
	if in.Slug == "" {
		in.Slug = Slugify(in.Title)
	}
	in.Color = strings.ToLower(strings.TrimSpace(in.Color))
	if in.StatusID == 0 {
		in.StatusID = db.StatusPublished
	}
}

func (in CategoryInput) row() *db.Category {
	return &db.Category{
		Title:       in.Title,
		Slug:        in.Slug,
		Color:       in.Color,
		OrderNumber: in.OrderNumber,
		StatusID:    in.StatusID,
	}
}

type CategoryManager struct {
	store CategoryStore
	log   *slog.Logger
}

func NewCategoryManager(store CategoryStore, log *slog.Logger) *CategoryManager {
	return &CategoryManager{
		store: store,
		log:   log,
	}
}

// Categories returns all categories in display order, hidden ones included.
func (m *CategoryManager) Categories(ctx context.Context) ([]Category, error) {
	list, err := m.store.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get categories: %w", err)
	}

	return NewCategories(list), nil
}

func (m *CategoryManager) ActiveCategories(ctx context.Context) ([]Category, error) {
	list, err := m.store.ActiveCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get active categories: %w", err)
	}

	return NewCategories(list), nil
}

func (m *CategoryManager) ByID(ctx context.Context, categoryID int) (*Category, error) {
	row, err := m.store.CategoryByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("db get category by id: %w", err)
	} else if row == nil {
		return nil, nil
	}

	category := NewCategory(row)
	return &category, nil
}

func (m *CategoryManager) Create(ctx context.Context, in CategoryInput) (*Category, error) {
	in.normalize()
	if err := m.validate(ctx, in, 0); err != nil {
		return nil, err
	}

	row := in.row()
	if err := m.store.CreateCategory(ctx, row); errors.Is(err, db.ErrUniqueViolation) {
		return nil, fieldError("slug", ErrSlugTaken.Error(), ErrSlugTaken)
	} else if err != nil {
		return nil, fmt.Errorf("db create category: %w", err)
	}

	m.log.InfoContext(ctx, "category created", "categoryId", row.ID, "slug", row.Slug)

	category := NewCategory(row)
	return &category, nil
}

func (m *CategoryManager) Update(ctx context.Context, categoryID int, in CategoryInput) (*Category, error) {
	in.normalize()
	if err := m.validate(ctx, in, categoryID); err != nil {
		return nil, err
	}

	row := in.row()
	row.ID = categoryID

	ok, err := m.store.UpdateCategory(ctx, row)
	if errors.Is(err, db.ErrUniqueViolation) {
		return nil, fieldError("slug", ErrSlugTaken.Error(), ErrSlugTaken)
	} else if err != nil {
		return nil, fmt.Errorf("db update category: %w", err)
	} else if !ok {
		return nil, ErrNotFound
	}

	category := NewCategory(row)
	return &category, nil
}

// Delete removes a category that no news references.
func (m *CategoryManager) Delete(ctx context.Context, categoryID int) error {
	count, err := m.store.NewsCountByCategory(ctx, categoryID)
	if err != nil {
		return fmt.Errorf("db count category news: %w", err)
	} else if count > 0 {
		return fmt.Errorf("%w: category %d has %d news", ErrInUse, categoryID, count)
	}

	ok, err := m.store.DeleteCategory(ctx, categoryID)
	if err != nil {
		return fmt.Errorf("db delete category: %w", err)
	} else if !ok {
		return ErrNotFound
	}

	m.log.InfoContext(ctx, "category deleted", "categoryId", categoryID)

	return nil
}

func (m *CategoryManager) validate(ctx context.Context, in CategoryInput, exceptID int) error {
	if err := validateStruct(in); err != nil {
		return err
	}

	taken, err := m.store.CategorySlugExists(ctx, in.Slug, exceptID)
	if err != nil {
		return fmt.Errorf("db check category slug: %w", err)
	} else if taken {
		return fieldError("slug", ErrSlugTaken.Error(), ErrSlugTaken)
	}

	return nil
}
