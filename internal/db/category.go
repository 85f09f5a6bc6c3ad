package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
)

// Categories returns every category ordered by orderNumber.
func (r *Repository) Categories(ctx context.Context) ([]Category, error) {
	var categories []Category
	err := r.db.ModelContext(ctx, &categories).
		OrderExpr(`"orderNumber" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}

	return categories, nil
}

// ActiveCategories returns published categories ordered by orderNumber.
func (r *Repository) ActiveCategories(ctx context.Context) ([]Category, error) {
	var categories []Category
	err := r.db.ModelContext(ctx, &categories).
		Where(`"statusId" = ?`, StatusPublished).
		OrderExpr(`"orderNumber" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query active categories: %w", err)
	}

	return categories, nil
}

func (r *Repository) CategoryByID(ctx context.Context, categoryID int) (*Category, error) {
	category := &Category{}
	err := r.db.ModelContext(ctx, category).
		Where(`"categoryId" = ?`, categoryID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get category by id: %w", err)
	}

	return category, nil
}

func (r *Repository) CategorySlugExists(ctx context.Context, slug string, exceptID int) (bool, error) {
	exists, err := r.db.ModelContext(ctx, (*Category)(nil)).
		Where(`"slug" = ?`, slug).
		Where(`"categoryId" <> ?`, exceptID).
		Exists()
	if err != nil {
		return false, fmt.Errorf("failed to check category slug: %w", err)
	}

	return exists, nil
}

func (r *Repository) CreateCategory(ctx context.Context, category *Category) error {
	if _, err := r.db.ModelContext(ctx, category).Insert(); err != nil {
		return fmt.Errorf("failed to insert category: %w", mapWriteErr(err))
	}

	return nil
}

func (r *Repository) UpdateCategory(ctx context.Context, category *Category) (bool, error) {
	res, err := r.db.ModelContext(ctx, category).WherePK().Update()
	if err != nil {
		return false, fmt.Errorf("failed to update category: %w", mapWriteErr(err))
	}

	return res.RowsAffected() > 0, nil
}

func (r *Repository) DeleteCategory(ctx context.Context, categoryID int) (bool, error) {
	res, err := r.db.ModelContext(ctx, (*Category)(nil)).
		Where(`"categoryId" = ?`, categoryID).
		Delete()
	if err != nil {
		return false, fmt.Errorf("failed to delete category: %w", err)
	}

	return res.RowsAffected() > 0, nil
}
