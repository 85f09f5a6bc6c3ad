package db

import (
	"context"
	"fmt"

	"github.com/go-pg/pg/v10"
)

func (r *Repository) Tags(ctx context.Context) ([]Tag, error) {
	var tags []Tag
	err := r.db.ModelContext(ctx, &tags).
		Where(`"statusId" = ?`, StatusPublished).
		OrderExpr(`"title" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query tags: %w", err)
	}

	return tags, nil
}

func (r *Repository) TagsByIDs(ctx context.Context, tagIds []int) ([]Tag, error) {
	if len(tagIds) == 0 {
		return []Tag{}, nil
	}

	tags := []Tag{}
	err := r.db.ModelContext(ctx, &tags).
		Where(`"tagId" IN (?)`, pg.In(tagIds)).
		Where(`"statusId" = ?`, StatusPublished).
		OrderExpr(`"title" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query tags by ids: %w", err)
	}

	return tags, nil
}

func (r *Repository) TagSlugExists(ctx context.Context, slug string) (bool, error) {
	exists, err := r.db.ModelContext(ctx, (*Tag)(nil)).
		Where(`"slug" = ?`, slug).
		Exists()
	if err != nil {
		return false, fmt.Errorf("failed to check tag slug: %w", err)
	}

	return exists, nil
}

func (r *Repository) CreateTag(ctx context.Context, tag *Tag) error {
	if _, err := r.db.ModelContext(ctx, tag).Insert(); err != nil {
		return fmt.Errorf("failed to insert tag: %w", mapWriteErr(err))
	}

	return nil
}

func (r *Repository) DeleteTag(ctx context.Context, tagID int) (bool, error) {
	res, err := r.db.ModelContext(ctx, (*Tag)(nil)).
		Where(`"tagId" = ?`, tagID).
		Delete()
	if err != nil {
		return false, fmt.Errorf("failed to delete tag: %w", err)
	}

	return res.RowsAffected() > 0, nil
}
