package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
)

func (r *Repository) Users(ctx context.Context) ([]User, error) {
	var users []User
	err := r.db.ModelContext(ctx, &users).
		OrderExpr(`"createdAt" DESC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}

	return users, nil
}

func (r *Repository) UserByID(ctx context.Context, userID int) (*User, error) {
	user := &User{}
	err := r.db.ModelContext(ctx, user).
		Where(`"userId" = ?`, userID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

func (r *Repository) UserEmailExists(ctx context.Context, email string, exceptID int) (bool, error) {
	exists, err := r.db.ModelContext(ctx, (*User)(nil)).
		Where(`lower("email") = lower(?)`, email).
		Where(`"userId" <> ?`, exceptID).
		Exists()
	if err != nil {
		return false, fmt.Errorf("failed to check user email: %w", err)
	}

	return exists, nil
}

func (r *Repository) CreateUser(ctx context.Context, user *User) error {
	if _, err := r.db.ModelContext(ctx, user).Insert(); err != nil {
		return fmt.Errorf("failed to insert user: %w", mapWriteErr(err))
	}

	return nil
}

func (r *Repository) UpdateUser(ctx context.Context, user *User) (bool, error) {
	res, err := r.db.ModelContext(ctx, user).
		ExcludeColumn(Columns.User.CreatedAt).
		WherePK().
		Update()
	if err != nil {
		return false, fmt.Errorf("failed to update user: %w", mapWriteErr(err))
	}

	return res.RowsAffected() > 0, nil
}
