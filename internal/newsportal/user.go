package newsportal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/daniilsolovey/newsroom/internal/db"
)

const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

type UserStore interface {
	Users(ctx context.Context) ([]db.User, error)
	UserByID(ctx context.Context, userID int) (*db.User, error)
	UserEmailExists(ctx context.Context, email string, exceptID int) (bool, error)
	CreateUser(ctx context.Context, user *db.User) error
	UpdateUser(ctx context.Context, user *db.User) (bool, error)
}

type UserInput struct {
	Email       string `json:"email" validate:"required,email,max=255"`
	DisplayName string `json:"displayName" validate:"required,max=255"`
	Role        string `json:"role" validate:"required,oneof=admin editor"`
}

func (in *UserInput) normalize() {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.DisplayName = strings.TrimSpace(in.DisplayName)
}

type UserManager struct {
	store UserStore
	log   *slog.Logger
	now   func() time.Time
}

func NewUserManager(store UserStore, log *slog.Logger) *UserManager {
	return &UserManager{
		store: store,
		log:   log,
		now:   time.Now,
	}
}

func (m *UserManager) Users(ctx context.Context) ([]User, error) {
	list, err := m.store.Users(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get users: %w", err)
	}

	out := make([]User, len(list))
	for i := range list {
		out[i] = User{User: list[i]}
	}

	return out, nil
}

func (m *UserManager) ByID(ctx context.Context, userID int) (*User, error) {
	row, err := m.store.UserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("db get user by id: %w", err)
	} else if row == nil {
		return nil, nil
	}

	return &User{User: *row}, nil
}

func (m *UserManager) Create(ctx context.Context, in UserInput) (*User, error) {
	in.normalize()
	if err := m.validate(ctx, in, 0); err != nil {
		return nil, err
	}

	row := &db.User{
		Email:       in.Email,
		DisplayName: in.DisplayName,
		Role:        in.Role,
		StatusID:    db.StatusPublished,
		CreatedAt:   m.now(),
	}
	if err := m.store.CreateUser(ctx, row); errors.Is(err, db.ErrUniqueViolation) {
		return nil, fieldError("email", ErrEmailTaken.Error(), ErrEmailTaken)
	} else if err != nil {
		return nil, fmt.Errorf("db create user: %w", err)
	}

	m.log.InfoContext(ctx, "user created", "userId", row.ID, "role", row.Role)

	return &User{User: *row}, nil
}

func (m *UserManager) Update(ctx context.Context, userID int, in UserInput) (*User, error) {
	in.normalize()
	if err := m.validate(ctx, in, userID); err != nil {
		return nil, err
	}

	row, err := m.store.UserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("db get user by id: %w", err)
	} else if row == nil {
		return nil, ErrNotFound
	}

	row.Email = in.Email
	row.DisplayName = in.DisplayName
	row.Role = in.Role

	return m.save(ctx, row)
}

// Deactivate keeps the user record but blocks the account.
func (m *UserManager) Deactivate(ctx context.Context, userID int) (*User, error) {
	row, err := m.store.UserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("db get user by id: %w", err)
	} else if row == nil {
		return nil, ErrNotFound
	}

	row.StatusID = db.StatusArchived

	user, err := m.save(ctx, row)
	if err != nil {
		return nil, err
	}

	m.log.InfoContext(ctx, "user deactivated", "userId", userID)

	return user, nil
}

func (m *UserManager) save(ctx context.Context, row *db.User) (*User, error) {
	ok, err := m.store.UpdateUser(ctx, row)
	if errors.Is(err, db.ErrUniqueViolation) {
		return nil, fieldError("email", ErrEmailTaken.Error(), ErrEmailTaken)
	} else if err != nil {
		return nil, fmt.Errorf("db update user: %w", err)
	} else if !ok {
		return nil, ErrNotFound
	}

	return &User{User: *row}, nil
}

func (m *UserManager) validate(ctx context.Context, in UserInput, exceptID int) error {
	if err := validateStruct(in); err != nil {
		return err
	}

	taken, err := m.store.UserEmailExists(ctx, in.Email, exceptID)
	if err != nil {
		return fmt.Errorf("db check user email: %w", err)
	} else if taken {
		return fieldError("email", ErrEmailTaken.Error(), ErrEmailTaken)
	}

	return nil
}
