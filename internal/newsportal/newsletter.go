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

type NewsletterStore interface {
	SubscriptionByEmail(ctx context.Context, email string) (*db.NewsletterSubscription, error)
	Subscriptions(ctx context.Context, activeOnly bool) ([]db.NewsletterSubscription, error)
	ActiveSubscriptionsCount(ctx context.Context) (int, error)
	SaveSubscription(ctx context.Context, subscription *db.NewsletterSubscription) error
}

type subscribeInput struct {
	Email string `json:"email" validate:"required,email,max=255"`
}

type NewsletterManager struct {
	store NewsletterStore
	log   *slog.Logger
	now   func() time.Time
}

func NewNewsletterManager(store NewsletterStore, log *slog.Logger) *NewsletterManager {
	return &NewsletterManager{
		store: store,
		log:   log,
		now:   time.Now,
	}
}

// Subscribe adds email to the list. Subscribing twice is not an error and reactivates
// a cancelled subscription.
func (m *NewsletterManager) Subscribe(ctx context.Context, email string) (*Subscription, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := validateStruct(subscribeInput{Email: email}); err != nil {
		return nil, err
	}

	row, err := m.store.SubscriptionByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("db get subscription: %w", err)
	}

	switch {
	case row == nil:
		row = &db.NewsletterSubscription{Email: email, Active: true, SubscribedAt: m.now()}
	case row.Active:
		return &Subscription{NewsletterSubscription: *row}, nil
	default:
		row.Active = true
		row.SubscribedAt = m.now()
		row.UnsubscribedAt = nil
	}

	err = m.store.SaveSubscription(ctx, row)
	if errors.Is(err, db.ErrUniqueViolation) {
		// subscribed concurrently
		existing, err := m.store.SubscriptionByEmail(ctx, email)
		if err != nil {
			return nil, fmt.Errorf("db get subscription: %w", err)
		} else if existing == nil {
			return nil, ErrNotFound
		}
		return &Subscription{NewsletterSubscription: *existing}, nil
	} else if err != nil {
		return nil, fmt.Errorf("db save subscription: %w", err)
	}

	m.log.InfoContext(ctx, "newsletter subscription added", "subscriptionId", row.ID)

	return &Subscription{NewsletterSubscription: *row}, nil
}

// Unsubscribe deactivates the subscription of email. Unsubscribing twice is not an error.
func (m *NewsletterManager) Unsubscribe(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	row, err := m.store.SubscriptionByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("db get subscription: %w", err)
	} else if row == nil {
		return ErrNotFound
	} else if !row.Active {
		return nil
	}

	now := m.now()
	row.Active = false
	row.UnsubscribedAt = &now

	if err := m.store.SaveSubscription(ctx, row); err != nil {
		return fmt.Errorf("db save subscription: %w", err)
	}

	m.log.InfoContext(ctx, "newsletter subscription cancelled", "subscriptionId", row.ID)

	return nil
}

func (m *NewsletterManager) Subscriptions(ctx context.Context, activeOnly bool) ([]Subscription, error) {
	list, err := m.store.Subscriptions(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("db get subscriptions: %w", err)
	}

	out := make([]Subscription, len(list))
	for i := range list {
		out[i] = Subscription{NewsletterSubscription: list[i]}
	}

	return out, nil
}

func (m *NewsletterManager) ActiveCount(ctx context.Context) (int, error) {
	count, err := m.store.ActiveSubscriptionsCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("db count subscriptions: %w", err)
	}

	return count, nil
}
