package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
)

func (r *Repository) SubscriptionByEmail(ctx context.Context, email string) (*NewsletterSubscription, error) {
	subscription := &NewsletterSubscription{}
	err := r.db.ModelContext(ctx, subscription).
		Where(`lower("email") = lower(?)`, email).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get subscription by email: %w", err)
	}

	return subscription, nil
}

func (r *Repository) Subscriptions(ctx context.Context, activeOnly bool) ([]NewsletterSubscription, error) {
	var subscriptions []NewsletterSubscription
	query := r.db.ModelContext(ctx, &subscriptions)
	if activeOnly {
		query = query.Where(`"active" = TRUE`)
	}

	err := query.OrderExpr(`"subscribedAt" DESC`).Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query subscriptions: %w", err)
	}

	return subscriptions, nil
}

func (r *Repository) ActiveSubscriptionsCount(ctx context.Context) (int, error) {
	count, err := r.db.ModelContext(ctx, (*NewsletterSubscription)(nil)).
		Where(`"active" = TRUE`).
		Count()
	if err != nil {
		return 0, fmt.Errorf("failed to count subscriptions: %w", err)
	}

	return count, nil
}

func (r *Repository) SaveSubscription(ctx context.Context, subscription *NewsletterSubscription) error {
	if subscription.ID == 0 {
		if _, err := r.db.ModelContext(ctx, subscription).Insert(); err != nil {
			return fmt.Errorf("failed to insert subscription: %w", mapWriteErr(err))
		}
		return nil
	}

	if _, err := r.db.ModelContext(ctx, subscription).WherePK().Update(); err != nil {
		return fmt.Errorf("failed to update subscription: %w", err)
	}

	return nil
}
