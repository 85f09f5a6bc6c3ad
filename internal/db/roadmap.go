package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
)

// RoadmapRequests returns requests, optionally limited to one status, most voted first.
func (r *Repository) RoadmapRequests(ctx context.Context, status string) ([]RoadmapRequest, error) {
	var requests []RoadmapRequest
	query := r.db.ModelContext(ctx, &requests)
	if status != "" {
		query = query.Where(`"status" = ?`, status)
	}

	err := query.OrderExpr(`"votes" DESC, "createdAt" ASC`).Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query roadmap requests: %w", err)
	}

	return requests, nil
}

func (r *Repository) RoadmapRequestByID(ctx context.Context, requestID int) (*RoadmapRequest, error) {
	request := &RoadmapRequest{}
	err := r.db.ModelContext(ctx, request).
		Where(`"requestId" = ?`, requestID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get roadmap request by id: %w", err)
	}

	return request, nil
}

// RoadmapRequestForUpdate locks the row for the rest of the transaction.
func (r *Repository) RoadmapRequestForUpdate(ctx context.Context, requestID int) (*RoadmapRequest, error) {
	request := &RoadmapRequest{}
	err := r.db.ModelContext(ctx, request).
		Where(`"requestId" = ?`, requestID).
		For("UPDATE").
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to lock roadmap request: %w", err)
	}

	return request, nil
}

func (r *Repository) CreateRoadmapRequest(ctx context.Context, request *RoadmapRequest) error {
	if _, err := r.db.ModelContext(ctx, request).Insert(); err != nil {
		return fmt.Errorf("failed to insert roadmap request: %w", err)
	}

	return nil
}

func (r *Repository) UpdateRoadmapStatus(ctx context.Context, request *RoadmapRequest) error {
	_, err := r.db.ModelContext(ctx, request).
		Column(Columns.RoadmapRequest.Status, Columns.RoadmapRequest.UpdatedAt).
		WherePK().
		Update()
	if err != nil {
		return fmt.Errorf("failed to update roadmap status: %w", err)
	}

	return nil
}

func (r *Repository) VoteRoadmapRequest(ctx context.Context, requestID int) (bool, error) {
	res, err := r.db.ModelContext(ctx, (*RoadmapRequest)(nil)).
		Set(`"votes" = "votes" + 1`).
		Where(`"requestId" = ?`, requestID).
		Update()
	if err != nil {
		return false, fmt.Errorf("failed to vote roadmap request: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

func (r *Repository) CreateRoadmapTimelineEntry(ctx context.Context, entry *RoadmapTimelineEntry) error {
	if _, err := r.db.ModelContext(ctx, entry).Insert(); err != nil {
		return fmt.Errorf("failed to insert roadmap timeline entry: %w", err)
	}

	return nil
}

func (r *Repository) RoadmapTimeline(ctx context.Context, requestID int) ([]RoadmapTimelineEntry, error) {
	var entries []RoadmapTimelineEntry
	err := r.db.ModelContext(ctx, &entries).
		Where(`"requestId" = ?`, requestID).
		OrderExpr(`"changedAt" ASC, "entryId" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query roadmap timeline: %w", err)
	}

	return entries, nil
}
