package newsportal

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/daniilsolovey/newsroom/internal/db"
)

const (
	RoadmapProposed   = "proposed"
	RoadmapPlanned    = "planned"
	RoadmapInProgress = "in_progress"
	RoadmapDone       = "done"
	RoadmapRejected   = "rejected"
)

var roadmapTransitions = map[string][]string{
	RoadmapProposed:   {RoadmapPlanned, RoadmapRejected},
	RoadmapPlanned:    {RoadmapInProgress, RoadmapRejected},
	RoadmapInProgress: {RoadmapDone, RoadmapRejected},
	RoadmapDone:       nil,
	RoadmapRejected:   nil,
}

// CanTransition reports whether a request may move from one status to another.
func CanTransition(from, to string) bool {
	for _, next := range roadmapTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// RoadmapTx is the part of the store used inside a status change transaction.
type RoadmapTx interface {
	RoadmapRequestForUpdate(ctx context.Context, requestID int) (*db.RoadmapRequest, error)
	UpdateRoadmapStatus(ctx context.Context, request *db.RoadmapRequest) error
	CreateRoadmapTimelineEntry(ctx context.Context, entry *db.RoadmapTimelineEntry) error
}

type RoadmapStore interface {
	RoadmapRequests(ctx context.Context, status string) ([]db.RoadmapRequest, error)
	RoadmapRequestByID(ctx context.Context, requestID int) (*db.RoadmapRequest, error)
	CreateRoadmapRequest(ctx context.Context, request *db.RoadmapRequest) error
	VoteRoadmapRequest(ctx context.Context, requestID int) (bool, error)
	RoadmapTimeline(ctx context.Context, requestID int) ([]db.RoadmapTimelineEntry, error)
	InRoadmapTx(ctx context.Context, fn func(tx RoadmapTx) error) error
}

// RoadmapRepo runs roadmap transactions on the repository.
type RoadmapRepo struct {
	*db.Repository
}

func (r RoadmapRepo) InRoadmapTx(ctx context.Context, fn func(tx RoadmapTx) error) error {
	return r.InTx(ctx, func(tx *db.Repository) error {
		return fn(tx)
	})
}

type RoadmapInput struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description" validate:"max=5000"`
}

type RoadmapManager struct {
	store RoadmapStore
	log   *slog.Logger
	now   func() time.Time
}

func NewRoadmapManager(store RoadmapStore, log *slog.Logger) *RoadmapManager {
	return &RoadmapManager{
		store: store,
		log:   log,
		now:   time.Now,
	}
}

func (m *RoadmapManager) Create(ctx context.Context, in RoadmapInput, actor string) (*RoadmapRequest, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	row := &db.RoadmapRequest{
		Title:       in.Title,
		Description: in.Description,
		Status:      RoadmapProposed,
		CreatedBy:   actor,
		CreatedAt:   m.now(),
	}
	if err := m.store.CreateRoadmapRequest(ctx, row); err != nil {
		return nil, fmt.Errorf("db create roadmap request: %w", err)
	}

	return &RoadmapRequest{RoadmapRequest: *row}, nil
}

// Requests lists requests, most voted first. An empty status lists all of them.
func (m *RoadmapManager) Requests(ctx context.Context, status string) ([]RoadmapRequest, error) {
	if status != "" {
		if _, ok := roadmapTransitions[status]; !ok {
			return nil, fieldError("status", fmt.Sprintf("unknown status %q", status), nil)
		}
	}

	list, err := m.store.RoadmapRequests(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("db get roadmap requests: %w", err)
	}

	out := make([]RoadmapRequest, len(list))
	for i := range list {
		out[i] = RoadmapRequest{RoadmapRequest: list[i]}
	}

	return out, nil
}

func (m *RoadmapManager) ByID(ctx context.Context, requestID int) (*RoadmapRequest, error) {
	row, err := m.store.RoadmapRequestByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("db get roadmap request: %w", err)
	} else if row == nil {
		return nil, nil
	}

	return &RoadmapRequest{RoadmapRequest: *row}, nil
}

func (m *RoadmapManager) Vote(ctx context.Context, requestID int) error {
	ok, err := m.store.VoteRoadmapRequest(ctx, requestID)
	if err != nil {
		return fmt.Errorf("db vote roadmap request: %w", err)
	} else if !ok {
		return ErrNotFound
	}

	return nil
}

// ChangeStatus moves a request to status and records the change in its timeline.
func (m *RoadmapManager) ChangeStatus(ctx context.Context, requestID int, status, actor, note string) (*RoadmapRequest, error) {
	if _, ok := roadmapTransitions[status]; !ok {
		return nil, fieldError("status", fmt.Sprintf("unknown status %q", status), nil)
	}

	var updated *db.RoadmapRequest
	err := m.store.InRoadmapTx(ctx, func(tx RoadmapTx) error {
		row, err := tx.RoadmapRequestForUpdate(ctx, requestID)
		if err != nil {
			return fmt.Errorf("db lock roadmap request: %w", err)
		} else if row == nil {
			return ErrNotFound
		}

		from := row.Status
		if !CanTransition(from, status) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, status)
		}

		now := m.now()
		row.Status = status
		row.UpdatedAt = &now
		if err := tx.UpdateRoadmapStatus(ctx, row); err != nil {
			return fmt.Errorf("db update roadmap status: %w", err)
		}

		entry := &db.RoadmapTimelineEntry{
			RequestID:  requestID,
			FromStatus: from,
			ToStatus:   status,
			ChangedBy:  actor,
			Note:       strings.TrimSpace(note),
			ChangedAt:  now,
		}
		if err := tx.CreateRoadmapTimelineEntry(ctx, entry); err != nil {
			return fmt.Errorf("db create roadmap timeline entry: %w", err)
		}

		updated = row
		return nil
	})
	if err != nil {
		return nil, err
	}

	m.log.InfoContext(ctx, "roadmap status changed", "requestId", requestID, "status", status, "actor", actor)

	return &RoadmapRequest{RoadmapRequest: *updated}, nil
}

func (m *RoadmapManager) Timeline(ctx context.Context, requestID int) ([]RoadmapTimelineEntry, error) {
	list, err := m.store.RoadmapTimeline(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("db get roadmap timeline: %w", err)
	}

	out := make([]RoadmapTimelineEntry, len(list))
	for i := range list {
		out[i] = RoadmapTimelineEntry{RoadmapTimelineEntry: list[i]}
	}

	return out, nil
}
