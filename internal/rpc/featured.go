package rpc

import (
	"context"

	"github.com/vmkteam/zenrpc/v2"

	"github.com/daniilsolovey/newsroom/internal/newsportal"
)

// FeaturedService manages the featured news list.
type FeaturedService struct {
	zenrpc.Service
	featured *newsportal.FeaturedManager
}

func NewFeaturedService(featured *newsportal.FeaturedManager) *FeaturedService {
	return &FeaturedService{featured: featured}
}

// Get returns the stored featured ids and their version. A list that was never saved
// comes back empty with version 0.
//
//zenrpc:return featured list
//zenrpc:500 internal server error
func (s *FeaturedService) Get(ctx context.Context) (FeaturedConfig, error) {
	cfg, err := s.featured.Config(ctx)
	if err != nil {
		return FeaturedConfig{}, rpcError(err)
	}

	return NewFeaturedConfig(cfg), nil
}

// SetOrder replaces the featured list if it still has the given version. The editor is
// taken from the X-Actor-ID header.
//
//zenrpc:req new order
//zenrpc:return saved featured list
//zenrpc:400 invalid list
//zenrpc:401 actor required
//zenrpc:409 list was changed by someone else
//zenrpc:500 internal server error
func (s *FeaturedService) SetOrder(ctx context.Context, req SetOrderRequest) (FeaturedConfig, error) {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return FeaturedConfig{}, errActorRequired
	}

	ids := req.NewsIDs
	if ids == nil {
		ids = []int{}
	}

	cfg, err := s.featured.SetOrder(ctx, ids, actor, req.Version)
	if err != nil {
		return FeaturedConfig{}, rpcError(err)
	}

	return NewFeaturedConfig(cfg), nil
}

// Materialize returns the featured news in display order.
//
//zenrpc:return featured news
//zenrpc:500 internal server error
func (s *FeaturedService) Materialize(ctx context.Context) (FeaturedList, error) {
	list, err := s.featured.Materialize(ctx)
	if err != nil {
		return nil, rpcError(err)
	}

	return NewFeaturedList(list), nil
}

// EnsureDefault seeds the list with the latest news if it was never saved.
//
//zenrpc:return true if the list was created by this call
//zenrpc:401 actor required
//zenrpc:500 internal server error
func (s *FeaturedService) EnsureDefault(ctx context.Context) (bool, error) {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return false, errActorRequired
	}

	created, err := s.featured.EnsureDefault(ctx, actor)
	if err != nil {
		return false, rpcError(err)
	}

	return created, nil
}
