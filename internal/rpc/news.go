package rpc

import (
	"context"

	"github.com/vmkteam/zenrpc/v2"

	"github.com/daniilsolovey/newsroom/internal/db"
	"github.com/daniilsolovey/newsroom/internal/newsportal"
)

//go:generate zenrpc

// NewsService provides RPC methods for news operations.
type NewsService struct {
	zenrpc.Service
	news       *newsportal.NewsManager
	categories *newsportal.CategoryManager
	tags       *newsportal.TagManager
}

func NewNewsService(news *newsportal.NewsManager, categories *newsportal.CategoryManager, tags *newsportal.TagManager) *NewsService {
	return &NewsService{news: news, categories: categories, tags: tags}
}

// List retrieves news with optional filtering by tagId and categoryId, with pagination.
// Returns NewsSummary (without content) sorted by publishedAt DESC.
//
//zenrpc:filter news filter
//zenrpc:return list of news summaries
//zenrpc:500 internal server error
func (s *NewsService) List(ctx context.Context, filter NewsFilter) (NewsSummaries, error) {
	news, err := s.news.NewsByFilter(ctx, filter.ToModel())
	if err != nil {
		return nil, rpcError(err)
	}

	return NewNewsSummaries(news), nil
}

// Count returns the count of news matching the optional tagId and categoryId filters.
//
//zenrpc:filter news filter
//zenrpc:return count of news items
//zenrpc:500 internal server error
func (s *NewsService) Count(ctx context.Context, filter NewsCountRequest) (int, error) {
	count, err := s.news.NewsCount(ctx, filter.TagID, filter.CategoryID)
	if err != nil {
		return 0, rpcError(err)
	}

	return count, nil
}

// ByID retrieves a single published news item by ID with full content, category and tags.
//
//zenrpc:req news id
//zenrpc:return news with full content
//zenrpc:400 id must be positive
//zenrpc:404 news not found
//zenrpc:500 internal server error
func (s *NewsService) ByID(ctx context.Context, req NewsByIDRequest) (*News, error) {
	if req.ID <= 0 {
		return nil, zenrpc.NewStringError(400, "id must be positive")
	}

	news, err := s.news.ByID(ctx, req.ID)
	if err != nil {
		return nil, rpcError(err)
	}

	if news == nil || news.StatusID != db.StatusPublished {
		return nil, zenrpc.NewStringError(404, "news not found")
	}

	result := NewNews(*news)
	return &result, nil
}

// Categories retrieves published categories ordered by orderNumber.
//
//zenrpc:return list of categories
//zenrpc:500 internal server error
func (s *NewsService) Categories(ctx context.Context) (Categories, error) {
	categories, err := s.categories.ActiveCategories(ctx)
	if err != nil {
		return nil, rpcError(err)
	}

	return NewCategories(categories), nil
}

// Tags retrieves all tags ordered by title.
//
//zenrpc:return list of tags
//zenrpc:500 internal server error
func (s *NewsService) Tags(ctx context.Context) (Tags, error) {
	tags, err := s.tags.Tags(ctx)
	if err != nil {
		return nil, rpcError(err)
	}

	return NewTags(tags), nil
}
