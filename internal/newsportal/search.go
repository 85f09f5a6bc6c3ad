package newsportal

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/daniilsolovey/newsroom/internal/search"
)

const (
	defaultSearchLimit = 20
	maxSearchLimit     = 100
)

var ErrSearchDisabled = errors.New("search is not configured")

type Searcher interface {
	Search(q search.Query) ([]search.Hit, int, error)
}

type SearchResult struct {
	Hits  []search.Hit `json:"hits"`
	Total int          `json:"total"`
}

type SearchManager struct {
	searcher Searcher
}

// NewSearchManager returns a search manager. searcher may be nil when search is disabled.
func NewSearchManager(searcher Searcher) *SearchManager {
	return &SearchManager{searcher: searcher}
}

// Search runs a full-text query over published news.
func (m *SearchManager) Search(_ context.Context, q string, categoryID, limit int) (*SearchResult, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil, fieldError("q", "q is required", nil)
	}
	if m.searcher == nil {
		return nil, ErrSearchDisabled
	}

	if limit <= 0 {
		limit = defaultSearchLimit
	} else if limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	hits, total, err := m.searcher.Search(search.Query{Text: q, CategoryID: categoryID, Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("search news: %w", err)
	}

	return &SearchResult{Hits: hits, Total: total}, nil
}
