package search

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	meili "github.com/meilisearch/meilisearch-go"
)

const idxNews = "newsroom_news"

// Meili implements news indexing and search via Meilisearch.
type Meili struct {
	client  meili.ServiceManager
	log     *slog.Logger
	healthy atomic.Bool
}

// NewMeili creates a Meilisearch client and configures the news index.
// An unreachable server is logged and the client stays usable once it recovers.
func NewMeili(url, apiKey string, log *slog.Logger) *Meili {
	m := &Meili{
		client: meili.New(url, meili.WithAPIKey(apiKey)),
		log:    log,
	}

	if _, err := m.client.Health(); err != nil {
		log.Warn("meilisearch unavailable", "url", url, "error", err)
		return m
	}

	m.healthy.Store(true)
	m.configureIndex()

	return m
}

func (m *Meili) configureIndex() {
	if _, err := m.client.CreateIndex(&meili.IndexConfig{
		Uid:        idxNews,
		PrimaryKey: "id",
	}); err != nil {
		m.log.Debug("create news index (may already exist)", "error", err)
	}

	index := m.client.Index(idxNews)
	filterable := []interface{}{"categoryId"}
	if _, err := index.UpdateFilterableAttributes(&filterable); err != nil {
		m.log.Warn("update filterable attributes", "error", err)
	}
	searchable := []string{"title", "content", "author"}
	if _, err := index.UpdateSearchableAttributes(&searchable); err != nil {
		m.log.Warn("update searchable attributes", "error", err)
	}
	sortable := []string{"publishedAt"}
	if _, err := index.UpdateSortableAttributes(&sortable); err != nil {
		m.log.Warn("update sortable attributes", "error", err)
	}
}

// Healthy reports whether Meilisearch answered the last request.
func (m *Meili) Healthy() bool {
	return m.healthy.Load()
}

// IndexNews adds or replaces a news document.
func (m *Meili) IndexNews(doc NewsDocument) error {
	_, err := m.client.Index(idxNews).AddDocuments([]NewsDocument{doc}, nil)
	m.healthy.Store(err == nil)
	if err != nil {
		return fmt.Errorf("index news %d: %w", doc.ID, err)
	}
	return nil
}

// DeleteNews removes a news document from the index.
func (m *Meili) DeleteNews(id int) error {
	_, err := m.client.Index(idxNews).DeleteDocument(strconv.Itoa(id), nil)
	m.healthy.Store(err == nil)
	if err != nil {
		return fmt.Errorf("delete news %d from index: %w", id, err)
	}
	return nil
}

// Search runs a full-text query over published news.
func (m *Meili) Search(q Query) ([]Hit, int, error) {
	limit := int64(q.Limit)
	if limit <= 0 {
		limit = 20
	}

	req := &meili.SearchRequest{
		Limit:                 limit,
		Offset:                int64(q.Offset),
		AttributesToHighlight: []string{"title", "content"},
		AttributesToCrop:      []string{"content"},
		CropLength:            30,
		HighlightPreTag:       "<mark>",
		HighlightPostTag:      "</mark>",
	}
	if q.CategoryID > 0 {
		req.Filter = fmt.Sprintf("categoryId = %d", q.CategoryID)
	}

	resp, err := m.client.Index(idxNews).Search(q.Text, req)
	if err != nil {
		m.healthy.Store(false)
		return nil, 0, fmt.Errorf("meilisearch search: %w", err)
	}
	m.healthy.Store(true)

	hits := make([]Hit, 0, len(resp.Hits))
	for _, hit := range resp.Hits {
		hits = append(hits, hitToResult(hit))
	}

	return hits, int(resp.EstimatedTotalHits), nil
}

func hitToResult(hit meili.Hit) Hit {
	h := Hit{
		ID:         decodeInt(hit, "id"),
		Title:      firstNonBlank(decodeFormattedString(hit, "title"), decodeString(hit, "title")),
		Slug:       decodeString(hit, "slug"),
		Snippet:    decodeFormattedString(hit, "content"),
		CategoryID: decodeInt(hit, "categoryId"),
	}
	if ts := decodeInt(hit, "publishedAt"); ts > 0 {
		h.PublishedAt = time.Unix(int64(ts), 0).UTC()
	}
	return h
}

func decodeString(hit meili.Hit, key string) string {
	raw, ok := hit[key]
	if !ok {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return ""
}

func decodeInt(hit meili.Hit, key string) int {
	raw, ok := hit[key]
	if !ok {
		return 0
	}

	var v int
	if err := json.Unmarshal(raw, &v); err == nil {
		return v
	}
	return 0
}

func decodeFormattedString(hit meili.Hit, key string) string {
	raw, ok := hit["_formatted"]
	if !ok {
		return ""
	}

	var formatted map[string]json.RawMessage
	if err := json.Unmarshal(raw, &formatted); err != nil {
		return ""
	}

	var s string
	if err := json.Unmarshal(formatted[key], &s); err != nil {
		return ""
	}
	return strings.TrimSpace(s)
}

func firstNonBlank(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}
