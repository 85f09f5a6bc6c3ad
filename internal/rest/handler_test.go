package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniilsolovey/newsroom/internal/analytics"
	"github.com/daniilsolovey/newsroom/internal/db"
	"github.com/daniilsolovey/newsroom/internal/newsportal"
)

var (
	testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
	baseTime   = time.Date(2024, 1, 14, 12, 0, 0, 0, time.UTC)
	errStore   = errors.New("connection refused")
)

// fakeNews serves published news from memory. Methods the handlers never reach stay unimplemented.
type fakeNews struct {
	newsportal.NewsStore

	items map[int]*db.News
}

func (f *fakeNews) NewsBySlug(_ context.Context, slug string) (*db.News, error) {
	for _, n := range f.items {
		if n.Slug == slug && n.StatusID == db.StatusPublished {
			cp := *n
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeNews) AnyNewsByID(_ context.Context, newsID int) (*db.News, error) {
	n, ok := f.items[newsID]
	if !ok {
		return nil, nil
	}
	cp := *n
	return &cp, nil
}

func (f *fakeNews) IncrementNewsViews(_ context.Context, newsID int) error {
	f.items[newsID].ViewCount++
	return nil
}

func (f *fakeNews) TagsByIDs(_ context.Context, _ []int) ([]db.Tag, error) {
	return []db.Tag{}, nil
}

type fakeFeatured struct {
	news   *fakeNews
	config *db.Featured
	err    error
}

func (f *fakeFeatured) Featured(_ context.Context) (*db.Featured, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.config == nil {
		return nil, nil
	}
	cp := *f.config
	return &cp, nil
}

func (f *fakeFeatured) SaveFeatured(_ context.Context, featured *db.Featured, expectedVersion int) (bool, error) {
	current := 0
	if f.config != nil {
		current = f.config.Version
	}
	if current != expectedVersion {
		return false, nil
	}

	featured.ID = 1
	featured.Version = expectedVersion + 1
	cp := *featured
	f.config = &cp
	return true, nil
}

func (f *fakeFeatured) NewsByIDs(_ context.Context, ids []int) ([]db.News, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []db.News
	for _, id := range ids {
		if n, ok := f.news.items[id]; ok && n.StatusID == db.StatusPublished {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (f *fakeFeatured) News(_ context.Context, _, _ *int, _, _ int) ([]db.News, error) {
	return nil, nil
}

type fakePinger struct {
	err error
}

func (p fakePinger) Ping(context.Context) error { return p.err }

type testEnv struct {
	e        *echo.Echo
	news     *fakeNews
	featured *fakeFeatured
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	category := &db.Category{ID: 1, Title: "Technology", Slug: "technology", Color: "#1e88e5", StatusID: db.StatusPublished}
	content := "Body"
	news := &fakeNews{items: map[int]*db.News{}}
	for i, title := range []string{"First", "Second", "Third"} {
		id := i + 1
		news.items[id] = &db.News{
			ID:          id,
			CategoryID:  1,
			Title:       title,
			Slug:        strings.ToLower(title),
			Content:     &content,
			Author:      "Jane",
			PublishedAt: baseTime.Add(-time.Duration(i) * time.Hour),
			TagIDs:      []int{},
			StatusID:    db.StatusPublished,
			Category:    category,
		}
	}
	news.items[4] = &db.News{ID: 4, CategoryID: 1, Title: "Draft", Slug: "draft", StatusID: db.StatusDraft, Category: category}

	featured := &fakeFeatured{news: news}

	h := NewHandler(Managers{
		News:     newsportal.NewNewsManager(news, nil, testLogger),
		Featured: newsportal.NewFeaturedManager(featured, testLogger),
		Search:   newsportal.NewSearchManager(nil),
	}, fakePinger{}, testLogger)

	return &testEnv{e: h.RegisterRoutes(), news: news, featured: featured}
}

func (env *testEnv) do(t *testing.T, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

func admin(ifMatch string) map[string]string {
	headers := map[string]string{ActorHeader: "editor-1"}
	if ifMatch != "" {
		headers["If-Match"] = ifMatch
	}
	return headers
}

func decodeConfig(t *testing.T, rec *httptest.ResponseRecorder) FeaturedConfig {
	t.Helper()

	var cfg FeaturedConfig
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cfg))
	return cfg
}

func TestAdminRequiresActor(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/v1/admin/featured", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), ActorHeader)
}

func TestFeaturedConfigNeverSaved(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/v1/admin/featured", "", admin(""))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `"0"`, rec.Header().Get("ETag"))

	cfg := decodeConfig(t, rec)
	assert.Equal(t, []int{}, cfg.NewsIDs)
	assert.Equal(t, 0, cfg.Version)
	assert.Nil(t, cfg.UpdatedAt)
}

func TestSetFeaturedRequiresIfMatch(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPut, "/api/v1/admin/featured", `{"newsIds":[1,2]}`, admin(""))
	assert.Equal(t, http.StatusPreconditionRequired, rec.Code)
	assert.Nil(t, env.featured.config)

	rec = env.do(t, http.MethodPut, "/api/v1/admin/featured", `{"newsIds":[1,2]}`, admin("v1"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSetFeaturedVersioning(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPut, "/api/v1/admin/featured", `{"newsIds":[2,1]}`, admin(`"0"`))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `"1"`, rec.Header().Get("ETag"))

	cfg := decodeConfig(t, rec)
	assert.Equal(t, []int{2, 1}, cfg.NewsIDs)
	assert.Equal(t, "editor-1", cfg.UpdatedBy)

	// stale version
	rec = env.do(t, http.MethodPut, "/api/v1/admin/featured", `{"newsIds":[3]}`, admin(`"0"`))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, []int{2, 1}, env.featured.config.NewsIDs)

	rec = env.do(t, http.MethodPut, "/api/v1/admin/featured", `{"newsIds":[3]}`, admin("*"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `"2"`, rec.Header().Get("ETag"))
}

func TestSetFeaturedRejectsInvalidLists(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name string
		body string
	}{
		{name: "too many", body: `{"newsIds":[1,2,3,4,5,6]}`},
		{name: "duplicate", body: `{"newsIds":[1,1]}`},
		{name: "non positive", body: `{"newsIds":[0]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, http.MethodPut, "/api/v1/admin/featured", tt.body, admin("*"))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Nil(t, env.featured.config)
		})
	}
}

func TestFeaturedItemEdits(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/v1/admin/featured/items", `{"newsId":1}`, admin(`"0"`))
	require.Equal(t, http.StatusOK, rec.Code)
	rec = env.do(t, http.MethodPost, "/api/v1/admin/featured/items", `{"newsId":2}`, admin(`"1"`))
	require.Equal(t, http.StatusOK, rec.Code)
	rec = env.do(t, http.MethodPost, "/api/v1/admin/featured/items", `{"newsId":3}`, admin(`"2"`))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []int{1, 2, 3}, decodeConfig(t, rec).NewsIDs)

	rec = env.do(t, http.MethodPost, "/api/v1/admin/featured/items", `{"newsId":3}`, admin("*"))
	assert.Equal(t, http.StatusBadRequest, rec.Code, "duplicate item")

	rec = env.do(t, http.MethodPost, "/api/v1/admin/featured/items", `{"newsId":99}`, admin("*"))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/v1/admin/featured/move", `{"from":3,"to":1}`, admin(`"3"`))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []int{3, 1, 2}, decodeConfig(t, rec).NewsIDs)

	rec = env.do(t, http.MethodDelete, "/api/v1/admin/featured/items/1", "", admin(`"1"`))
	assert.Equal(t, http.StatusConflict, rec.Code, "stale version")

	rec = env.do(t, http.MethodDelete, "/api/v1/admin/featured/items/1", "", admin(`"4"`))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []int{3, 2}, decodeConfig(t, rec).NewsIDs)
	assert.Equal(t, `"5"`, rec.Header().Get("ETag"))
}

func TestPublicFeatured(t *testing.T) {
	env := newTestEnv(t)
	env.featured.config = &db.Featured{ID: 1, NewsIDs: []int{3, 99, 4, 1}, Version: 1}

	rec := env.do(t, http.MethodGet, "/api/v1/featured", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var list []FeaturedNews
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 2)
	assert.Equal(t, 3, list[0].NewsID)
	assert.Equal(t, 1, list[0].Position)
	assert.Equal(t, 1, list[1].NewsID)
	assert.Equal(t, 2, list[1].Position)
	assert.Equal(t, "technology", list[1].Category.Slug)
}

func TestPublicFeaturedDegrades(t *testing.T) {
	env := newTestEnv(t)
	env.featured.err = errStore

	rec := env.do(t, http.MethodGet, "/api/v1/featured", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = env.do(t, http.MethodGet, "/api/v1/admin/featured/preview", "", admin(""))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal error"}`, rec.Body.String())
}

func TestEnsureFeaturedDefault(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/v1/admin/featured/default", "", admin(""))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"created":true}`, rec.Body.String())

	rec = env.do(t, http.MethodPost, "/api/v1/admin/featured/default", "", admin(""))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"created":false}`, rec.Body.String())
}

func TestNewsBySlug(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/v1/news/second", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var news News
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &news))
	assert.Equal(t, 2, news.NewsID)
	assert.Equal(t, "Body", news.Content)
	assert.Equal(t, 1, news.ViewCount)
	assert.Equal(t, []Tag{}, news.Tags)

	rec = env.do(t, http.MethodGet, "/api/v1/news/draft", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminNewsByID(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/v1/admin/news/4", "", admin(""))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"content":""`)

	rec = env.do(t, http.MethodGet, "/api/v1/admin/news/abc", "", admin(""))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/v1/admin/news/42", "", admin(""))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSearch(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/v1/search", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"q"`)

	rec = env.do(t, http.MethodGet, "/api/v1/search?q=go", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	h := NewHandler(Managers{}, fakePinger{err: errStore}, testLogger)
	rec = httptest.NewRecorder()
	h.RegisterRoutes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestFailStatus(t *testing.T) {
	h := NewHandler(Managers{}, nil, testLogger)

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "not found", err: newsportal.ErrNotFound, want: http.StatusNotFound},
		{name: "wrapped not found", err: errors.Join(errStore, newsportal.ErrNotFound), want: http.StatusNotFound},
		{name: "in use", err: newsportal.ErrInUse, want: http.StatusConflict},
		{name: "version conflict", err: newsportal.ErrVersionConflict, want: http.StatusConflict},
		{name: "invalid transition", err: newsportal.ErrInvalidTransition, want: http.StatusConflict},
		{name: "too many", err: newsportal.ErrTooManyItems, want: http.StatusBadRequest},
		{name: "duplicate", err: newsportal.ErrDuplicateItem, want: http.StatusBadRequest},
		{name: "invalid range", err: analytics.ErrInvalidRange, want: http.StatusBadRequest},
		{name: "validation", err: &newsportal.ValidationError{Errors: map[string]string{"title": "title is required"}}, want: http.StatusBadRequest},
		{name: "search disabled", err: newsportal.ErrSearchDisabled, want: http.StatusServiceUnavailable},
		{name: "other", err: errStore, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			require.NoError(t, h.fail(c, tt.err))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestIfMatchVersion(t *testing.T) {
	tests := []struct {
		header  string
		want    int
		wantErr bool
	}{
		{header: `"3"`, want: 3},
		{header: `W/"7"`, want: 7},
		{header: `12`, want: 12},
		{header: `*`, want: newsportal.AnyVersion},
		{header: ``, wantErr: true},
		{header: `"-2"`, wantErr: true},
		{header: `"abc"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPut, "/", nil)
			if tt.header != "" {
				req.Header.Set("If-Match", tt.header)
			}
			c := echo.New().NewContext(req, httptest.NewRecorder())

			got, err := ifMatchVersion(c)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatsRange(t *testing.T) {
	now := time.Date(2024, 3, 31, 15, 0, 0, 0, time.UTC)

	from, to, err := statsRange(BannerStatsRequest{}, now)
	require.NoError(t, err)
	assert.Equal(t, now, to)
	assert.Equal(t, "2024-03-02", from.Format(statsDayLayout))

	from, to, err = statsRange(BannerStatsRequest{From: "2024-01-01", To: "2024-01-07"}, now)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", from.Format(statsDayLayout))
	assert.Equal(t, "2024-01-07", to.Format(statsDayLayout))

	_, _, err = statsRange(BannerStatsRequest{From: "01/01/2024"}, now)
	assert.Error(t, err)
}
