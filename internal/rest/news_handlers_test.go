//go:build integration

package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniilsolovey/newsroom/internal/db"
	"github.com/daniilsolovey/newsroom/internal/newsportal"
)

var (
	testDB   *pg.DB
	testEcho *echo.Echo
)

func TestMain(m *testing.M) {
	var err error
	testDB, err = db.SetupTestDB()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to set up test database. Make sure PostgreSQL is running:")
		fmt.Fprintln(os.Stderr, "  docker-compose -f docker-compose.test.yml up -d")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	repo := db.New(testDB)
	handler := NewHandler(Managers{
		News:       newsportal.NewNewsManager(repo, nil, testLogger),
		Featured:   newsportal.NewFeaturedManager(repo, testLogger),
		Categories: newsportal.NewCategoryManager(repo, testLogger),
		Tags:       newsportal.NewTagManager(repo, testLogger),
	}, repo, testLogger)
	testEcho = handler.RegisterRoutes()

	code := m.Run()

	if err := testDB.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to close database connection: %v\n", err)
	}

	os.Exit(code)
}

func get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	testEcho.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestNewsHandler_News_Integration(t *testing.T) {
	tests := []struct {
		name  string
		path  string
		count int
	}{
		{name: "WithoutFilters", path: "/api/v1/news", count: 6},
		{name: "WithTagIdFilter", path: "/api/v1/news?tagId=1", count: 4},
		{name: "WithCategoryIdFilter", path: "/api/v1/news?categoryId=2", count: 2},
		{name: "HiddenCategory", path: "/api/v1/news?categoryId=5", count: 0},
		{name: "SecondPage", path: "/api/v1/news?page=2&pageSize=4", count: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, tt.path)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

			var summaries []NewsSummary
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summaries))
			assert.Len(t, summaries, tt.count)

			for _, s := range summaries {
				assert.NotZero(t, s.NewsID)
				assert.NotEmpty(t, s.Title)
				assert.Equal(t, s.CategoryID, s.Category.CategoryID)
			}
		})
	}

	t.Run("InvalidTagId", func(t *testing.T) {
		rec := get(t, "/api/v1/news?tagId=abc")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestNewsHandler_NewsCount_Integration(t *testing.T) {
	rec := get(t, "/api/v1/count")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "6\n", rec.Body.String())

	rec = get(t, "/api/v1/count?tagId=3&categoryId=4")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1\n", rec.Body.String())
}

func TestNewsHandler_NewsBySlug_Integration(t *testing.T) {
	rec := get(t, "/api/v1/news/ai-breakthrough")
	require.Equal(t, http.StatusOK, rec.Code)

	var news News
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &news))
	assert.Equal(t, "AI Breakthrough in Machine Learning", news.Title)
	assert.NotEmpty(t, news.Content)
	assert.Equal(t, "Technology", news.Category.Title)
	require.Len(t, news.Tags, 2)
	assert.Equal(t, "Important", news.Tags[0].Title)
	assert.Equal(t, "Hot", news.Tags[1].Title)

	for _, slug := range []string{"budget-draft", "film-festival", "missing"} {
		rec = get(t, "/api/v1/news/"+slug)
		assert.Equal(t, http.StatusNotFound, rec.Code, slug)
	}
}

func TestNewsHandler_Categories_Integration(t *testing.T) {
	rec := get(t, "/api/v1/categories")
	require.Equal(t, http.StatusOK, rec.Code)

	var categories []Category
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &categories))
	require.Len(t, categories, 4)
	assert.Equal(t, "Technology", categories[0].Title)
	assert.Equal(t, "Economy", categories[3].Title)
}

func TestNewsHandler_Tags_Integration(t *testing.T) {
	rec := get(t, "/api/v1/tags")
	require.Equal(t, http.StatusOK, rec.Code)

	var tags []Tag
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tags))
	require.Len(t, tags, 3)
	assert.Equal(t, "Analytics", tags[0].Title)
}
