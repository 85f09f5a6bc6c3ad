package newsportal

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/daniilsolovey/newsroom/internal/analytics"
	"github.com/daniilsolovey/newsroom/internal/db"
	"github.com/daniilsolovey/newsroom/internal/search"
)

var (
	baseTime   = time.Date(2024, 1, 14, 12, 0, 0, 0, time.UTC)
	testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
	errStore   = errors.New("store unavailable")
)

// memStore is an in-memory store with the repository semantics the managers rely on.
type memStore struct {
	mu sync.Mutex

	nextID     int
	categories map[int]db.Category
	tags       map[int]db.Tag
	news       map[int]db.News
	featured   *db.Featured
	banners    map[int]db.Banner
	media      map[int]db.Media
	users      map[int]db.User
	settings   *db.Settings
	requests   map[int]db.RoadmapRequest
	timeline   []db.RoadmapTimelineEntry
	subs       map[int]db.NewsletterSubscription

	// err is returned by every read when set.
	err error
	// failTimeline makes timeline writes fail to exercise rollback.
	failTimeline  bool
	featuredSaves int
}

func newMemStore() *memStore {
	return &memStore{
		categories: map[int]db.Category{},
		tags:       map[int]db.Tag{},
		news:       map[int]db.News{},
		banners:    map[int]db.Banner{},
		media:      map[int]db.Media{},
		users:      map[int]db.User{},
		requests:   map[int]db.RoadmapRequest{},
		subs:       map[int]db.NewsletterSubscription{},
	}
}

func (s *memStore) id() int {
	s.nextID++
	return s.nextID
}

// seed adds two categories (Culture hidden), two tags and n published news.
func (s *memStore) seed(n int) []int {
	s.categories[1] = db.Category{ID: 1, Title: "Technology", Slug: "technology", Color: "#1e88e5", OrderNumber: 1, StatusID: db.StatusPublished}
	s.categories[2] = db.Category{ID: 2, Title: "Culture", Slug: "culture", Color: "#8e24aa", OrderNumber: 2, StatusID: db.StatusDraft}
	s.tags[1] = db.Tag{ID: 1, Title: "Hot", Slug: "hot", StatusID: db.StatusPublished}
	s.tags[2] = db.Tag{ID: 2, Title: "Hidden", Slug: "hidden", StatusID: db.StatusDraft}
	s.nextID = 100

	ids := make([]int, 0, n)
	for i := 0; i < n; i++ {
		id := s.id()
		s.news[id] = db.News{
			ID:          id,
			CategoryID:  1,
			Title:       "News " + string(rune('A'+i)),
			Slug:        "news-" + strings.ToLower(string(rune('a'+i))),
			Author:      "John Doe",
			PublishedAt: baseTime.Add(-time.Duration(i) * time.Hour),
			TagIDs:      []int{1, 2},
			StatusID:    db.StatusPublished,
		}
		ids = append(ids, id)
	}

	return ids
}

func (s *memStore) visible(n db.News) bool {
	c, ok := s.categories[n.CategoryID]
	return ok && n.StatusID == db.StatusPublished && c.StatusID == db.StatusPublished && n.PublishedAt.Before(time.Now())
}

func (s *memStore) withCategory(n db.News) db.News {
	if c, ok := s.categories[n.CategoryID]; ok {
		n.Category = &c
	}
	n.TagIDs = slices.Clone(n.TagIDs)
	return n
}

func (s *memStore) filtered(tagID, categoryID *int) []db.News {
	var out []db.News
	for _, n := range s.news {
		if !s.visible(n) {
			continue
		}
		if categoryID != nil && n.CategoryID != *categoryID {
			continue
		}
		if tagID != nil && !slices.Contains(n.TagIDs, *tagID) {
			continue
		}
		out = append(out, s.withCategory(n))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PublishedAt.After(out[j].PublishedAt) })
	return out
}

// news

func (s *memStore) News(_ context.Context, tagID, categoryID *int, page, pageSize int) ([]db.News, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}

	all := s.filtered(tagID, categoryID)
	from := (page - 1) * pageSize
	if from >= len(all) {
		return []db.News{}, nil
	}
	return all[from:min(from+pageSize, len(all))], nil
}

func (s *memStore) NewsCount(_ context.Context, tagID, categoryID *int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return 0, s.err
	}
	return len(s.filtered(tagID, categoryID)), nil
}

func (s *memStore) NewsBySlug(_ context.Context, slug string) (*db.News, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	for _, n := range s.news {
		if n.Slug == slug && s.visible(n) {
			n = s.withCategory(n)
			return &n, nil
		}
	}
	return nil, nil
}

func (s *memStore) NewsByIDs(_ context.Context, ids []int) ([]db.News, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	out := []db.News{}
	for _, id := range ids {
		if n, ok := s.news[id]; ok && s.visible(n) {
			out = append(out, s.withCategory(n))
		}
	}
	// the repository gives no ordering guarantee
	slices.Reverse(out)
	return out, nil
}

func (s *memStore) AnyNewsByID(_ context.Context, id int) (*db.News, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	n, ok := s.news[id]
	if !ok {
		return nil, nil
	}
	n = s.withCategory(n)
	return &n, nil
}

func (s *memStore) NewsSlugExists(_ context.Context, slug string, exceptID int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range s.news {
		if n.Slug == slug && n.ID != exceptID {
			return true, nil
		}
	}
	return false, nil
}

func (s *memStore) CreateNews(_ context.Context, n *db.News) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n.ID = s.id()
	s.news[n.ID] = *n
	return nil
}

func (s *memStore) UpdateNews(_ context.Context, n *db.News) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	old, ok := s.news[n.ID]
	if !ok {
		return false, nil
	}
	row := *n
	row.ViewCount = old.ViewCount
	row.Category = nil
	s.news[n.ID] = row
	return true, nil
}

func (s *memStore) SetNewsStatus(_ context.Context, id, statusID int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.news[id]
	if !ok {
		return false, nil
	}
	n.StatusID = statusID
	s.news[id] = n
	return true, nil
}

func (s *memStore) DeleteNews(_ context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.news[id]; !ok {
		return false, nil
	}
	delete(s.news, id)
	return true, nil
}

func (s *memStore) IncrementNewsViews(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.news[id]
	n.ViewCount++
	s.news[id] = n
	return nil
}

func (s *memStore) NewsCountByCategory(_ context.Context, categoryID int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, n := range s.news {
		if n.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

// categories

func (s *memStore) sortedCategories(activeOnly bool) []db.Category {
	var out []db.Category
	for _, c := range s.categories {
		if !activeOnly || c.StatusID == db.StatusPublished {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OrderNumber < out[j].OrderNumber })
	return out
}

func (s *memStore) Categories(_ context.Context) ([]db.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return s.sortedCategories(false), nil
}

func (s *memStore) ActiveCategories(_ context.Context) ([]db.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return s.sortedCategories(true), nil
}

func (s *memStore) CategoryByID(_ context.Context, id int) (*db.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	c, ok := s.categories[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (s *memStore) CategorySlugExists(_ context.Context, slug string, exceptID int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.categories {
		if c.Slug == slug && c.ID != exceptID {
			return true, nil
		}
	}
	return false, nil
}

func (s *memStore) CreateCategory(_ context.Context, c *db.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = s.id()
	s.categories[c.ID] = *c
	return nil
}

func (s *memStore) UpdateCategory(_ context.Context, c *db.Category) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.categories[c.ID]; !ok {
		return false, nil
	}
	s.categories[c.ID] = *c
	return true, nil
}

func (s *memStore) DeleteCategory(_ context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.categories[id]; !ok {
		return false, nil
	}
	delete(s.categories, id)
	return true, nil
}

// tags

func (s *memStore) Tags(_ context.Context) ([]db.Tag, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	var out []db.Tag
	for _, t := range s.tags {
		if t.StatusID == db.StatusPublished {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

func (s *memStore) TagsByIDs(_ context.Context, ids []int) ([]db.Tag, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	out := []db.Tag{}
	for _, id := range ids {
		if t, ok := s.tags[id]; ok && t.StatusID == db.StatusPublished {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *memStore) TagSlugExists(_ context.Context, slug string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tags {
		if t.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (s *memStore) CreateTag(_ context.Context, t *db.Tag) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t.ID = s.id()
	s.tags[t.ID] = *t
	return nil
}

func (s *memStore) DeleteTag(_ context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tags[id]; !ok {
		return false, nil
	}
	delete(s.tags, id)
	return true, nil
}

// featured

func (s *memStore) Featured(_ context.Context) (*db.Featured, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	if s.featured == nil {
		return nil, nil
	}
	f := *s.featured
	f.NewsIDs = slices.Clone(f.NewsIDs)
	return &f, nil
}

func (s *memStore) SaveFeatured(_ context.Context, f *db.Featured, expectedVersion int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return false, s.err
	}

	current := 0
	if s.featured != nil {
		current = s.featured.Version
	}
	if current != expectedVersion {
		return false, nil
	}

	f.ID = db.FeaturedID
	f.Version = expectedVersion + 1
	saved := *f
	saved.NewsIDs = slices.Clone(f.NewsIDs)
	s.featured = &saved
	s.featuredSaves++

	return true, nil
}

// banners

func (s *memStore) Banners(_ context.Context) ([]db.Banner, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	var out []db.Banner
	for _, b := range s.banners {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *memStore) ActiveBanners(_ context.Context, placement string, now time.Time) ([]db.Banner, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	var out []db.Banner
	for _, b := range s.banners {
		if (placement == "" || b.Placement == placement) && (Banner{Banner: b}).Active(now) {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OrderNumber < out[j].OrderNumber })
	return out, nil
}

func (s *memStore) BannerByID(_ context.Context, id int) (*db.Banner, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	b, ok := s.banners[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (s *memStore) CreateBanner(_ context.Context, b *db.Banner) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b.ID = s.id()
	s.banners[b.ID] = *b
	return nil
}

func (s *memStore) UpdateBanner(_ context.Context, b *db.Banner) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	old, ok := s.banners[b.ID]
	if !ok {
		return false, nil
	}
	row := *b
	row.CreatedAt = old.CreatedAt
	s.banners[b.ID] = row
	return true, nil
}

func (s *memStore) DeleteBanner(_ context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.banners[id]; !ok {
		return false, nil
	}
	delete(s.banners, id)
	return true, nil
}

// media

func (s *memStore) Media(_ context.Context, page, pageSize int) ([]db.Media, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	var out []db.Media
	for _, m := range s.media {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	from := (page - 1) * pageSize
	if from >= len(out) {
		return []db.Media{}, nil
	}
	return out[from:min(from+pageSize, len(out))], nil
}

func (s *memStore) MediaByID(_ context.Context, id int) (*db.Media, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.media[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (s *memStore) MediaObjectKeys(_ context.Context, keys []string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []string{}
	for _, m := range s.media {
		if slices.Contains(keys, m.ObjectKey) {
			out = append(out, m.ObjectKey)
		}
	}
	return out, nil
}

func (s *memStore) CreateMedia(_ context.Context, m *db.Media) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m.ID = s.id()
	s.media[m.ID] = *m
	return nil
}

func (s *memStore) DeleteMedia(_ context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.media[id]; !ok {
		return false, nil
	}
	delete(s.media, id)
	return true, nil
}

// users

func (s *memStore) Users(_ context.Context) ([]db.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []db.User
	for _, u := range s.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *memStore) UserByID(_ context.Context, id int) (*db.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (s *memStore) UserEmailExists(_ context.Context, email string, exceptID int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) && u.ID != exceptID {
			return true, nil
		}
	}
	return false, nil
}

func (s *memStore) CreateUser(_ context.Context, u *db.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u.ID = s.id()
	s.users[u.ID] = *u
	return nil
}

func (s *memStore) UpdateUser(_ context.Context, u *db.User) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[u.ID]; !ok {
		return false, nil
	}
	s.users[u.ID] = *u
	return true, nil
}

// settings

func (s *memStore) Settings(_ context.Context) (*db.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	if s.settings == nil {
		return nil, nil
	}
	st := *s.settings
	return &st, nil
}

func (s *memStore) SaveSettings(_ context.Context, st *db.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st.ID = db.SettingsID
	saved := *st
	s.settings = &saved
	return nil
}

// roadmap

func (s *memStore) RoadmapRequests(_ context.Context, status string) ([]db.RoadmapRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []db.RoadmapRequest
	for _, r := range s.requests {
		if status == "" || r.Status == status {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Votes > out[j].Votes })
	return out, nil
}

func (s *memStore) RoadmapRequestByID(_ context.Context, id int) (*db.RoadmapRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.requests[id]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

func (s *memStore) RoadmapRequestForUpdate(ctx context.Context, id int) (*db.RoadmapRequest, error) {
	return s.RoadmapRequestByID(ctx, id)
}

func (s *memStore) CreateRoadmapRequest(_ context.Context, r *db.RoadmapRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.ID = s.id()
	s.requests[r.ID] = *r
	return nil
}

func (s *memStore) UpdateRoadmapStatus(_ context.Context, r *db.RoadmapRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	old := s.requests[r.ID]
	old.Status = r.Status
	old.UpdatedAt = r.UpdatedAt
	s.requests[r.ID] = old
	return nil
}

func (s *memStore) VoteRoadmapRequest(_ context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.requests[id]
	if !ok {
		return false, nil
	}
	r.Votes++
	s.requests[id] = r
	return true, nil
}

func (s *memStore) CreateRoadmapTimelineEntry(_ context.Context, e *db.RoadmapTimelineEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failTimeline {
		return errStore
	}
	e.ID = s.id()
	s.timeline = append(s.timeline, *e)
	return nil
}

func (s *memStore) RoadmapTimeline(_ context.Context, id int) ([]db.RoadmapTimelineEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []db.RoadmapTimelineEntry{}
	for _, e := range s.timeline {
		if e.RequestID == id {
			out = append(out, e)
		}
	}
	return out, nil
}

// InRoadmapTx restores the roadmap tables when fn fails.
func (s *memStore) InRoadmapTx(_ context.Context, fn func(tx RoadmapTx) error) error {
	s.mu.Lock()
	requests := make(map[int]db.RoadmapRequest, len(s.requests))
	for k, v := range s.requests {
		requests[k] = v
	}
	timeline := slices.Clone(s.timeline)
	s.mu.Unlock()

	if err := fn(s); err != nil {
		s.mu.Lock()
		s.requests = requests
		s.timeline = timeline
		s.mu.Unlock()
		return err
	}
	return nil
}

// newsletter

func (s *memStore) SubscriptionByEmail(_ context.Context, email string) (*db.NewsletterSubscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sub := range s.subs {
		if strings.EqualFold(sub.Email, email) {
			return &sub, nil
		}
	}
	return nil, nil
}

func (s *memStore) Subscriptions(_ context.Context, activeOnly bool) ([]db.NewsletterSubscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []db.NewsletterSubscription
	for _, sub := range s.subs {
		if !activeOnly || sub.Active {
			out = append(out, sub)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *memStore) ActiveSubscriptionsCount(ctx context.Context) (int, error) {
	list, err := s.Subscriptions(ctx, true)
	return len(list), err
}

func (s *memStore) SaveSubscription(_ context.Context, sub *db.NewsletterSubscription) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sub.ID == 0 {
		for _, existing := range s.subs {
			if strings.EqualFold(existing.Email, sub.Email) {
				return db.ErrUniqueViolation
			}
		}
		sub.ID = s.id()
	}
	s.subs[sub.ID] = *sub
	return nil
}

// fakeIndexer records the search index state.
type fakeIndexer struct {
	docs map[int]search.NewsDocument
	err  error
}

func newFakeIndexer() *fakeIndexer {
	return &fakeIndexer{docs: map[int]search.NewsDocument{}}
}

func (f *fakeIndexer) IndexNews(doc search.NewsDocument) error {
	if f.err != nil {
		return f.err
	}
	f.docs[doc.ID] = doc
	return nil
}

func (f *fakeIndexer) DeleteNews(id int) error {
	if f.err != nil {
		return f.err
	}
	delete(f.docs, id)
	return nil
}

func (f *fakeIndexer) Search(q search.Query) ([]search.Hit, int, error) {
	if f.err != nil {
		return nil, 0, f.err
	}
	var hits []search.Hit
	for _, doc := range f.docs {
		if strings.Contains(strings.ToLower(doc.Title), strings.ToLower(q.Text)) {
			hits = append(hits, search.Hit{ID: doc.ID, Title: doc.Title, Slug: doc.Slug})
		}
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].ID < hits[j].ID })
	total := len(hits)
	if len(hits) > q.Limit {
		hits = hits[:q.Limit]
	}
	return hits, total, nil
}

// fakeCounter keeps banner counters in memory keyed by banner and event.
type fakeCounter struct {
	counts map[int]map[string]int64
	err    error
}

func newFakeCounter() *fakeCounter {
	return &fakeCounter{counts: map[int]map[string]int64{}}
}

func (f *fakeCounter) Track(_ context.Context, bannerID int, event string, _ time.Time) error {
	if f.err != nil {
		return f.err
	}
	if f.counts[bannerID] == nil {
		f.counts[bannerID] = map[string]int64{}
	}
	f.counts[bannerID][event]++
	return nil
}

func (f *fakeCounter) Stats(_ context.Context, bannerID int, _, _ time.Time) (*analytics.BannerStats, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &analytics.BannerStats{
		BannerID:    bannerID,
		Impressions: f.counts[bannerID][analytics.EventImpression],
		Clicks:      f.counts[bannerID][analytics.EventClick],
	}, nil
}

func (f *fakeCounter) Reset(_ context.Context, bannerID int) error {
	delete(f.counts, bannerID)
	return nil
}

// fakeObjects is an object store that can be told to keep failing.
type fakeObjects struct {
	objects  map[string][]byte
	modified map[string]time.Time
	fail     bool
}

func newFakeObjects() *fakeObjects {
	return &fakeObjects{objects: map[string][]byte{}, modified: map[string]time.Time{}}
}

func (f *fakeObjects) Put(_ context.Context, key string, data []byte, _ string) (string, bool, error) {
	if f.fail {
		return "https://cdn.example.com/placeholder.png", false, nil
	}
	f.objects[key] = data
	f.modified[key] = baseTime
	return "https://cdn.example.com/" + key, true, nil
}

func (f *fakeObjects) Remove(_ context.Context, key string) error {
	delete(f.objects, key)
	return nil
}

func (f *fakeObjects) Keys(_ context.Context, prefix string, before time.Time) ([]string, error) {
	var keys []string
	for key := range f.objects {
		if strings.HasPrefix(key, prefix) && f.modified[key].Before(before) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys, nil
}
