package newsportal

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniilsolovey/newsroom/internal/analytics"
	"github.com/daniilsolovey/newsroom/internal/db"
)

func TestBannerManager(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	counter := newFakeCounter()
	manager := NewBannerManager(store, counter, testLogger)
	manager.now = func() time.Time { return baseTime }

	past, future := baseTime.Add(-time.Hour), baseTime.Add(time.Hour)

	top, err := manager.Create(ctx, BannerInput{Title: "Top", ImageURL: "https://cdn.example.com/top.png", Placement: "top"})
	require.NoError(t, err)
	assert.Equal(t, baseTime, top.CreatedAt)

	_, err = manager.Create(ctx, BannerInput{Title: "Later", ImageURL: "https://cdn.example.com/later.png", Placement: "top", StartsAt: &future})
	require.NoError(t, err)
	_, err = manager.Create(ctx, BannerInput{Title: "Side", ImageURL: "https://cdn.example.com/side.png", Placement: "side", EndsAt: &future})
	require.NoError(t, err)

	t.Run("Validation", func(t *testing.T) {
		var verr *ValidationError

		_, err := manager.Create(ctx, BannerInput{Title: "Bad", ImageURL: "nope", Placement: "top"})
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Errors, "imageUrl")

		_, err = manager.Create(ctx, BannerInput{Title: "Bad", ImageURL: "https://x.io/a.png", Placement: "top", StartsAt: &future, EndsAt: &past})
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Errors, "endsAt")
	})

	t.Run("Active", func(t *testing.T) {
		active := manager.Active(ctx, "top")
		require.Len(t, active, 1)
		assert.Equal(t, top.ID, active[0].ID)

		assert.Len(t, manager.Active(ctx, ""), 2)

		store.err = errStore
		assert.Empty(t, manager.Active(ctx, "top"))
		store.err = nil
	})

	t.Run("Update", func(t *testing.T) {
		b, err := manager.Update(ctx, top.ID, BannerInput{Title: "Top 2", ImageURL: "https://cdn.example.com/top.png", Placement: "top", StatusID: db.StatusDraft})
		require.NoError(t, err)
		assert.Equal(t, "Top 2", b.Title)
		assert.Equal(t, baseTime, b.CreatedAt)
		assert.Empty(t, manager.Active(ctx, "top"))

		_, err = manager.Update(ctx, 9999, BannerInput{Title: "X", ImageURL: "https://x.io/a.png", Placement: "top"})
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("TrackAndStats", func(t *testing.T) {
		require.NoError(t, manager.TrackImpression(ctx, top.ID))
		require.NoError(t, manager.TrackImpression(ctx, top.ID))
		require.NoError(t, manager.TrackClick(ctx, top.ID))
		require.ErrorIs(t, manager.TrackClick(ctx, 9999), ErrNotFound)

		stats, err := manager.Stats(ctx, top.ID, past, future)
		require.NoError(t, err)
		assert.Equal(t, int64(2), stats.Impressions)
		assert.Equal(t, int64(1), stats.Clicks)

		_, err = manager.Stats(ctx, 9999, past, future)
		require.ErrorIs(t, err, ErrNotFound)

		counter.err = analytics.ErrInvalidRange
		_, err = manager.Stats(ctx, top.ID, future, past)
		require.ErrorIs(t, err, analytics.ErrInvalidRange)
		counter.err = nil
	})

	t.Run("DeleteResetsCounters", func(t *testing.T) {
		require.NoError(t, manager.Delete(ctx, top.ID))
		assert.NotContains(t, counter.counts, top.ID)
		require.ErrorIs(t, manager.Delete(ctx, top.ID), ErrNotFound)
	})
}

func TestMediaManager(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	objects := newFakeObjects()
	manager := NewMediaManager(store, objects, testLogger)
	manager.now = func() time.Time { return baseTime.Add(2 * time.Hour) }

	t.Run("Upload", func(t *testing.T) {
		m, err := manager.Upload(ctx, UploadInput{FileName: "cover.png", ContentType: "image/png", Data: []byte("png")}, "editor")
		require.NoError(t, err)
		assert.Regexp(t, `^media/2024/01/[0-9a-f-]{36}\.png$`, m.ObjectKey)
		assert.Equal(t, "https://cdn.example.com/"+m.ObjectKey, m.URL)
		assert.Equal(t, int64(3), m.Size)
		assert.Equal(t, "editor", m.UploadedBy)
		assert.Contains(t, objects.objects, m.ObjectKey)
	})

	t.Run("FallsBackToPlaceholder", func(t *testing.T) {
		objects.fail = true
		defer func() { objects.fail = false }()

		m, err := manager.Upload(ctx, UploadInput{FileName: "a.jpg", ContentType: "image/jpeg", Data: []byte("jpg")}, "editor")
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/placeholder.png", m.URL)
		assert.Empty(t, m.ObjectKey)
	})

	t.Run("Validation", func(t *testing.T) {
		var verr *ValidationError

		_, err := manager.Upload(ctx, UploadInput{FileName: "a.exe", ContentType: "application/x-msdownload", Data: []byte("x")}, "editor")
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Errors, "contentType")

		_, err = manager.Upload(ctx, UploadInput{FileName: "a.png", ContentType: "image/png"}, "editor")
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Errors, "file")

		_, err = manager.Upload(ctx, UploadInput{FileName: "a.png", ContentType: "image/png", Data: make([]byte, MaxUploadSize+1)}, "editor")
		require.ErrorAs(t, err, &verr)

		_, err = manager.Upload(ctx, UploadInput{FileName: " ", ContentType: "image/png", Data: []byte("x")}, "editor")
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Errors, "fileName")
	})

	t.Run("ListAndDelete", func(t *testing.T) {
		list, err := manager.List(ctx, 0, 0)
		require.NoError(t, err)
		require.Len(t, list, 2)

		var stored Media
		for _, m := range list {
			if m.ObjectKey != "" {
				stored = m
			}
		}

		require.NoError(t, manager.Delete(ctx, stored.ID))
		assert.NotContains(t, objects.objects, stored.ObjectKey)
		require.ErrorIs(t, manager.Delete(ctx, stored.ID), ErrNotFound)
	})

	t.Run("CleanupOrphans", func(t *testing.T) {
		kept, err := manager.Upload(ctx, UploadInput{FileName: "kept.png", ContentType: "image/png", Data: []byte("k")}, "editor")
		require.NoError(t, err)

		objects.objects["media/2024/01/orphan.png"] = []byte("o")
		objects.modified["media/2024/01/orphan.png"] = baseTime
		objects.objects["media/2024/01/fresh.png"] = []byte("f")
		objects.modified["media/2024/01/fresh.png"] = baseTime.Add(90 * time.Minute)
		objects.objects["other/keep.png"] = []byte("x")

		removed, err := manager.CleanupOrphans(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, removed)
		assert.NotContains(t, objects.objects, "media/2024/01/orphan.png")
		assert.Contains(t, objects.objects, "media/2024/01/fresh.png")
		assert.Contains(t, objects.objects, "other/keep.png")
		assert.Contains(t, objects.objects, kept.ObjectKey)
	})
}

func TestUserManager(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	manager := NewUserManager(store, testLogger)

	u, err := manager.Create(ctx, UserInput{Email: " Jane@Example.com ", DisplayName: "Jane", Role: RoleEditor})
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", u.Email)
	assert.Equal(t, db.StatusPublished, u.StatusID)

	t.Run("DuplicateEmail", func(t *testing.T) {
		_, err := manager.Create(ctx, UserInput{Email: "JANE@example.com", DisplayName: "Other", Role: RoleAdmin})
		require.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("Validation", func(t *testing.T) {
		var verr *ValidationError
		_, err := manager.Create(ctx, UserInput{Email: "not-an-email", DisplayName: "X", Role: "root"})
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Errors, "email")
		assert.Contains(t, verr.Errors, "role")
	})

	t.Run("Update", func(t *testing.T) {
		updated, err := manager.Update(ctx, u.ID, UserInput{Email: "jane@example.com", DisplayName: "Jane D.", Role: RoleAdmin})
		require.NoError(t, err)
		assert.Equal(t, RoleAdmin, updated.Role)

		_, err = manager.Update(ctx, 9999, UserInput{Email: "x@example.com", DisplayName: "X", Role: RoleAdmin})
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Deactivate", func(t *testing.T) {
		deactivated, err := manager.Deactivate(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, db.StatusArchived, deactivated.StatusID)

		got, err := manager.ByID(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, db.StatusArchived, got.StatusID)

		_, err = manager.Deactivate(ctx, 9999)
		require.ErrorIs(t, err, ErrNotFound)
	})

	users, err := manager.Users(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestSettingsManager(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	manager := NewSettingsManager(store, testLogger)
	manager.now = func() time.Time { return baseTime }

	assert.Equal(t, DefaultSiteName, manager.Settings(ctx).SiteName)

	saved, err := manager.Update(ctx, SettingsInput{SiteName: " Daily ", ContactEmail: "desk@example.com"}, "admin")
	require.NoError(t, err)
	assert.Equal(t, "Daily", saved.SiteName)
	assert.Equal(t, "admin", saved.UpdatedBy)

	got := manager.Settings(ctx)
	assert.Equal(t, "Daily", got.SiteName)
	assert.Equal(t, baseTime, got.UpdatedAt)

	var verr *ValidationError
	_, err = manager.Update(ctx, SettingsInput{SiteName: "", LogoURL: "nope"}, "admin")
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Errors, "siteName")
	assert.Contains(t, verr.Errors, "logoUrl")

	store.err = errStore
	assert.Equal(t, DefaultSettings(), manager.Settings(ctx))
}

func TestRoadmapManager(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	manager := NewRoadmapManager(store, testLogger)
	manager.now = func() time.Time { return baseTime }

	req, err := manager.Create(ctx, RoadmapInput{Title: "Dark mode", Description: "Please"}, "reader-1")
	require.NoError(t, err)
	assert.Equal(t, RoadmapProposed, req.Status)

	t.Run("Vote", func(t *testing.T) {
		require.NoError(t, manager.Vote(ctx, req.ID))
		require.NoError(t, manager.Vote(ctx, req.ID))
		require.ErrorIs(t, manager.Vote(ctx, 9999), ErrNotFound)

		got, err := manager.ByID(ctx, req.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, got.Votes)
	})

	t.Run("ValidTransitionsAreLogged", func(t *testing.T) {
		for _, status := range []string{RoadmapPlanned, RoadmapInProgress, RoadmapDone} {
			_, err := manager.ChangeStatus(ctx, req.ID, status, "editor", "moving on")
			require.NoError(t, err)
		}

		timeline, err := manager.Timeline(ctx, req.ID)
		require.NoError(t, err)
		require.Len(t, timeline, 3)
		assert.Equal(t, RoadmapProposed, timeline[0].FromStatus)
		assert.Equal(t, RoadmapPlanned, timeline[0].ToStatus)
		assert.Equal(t, RoadmapDone, timeline[2].ToStatus)
		assert.Equal(t, "editor", timeline[2].ChangedBy)
	})

	t.Run("TerminalStatusIsFinal", func(t *testing.T) {
		_, err := manager.ChangeStatus(ctx, req.ID, RoadmapRejected, "editor", "")
		require.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("InvalidTransitions", func(t *testing.T) {
		other, err := manager.Create(ctx, RoadmapInput{Title: "RSS"}, "reader-2")
		require.NoError(t, err)

		_, err = manager.ChangeStatus(ctx, other.ID, RoadmapDone, "editor", "")
		require.ErrorIs(t, err, ErrInvalidTransition)

		var verr *ValidationError
		_, err = manager.ChangeStatus(ctx, other.ID, "shipped", "editor", "")
		require.ErrorAs(t, err, &verr)

		_, err = manager.ChangeStatus(ctx, 9999, RoadmapPlanned, "editor", "")
		require.ErrorIs(t, err, ErrNotFound)

		timeline, err := manager.Timeline(ctx, other.ID)
		require.NoError(t, err)
		assert.Empty(t, timeline)

		rejected, err := manager.ChangeStatus(ctx, other.ID, RoadmapRejected, "editor", "out of scope")
		require.NoError(t, err)
		assert.Equal(t, RoadmapRejected, rejected.Status)
	})

	t.Run("FailedTimelineRollsBackStatus", func(t *testing.T) {
		third, err := manager.Create(ctx, RoadmapInput{Title: "Podcasts"}, "reader-3")
		require.NoError(t, err)

		store.failTimeline = true
		_, err = manager.ChangeStatus(ctx, third.ID, RoadmapPlanned, "editor", "")
		store.failTimeline = false
		require.ErrorIs(t, err, errStore)

		got, err := manager.ByID(ctx, third.ID)
		require.NoError(t, err)
		assert.Equal(t, RoadmapProposed, got.Status)
	})

	t.Run("Requests", func(t *testing.T) {
		all, err := manager.Requests(ctx, "")
		require.NoError(t, err)
		assert.Len(t, all, 3)
		assert.Equal(t, req.ID, all[0].ID)

		done, err := manager.Requests(ctx, RoadmapDone)
		require.NoError(t, err)
		assert.Len(t, done, 1)

		var verr *ValidationError
		_, err = manager.Requests(ctx, "nope")
		require.ErrorAs(t, err, &verr)
	})

	t.Run("CreateValidation", func(t *testing.T) {
		var verr *ValidationError
		_, err := manager.Create(ctx, RoadmapInput{Title: "  "}, "reader")
		require.ErrorAs(t, err, &verr)
	})
}

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(RoadmapProposed, RoadmapPlanned))
	assert.True(t, CanTransition(RoadmapInProgress, RoadmapRejected))
	assert.False(t, CanTransition(RoadmapProposed, RoadmapInProgress))
	assert.False(t, CanTransition(RoadmapPlanned, RoadmapProposed))
	assert.False(t, CanTransition(RoadmapRejected, RoadmapPlanned))
	assert.False(t, CanTransition("unknown", RoadmapPlanned))
}

func TestNewsletterManager(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	manager := NewNewsletterManager(store, testLogger)
	manager.now = func() time.Time { return baseTime }

	first, err := manager.Subscribe(ctx, " Reader@Example.com ")
	require.NoError(t, err)
	assert.True(t, first.Active)
	assert.Equal(t, "reader@example.com", first.Email)

	again, err := manager.Subscribe(ctx, "reader@example.com")
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)
	assert.Len(t, store.subs, 1)

	_, err = manager.Subscribe(ctx, "second@example.com")
	require.NoError(t, err)

	count, err := manager.ActiveCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	require.NoError(t, manager.Unsubscribe(ctx, "READER@example.com"))
	require.NoError(t, manager.Unsubscribe(ctx, "reader@example.com"))
	require.ErrorIs(t, manager.Unsubscribe(ctx, "nobody@example.com"), ErrNotFound)

	active, err := manager.Subscriptions(ctx, true)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "second@example.com", active[0].Email)

	all, err := manager.Subscriptions(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.NotNil(t, store.subs[first.ID].UnsubscribedAt)

	reactivated, err := manager.Subscribe(ctx, "reader@example.com")
	require.NoError(t, err)
	assert.Equal(t, first.ID, reactivated.ID)
	assert.True(t, reactivated.Active)
	assert.Nil(t, reactivated.UnsubscribedAt)

	var verr *ValidationError
	_, err = manager.Subscribe(ctx, "not-an-email")
	require.ErrorAs(t, err, &verr)
}
