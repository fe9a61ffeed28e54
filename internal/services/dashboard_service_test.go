package services

import (
	"context"
	"testing"
	"time"

	"github.com/revelve/revelve-backend/internal/models"
	"github.com/revelve/revelve-backend/internal/repository/memory"
	"github.com/revelve/revelve-backend/internal/worker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardSummary(t *testing.T) {
	store := memory.NewStore()
	wp := worker.NewPool(1)
	t.Cleanup(wp.Stop)
	ls := NewLedgerService(store.Ledger(), store.AuditLogs(), wp)
	cs := NewCampaignService(store.Campaigns(), store.Posts(), ls)
	ds := NewDashboardService(store.Campaigns(), store.Posts())
	ctx := context.Background()

	_, _ = ls.Grant(ctx, "u1", 300, "top-up", "seed")
	active, err := cs.Create(ctx, draft("u1"))
	require.NoError(t, err)
	d := draft("u1")
	d.Title = "Paused one"
	paused, err := cs.Create(ctx, d)
	require.NoError(t, err)
	_, err = cs.UpdateStatus(ctx, paused.ID, models.CampaignInactive)
	require.NoError(t, err)

	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	store.AddPost(models.Post{CampaignID: active.ID, TimePosted: base, TotalLikes: 2, TotalReplies: 1, Upvotes: 4})
	store.AddPost(models.Post{CampaignID: paused.ID, TimePosted: base.AddDate(0, 0, 1), TotalLikes: 3, Upvotes: 6})

	got, err := ds.Summary(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, got.ActiveCampaigns)
	assert.Equal(t, 2, got.TotalCampaigns)
	assert.Equal(t, 2, got.TotalPosts)
	assert.Equal(t, int64(5), got.Stats.TotalLikes)
	assert.Equal(t, int64(10), got.Stats.TotalUpvotes)
	require.Len(t, got.EngagementData, 2)
	// ascending by timePosted, value = likes + replies
	assert.Equal(t, int64(3), got.EngagementData[0].Value)
	assert.Equal(t, int64(3), got.EngagementData[1].Value)
	require.Len(t, got.RecentPosts, 2)
	assert.Equal(t, base.AddDate(0, 0, 1), got.RecentPosts[0].TimePosted)
}

func TestDashboardSummaryEmptyAccount(t *testing.T) {
	store := memory.NewStore()
	ds := NewDashboardService(store.Campaigns(), store.Posts())

	got, err := ds.Summary(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Zero(t, got.TotalCampaigns)
	assert.Zero(t, got.TotalPosts)
	assert.Equal(t, models.CampaignStats{}, got.Stats)
	assert.NotNil(t, got.EngagementData)
	assert.NotNil(t, got.RecentPosts)
}
