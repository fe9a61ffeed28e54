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

func newCampaignFixture(t *testing.T) (*CampaignService, *LedgerService, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	wp := worker.NewPool(1)
	t.Cleanup(wp.Stop)
	ls := NewLedgerService(store.Ledger(), store.AuditLogs(), wp)
	return NewCampaignService(store.Campaigns(), store.Posts(), ls), ls, store
}

func draft(userID string) CampaignDraft {
	return CampaignDraft{
		UserID:      userID,
		Title:       "Launch week",
		Description: "Promote the launch",
		Keywords:    []string{"golang", "backend"},
		Tone:        60,
		Links:       []string{"https://example.com"},
	}
}

func TestCreateChargesCreationCost(t *testing.T) {
	svc, ls, _ := newCampaignFixture(t)
	ctx := context.Background()

	_, err := ls.Grant(ctx, "u1", 150, "top-up", "seed")
	require.NoError(t, err)

	c, err := svc.Create(ctx, draft("u1"))
	require.NoError(t, err)
	assert.Equal(t, models.CampaignActive, c.Status)
	assert.False(t, c.Superboost)

	balance, err := ls.Balance(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(50), balance)

	txns, _, err := ls.History(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, txns, 2)
	debit := txns[0]
	assert.Equal(t, models.ExpenseDebit, debit.ExpenseType)
	assert.Equal(t, int64(CampaignCreateCost), debit.CreditsValue)
	assert.Equal(t, models.TxnNewCampaign, debit.Type)
	require.NotNil(t, debit.CampaignID)
	assert.Equal(t, c.ID, *debit.CampaignID)
}

func TestCreateInsufficientLeavesNoCampaign(t *testing.T) {
	svc, ls, _ := newCampaignFixture(t)
	ctx := context.Background()

	_, err := ls.Grant(ctx, "u1", 99, "top-up", "seed")
	require.NoError(t, err)

	_, err = svc.Create(ctx, draft("u1"))
	assert.ErrorIs(t, err, ErrInsufficientCredits)

	// all-or-nothing: no campaign row and no debit
	cs, err := svc.List(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, cs)

	balance, err := ls.Balance(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(99), balance)
}

func TestCreateValidatesDraft(t *testing.T) {
	svc, _, _ := newCampaignFixture(t)
	ctx := context.Background()

	d := draft("u1")
	d.Title = "  "
	_, err := svc.Create(ctx, d)
	assert.ErrorIs(t, err, ErrMissingFields)

	d = draft("u1")
	d.Tone = 101
	_, err = svc.Create(ctx, d)
	assert.ErrorIs(t, err, ErrMissingFields)

	d = draft("u1")
	d.Keywords = nil
	_, err = svc.Create(ctx, d)
	assert.ErrorIs(t, err, ErrMissingFields)

	d = draft("")
	_, err = svc.Create(ctx, d)
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestUpdateStatusTransitions(t *testing.T) {
	svc, ls, _ := newCampaignFixture(t)
	ctx := context.Background()

	_, _ = ls.Grant(ctx, "u1", 100, "top-up", "seed")
	c, err := svc.Create(ctx, draft("u1"))
	require.NoError(t, err)

	// deactivate then reactivate; no charge either way
	c2, err := svc.UpdateStatus(ctx, c.ID, models.CampaignInactive)
	require.NoError(t, err)
	assert.Equal(t, models.CampaignInactive, c2.Status)

	c3, err := svc.UpdateStatus(ctx, c.ID, models.CampaignActive)
	require.NoError(t, err)
	assert.Equal(t, models.CampaignActive, c3.Status)

	balance, err := ls.Balance(ctx, "u1")
	require.NoError(t, err)
	assert.Zero(t, balance)
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	svc, _, _ := newCampaignFixture(t)
	_, err := svc.UpdateStatus(context.Background(), "any", "archived")
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestUpdateStatusNotFound(t *testing.T) {
	svc, _, _ := newCampaignFixture(t)
	_, err := svc.UpdateStatus(context.Background(), "missing", models.CampaignInactive)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateDetailsReplacesWholesale(t *testing.T) {
	svc, ls, _ := newCampaignFixture(t)
	ctx := context.Background()

	_, _ = ls.Grant(ctx, "u1", 100, "top-up", "seed")
	c, err := svc.Create(ctx, draft("u1"))
	require.NoError(t, err)

	// details edits work regardless of state
	_, err = svc.UpdateStatus(ctx, c.ID, models.CampaignInactive)
	require.NoError(t, err)

	got, err := svc.UpdateDetails(ctx, c.ID, CampaignDraft{
		Title:       "Renamed",
		Description: "New copy",
		Keywords:    []string{"k"},
		Tone:        10,
		Links:       []string{"https://example.com/new"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)
	assert.Equal(t, []string{"k"}, got.Keywords)
	assert.Equal(t, 10, got.Tone)
	assert.Equal(t, models.CampaignInactive, got.Status)
}

func TestUpdateDetailsNotFound(t *testing.T) {
	svc, _, _ := newCampaignFixture(t)
	_, err := svc.UpdateDetails(context.Background(), "missing", CampaignDraft{
		Title: "t", Description: "d", Keywords: []string{"k"}, Tone: 1, Links: []string{"l"},
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSuperboostChargesAndFlips(t *testing.T) {
	svc, ls, _ := newCampaignFixture(t)
	ctx := context.Background()

	_, _ = ls.Grant(ctx, "u1", 200, "top-up", "seed")
	c, err := svc.Create(ctx, draft("u1"))
	require.NoError(t, err)

	params := models.SuperboostParams{Type: "regional", Regions: []string{"us", "eu"}, DailyLimit: 5}
	boosted, err := svc.ActivateSuperboost(ctx, c.ID, params)
	require.NoError(t, err)
	assert.True(t, boosted.Superboost)
	require.NotNil(t, boosted.SuperboostParams)
	assert.Equal(t, params, *boosted.SuperboostParams)

	balance, err := ls.Balance(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(50), balance)

	// one-way: a second activation fails and charges nothing
	_, err = svc.ActivateSuperboost(ctx, c.ID, params)
	assert.ErrorIs(t, err, ErrAlreadyBoosted)

	balance, err = ls.Balance(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(50), balance)
}

func TestSuperboostInsufficientCredits(t *testing.T) {
	svc, ls, _ := newCampaignFixture(t)
	ctx := context.Background()

	_, _ = ls.Grant(ctx, "u1", 100, "top-up", "seed")
	c, err := svc.Create(ctx, draft("u1"))
	require.NoError(t, err)

	_, err = svc.ActivateSuperboost(ctx, c.ID, models.SuperboostParams{Type: "regional"})
	assert.ErrorIs(t, err, ErrInsufficientCredits)

	got, err := svc.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.False(t, got.Superboost)
}

func TestSuperboostNotFound(t *testing.T) {
	svc, _, _ := newCampaignFixture(t)
	_, err := svc.ActivateSuperboost(context.Background(), "missing", models.SuperboostParams{Type: "regional"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListNewestFirstWithPosts(t *testing.T) {
	svc, ls, store := newCampaignFixture(t)
	ctx := context.Background()

	_, _ = ls.Grant(ctx, "u1", 300, "top-up", "seed")
	first, err := svc.Create(ctx, draft("u1"))
	require.NoError(t, err)
	d := draft("u1")
	d.Title = "Second campaign"
	second, err := svc.Create(ctx, d)
	require.NoError(t, err)

	store.AddPost(models.Post{
		CampaignID: first.ID,
		Subreddit:  "r/golang",
		TimePosted: time.Now(),
		DailyStats: []models.DailyStat{{Date: time.Now(), Engagements: 3}},
	})

	cs, err := svc.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, cs, 2)
	assert.Equal(t, second.ID, cs[0].ID)
	assert.Equal(t, first.ID, cs[1].ID)
	require.Len(t, cs[1].Posts, 1)
	assert.Len(t, cs[1].Posts[0].DailyStats, 1)
}

func TestGetComputesAggregates(t *testing.T) {
	svc, ls, store := newCampaignFixture(t)
	ctx := context.Background()

	_, _ = ls.Grant(ctx, "u1", 100, "top-up", "seed")
	c, err := svc.Create(ctx, draft("u1"))
	require.NoError(t, err)

	day1 := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	store.AddPost(models.Post{
		CampaignID: c.ID, TimePosted: day1, TotalLikes: 3, TotalReplies: 1,
		DailyStats: []models.DailyStat{{Date: day1, Engagements: 2}},
	})
	store.AddPost(models.Post{
		CampaignID: c.ID, TimePosted: day2, TotalLikes: 5,
		DailyStats: []models.DailyStat{{Date: day1, Engagements: 4}, {Date: day2, Engagements: 1}},
	})

	got, err := svc.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.PostCount)
	assert.Equal(t, int64(8), got.Stats.TotalLikes)
	assert.Equal(t, int64(1), got.Stats.TotalReplies)
	require.Len(t, got.DailyStats, 2)
	assert.Equal(t, "2025-06-01", got.DailyStats[0].Date)
	assert.Equal(t, int64(6), got.DailyStats[0].Engagements)
	assert.Equal(t, "2025-06-02", got.DailyStats[1].Date)
}

func TestGetNotFound(t *testing.T) {
	svc, _, _ := newCampaignFixture(t)
	_, err := svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
