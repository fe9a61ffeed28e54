// Package stats derives read-only campaign and account summaries from raw
// post and daily-stat collections. Everything here is a pure function over
// its input; no store access, no side effects.
package stats

import (
	"sort"

	"github.com/revelve/revelve-backend/internal/models"
)

const dateLayout = "2006-01-02"

// CampaignTotals sums engagement counters across posts. Order-independent;
// an empty input yields the zero record.
func CampaignTotals(posts []models.Post) models.CampaignStats {
	var out models.CampaignStats
	for _, p := range posts {
		out.TotalLikes += p.TotalLikes
		out.TotalReplies += p.TotalReplies
		out.TotalUpvotes += p.Upvotes
		out.Positive += p.Positive
		out.Negative += p.Negative
		out.Neutral += p.Neutral
	}
	return out
}

// DailySeries flattens every post's daily stats, buckets them by calendar
// date across all posts, and returns the buckets ascending by date. Days
// with no data contribute nothing; there is no zero-fill.
func DailySeries(posts []models.Post) []models.DailyPoint {
	buckets := map[string]*models.DailyPoint{}
	for _, p := range posts {
		for _, d := range p.DailyStats {
			key := d.Date.UTC().Format(dateLayout)
			b := buckets[key]
			if b == nil {
				b = &models.DailyPoint{Date: key}
				buckets[key] = b
			}
			b.Engagements += d.Engagements
			b.ParentEngagements += d.ParentEngagements
			b.NewPosts += d.NewPosts
		}
	}
	out := make([]models.DailyPoint, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// Dashboard builds the account-wide summary from a user's full campaign
// list with nested posts.
func Dashboard(campaigns []models.Campaign) models.DashboardData {
	data := models.DashboardData{
		EngagementData: []models.EngagementPoint{},
		RecentPosts:    []models.RecentPost{},
		TotalCampaigns: len(campaigns),
	}

	var posts []models.Post
	for _, c := range campaigns {
		if c.Status == models.CampaignActive {
			data.ActiveCampaigns++
		}
		posts = append(posts, c.Posts...)
	}
	data.TotalPosts = len(posts)
	data.Stats = CampaignTotals(posts)

	// Stable sorts: ties on timePosted keep the incoming collection order.
	asc := make([]models.Post, len(posts))
	copy(asc, posts)
	sort.SliceStable(asc, func(i, j int) bool { return asc[i].TimePosted.Before(asc[j].TimePosted) })

	start := len(asc) - 7
	if start < 0 {
		start = 0
	}
	for _, p := range asc[start:] {
		data.EngagementData = append(data.EngagementData, models.EngagementPoint{
			Date:  p.TimePosted,
			Value: p.TotalLikes + p.TotalReplies,
		})
	}

	desc := make([]models.Post, len(posts))
	copy(desc, posts)
	sort.SliceStable(desc, func(i, j int) bool { return desc[i].TimePosted.After(desc[j].TimePosted) })

	n := len(desc)
	if n > 4 {
		n = 4
	}
	for _, p := range desc[:n] {
		data.RecentPosts = append(data.RecentPosts, models.RecentPost{
			ID:         p.ID,
			Subreddit:  p.Subreddit,
			Upvotes:    p.Upvotes,
			TimePosted: p.TimePosted,
			PostURL:    p.PostURL,
		})
	}
	return data
}
