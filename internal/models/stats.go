package models

import "time"

// CampaignStats is a roll-up of engagement counters over a set of posts.
type CampaignStats struct {
	TotalLikes   int64 `json:"totalLikes"`
	TotalReplies int64 `json:"totalReplies"`
	TotalUpvotes int64 `json:"totalUpvotes"`
	Positive     int64 `json:"positive"`
	Negative     int64 `json:"negative"`
	Neutral      int64 `json:"neutral"`
}

// DailyPoint is one bucket of the per-day engagement series, keyed by
// calendar date ("YYYY-MM-DD") across all posts of a campaign.
type DailyPoint struct {
	Date              string `json:"date"`
	Engagements       int64  `json:"engagements"`
	ParentEngagements int64  `json:"parentEngagements"`
	NewPosts          int64  `json:"newPosts"`
}

type EngagementPoint struct {
	Date  time.Time `json:"date"`
	Value int64     `json:"value"`
}

type RecentPost struct {
	ID         string    `json:"id"`
	Subreddit  string    `json:"subreddit"`
	Upvotes    int64     `json:"upvotes"`
	TimePosted time.Time `json:"timePosted"`
	PostURL    string    `json:"postUrl"`
}

type DashboardData struct {
	Stats           CampaignStats     `json:"stats"`
	EngagementData  []EngagementPoint `json:"engagementData"`
	RecentPosts     []RecentPost      `json:"recentPosts"`
	ActiveCampaigns int               `json:"activeCampaigns"`
	TotalCampaigns  int               `json:"totalCampaigns"`
	TotalPosts      int               `json:"totalPosts"`
}
