package models

import "time"

// Post engagement counters are produced by an external content pipeline and
// only read here.
type Post struct {
	ID           string      `json:"id"`
	CampaignID   string      `json:"campaignId"`
	Subreddit    string      `json:"subreddit"`
	PostURL      string      `json:"postUrl"`
	Upvotes      int64       `json:"upvotes"`
	TotalLikes   int64       `json:"totalLikes"`
	TotalReplies int64       `json:"totalReplies"`
	Positive     int64       `json:"positive"`
	Negative     int64       `json:"negative"`
	Neutral      int64       `json:"neutral"`
	TimePosted   time.Time   `json:"timePosted"`
	CreatedAt    time.Time   `json:"createdAt"`
	DailyStats   []DailyStat `json:"dailyStats,omitempty"`
}

// DailyStat is an append-only per-post time series, one row per day.
type DailyStat struct {
	ID                string    `json:"id"`
	PostID            string    `json:"postId"`
	Date              time.Time `json:"date"`
	Engagements       int64     `json:"engagements"`
	ParentEngagements int64     `json:"parentEngagements"`
	NewPosts          int64     `json:"newPosts"`
}
