package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/revelve/revelve-backend/internal/models"
)

type postsRepo struct{ pool *pgxpool.Pool }

const postCols = `p.id, p.campaign_id, p.subreddit, p.post_url, p.upvotes, p.total_likes, p.total_replies, p.positive, p.negative, p.neutral, p.time_posted, p.created_at`

func (r *postsRepo) ListByCampaign(ctx context.Context, campaignID string) ([]models.Post, error) {
	return r.list(ctx,
		`SELECT `+postCols+`
		   FROM posts p
		  WHERE p.campaign_id = $1
		  ORDER BY p.created_at DESC`,
		campaignID,
	)
}

func (r *postsRepo) ListByUser(ctx context.Context, userID string) ([]models.Post, error) {
	return r.list(ctx,
		`SELECT `+postCols+`
		   FROM posts p
		   JOIN campaigns c ON c.id = p.campaign_id
		  WHERE c.user_id = $1
		  ORDER BY p.created_at DESC`,
		userID,
	)
}

func (r *postsRepo) list(ctx context.Context, q string, arg any) ([]models.Post, error) {
	rows, err := r.pool.Query(ctx, q, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Post
	for rows.Next() {
		var p models.Post
		if err := rows.Scan(&p.ID, &p.CampaignID, &p.Subreddit, &p.PostURL, &p.Upvotes,
			&p.TotalLikes, &p.TotalReplies, &p.Positive, &p.Negative, &p.Neutral,
			&p.TimePosted, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return r.attachDailyStats(ctx, out)
}

func (r *postsRepo) attachDailyStats(ctx context.Context, posts []models.Post) ([]models.Post, error) {
	if len(posts) == 0 {
		return posts, nil
	}
	ids := make([]string, len(posts))
	byID := make(map[string]*models.Post, len(posts))
	for i := range posts {
		ids[i] = posts[i].ID
		byID[posts[i].ID] = &posts[i]
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, post_id, date, engagements, parent_engagements, new_posts
		   FROM daily_stats
		  WHERE post_id = ANY($1)
		  ORDER BY date ASC`,
		ids,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var d models.DailyStat
		if err := rows.Scan(&d.ID, &d.PostID, &d.Date, &d.Engagements, &d.ParentEngagements, &d.NewPosts); err != nil {
			return nil, err
		}
		if p := byID[d.PostID]; p != nil {
			p.DailyStats = append(p.DailyStats, d)
		}
	}
	return posts, rows.Err()
}
