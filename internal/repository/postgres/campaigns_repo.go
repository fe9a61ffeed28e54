package postgres

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/revelve/revelve-backend/internal/models"
)

type campaignsRepo struct{ pool *pgxpool.Pool }

const campaignCols = `id, user_id, title, description, keywords, tone, links, status, superboost, superboost_params, created_at, updated_at`

func scanCampaign(row pgx.Row) (models.Campaign, error) {
	var c models.Campaign
	var params []byte
	err := row.Scan(&c.ID, &c.UserID, &c.Title, &c.Description, &c.Keywords, &c.Tone,
		&c.Links, &c.Status, &c.Superboost, &params, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return models.Campaign{}, err
	}
	if len(params) > 0 {
		var p models.SuperboostParams
		if err := json.Unmarshal(params, &p); err != nil {
			return models.Campaign{}, err
		}
		c.SuperboostParams = &p
	}
	return c, nil
}

func (r *campaignsRepo) Create(ctx context.Context, tx pgx.Tx, c models.Campaign) (models.Campaign, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	const q = `
INSERT INTO campaigns (id, user_id, title, description, keywords, tone, links, status, superboost)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,false)
RETURNING ` + campaignCols
	return scanCampaign(tx.QueryRow(ctx, q,
		c.ID, c.UserID, c.Title, c.Description, c.Keywords, c.Tone, c.Links, c.Status))
}

func (r *campaignsRepo) GetByID(ctx context.Context, id string) (models.Campaign, error) {
	return scanCampaign(r.pool.QueryRow(ctx,
		`SELECT `+campaignCols+` FROM campaigns WHERE id = $1`, id))
}

func (r *campaignsRepo) ListByUser(ctx context.Context, userID string) ([]models.Campaign, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+campaignCols+`
		   FROM campaigns
		  WHERE user_id = $1
		  ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Campaign
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *campaignsRepo) UpdateDetails(ctx context.Context, c models.Campaign) (models.Campaign, error) {
	const q = `
UPDATE campaigns
   SET title = $2, description = $3, keywords = $4, tone = $5, links = $6,
       updated_at = now()
 WHERE id = $1
RETURNING ` + campaignCols
	return scanCampaign(r.pool.QueryRow(ctx, q,
		c.ID, c.Title, c.Description, c.Keywords, c.Tone, c.Links))
}

func (r *campaignsRepo) UpdateStatus(ctx context.Context, id string, status models.CampaignStatus) (models.Campaign, error) {
	const q = `
UPDATE campaigns
   SET status = $2, updated_at = now()
 WHERE id = $1
RETURNING ` + campaignCols
	return scanCampaign(r.pool.QueryRow(ctx, q, id, status))
}

func (r *campaignsRepo) SetSuperboost(ctx context.Context, tx pgx.Tx, id string, params models.SuperboostParams) (models.Campaign, error) {
	raw, err := json.Marshal(params)
	if err != nil {
		return models.Campaign{}, err
	}
	// The superboost = false guard keeps the flag one-way even under
	// concurrent boost attempts.
	const q = `
UPDATE campaigns
   SET superboost = true, superboost_params = $2, updated_at = now()
 WHERE id = $1 AND superboost = false
RETURNING ` + campaignCols
	return scanCampaign(tx.QueryRow(ctx, q, id, raw))
}
