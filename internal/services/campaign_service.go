package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/revelve/revelve-backend/internal/metrics"
	"github.com/revelve/revelve-backend/internal/models"
	repo "github.com/revelve/revelve-backend/internal/repository"
	"github.com/revelve/revelve-backend/internal/stats"
)

type CampaignService struct {
	campaigns repo.Campaigns
	posts     repo.Posts
	ledger    *LedgerService
}

func NewCampaignService(c repo.Campaigns, p repo.Posts, l *LedgerService) *CampaignService {
	return &CampaignService{campaigns: c, posts: p, ledger: l}
}

type CampaignDraft struct {
	UserID      string
	Title       string
	Description string
	Keywords    []string
	Tone        int
	Links       []string
}

func (d CampaignDraft) validate() error {
	if strings.TrimSpace(d.Title) == "" || strings.TrimSpace(d.Description) == "" {
		return ErrMissingFields
	}
	if len(d.Keywords) == 0 || len(d.Links) == 0 {
		return ErrMissingFields
	}
	if d.Tone < 0 || d.Tone > 100 {
		return ErrMissingFields
	}
	return nil
}

// CampaignDetail is a campaign plus its derived aggregates.
type CampaignDetail struct {
	models.Campaign
	Stats      models.CampaignStats `json:"stats"`
	DailyStats []models.DailyPoint  `json:"dailyStats"`
	PostCount  int                  `json:"postCount"`
}

// Create provisions the campaign and charges the creation cost in one
// serializable transaction: a failed charge leaves no campaign row.
func (s *CampaignService) Create(ctx context.Context, d CampaignDraft) (models.Campaign, error) {
	if d.UserID == "" {
		return models.Campaign{}, ErrMissingFields
	}
	if err := d.validate(); err != nil {
		return models.Campaign{}, err
	}
	c := models.Campaign{
		ID:          uuid.NewString(),
		UserID:      d.UserID,
		Title:       strings.TrimSpace(d.Title),
		Description: d.Description,
		Keywords:    d.Keywords,
		Tone:        d.Tone,
		Links:       d.Links,
		Status:      models.CampaignActive,
	}
	var out models.Campaign
	err := s.ledger.RunSerializable(ctx, func(tx pgx.Tx) error {
		created, err := s.campaigns.Create(ctx, tx, c)
		if err != nil {
			return err
		}
		debit := models.Transaction{
			UserID:       d.UserID,
			CampaignID:   &created.ID,
			ExpenseType:  models.ExpenseDebit,
			CreditsValue: CampaignCreateCost,
			Type:         models.TxnNewCampaign,
			Description:  models.TxnNewCampaign + " cost",
		}
		if _, err := s.ledger.ledger.InsertDebitGuarded(ctx, tx, debit); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrInsufficientCredits
			}
			return err
		}
		out = created
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInsufficientCredits) {
			metrics.InsufficientCredits.Inc()
		}
		return models.Campaign{}, err
	}
	metrics.CampaignsCreated.Inc()
	metrics.TransactionsTotal.WithLabelValues(string(models.ExpenseDebit)).Inc()
	s.ledger.Audit("campaign", out.ID, "created", map[string]any{"title": out.Title})
	return out, nil
}

// UpdateDetails replaces title/description/keywords/tone/links wholesale,
// in any state.
func (s *CampaignService) UpdateDetails(ctx context.Context, id string, d CampaignDraft) (models.Campaign, error) {
	if err := d.validate(); err != nil {
		return models.Campaign{}, err
	}
	out, err := s.campaigns.UpdateDetails(ctx, models.Campaign{
		ID:          id,
		Title:       strings.TrimSpace(d.Title),
		Description: d.Description,
		Keywords:    d.Keywords,
		Tone:        d.Tone,
		Links:       d.Links,
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Campaign{}, ErrNotFound
	}
	if err != nil {
		return models.Campaign{}, err
	}
	s.ledger.Audit("campaign", out.ID, "details_updated", nil)
	return out, nil
}

// UpdateStatus moves the campaign between active and inactive. No charge at
// this layer; the recurring reactivation charge is user-facing copy only.
func (s *CampaignService) UpdateStatus(ctx context.Context, id string, status models.CampaignStatus) (models.Campaign, error) {
	if status != models.CampaignActive && status != models.CampaignInactive {
		return models.Campaign{}, ErrMissingFields
	}
	out, err := s.campaigns.UpdateStatus(ctx, id, status)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Campaign{}, ErrNotFound
	}
	if err != nil {
		return models.Campaign{}, err
	}
	s.ledger.Audit("campaign", out.ID, "status_updated", map[string]any{"status": string(status)})
	return out, nil
}

// ActivateSuperboost charges the boost cost and flips the one-way flag in a
// single serializable transaction.
func (s *CampaignService) ActivateSuperboost(ctx context.Context, id string, params models.SuperboostParams) (models.Campaign, error) {
	if id == "" || params.Type == "" {
		return models.Campaign{}, ErrMissingFields
	}
	c, err := s.campaigns.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Campaign{}, ErrNotFound
	}
	if err != nil {
		return models.Campaign{}, err
	}
	if c.Superboost {
		return models.Campaign{}, ErrAlreadyBoosted
	}

	var out models.Campaign
	err = s.ledger.RunSerializable(ctx, func(tx pgx.Tx) error {
		debit := models.Transaction{
			UserID:       c.UserID,
			CampaignID:   &c.ID,
			ExpenseType:  models.ExpenseDebit,
			CreditsValue: SuperboostCost,
			Type:         models.TxnSuperboost,
			Description:  models.TxnSuperboost + " cost",
		}
		if _, err := s.ledger.ledger.InsertDebitGuarded(ctx, tx, debit); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrInsufficientCredits
			}
			return err
		}
		var err error
		out, err = s.campaigns.SetSuperboost(ctx, tx, id, params)
		if errors.Is(err, pgx.ErrNoRows) {
			// lost a race with a concurrent boost
			return ErrAlreadyBoosted
		}
		return err
	})
	if err != nil {
		if errors.Is(err, ErrInsufficientCredits) {
			metrics.InsufficientCredits.Inc()
		}
		return models.Campaign{}, err
	}
	metrics.SuperboostsActivated.Inc()
	metrics.TransactionsTotal.WithLabelValues(string(models.ExpenseDebit)).Inc()
	s.ledger.Audit("campaign", out.ID, "superboost_activated", map[string]any{"type": params.Type})
	return out, nil
}

// List returns the user's campaigns newest first, each with nested posts
// and daily stats.
func (s *CampaignService) List(ctx context.Context, userID string) ([]models.Campaign, error) {
	campaigns, err := s.campaigns.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	posts, err := s.posts.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	byCampaign := map[string][]models.Post{}
	for _, p := range posts {
		byCampaign[p.CampaignID] = append(byCampaign[p.CampaignID], p)
	}
	for i := range campaigns {
		campaigns[i].Posts = byCampaign[campaigns[i].ID]
	}
	return campaigns, nil
}

// Get returns a single campaign with posts plus derived aggregates.
func (s *CampaignService) Get(ctx context.Context, id string) (CampaignDetail, error) {
	c, err := s.campaigns.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return CampaignDetail{}, ErrNotFound
	}
	if err != nil {
		return CampaignDetail{}, err
	}
	posts, err := s.posts.ListByCampaign(ctx, id)
	if err != nil {
		return CampaignDetail{}, err
	}
	c.Posts = posts
	return CampaignDetail{
		Campaign:   c,
		Stats:      stats.CampaignTotals(posts),
		DailyStats: stats.DailySeries(posts),
		PostCount:  len(posts),
	}, nil
}
