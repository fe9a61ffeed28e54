package services

import (
	"context"

	"github.com/revelve/revelve-backend/internal/models"
	repo "github.com/revelve/revelve-backend/internal/repository"
	"github.com/revelve/revelve-backend/internal/stats"
)

type DashboardService struct {
	campaigns repo.Campaigns
	posts     repo.Posts
}

func NewDashboardService(c repo.Campaigns, p repo.Posts) *DashboardService {
	return &DashboardService{campaigns: c, posts: p}
}

// Summary builds the account-wide dashboard for a user.
func (s *DashboardService) Summary(ctx context.Context, userID string) (models.DashboardData, error) {
	campaigns, err := s.campaigns.ListByUser(ctx, userID)
	if err != nil {
		return models.DashboardData{}, err
	}
	posts, err := s.posts.ListByUser(ctx, userID)
	if err != nil {
		return models.DashboardData{}, err
	}
	byCampaign := map[string][]models.Post{}
	for _, p := range posts {
		byCampaign[p.CampaignID] = append(byCampaign[p.CampaignID], p)
	}
	for i := range campaigns {
		campaigns[i].Posts = byCampaign[campaigns[i].ID]
	}
	return stats.Dashboard(campaigns), nil
}
