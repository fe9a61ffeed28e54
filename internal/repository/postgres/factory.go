package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"
	repo "github.com/revelve/revelve-backend/internal/repository"
)

type Repositories struct {
	Ledger    repo.Ledger
	Campaigns repo.Campaigns
	Posts     repo.Posts
	AuditLogs repo.AuditLogs
}

func NewRepositories(pool *pgxpool.Pool) Repositories {
	return Repositories{
		Ledger:    &ledgerRepo{pool},
		Campaigns: &campaignsRepo{pool},
		Posts:     &postsRepo{pool},
		AuditLogs: &auditLogsRepo{pool},
	}
}
