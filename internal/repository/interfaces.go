package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/revelve/revelve-backend/internal/models"
)

// Ledger is the append-only credit transaction log. Entries are never
// updated or deleted after insertion.
type Ledger interface {
	Insert(ctx context.Context, t models.Transaction) (models.Transaction, error)
	// InsertDebitGuarded appends the debit only when the user's current
	// balance covers it. pgx.ErrNoRows reports an insufficient balance.
	// Must run inside a WithTx transaction so the balance check and the
	// insert commit as one unit.
	InsertDebitGuarded(ctx context.Context, tx pgx.Tx, t models.Transaction) (models.Transaction, error)
	Balance(ctx context.Context, userID string) (int64, error)
	ListByUser(ctx context.Context, userID string) ([]models.Transaction, error)
	HasAny(ctx context.Context, userID string) (bool, error)
	HasClaim(ctx context.Context, userID, code string) (bool, error)
	// WithTx runs fn inside a serializable transaction.
	WithTx(ctx context.Context, fn func(pgx.Tx) error) error
}

type Campaigns interface {
	Create(ctx context.Context, tx pgx.Tx, c models.Campaign) (models.Campaign, error)
	GetByID(ctx context.Context, id string) (models.Campaign, error)
	ListByUser(ctx context.Context, userID string) ([]models.Campaign, error)
	UpdateDetails(ctx context.Context, c models.Campaign) (models.Campaign, error)
	UpdateStatus(ctx context.Context, id string, status models.CampaignStatus) (models.Campaign, error)
	// SetSuperboost flips the one-way boost flag. pgx.ErrNoRows reports a
	// campaign that is missing or already boosted.
	SetSuperboost(ctx context.Context, tx pgx.Tx, id string, params models.SuperboostParams) (models.Campaign, error)
}

type Posts interface {
	ListByCampaign(ctx context.Context, campaignID string) ([]models.Post, error)
	ListByUser(ctx context.Context, userID string) ([]models.Post, error)
}

type AuditLogs interface {
	Create(ctx context.Context, l models.AuditLog) error
}
