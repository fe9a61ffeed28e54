package services

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/revelve/revelve-backend/internal/metrics"
	"github.com/revelve/revelve-backend/internal/models"
	repo "github.com/revelve/revelve-backend/internal/repository"
	"github.com/revelve/revelve-backend/internal/worker"
)

// Fixed credit amounts.
const (
	CampaignCreateCost = 100
	SuperboostCost     = 50
	WelcomeBonusAmount = 500
)

const welcomeDescription = "Welcome gift from Revelve"

// promoCodes is the fixed allow-list of claimable codes.
var promoCodes = map[string]int64{
	"REVELVEDUP": 500,
}

type LedgerService struct {
	ledger repo.Ledger
	audit  repo.AuditLogs
	wp     *worker.Pool
}

func NewLedgerService(l repo.Ledger, a repo.AuditLogs, wp *worker.Pool) *LedgerService {
	return &LedgerService{ledger: l, audit: a, wp: wp}
}

// Balance derives the user's balance from the full transaction history.
// Zero for users with no transactions; can go negative when external
// processes post unguarded debits.
func (s *LedgerService) Balance(ctx context.Context, userID string) (int64, error) {
	return s.ledger.Balance(ctx, userID)
}

// History returns the transactions newest first together with the derived
// total.
func (s *LedgerService) History(ctx context.Context, userID string) ([]models.Transaction, int64, error) {
	txns, err := s.ledger.ListByUser(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	var total int64
	for _, t := range txns {
		total += t.Signed()
	}
	return txns, total, nil
}

// Charge appends a debit only when the balance covers it. The balance check
// and the insert commit as one serializable transaction, so concurrent
// charges cannot overdraw the account.
func (s *LedgerService) Charge(ctx context.Context, userID string, amount int64, category string, campaignID *string) (models.Transaction, error) {
	if userID == "" || category == "" || amount <= 0 {
		return models.Transaction{}, ErrMissingFields
	}
	t := models.Transaction{
		UserID:       userID,
		CampaignID:   campaignID,
		ExpenseType:  models.ExpenseDebit,
		CreditsValue: amount,
		Type:         category,
		Description:  category + " cost",
	}
	var out models.Transaction
	err := s.RunSerializable(ctx, func(tx pgx.Tx) error {
		var err error
		out, err = s.ledger.InsertDebitGuarded(ctx, tx, t)
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrInsufficientCredits
		}
		return err
	})
	if err != nil {
		if errors.Is(err, ErrInsufficientCredits) {
			metrics.InsufficientCredits.Inc()
		}
		return models.Transaction{}, err
	}
	metrics.TransactionsTotal.WithLabelValues(string(models.ExpenseDebit)).Inc()
	s.Audit("transaction", out.ID, "charge", map[string]any{"category": category, "amount": amount})
	return out, nil
}

// Grant appends a credit entry; it always succeeds.
func (s *LedgerService) Grant(ctx context.Context, userID string, amount int64, category, description string) (models.Transaction, error) {
	if userID == "" || category == "" || amount <= 0 {
		return models.Transaction{}, ErrMissingFields
	}
	out, err := s.ledger.Insert(ctx, models.Transaction{
		UserID:       userID,
		ExpenseType:  models.ExpenseCredit,
		CreditsValue: amount,
		Type:         category,
		Description:  description,
	})
	if err != nil {
		return models.Transaction{}, err
	}
	metrics.TransactionsTotal.WithLabelValues(string(models.ExpenseCredit)).Inc()
	s.Audit("transaction", out.ID, "grant", map[string]any{"category": category, "amount": amount})
	return out, nil
}

// ClaimPromoCode grants the code's fixed amount once per user. The code
// string doubles as the dedup key and the stored description.
func (s *LedgerService) ClaimPromoCode(ctx context.Context, userID, code string) (models.Transaction, error) {
	if userID == "" || code == "" {
		return models.Transaction{}, ErrMissingFields
	}
	claimed, err := s.ledger.HasClaim(ctx, userID, code)
	if err != nil {
		return models.Transaction{}, err
	}
	if claimed {
		return models.Transaction{}, ErrAlreadyClaimed
	}
	amount, ok := promoCodes[code]
	if !ok {
		return models.Transaction{}, ErrInvalidCode
	}
	return s.Grant(ctx, userID, amount, models.TxnClaimCode, code)
}

// WelcomeBonus grants the fixed welcome amount exactly once per user
// lifetime: only a user with zero transactions of any kind receives it.
func (s *LedgerService) WelcomeBonus(ctx context.Context, userID string) (bool, models.Transaction, error) {
	if userID == "" {
		return false, models.Transaction{}, ErrMissingFields
	}
	has, err := s.ledger.HasAny(ctx, userID)
	if err != nil {
		return false, models.Transaction{}, err
	}
	if has {
		return false, models.Transaction{}, nil
	}
	t, err := s.Grant(ctx, userID, WelcomeBonusAmount, models.TxnNewLogin, welcomeDescription)
	if err != nil {
		return false, models.Transaction{}, err
	}
	return true, t, nil
}

// RunSerializable wraps the ledger's serializable transaction and retries a
// bounded number of times on serialization failure (SQLSTATE 40001).
func (s *LedgerService) RunSerializable(ctx context.Context, fn func(pgx.Tx) error) error {
	var err error
	for attempt := 0; attempt < 3; attempt++ {
		err = s.ledger.WithTx(ctx, fn)
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "40001" {
			continue
		}
		return err
	}
	return err
}

// Audit records an audit row off the request path. Audit failure never
// fails the request.
func (s *LedgerService) Audit(entityType, entityID, action string, details map[string]any) {
	id := entityID
	s.wp.Submit(func() {
		_ = s.audit.Create(context.Background(), models.AuditLog{
			EntityType: entityType,
			EntityID:   &id,
			Action:     action,
			Details:    details,
		})
	})
}
