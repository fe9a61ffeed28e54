package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/revelve/revelve-backend/internal/models"
)

type ledgerRepo struct{ pool *pgxpool.Pool }

const txnCols = `id, user_id, campaign_id, expense_type, credits_value, type, description, created_at`

// balanceExpr derives the balance from the full history; there is no cached
// running total.
const balanceExpr = `COALESCE(SUM(CASE WHEN expense_type = 'credit' THEN credits_value ELSE -credits_value END), 0)`

func scanTxn(row pgx.Row) (models.Transaction, error) {
	var t models.Transaction
	err := row.Scan(&t.ID, &t.UserID, &t.CampaignID, &t.ExpenseType, &t.CreditsValue, &t.Type, &t.Description, &t.CreatedAt)
	return t, err
}

func (r *ledgerRepo) Insert(ctx context.Context, t models.Transaction) (models.Transaction, error) {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	const q = `
INSERT INTO credit_transactions (id, user_id, campaign_id, expense_type, credits_value, type, description)
VALUES ($1,$2,$3,$4,$5,$6,$7)
RETURNING ` + txnCols
	return scanTxn(r.pool.QueryRow(ctx, q,
		t.ID, t.UserID, t.CampaignID, t.ExpenseType, t.CreditsValue, t.Type, t.Description))
}

func (r *ledgerRepo) InsertDebitGuarded(ctx context.Context, tx pgx.Tx, t models.Transaction) (models.Transaction, error) {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	// Conditional insert: no row comes back when the balance does not cover
	// the debit. Serializable isolation (WithTx) makes the check and the
	// insert one atomic unit across concurrent chargers.
	const q = `
INSERT INTO credit_transactions (id, user_id, campaign_id, expense_type, credits_value, type, description)
SELECT $1, $2, $3, 'debit', $4, $5, $6
WHERE (SELECT ` + balanceExpr + ` FROM credit_transactions WHERE user_id = $2) >= $4
RETURNING ` + txnCols
	return scanTxn(tx.QueryRow(ctx, q,
		t.ID, t.UserID, t.CampaignID, t.CreditsValue, t.Type, t.Description))
}

func (r *ledgerRepo) Balance(ctx context.Context, userID string) (int64, error) {
	var total int64
	err := r.pool.QueryRow(ctx,
		`SELECT `+balanceExpr+` FROM credit_transactions WHERE user_id = $1`,
		userID,
	).Scan(&total)
	return total, err
}

func (r *ledgerRepo) ListByUser(ctx context.Context, userID string) ([]models.Transaction, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+txnCols+`
		   FROM credit_transactions
		  WHERE user_id = $1
		  ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Transaction
	for rows.Next() {
		t, err := scanTxn(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *ledgerRepo) HasAny(ctx context.Context, userID string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM credit_transactions WHERE user_id = $1)`,
		userID,
	).Scan(&exists)
	return exists, err
}

func (r *ledgerRepo) HasClaim(ctx context.Context, userID, code string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(
		   SELECT 1 FROM credit_transactions
		    WHERE user_id = $1 AND type = $2 AND description = $3)`,
		userID, models.TxnClaimCode, code,
	).Scan(&exists)
	return exists, err
}

func (r *ledgerRepo) WithTx(ctx context.Context, fn func(pgx.Tx) error) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.Serializable,
		AccessMode: pgx.ReadWrite,
	})
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}
