package models

import "time"

type ExpenseType string

const (
	ExpenseCredit ExpenseType = "credit"
	ExpenseDebit  ExpenseType = "debit"
)

// Ledger categories stored in the type column.
const (
	TxnNewCampaign = "new-campaign"
	TxnSuperboost  = "superboost"
	TxnClaimCode   = "claim-code"
	TxnNewLogin    = "new-login"
)

// Transaction is one immutable ledger entry. Rows are never updated or
// deleted; the balance is always derived from the full history.
type Transaction struct {
	ID           string      `json:"id"`
	UserID       string      `json:"userId"`
	CampaignID   *string     `json:"campaignId,omitempty"`
	ExpenseType  ExpenseType `json:"expenseType"`
	CreditsValue int64       `json:"creditsValue"`
	Type         string      `json:"type"`
	Description  string      `json:"description"`
	CreatedAt    time.Time   `json:"createdAt"`
}

// Signed is the entry's contribution to the balance.
func (t Transaction) Signed() int64 {
	if t.ExpenseType == ExpenseCredit {
		return t.CreditsValue
	}
	return -t.CreditsValue
}
