package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType drives the sign of the balance effect a transaction applies
// to its account(s). Amount is always stored as a positive magnitude; the type
// alone decides direction.
type TransactionType string

const (
	TransactionExpense          TransactionType = "expense"
	TransactionIncome           TransactionType = "income"
	TransactionTransfer         TransactionType = "transfer"
	TransactionGoalContribution TransactionType = "goal-contribution"
	TransactionGoalWithdrawal   TransactionType = "goal-withdrawal"
)

// Transaction represents a single ledger event affecting one account, or two
// for transfers (AccountID is the source, ToAccountID the destination).
type Transaction struct {
	TransactionID string          `json:"transactionID"`
	UserID        string          `json:"userID"`
	AccountID     string          `json:"accountID"`
	Amount        decimal.Decimal `json:"amount"` // positive magnitude
	Type          TransactionType `json:"type"`
	CategoryID    string          `json:"categoryID"`
	Description   string          `json:"description"`
	Date          time.Time       `json:"date"`
	Tags          []string        `json:"tags"`
	ToAccountID   *string         `json:"toAccountID,omitempty"` // transfers only
	GoalID        *string         `json:"goalID,omitempty"`      // goal contributions/withdrawals only
	IsEssential   bool            `json:"isEssential"`
	IsRecurring   bool            `json:"isRecurring"`
	Synced        bool            `json:"synced"`
	AuditFields
}

// TransactionFilter narrows transaction listings. Zero values mean "no
// constraint".
type TransactionFilter struct {
	Type       TransactionType
	CategoryID string
	AccountID  string
	StartDate  *time.Time
	EndDate    *time.Time
	Search     string
}

// TransactionPatch carries a partial update of a transaction. Nil fields keep
// the existing value; see accounting.ResolveMergedTransaction.
type TransactionPatch struct {
	AccountID   *string
	Amount      *decimal.Decimal
	Type        *TransactionType
	CategoryID  *string
	Description *string
	Date        *time.Time
	Tags        *[]string
	ToAccountID *string
	IsEssential *bool
	IsRecurring *bool
}
