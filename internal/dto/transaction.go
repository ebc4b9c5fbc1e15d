package dto

import (
	"time"

	"github.com/afkcodes/kakeibo/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to create a transaction.
// Amount is a positive magnitude; the type decides the direction of the
// balance effect.
type CreateTransactionRequest struct {
	AccountID   string                 `json:"accountID" binding:"required"`
	Amount      decimal.Decimal        `json:"amount" binding:"required"`
	Type        domain.TransactionType `json:"type" binding:"required,oneof=expense income transfer"`
	CategoryID  string                 `json:"categoryID" binding:"required"`
	Description string                 `json:"description"`
	Date        time.Time              `json:"date" binding:"required"`
	Tags        []string               `json:"tags"`
	ToAccountID *string                `json:"toAccountID"` // required when type=transfer
	IsEssential bool                   `json:"isEssential"`
	IsRecurring bool                   `json:"isRecurring"`
}

// UpdateTransactionRequest defines the data allowed for updating a
// transaction. Use pointers to distinguish between zero-value updates and
// fields not provided.
type UpdateTransactionRequest struct {
	AccountID   *string                 `json:"accountID"`
	Amount      *decimal.Decimal        `json:"amount"`
	Type        *domain.TransactionType `json:"type" binding:"omitempty,oneof=expense income transfer"`
	CategoryID  *string                 `json:"categoryID"`
	Description *string                 `json:"description"`
	Date        *time.Time              `json:"date"`
	Tags        *[]string               `json:"tags"`
	ToAccountID *string                 `json:"toAccountID"`
	IsEssential *bool                   `json:"isEssential"`
	IsRecurring *bool                   `json:"isRecurring"`
}

// ToTransactionPatch converts the request into a domain patch for the merge
// step of the update algorithm.
func (r UpdateTransactionRequest) ToTransactionPatch() domain.TransactionPatch {
	return domain.TransactionPatch{
		AccountID:   r.AccountID,
		Amount:      r.Amount,
		Type:        r.Type,
		CategoryID:  r.CategoryID,
		Description: r.Description,
		Date:        r.Date,
		Tags:        r.Tags,
		ToAccountID: r.ToAccountID,
		IsEssential: r.IsEssential,
		IsRecurring: r.IsRecurring,
	}
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	Limit      int        `form:"limit,default=20"`
	Offset     int        `form:"offset,default=0"`
	Type       string     `form:"type"`
	CategoryID string     `form:"categoryID"`
	AccountID  string     `form:"accountID"`
	StartDate  *time.Time `form:"startDate" time_format:"2006-01-02"`
	EndDate    *time.Time `form:"endDate" time_format:"2006-01-02"`
	Search     string     `form:"search"`
}

// ToFilter converts list params into a domain filter.
func (p ListTransactionsParams) ToFilter() domain.TransactionFilter {
	return domain.TransactionFilter{
		Type:       domain.TransactionType(p.Type),
		CategoryID: p.CategoryID,
		AccountID:  p.AccountID,
		StartDate:  p.StartDate,
		EndDate:    p.EndDate,
		Search:     p.Search,
	}
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID string                 `json:"transactionID"`
	UserID        string                 `json:"userID"`
	AccountID     string                 `json:"accountID"`
	Amount        decimal.Decimal        `json:"amount"`
	Type          domain.TransactionType `json:"type"`
	CategoryID    string                 `json:"categoryID"`
	Description   string                 `json:"description"`
	Date          time.Time              `json:"date"`
	Tags          []string               `json:"tags"`
	ToAccountID   *string                `json:"toAccountID,omitempty"`
	GoalID        *string                `json:"goalID,omitempty"`
	IsEssential   bool                   `json:"isEssential"`
	IsRecurring   bool                   `json:"isRecurring"`
	Synced        bool                   `json:"synced"`
	CreatedAt     time.Time              `json:"createdAt"`
	LastUpdatedAt time.Time              `json:"lastUpdatedAt"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		UserID:        txn.UserID,
		AccountID:     txn.AccountID,
		Amount:        txn.Amount,
		Type:          txn.Type,
		CategoryID:    txn.CategoryID,
		Description:   txn.Description,
		Date:          txn.Date,
		Tags:          txn.Tags,
		ToAccountID:   txn.ToAccountID,
		GoalID:        txn.GoalID,
		IsEssential:   txn.IsEssential,
		IsRecurring:   txn.IsRecurring,
		Synced:        txn.Synced,
		CreatedAt:     txn.CreatedAt,
		LastUpdatedAt: txn.LastUpdatedAt,
	}
}

// ToTransactionResponses converts a slice of domain transactions.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return res
}
