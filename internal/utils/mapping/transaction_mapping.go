package mapping

import (
	"github.com/afkcodes/kakeibo/internal/core/domain"
	"github.com/afkcodes/kakeibo/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		UserID:        d.UserID,
		AccountID:     d.AccountID,
		Amount:        d.Amount,
		Type:          models.TransactionType(d.Type),
		CategoryID:    d.CategoryID,
		Description:   d.Description,
		Date:          d.Date,
		Tags:          d.Tags,
		ToAccountID:   d.ToAccountID,
		GoalID:        d.GoalID,
		IsEssential:   d.IsEssential,
		IsRecurring:   d.IsRecurring,
		Synced:        d.Synced,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		UserID:        m.UserID,
		AccountID:     m.AccountID,
		Amount:        m.Amount,
		Type:          domain.TransactionType(m.Type),
		CategoryID:    m.CategoryID,
		Description:   m.Description,
		Date:          m.Date,
		Tags:          m.Tags,
		ToAccountID:   m.ToAccountID,
		GoalID:        m.GoalID,
		IsEssential:   m.IsEssential,
		IsRecurring:   m.IsRecurring,
		Synced:        m.Synced,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to a slice of domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
