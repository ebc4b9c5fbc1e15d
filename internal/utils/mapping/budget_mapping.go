package mapping

import (
	"github.com/afkcodes/kakeibo/internal/core/domain"
	"github.com/afkcodes/kakeibo/internal/models"
)

// ToModelBudget converts a domain Budget to a model Budget
func ToModelBudget(d domain.Budget) models.Budget {
	return models.Budget{
		BudgetID:       d.BudgetID,
		UserID:         d.UserID,
		CategoryID:     d.CategoryID,
		Amount:         d.Amount,
		Period:         models.BudgetPeriod(d.Period),
		StartDate:      d.StartDate,
		EndDate:        d.EndDate,
		Rollover:       d.Rollover,
		AlertThreshold: d.AlertThreshold,
		AlertsEnabled:  d.AlertsEnabled,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// ToDomainBudget converts a model Budget to a domain Budget
func ToDomainBudget(m models.Budget) domain.Budget {
	return domain.Budget{
		BudgetID:       m.BudgetID,
		UserID:         m.UserID,
		CategoryID:     m.CategoryID,
		Amount:         m.Amount,
		Period:         domain.BudgetPeriod(m.Period),
		StartDate:      m.StartDate,
		EndDate:        m.EndDate,
		Rollover:       m.Rollover,
		AlertThreshold: m.AlertThreshold,
		AlertsEnabled:  m.AlertsEnabled,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// ToDomainBudgetSlice converts a slice of model Budgets to a slice of domain Budgets
func ToDomainBudgetSlice(ms []models.Budget) []domain.Budget {
	ds := make([]domain.Budget, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBudget(m)
	}
	return ds
}
