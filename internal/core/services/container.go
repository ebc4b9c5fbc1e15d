package services

import (
	portsrepo "github.com/afkcodes/kakeibo/internal/core/ports/repositories"
	portssvc "github.com/afkcodes/kakeibo/internal/core/ports/services"
)

// NewServiceContainer wires every service from the repository provider. The
// handlers depend only on the returned container.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	accountSvc := NewAccountService(repos.AccountRepo)
	ledgerSvc := NewLedgerService(repos.LedgerRepo, repos.AccountRepo)
	goalSvc := NewGoalService(repos.GoalRepo, repos.AccountRepo, repos.LedgerRepo)
	budgetSvc := NewBudgetService(repos.BudgetRepo, repos.LedgerRepo)
	categorySvc := NewCategoryService(repos.CategoryRepo)
	reportingSvc := NewReportingService(repos.AccountRepo, repos.LedgerRepo, repos.GoalRepo)
	userSvc := NewUserService(repos.UserRepo, categorySvc)

	return &portssvc.ServiceContainer{
		Account:   accountSvc,
		Ledger:    ledgerSvc,
		Goal:      goalSvc,
		Budget:    budgetSvc,
		Category:  categorySvc,
		Reporting: reportingSvc,
		User:      userSvc,
	}
}
