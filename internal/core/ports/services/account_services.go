package services

import (
	"context"

	"github.com/afkcodes/kakeibo/internal/core/domain"
	"github.com/afkcodes/kakeibo/internal/dto"
)

// AccountSvcFacade manages account records. Account balances are not mutable
// here; they belong to the ledger and goal engines.
type AccountSvcFacade interface {
	CreateAccount(ctx context.Context, userID string, req dto.CreateAccountRequest) (*domain.Account, error)
	GetAccountByID(ctx context.Context, userID string, accountID string) (*domain.Account, error)
	ListAccounts(ctx context.Context, userID string) ([]domain.Account, error)
	UpdateAccount(ctx context.Context, userID string, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error)
	DeactivateAccount(ctx context.Context, userID string, accountID string) error
	DeleteAccount(ctx context.Context, userID string, accountID string) error
}
