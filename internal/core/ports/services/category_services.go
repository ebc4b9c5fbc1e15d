package services

import (
	"context"

	"github.com/afkcodes/kakeibo/internal/core/domain"
	"github.com/afkcodes/kakeibo/internal/dto"
)

// CategorySvcFacade manages classification categories.
type CategorySvcFacade interface {
	CreateCategory(ctx context.Context, userID string, req dto.CreateCategoryRequest) (*domain.Category, error)
	GetCategoryByID(ctx context.Context, userID string, categoryID string) (*domain.Category, error)
	ListCategories(ctx context.Context, userID string) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, userID string, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error)
	DeleteCategory(ctx context.Context, userID string, categoryID string) error

	// EnsureDefaultCategories seeds the default expense/income categories a
	// new user starts with, inserting only the ones not already present.
	EnsureDefaultCategories(ctx context.Context, userID string) ([]domain.Category, error)
}
