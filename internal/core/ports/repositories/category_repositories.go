package repositories

import (
	"context"

	"github.com/afkcodes/kakeibo/internal/core/domain"
)

// CategoryReader defines read operations for category data.
type CategoryReader interface {
	// FindCategoryByID retrieves a specific category.
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)

	// ListCategoriesByUser retrieves all of a user's categories ordered by
	// their display order.
	ListCategoriesByUser(ctx context.Context, userID string) ([]domain.Category, error)
}

// CategoryWriter defines write operations for category data.
type CategoryWriter interface {
	// SaveCategory persists a new category.
	SaveCategory(ctx context.Context, category domain.Category) error

	// SaveCategories persists a batch of new categories.
	SaveCategories(ctx context.Context, categories []domain.Category) error

	// UpdateCategory replaces the mutable fields of a category.
	UpdateCategory(ctx context.Context, category domain.Category) error

	// DeleteCategory removes a category.
	DeleteCategory(ctx context.Context, categoryID string) error
}

// CategoryRepositoryFacade combines all category-related repository
// interfaces.
type CategoryRepositoryFacade interface {
	CategoryReader
	CategoryWriter
}
