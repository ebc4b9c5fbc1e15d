package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/afkcodes/kakeibo/internal/apperrors"
	"github.com/afkcodes/kakeibo/internal/core/domain"
	portsrepo "github.com/afkcodes/kakeibo/internal/core/ports/repositories"
	portssvc "github.com/afkcodes/kakeibo/internal/core/ports/services"
	"github.com/afkcodes/kakeibo/internal/dto"
	"github.com/afkcodes/kakeibo/internal/middleware"
)

// categoryService manages classification categories, including the defaults
// seeded for every new user.
type categoryService struct {
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categoryRepo portsrepo.CategoryRepositoryFacade) portssvc.CategorySvcFacade {
	return &categoryService{
		categoryRepo: categoryRepo,
	}
}

// Ensure categoryService implements the portssvc.CategorySvcFacade interface
var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

// CreateCategory creates a new custom category. Implements
// portssvc.CategorySvcFacade
func (s *categoryService) CreateCategory(ctx context.Context, userID string, req dto.CreateCategoryRequest) (*domain.Category, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.categoryRepo.ListCategoriesByUser(ctx, userID)
	if err != nil {
		logger.Error("Failed to list categories for ordering", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	now := time.Now().UTC()
	category := domain.Category{
		CategoryID: uuid.NewString(),
		UserID:     userID,
		Name:       req.Name,
		Type:       req.Type,
		Color:      req.Color,
		Icon:       req.Icon,
		ParentID:   req.ParentID,
		IsDefault:  false,
		Order:      len(existing),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		logger.Error("Failed to save category", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save category: %w", err)
	}

	logger.Info("Category created", slog.String("category_id", category.CategoryID))
	return &category, nil
}

// GetCategoryByID retrieves a category owned by the user. Implements
// portssvc.CategorySvcFacade
func (s *categoryService) GetCategoryByID(ctx context.Context, userID string, categoryID string) (*domain.Category, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find category by ID", slog.String("error", err.Error()), slog.String("category_id", categoryID))
		}
		return nil, fmt.Errorf("failed to find category %s: %w", categoryID, err)
	}
	if category.UserID != userID {
		return nil, fmt.Errorf("category %s: %w", categoryID, apperrors.ErrNotFound)
	}
	return category, nil
}

// ListCategories retrieves all of the user's categories. Implements
// portssvc.CategorySvcFacade
func (s *categoryService) ListCategories(ctx context.Context, userID string) ([]domain.Category, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	categories, err := s.categoryRepo.ListCategoriesByUser(ctx, userID)
	if err != nil {
		logger.Error("Failed to list categories", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// UpdateCategory replaces the mutable fields of a category. Implements
// portssvc.CategorySvcFacade
func (s *categoryService) UpdateCategory(ctx context.Context, userID string, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	category, err := s.GetCategoryByID(ctx, userID, categoryID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Color != nil {
		category.Color = *req.Color
	}
	if req.Icon != nil {
		category.Icon = *req.Icon
	}
	if req.ParentID != nil {
		category.ParentID = req.ParentID
	}
	if req.Order != nil {
		category.Order = *req.Order
	}
	category.LastUpdatedAt = time.Now().UTC()

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		logger.Error("Failed to update category", slog.String("error", err.Error()), slog.String("category_id", categoryID))
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	logger.Info("Category updated", slog.String("category_id", categoryID))
	return category, nil
}

// DeleteCategory removes a category. Transactions keep their categoryID even
// when the category is gone. Implements portssvc.CategorySvcFacade
func (s *categoryService) DeleteCategory(ctx context.Context, userID string, categoryID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.GetCategoryByID(ctx, userID, categoryID); err != nil {
		return err
	}

	if err := s.categoryRepo.DeleteCategory(ctx, categoryID); err != nil {
		logger.Error("Failed to delete category", slog.String("error", err.Error()), slog.String("category_id", categoryID))
		return fmt.Errorf("failed to delete category: %w", err)
	}

	logger.Info("Category deleted", slog.String("category_id", categoryID))
	return nil
}

// EnsureDefaultCategories seeds the standard expense and income categories
// for a user, inserting only the names not already present. Implements
// portssvc.CategorySvcFacade
func (s *categoryService) EnsureDefaultCategories(ctx context.Context, userID string) ([]domain.Category, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.categoryRepo.ListCategoriesByUser(ctx, userID)
	if err != nil {
		logger.Error("Failed to list categories for seeding", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	present := make(map[string]bool, len(existing))
	for _, c := range existing {
		present[c.Name] = true
	}

	now := time.Now().UTC()
	defaults := make([]domain.DefaultCategory, 0, len(domain.DefaultExpenseCategories)+len(domain.DefaultIncomeCategories))
	defaults = append(defaults, domain.DefaultExpenseCategories...)
	defaults = append(defaults, domain.DefaultIncomeCategories...)

	missing := make([]domain.Category, 0)
	for i, def := range defaults {
		if present[def.Name] {
			continue
		}
		missing = append(missing, domain.Category{
			CategoryID: uuid.NewString(),
			UserID:     userID,
			Name:       def.Name,
			Type:       def.Type,
			Color:      def.Color,
			Icon:       def.Icon,
			IsDefault:  true,
			Order:      len(existing) + i,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				LastUpdatedAt: now,
			},
		})
	}

	if len(missing) > 0 {
		if err := s.categoryRepo.SaveCategories(ctx, missing); err != nil {
			logger.Error("Failed to seed default categories", slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to seed default categories: %w", err)
		}
		logger.Info("Default categories seeded", slog.Int("count", len(missing)))
	}

	return s.categoryRepo.ListCategoriesByUser(ctx, userID)
}
