package dto

import (
	"github.com/afkcodes/kakeibo/internal/core/domain"
)

// CreateCategoryRequest defines the data needed to create a category.
type CreateCategoryRequest struct {
	Name     string              `json:"name" binding:"required"`
	Type     domain.CategoryType `json:"type" binding:"required,oneof=expense income"`
	Color    string              `json:"color" binding:"required"`
	Icon     string              `json:"icon" binding:"required"`
	ParentID *string             `json:"parentID"`
}

// UpdateCategoryRequest defines the data allowed for updating a category.
type UpdateCategoryRequest struct {
	Name     *string `json:"name"`
	Color    *string `json:"color"`
	Icon     *string `json:"icon"`
	ParentID *string `json:"parentID"`
	Order    *int    `json:"order"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	CategoryID string              `json:"categoryID"`
	UserID     string              `json:"userID"`
	Name       string              `json:"name"`
	Type       domain.CategoryType `json:"type"`
	Color      string              `json:"color"`
	Icon       string              `json:"icon"`
	ParentID   *string             `json:"parentID,omitempty"`
	IsDefault  bool                `json:"isDefault"`
	Order      int                 `json:"order"`
}

// ToCategoryResponse converts a domain.Category to its response DTO.
func ToCategoryResponse(cat *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID: cat.CategoryID,
		UserID:     cat.UserID,
		Name:       cat.Name,
		Type:       cat.Type,
		Color:      cat.Color,
		Icon:       cat.Icon,
		ParentID:   cat.ParentID,
		IsDefault:  cat.IsDefault,
		Order:      cat.Order,
	}
}

// ToCategoryResponses converts a slice of domain categories.
func ToCategoryResponses(cats []domain.Category) []CategoryResponse {
	res := make([]CategoryResponse, len(cats))
	for i := range cats {
		res[i] = ToCategoryResponse(&cats[i])
	}
	return res
}
