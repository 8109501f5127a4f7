package repository

import (
	"context"

	"beacon/internal/domain/entity"
	"beacon/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for category persistence.
var (
	// ErrCategoryNotFound is returned when a category is not found.
	ErrCategoryNotFound = errors.New("category not found")
)

// CategoryRepository defines the interface for category-related database operations.
type CategoryRepository interface {
	// FindAllCategories retrieves every category.
	FindAllCategories(ctx context.Context) ([]*entity.Category, error)

	// FindCategoryByID retrieves a category by its unique ID.
	FindCategoryByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
}
