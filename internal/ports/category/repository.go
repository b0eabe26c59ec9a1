package category

import (
	"context"
	"errors"

	"weblog/internal/core/category"
)

var ErrNotFound = errors.New("category not found")

// CategoryRepository is the outbound port for category storage.
type CategoryRepository interface {
	Create(ctx context.Context, c *category.Category) (*category.Category, error)
	FindByID(ctx context.Context, id string) (*category.Category, error)
	// FindPublishedBySlug returns ErrNotFound for unknown and unpublished
	// slugs alike.
	FindPublishedBySlug(ctx context.Context, slug string) (*category.Category, error)
	// Delete removes the category and clears the reference on its posts.
	Delete(ctx context.Context, id string) error
}
