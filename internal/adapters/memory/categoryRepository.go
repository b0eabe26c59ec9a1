package memory

import (
	"context"
	"time"

	categoryEntity "weblog/internal/core/category"
	categoryPort "weblog/internal/ports/category"
)

// CategoryRepositoryMemory implements the category storage port on a Store.
type CategoryRepositoryMemory struct {
	s *Store
}

func NewCategoryRepositoryMemory(s *Store) *CategoryRepositoryMemory {
	return &CategoryRepositoryMemory{s: s}
}

func (repo *CategoryRepositoryMemory) Create(ctx context.Context, c *categoryEntity.Category) (*categoryEntity.Category, error) {
	repo.s.mu.Lock()
	defer repo.s.mu.Unlock()

	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	repo.s.categories[c.ID.String()] = c
	return c, nil
}

func (repo *CategoryRepositoryMemory) FindByID(ctx context.Context, id string) (*categoryEntity.Category, error) {
	repo.s.mu.RLock()
	defer repo.s.mu.RUnlock()

	c, ok := repo.s.categories[id]
	if !ok {
		return nil, categoryPort.ErrNotFound
	}
	return c, nil
}

func (repo *CategoryRepositoryMemory) FindPublishedBySlug(ctx context.Context, slug string) (*categoryEntity.Category, error) {
	repo.s.mu.RLock()
	defer repo.s.mu.RUnlock()

	for _, c := range repo.s.categories {
		if c.Slug == slug && c.IsPublished {
			return c, nil
		}
	}
	return nil, categoryPort.ErrNotFound
}

// Delete removes the category and clears the reference on its posts.
func (repo *CategoryRepositoryMemory) Delete(ctx context.Context, id string) error {
	repo.s.mu.Lock()
	defer repo.s.mu.Unlock()

	if _, ok := repo.s.categories[id]; !ok {
		return categoryPort.ErrNotFound
	}
	delete(repo.s.categories, id)
	for _, p := range repo.s.posts {
		if p.CategoryID != nil && p.CategoryID.String() == id {
			p.CategoryID = nil
			p.Category = nil
		}
	}
	return nil
}
