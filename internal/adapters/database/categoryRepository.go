package database

import (
	"context"
	"errors"

	"gorm.io/gorm"

	categoryEntity "weblog/internal/core/category"
	postEntity "weblog/internal/core/post"
	categoryPort "weblog/internal/ports/category"
)

// CategoryRepositoryDatabase implements the category storage port on MySQL.
type CategoryRepositoryDatabase struct {
	db *gorm.DB
}

func NewCategoryRepositoryDatabase(db *gorm.DB) *CategoryRepositoryDatabase {
	return &CategoryRepositoryDatabase{db: db}
}

func (repo *CategoryRepositoryDatabase) Create(ctx context.Context, c *categoryEntity.Category) (*categoryEntity.Category, error) {
	if err := repo.db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (repo *CategoryRepositoryDatabase) FindByID(ctx context.Context, id string) (*categoryEntity.Category, error) {
	var c categoryEntity.Category
	if err := repo.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, categoryPort.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (repo *CategoryRepositoryDatabase) FindPublishedBySlug(ctx context.Context, slug string) (*categoryEntity.Category, error) {
	var c categoryEntity.Category
	err := repo.db.WithContext(ctx).
		Where("slug = ? AND is_published = ?", slug, true).
		First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, categoryPort.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// Delete removes the category and nulls the reference on its posts; the
// posts themselves survive.
func (repo *CategoryRepositoryDatabase) Delete(ctx context.Context, id string) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&postEntity.Post{}).
			Where("category_id = ?", id).
			Update("category_id", nil).Error
		if err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&categoryEntity.Category{}).Error
	})
}
