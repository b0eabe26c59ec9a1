package database

import (
	"context"
	"errors"

	"gorm.io/gorm"

	commentEntity "weblog/internal/core/comment"
	commentPort "weblog/internal/ports/comment"
)

// CommentRepositoryDatabase implements the comment storage port on MySQL.
type CommentRepositoryDatabase struct {
	db *gorm.DB
}

func NewCommentRepositoryDatabase(db *gorm.DB) *CommentRepositoryDatabase {
	return &CommentRepositoryDatabase{db: db}
}

func (repo *CommentRepositoryDatabase) Create(ctx context.Context, c *commentEntity.Comment) (*commentEntity.Comment, error) {
	if err := repo.db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (repo *CommentRepositoryDatabase) FindByID(ctx context.Context, id string) (*commentEntity.Comment, error) {
	var c commentEntity.Comment
	if err := repo.db.WithContext(ctx).Preload("Author").First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commentPort.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (repo *CommentRepositoryDatabase) UpdateText(ctx context.Context, id, text string) error {
	return repo.db.WithContext(ctx).
		Model(&commentEntity.Comment{}).
		Where("id = ?", id).
		Update("text", text).Error
}

func (repo *CommentRepositoryDatabase) Delete(ctx context.Context, id string) error {
	return repo.db.WithContext(ctx).Where("id = ?", id).Delete(&commentEntity.Comment{}).Error
}

func (repo *CommentRepositoryDatabase) FindByPostID(ctx context.Context, postID string) ([]*commentEntity.Comment, error) {
	var comments []*commentEntity.Comment
	err := repo.db.WithContext(ctx).
		Preload("Author").
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}
