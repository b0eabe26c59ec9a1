package database

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	commentEntity "weblog/internal/core/comment"
	postEntity "weblog/internal/core/post"
	postPort "weblog/internal/ports/post"
)

// PostRepositoryDatabase implements the post storage port on MySQL.
type PostRepositoryDatabase struct {
	db *gorm.DB
}

func NewPostRepositoryDatabase(db *gorm.DB) *PostRepositoryDatabase {
	return &PostRepositoryDatabase{db: db}
}

func (repo *PostRepositoryDatabase) Create(ctx context.Context, p *postEntity.Post) (*postEntity.Post, error) {
	if err := repo.db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (repo *PostRepositoryDatabase) FindByID(ctx context.Context, id string) (*postEntity.Post, error) {
	var p postEntity.Post
	err := repo.db.WithContext(ctx).
		Preload("Author").
		Preload("Category").
		Preload("Location").
		First(&p, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, postPort.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (repo *PostRepositoryDatabase) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	return repo.db.WithContext(ctx).
		Model(&postEntity.Post{}).
		Where("id = ?", id).
		Updates(fields).Error
}

// Delete removes the post and its comments in one transaction.
func (repo *PostRepositoryDatabase) Delete(ctx context.Context, id string) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&commentEntity.Comment{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&postEntity.Post{}).Error
	})
}

// visibleScope restricts a posts query to publicly visible rows: published,
// pub_date not in the future and the category either absent or published.
func visibleScope(now time.Time) func(tx *gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.
			Joins("LEFT JOIN categories ON categories.id = posts.category_id").
			Where("posts.is_published = ? AND posts.pub_date <= ? AND (posts.category_id IS NULL OR categories.is_published = ?)",
				true, now, true)
	}
}

func (repo *PostRepositoryDatabase) FindVisible(ctx context.Context, now time.Time, offset, limit int) ([]*postEntity.Post, int64, error) {
	var total int64
	err := repo.db.WithContext(ctx).
		Model(&postEntity.Post{}).
		Scopes(visibleScope(now)).
		Count(&total).Error
	if err != nil || limit == 0 {
		return nil, total, err
	}

	var posts []*postEntity.Post
	err = repo.db.WithContext(ctx).
		Scopes(visibleScope(now)).
		Preload("Author").
		Preload("Category").
		Preload("Location").
		Order("posts.pub_date DESC").
		Offset(offset).
		Limit(limit).
		Find(&posts).Error
	return posts, total, err
}

func (repo *PostRepositoryDatabase) FindVisibleByCategory(ctx context.Context, categoryID string, now time.Time, offset, limit int) ([]*postEntity.Post, int64, error) {
	var total int64
	err := repo.db.WithContext(ctx).
		Model(&postEntity.Post{}).
		Scopes(visibleScope(now)).
		Where("posts.category_id = ?", categoryID).
		Count(&total).Error
	if err != nil || limit == 0 {
		return nil, total, err
	}

	var posts []*postEntity.Post
	err = repo.db.WithContext(ctx).
		Scopes(visibleScope(now)).
		Where("posts.category_id = ?", categoryID).
		Preload("Author").
		Preload("Category").
		Preload("Location").
		Order("posts.pub_date DESC").
		Offset(offset).
		Limit(limit).
		Find(&posts).Error
	return posts, total, err
}

func (repo *PostRepositoryDatabase) FindByAuthor(ctx context.Context, authorID string, visibleOnly bool, now time.Time, offset, limit int) ([]*postEntity.Post, int64, error) {
	base := func() *gorm.DB {
		q := repo.db.WithContext(ctx).Model(&postEntity.Post{}).Where("posts.author_id = ?", authorID)
		if visibleOnly {
			q = q.Scopes(visibleScope(now))
		}
		return q
	}

	var total int64
	if err := base().Count(&total).Error; err != nil || limit == 0 {
		return nil, total, err
	}

	var posts []*postEntity.Post
	err := base().
		Preload("Author").
		Preload("Category").
		Preload("Location").
		Order("posts.pub_date DESC").
		Offset(offset).
		Limit(limit).
		Find(&posts).Error
	return posts, total, err
}

func (repo *PostRepositoryDatabase) CountComments(ctx context.Context, postIDs []string) (map[string]int64, error) {
	var rows []struct {
		PostID string
		Total  int64
	}
	err := repo.db.WithContext(ctx).
		Model(&commentEntity.Comment{}).
		Select("post_id, COUNT(*) AS total").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.PostID] = r.Total
	}
	return counts, nil
}
