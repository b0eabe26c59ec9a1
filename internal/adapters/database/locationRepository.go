package database

import (
	"context"
	"errors"

	"gorm.io/gorm"

	locationEntity "weblog/internal/core/location"
	postEntity "weblog/internal/core/post"
	locationPort "weblog/internal/ports/location"
)

// LocationRepositoryDatabase implements the location storage port on MySQL.
type LocationRepositoryDatabase struct {
	db *gorm.DB
}

func NewLocationRepositoryDatabase(db *gorm.DB) *LocationRepositoryDatabase {
	return &LocationRepositoryDatabase{db: db}
}

func (repo *LocationRepositoryDatabase) Create(ctx context.Context, l *locationEntity.Location) (*locationEntity.Location, error) {
	if err := repo.db.WithContext(ctx).Create(l).Error; err != nil {
		return nil, err
	}
	return l, nil
}

func (repo *LocationRepositoryDatabase) FindByID(ctx context.Context, id string) (*locationEntity.Location, error) {
	var l locationEntity.Location
	if err := repo.db.WithContext(ctx).First(&l, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, locationPort.ErrNotFound
		}
		return nil, err
	}
	return &l, nil
}

// Delete removes the location and nulls the reference on its posts.
func (repo *LocationRepositoryDatabase) Delete(ctx context.Context, id string) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&postEntity.Post{}).
			Where("location_id = ?", id).
			Update("location_id", nil).Error
		if err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&locationEntity.Location{}).Error
	})
}
