package database

import (
	"errors"

	"gorm.io/gorm"

	commentEntity "weblog/internal/core/comment"
	postEntity "weblog/internal/core/post"
	userEntity "weblog/internal/core/user"
	userPort "weblog/internal/ports/user"
)

// UserRepositoryDatabase implements the user storage port on MySQL.
type UserRepositoryDatabase struct {
	db *gorm.DB
}

func NewUserRepositoryDatabase(db *gorm.DB) *UserRepositoryDatabase {
	return &UserRepositoryDatabase{db: db}
}

func (repo *UserRepositoryDatabase) Create(u *userEntity.User) (*userEntity.User, error) {
	if err := repo.db.Create(u).Error; err != nil {
		return nil, err
	}
	return u, nil
}

func (repo *UserRepositoryDatabase) FindByID(id string) (*userEntity.User, error) {
	var u userEntity.User
	if err := repo.db.First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, userPort.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (repo *UserRepositoryDatabase) FindByUsername(username string) (*userEntity.User, error) {
	var u userEntity.User
	if err := repo.db.Where("username = ?", username).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, userPort.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (repo *UserRepositoryDatabase) Update(u *userEntity.User) error {
	return repo.db.Save(u).Error
}

// Delete removes the user and cascades to their posts, the comments on those
// posts and the comments they authored elsewhere.
func (repo *UserRepositoryDatabase) Delete(id string) error {
	return repo.db.Transaction(func(tx *gorm.DB) error {
		var postIDs []string
		if err := tx.Model(&postEntity.Post{}).Where("author_id = ?", id).Pluck("id", &postIDs).Error; err != nil {
			return err
		}
		if len(postIDs) > 0 {
			if err := tx.Where("post_id IN ?", postIDs).Delete(&commentEntity.Comment{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("author_id = ?", id).Delete(&commentEntity.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("author_id = ?", id).Delete(&postEntity.Post{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&userEntity.User{}).Error
	})
}
