package comment

import (
	"time"

	"github.com/gofrs/uuid"

	"weblog/internal/core/user"
)

type Comment struct {
	ID        uuid.UUID `gorm:"primary_key;type:char(36);default:uuid()"`
	Text      string    `gorm:"type:varchar(256);not null"`
	AuthorID  uuid.UUID `gorm:"type:char(36);not null"`
	Author    user.User `gorm:"foreignkey:AuthorID"`
	PostID    uuid.UUID `gorm:"type:char(36);not null;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// CanMutate reports whether the actor may edit or delete the comment.
func CanMutate(actorID uuid.UUID, c *Comment) bool {
	return actorID == c.AuthorID
}
