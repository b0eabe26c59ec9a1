package post

import (
	"time"

	"github.com/gofrs/uuid"

	"weblog/internal/core/category"
	"weblog/internal/core/location"
	"weblog/internal/core/user"
)

type Post struct {
	ID          uuid.UUID `gorm:"primary_key;type:char(36);default:uuid()"`
	Title       string    `gorm:"type:varchar(256);not null"`
	Text        string    `gorm:"type:text;not null"`
	PubDate     time.Time `gorm:"not null;index"`
	Image       string
	IsPublished bool       `gorm:"not null;default:true"`
	AuthorID    uuid.UUID  `gorm:"type:char(36);not null;index"`
	Author      user.User  `gorm:"foreignkey:AuthorID"`
	CategoryID  *uuid.UUID `gorm:"type:char(36);index"`
	Category    *category.Category
	LocationID  *uuid.UUID `gorm:"type:char(36)"`
	Location    *location.Location
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

// VisibleAt reports whether the post is publicly visible at the given time:
// published, not scheduled for the future, and not hidden behind an
// unpublished category. The Category association must be loaded when
// CategoryID is set.
func (p *Post) VisibleAt(now time.Time) bool {
	if !p.IsPublished || p.PubDate.After(now) {
		return false
	}
	if p.CategoryID == nil {
		return true
	}
	return p.Category != nil && p.Category.IsPublished
}

// CanMutate reports whether the actor may edit or delete the post.
func CanMutate(actorID uuid.UUID, p *Post) bool {
	return actorID == p.AuthorID
}
