package category

import (
	"time"

	"github.com/gofrs/uuid"
)

type Category struct {
	ID          uuid.UUID `gorm:"primary_key;type:char(36);default:uuid()"`
	Title       string    `gorm:"type:varchar(256);not null"`
	Description string    `gorm:"type:text;not null"`
	Slug        string    `gorm:"unique;not null"`
	IsPublished bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}
