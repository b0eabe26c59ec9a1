package location

import (
	"time"

	"github.com/gofrs/uuid"
)

type Location struct {
	ID          uuid.UUID `gorm:"primary_key;type:char(36);default:uuid()"`
	Name        string    `gorm:"type:varchar(256);not null"`
	IsPublished bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}
