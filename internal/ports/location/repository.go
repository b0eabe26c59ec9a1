package location

import (
	"context"
	"errors"

	"weblog/internal/core/location"
)

var ErrNotFound = errors.New("location not found")

// LocationRepository is the outbound port for location storage.
type LocationRepository interface {
	Create(ctx context.Context, l *location.Location) (*location.Location, error)
	FindByID(ctx context.Context, id string) (*location.Location, error)
	// Delete removes the location and clears the reference on its posts.
	Delete(ctx context.Context, id string) error
}
