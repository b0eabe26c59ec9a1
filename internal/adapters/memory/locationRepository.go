package memory

import (
	"context"
	"time"

	locationEntity "weblog/internal/core/location"
	locationPort "weblog/internal/ports/location"
)

// LocationRepositoryMemory implements the location storage port on a Store.
type LocationRepositoryMemory struct {
	s *Store
}

func NewLocationRepositoryMemory(s *Store) *LocationRepositoryMemory {
	return &LocationRepositoryMemory{s: s}
}

func (repo *LocationRepositoryMemory) Create(ctx context.Context, l *locationEntity.Location) (*locationEntity.Location, error) {
	repo.s.mu.Lock()
	defer repo.s.mu.Unlock()

	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now().UTC()
	}
	repo.s.locations[l.ID.String()] = l
	return l, nil
}

func (repo *LocationRepositoryMemory) FindByID(ctx context.Context, id string) (*locationEntity.Location, error) {
	repo.s.mu.RLock()
	defer repo.s.mu.RUnlock()

	l, ok := repo.s.locations[id]
	if !ok {
		return nil, locationPort.ErrNotFound
	}
	return l, nil
}

// Delete removes the location and clears the reference on its posts.
func (repo *LocationRepositoryMemory) Delete(ctx context.Context, id string) error {
	repo.s.mu.Lock()
	defer repo.s.mu.Unlock()

	if _, ok := repo.s.locations[id]; !ok {
		return locationPort.ErrNotFound
	}
	delete(repo.s.locations, id)
	for _, p := range repo.s.posts {
		if p.LocationID != nil && p.LocationID.String() == id {
			p.LocationID = nil
			p.Location = nil
		}
	}
	return nil
}
