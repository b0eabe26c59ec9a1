package memory

import (
	"time"

	userEntity "weblog/internal/core/user"
	userPort "weblog/internal/ports/user"
)

// UserRepositoryMemory implements the user storage port on a Store.
type UserRepositoryMemory struct {
	s *Store
}

func NewUserRepositoryMemory(s *Store) *UserRepositoryMemory {
	return &UserRepositoryMemory{s: s}
}

func (repo *UserRepositoryMemory) Create(u *userEntity.User) (*userEntity.User, error) {
	repo.s.mu.Lock()
	defer repo.s.mu.Unlock()

	for _, existing := range repo.s.users {
		if existing.Username == u.Username {
			return nil, userPort.ErrUsernameTaken
		}
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	repo.s.users[u.ID.String()] = u
	return u, nil
}

func (repo *UserRepositoryMemory) FindByID(id string) (*userEntity.User, error) {
	repo.s.mu.RLock()
	defer repo.s.mu.RUnlock()

	u, ok := repo.s.users[id]
	if !ok {
		return nil, userPort.ErrNotFound
	}
	return u, nil
}

func (repo *UserRepositoryMemory) FindByUsername(username string) (*userEntity.User, error) {
	repo.s.mu.RLock()
	defer repo.s.mu.RUnlock()

	for _, u := range repo.s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, userPort.ErrNotFound
}

func (repo *UserRepositoryMemory) Update(u *userEntity.User) error {
	repo.s.mu.Lock()
	defer repo.s.mu.Unlock()

	if _, ok := repo.s.users[u.ID.String()]; !ok {
		return userPort.ErrNotFound
	}
	u.UpdatedAt = time.Now().UTC()
	repo.s.users[u.ID.String()] = u
	return nil
}

// Delete removes the user, their posts and every comment on or by them.
func (repo *UserRepositoryMemory) Delete(id string) error {
	repo.s.mu.Lock()
	defer repo.s.mu.Unlock()

	if _, ok := repo.s.users[id]; !ok {
		return userPort.ErrNotFound
	}

	ownPosts := make(map[string]bool)
	for pid, p := range repo.s.posts {
		if p.AuthorID.String() == id {
			ownPosts[pid] = true
			delete(repo.s.posts, pid)
		}
	}
	for cid, c := range repo.s.comments {
		if c.AuthorID.String() == id || ownPosts[c.PostID.String()] {
			delete(repo.s.comments, cid)
		}
	}
	delete(repo.s.users, id)
	return nil
}
