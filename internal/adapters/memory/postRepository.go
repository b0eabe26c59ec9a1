package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/gofrs/uuid"

	postEntity "weblog/internal/core/post"
	postPort "weblog/internal/ports/post"
)

// PostRepositoryMemory implements the post storage port on a Store.
type PostRepositoryMemory struct {
	s *Store
}

func NewPostRepositoryMemory(s *Store) *PostRepositoryMemory {
	return &PostRepositoryMemory{s: s}
}

func (repo *PostRepositoryMemory) Create(ctx context.Context, p *postEntity.Post) (*postEntity.Post, error) {
	repo.s.mu.Lock()
	defer repo.s.mu.Unlock()

	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	repo.s.posts[p.ID.String()] = p
	return p, nil
}

func (repo *PostRepositoryMemory) FindByID(ctx context.Context, id string) (*postEntity.Post, error) {
	repo.s.mu.RLock()
	defer repo.s.mu.RUnlock()

	p, ok := repo.s.posts[id]
	if !ok {
		return nil, postPort.ErrNotFound
	}
	return repo.s.resolvePost(p), nil
}

func (repo *PostRepositoryMemory) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	repo.s.mu.Lock()
	defer repo.s.mu.Unlock()

	p, ok := repo.s.posts[id]
	if !ok {
		return postPort.ErrNotFound
	}

	for key, value := range fields {
		ok := true
		switch key {
		case "title":
			p.Title, ok = value.(string)
		case "text":
			p.Text, ok = value.(string)
		case "pub_date":
			p.PubDate, ok = value.(time.Time)
		case "image":
			p.Image, ok = value.(string)
		case "is_published":
			p.IsPublished, ok = value.(bool)
		case "category_id":
			p.CategoryID, ok = value.(*uuid.UUID)
		case "location_id":
			p.LocationID, ok = value.(*uuid.UUID)
		default:
			return fmt.Errorf("unknown post field %q", key)
		}
		if !ok {
			return fmt.Errorf("unexpected type %T for post field %q", value, key)
		}
	}
	p.UpdatedAt = time.Now().UTC()
	return nil
}

func (repo *PostRepositoryMemory) Delete(ctx context.Context, id string) error {
	repo.s.mu.Lock()
	defer repo.s.mu.Unlock()

	if _, ok := repo.s.posts[id]; !ok {
		return postPort.ErrNotFound
	}
	delete(repo.s.posts, id)
	for cid, c := range repo.s.comments {
		if c.PostID.String() == id {
			delete(repo.s.comments, cid)
		}
	}
	return nil
}

func (repo *PostRepositoryMemory) FindVisible(ctx context.Context, now time.Time, offset, limit int) ([]*postEntity.Post, int64, error) {
	repo.s.mu.RLock()
	defer repo.s.mu.RUnlock()

	return repo.window(repo.collect(func(p *postEntity.Post) bool {
		return p.VisibleAt(now)
	}), offset, limit)
}

func (repo *PostRepositoryMemory) FindVisibleByCategory(ctx context.Context, categoryID string, now time.Time, offset, limit int) ([]*postEntity.Post, int64, error) {
	repo.s.mu.RLock()
	defer repo.s.mu.RUnlock()

	return repo.window(repo.collect(func(p *postEntity.Post) bool {
		return p.CategoryID != nil && p.CategoryID.String() == categoryID && p.VisibleAt(now)
	}), offset, limit)
}

func (repo *PostRepositoryMemory) FindByAuthor(ctx context.Context, authorID string, visibleOnly bool, now time.Time, offset, limit int) ([]*postEntity.Post, int64, error) {
	repo.s.mu.RLock()
	defer repo.s.mu.RUnlock()

	return repo.window(repo.collect(func(p *postEntity.Post) bool {
		if p.AuthorID.String() != authorID {
			return false
		}
		return !visibleOnly || p.VisibleAt(now)
	}), offset, limit)
}

func (repo *PostRepositoryMemory) CountComments(ctx context.Context, postIDs []string) (map[string]int64, error) {
	repo.s.mu.RLock()
	defer repo.s.mu.RUnlock()

	wanted := make(map[string]bool, len(postIDs))
	for _, id := range postIDs {
		wanted[id] = true
	}

	counts := make(map[string]int64)
	for _, c := range repo.s.comments {
		if wanted[c.PostID.String()] {
			counts[c.PostID.String()]++
		}
	}
	return counts, nil
}

// collect filters resolved posts and sorts them newest pub_date first.
// Callers must hold the read lock.
func (repo *PostRepositoryMemory) collect(match func(*postEntity.Post) bool) []*postEntity.Post {
	matched := make([]*postEntity.Post, 0, len(repo.s.posts))
	for _, p := range repo.s.posts {
		resolved := repo.s.resolvePost(p)
		if match(resolved) {
			matched = append(matched, resolved)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].PubDate.After(matched[j].PubDate)
	})
	return matched
}

func (repo *PostRepositoryMemory) window(posts []*postEntity.Post, offset, limit int) ([]*postEntity.Post, int64, error) {
	total := int64(len(posts))
	if limit == 0 || offset >= len(posts) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(posts) {
		end = len(posts)
	}
	return posts[offset:end], total, nil
}
