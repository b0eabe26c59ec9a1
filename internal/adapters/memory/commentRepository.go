package memory

import (
	"context"
	"sort"
	"time"

	commentEntity "weblog/internal/core/comment"
	commentPort "weblog/internal/ports/comment"
)

// CommentRepositoryMemory implements the comment storage port on a Store.
type CommentRepositoryMemory struct {
	s *Store
}

func NewCommentRepositoryMemory(s *Store) *CommentRepositoryMemory {
	return &CommentRepositoryMemory{s: s}
}

func (repo *CommentRepositoryMemory) Create(ctx context.Context, c *commentEntity.Comment) (*commentEntity.Comment, error) {
	repo.s.mu.Lock()
	defer repo.s.mu.Unlock()

	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	repo.s.comments[c.ID.String()] = c
	return c, nil
}

func (repo *CommentRepositoryMemory) FindByID(ctx context.Context, id string) (*commentEntity.Comment, error) {
	repo.s.mu.RLock()
	defer repo.s.mu.RUnlock()

	c, ok := repo.s.comments[id]
	if !ok {
		return nil, commentPort.ErrNotFound
	}
	return repo.s.resolveComment(c), nil
}

func (repo *CommentRepositoryMemory) UpdateText(ctx context.Context, id, text string) error {
	repo.s.mu.Lock()
	defer repo.s.mu.Unlock()

	c, ok := repo.s.comments[id]
	if !ok {
		return commentPort.ErrNotFound
	}
	c.Text = text
	c.UpdatedAt = time.Now().UTC()
	return nil
}

func (repo *CommentRepositoryMemory) Delete(ctx context.Context, id string) error {
	repo.s.mu.Lock()
	defer repo.s.mu.Unlock()

	if _, ok := repo.s.comments[id]; !ok {
		return commentPort.ErrNotFound
	}
	delete(repo.s.comments, id)
	return nil
}

func (repo *CommentRepositoryMemory) FindByPostID(ctx context.Context, postID string) ([]*commentEntity.Comment, error) {
	repo.s.mu.RLock()
	defer repo.s.mu.RUnlock()

	comments := make([]*commentEntity.Comment, 0)
	for _, c := range repo.s.comments {
		if c.PostID.String() == postID {
			comments = append(comments, repo.s.resolveComment(c))
		}
	}
	sort.Slice(comments, func(i, j int) bool {
		return comments[i].CreatedAt.Before(comments[j].CreatedAt)
	})
	return comments, nil
}
