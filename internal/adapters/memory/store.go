package memory

import (
	"sync"

	"weblog/internal/core/category"
	"weblog/internal/core/comment"
	"weblog/internal/core/location"
	"weblog/internal/core/post"
	"weblog/internal/core/user"
)

// Store holds all entities in memory behind one lock. The repository types
// below expose it through the same ports the MySQL adapters implement, which
// lets the service tests run without a database.
type Store struct {
	mu         sync.RWMutex
	users      map[string]*user.User
	posts      map[string]*post.Post
	comments   map[string]*comment.Comment
	categories map[string]*category.Category
	locations  map[string]*location.Location
}

func NewStore() *Store {
	return &Store{
		users:      make(map[string]*user.User),
		posts:      make(map[string]*post.Post),
		comments:   make(map[string]*comment.Comment),
		categories: make(map[string]*category.Category),
		locations:  make(map[string]*location.Location),
	}
}

// resolvePost returns a copy of the post with its author, category and
// location attached, mirroring the Preload behavior of the MySQL adapter.
// Callers must hold at least the read lock.
func (s *Store) resolvePost(p *post.Post) *post.Post {
	resolved := *p
	if u, ok := s.users[p.AuthorID.String()]; ok {
		resolved.Author = *u
	}
	resolved.Category = nil
	if p.CategoryID != nil {
		if cat, ok := s.categories[p.CategoryID.String()]; ok {
			resolved.Category = cat
		}
	}
	resolved.Location = nil
	if p.LocationID != nil {
		if loc, ok := s.locations[p.LocationID.String()]; ok {
			resolved.Location = loc
		}
	}
	return &resolved
}

// resolveComment attaches the author, like resolvePost.
func (s *Store) resolveComment(c *comment.Comment) *comment.Comment {
	resolved := *c
	if u, ok := s.users[c.AuthorID.String()]; ok {
		resolved.Author = *u
	}
	return &resolved
}
