package post

import (
	"context"
	"errors"
	"time"

	"weblog/internal/core/post"
	userPort "weblog/internal/ports/user"
)

var (
	ErrNotFound   = errors.New("post not found")
	ErrNotOwner   = errors.New("actor is not the post author")
	ErrValidation = errors.New("invalid post input")
)

// PostRepository is the outbound port for post storage. Listing methods
// return the matching window together with the total number of matches;
// a limit of 0 returns no rows, only the count.
type PostRepository interface {
	Create(ctx context.Context, p *post.Post) (*post.Post, error)
	// FindByID loads the post with its author, category and location.
	FindByID(ctx context.Context, id string) (*post.Post, error)
	// Update persists the given fields only; created_at and author_id are
	// never touched.
	Update(ctx context.Context, id string, fields map[string]interface{}) error
	// Delete removes the post and all of its comments.
	Delete(ctx context.Context, id string) error

	// FindVisible returns publicly visible posts, newest pub_date first.
	FindVisible(ctx context.Context, now time.Time, offset, limit int) ([]*post.Post, int64, error)
	// FindVisibleByCategory narrows FindVisible to one category.
	FindVisibleByCategory(ctx context.Context, categoryID string, now time.Time, offset, limit int) ([]*post.Post, int64, error)
	// FindByAuthor returns the author's posts, newest pub_date first.
	// When visibleOnly is set the public visibility predicate applies.
	FindByAuthor(ctx context.Context, authorID string, visibleOnly bool, now time.Time, offset, limit int) ([]*post.Post, int64, error)

	// CountComments returns the comment count per post id. Posts without
	// comments are absent from the map.
	CountComments(ctx context.Context, postIDs []string) (map[string]int64, error)
}

type CategoryDTO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Slug        string `json:"slug"`
}

type LocationDTO struct {
	Name string `json:"name"`
}

type PostDTO struct {
	ID           string            `json:"id"`
	Title        string            `json:"title"`
	Text         string            `json:"text"`
	PubDate      time.Time         `json:"pub_date"`
	Image        string            `json:"image,omitempty"`
	IsPublished  bool              `json:"is_published"`
	Author       *userPort.UserDTO `json:"author"`
	Category     *CategoryDTO      `json:"category,omitempty"`
	Location     *LocationDTO      `json:"location,omitempty"`
	CommentCount int64             `json:"comment_count"`
	CreatedAt    time.Time         `json:"created_at"`
}

// PageDTO is one page of a listing.
type PageDTO struct {
	Posts      []*PostDTO `json:"posts"`
	Page       int        `json:"page"`
	TotalPages int        `json:"total_pages"`
	TotalPosts int64      `json:"total_posts"`
	HasNext    bool       `json:"has_next"`
	HasPrev    bool       `json:"has_prev"`
}

// PostInput carries the author-editable post fields. The author itself is
// always stamped from the authenticated actor.
type PostInput struct {
	Title       string    `json:"title"`
	Text        string    `json:"text"`
	PubDate     time.Time `json:"pub_date"`
	Image       string    `json:"image"`
	IsPublished *bool     `json:"is_published"`
	CategoryID  *string   `json:"category_id"`
	LocationID  *string   `json:"location_id"`
}
