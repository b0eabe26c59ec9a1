package comment

import (
	"context"
	"errors"
	"time"

	"weblog/internal/core/comment"
	userPort "weblog/internal/ports/user"
)

var (
	ErrNotFound   = errors.New("comment not found")
	ErrNotOwner   = errors.New("actor is not the comment author")
	ErrValidation = errors.New("invalid comment input")
)

// CommentRepository is the outbound port for comment storage.
type CommentRepository interface {
	Create(ctx context.Context, c *comment.Comment) (*comment.Comment, error)
	FindByID(ctx context.Context, id string) (*comment.Comment, error)
	// UpdateText changes the comment text only.
	UpdateText(ctx context.Context, id, text string) error
	Delete(ctx context.Context, id string) error
	// FindByPostID returns the post's comments with their authors loaded,
	// oldest first.
	FindByPostID(ctx context.Context, postID string) ([]*comment.Comment, error)
}

type CommentDTO struct {
	ID        string            `json:"id"`
	Text      string            `json:"text"`
	Author    *userPort.UserDTO `json:"author"`
	PostID    string            `json:"post_id"`
	CreatedAt time.Time         `json:"created_at"`
}
