package commentapp

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/gofrs/uuid"

	commentEntity "weblog/internal/core/comment"
	"weblog/internal/core/moderation"
	commentPort "weblog/internal/ports/comment"
	postPort "weblog/internal/ports/post"
	userPort "weblog/internal/ports/user"
)

// CommentService implements the comment use cases.
type CommentService struct {
	CommentRepository commentPort.CommentRepository
	PostRepository    postPort.PostRepository
	Moderation        *moderation.Filter
}

func NewCommentService(commentRepo commentPort.CommentRepository, postRepo postPort.PostRepository, filter *moderation.Filter) *CommentService {
	return &CommentService{
		CommentRepository: commentRepo,
		PostRepository:    postRepo,
		Moderation:        filter,
	}
}

// CreateComment attaches a new comment by the actor to an existing post.
func (s *CommentService) CreateComment(ctx context.Context, actorID, postID, text string) (*commentPort.CommentDTO, error) {
	aid, err := uuid.FromString(actorID)
	if err != nil {
		return nil, fmt.Errorf("invalid actor id: %w", err)
	}

	p, err := s.PostRepository.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if err := s.validate(text); err != nil {
		return nil, err
	}

	c := &commentEntity.Comment{
		ID:       uuid.Must(uuid.NewV4()),
		Text:     text,
		AuthorID: aid,
		PostID:   p.ID,
	}

	created, err := s.CommentRepository.Create(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	// Reload to resolve the author association.
	loaded, err := s.CommentRepository.FindByID(ctx, created.ID.String())
	if err != nil {
		return nil, err
	}
	return toDTO(loaded), nil
}

// UpdateComment changes the text of the actor's own comment.
func (s *CommentService) UpdateComment(ctx context.Context, actorID, commentID, text string) (*commentPort.CommentDTO, error) {
	c, err := s.CommentRepository.FindByID(ctx, commentID)
	if err != nil {
		return nil, err
	}

	aid, err := uuid.FromString(actorID)
	if err != nil || !commentEntity.CanMutate(aid, c) {
		return nil, commentPort.ErrNotOwner
	}

	if err := s.validate(text); err != nil {
		return nil, err
	}

	if err := s.CommentRepository.UpdateText(ctx, commentID, text); err != nil {
		return nil, err
	}

	loaded, err := s.CommentRepository.FindByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	return toDTO(loaded), nil
}

// DeleteComment removes the actor's own comment.
func (s *CommentService) DeleteComment(ctx context.Context, actorID, commentID string) error {
	c, err := s.CommentRepository.FindByID(ctx, commentID)
	if err != nil {
		return err
	}

	aid, err := uuid.FromString(actorID)
	if err != nil || !commentEntity.CanMutate(aid, c) {
		return commentPort.ErrNotOwner
	}

	return s.CommentRepository.Delete(ctx, commentID)
}

func (s *CommentService) validate(text string) error {
	if text == "" {
		return fmt.Errorf("%w: text is required", commentPort.ErrValidation)
	}
	if utf8.RuneCountInString(text) > 256 {
		return fmt.Errorf("%w: text must be at most 256 characters", commentPort.ErrValidation)
	}
	if !s.Moderation.IsClean(text) {
		return fmt.Errorf("%w: text contains a blocked term", commentPort.ErrValidation)
	}
	return nil
}

func toDTO(c *commentEntity.Comment) *commentPort.CommentDTO {
	return &commentPort.CommentDTO{
		ID:   c.ID.String(),
		Text: c.Text,
		Author: &userPort.UserDTO{
			ID:       c.Author.ID.String(),
			Username: c.Author.Username,
		},
		PostID:    c.PostID.String(),
		CreatedAt: c.CreatedAt,
	}
}
