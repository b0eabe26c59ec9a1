package postapp

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/gofrs/uuid"

	"weblog/internal/core/moderation"
	"weblog/internal/core/pagination"
	postEntity "weblog/internal/core/post"
	categoryPort "weblog/internal/ports/category"
	commentPort "weblog/internal/ports/comment"
	locationPort "weblog/internal/ports/location"
	postPort "weblog/internal/ports/post"
	userPort "weblog/internal/ports/user"
)

// PostService implements the listing and mutation use cases for posts.
type PostService struct {
	PostRepository     postPort.PostRepository
	CategoryRepository categoryPort.CategoryRepository
	LocationRepository locationPort.LocationRepository
	CommentRepository  commentPort.CommentRepository
	UserRepository     userPort.UserRepository
	Moderation         *moderation.Filter
}

func NewPostService(
	postRepo postPort.PostRepository,
	categoryRepo categoryPort.CategoryRepository,
	locationRepo locationPort.LocationRepository,
	commentRepo commentPort.CommentRepository,
	userRepo userPort.UserRepository,
	filter *moderation.Filter,
) *PostService {
	return &PostService{
		PostRepository:     postRepo,
		CategoryRepository: categoryRepo,
		LocationRepository: locationRepo,
		CommentRepository:  commentRepo,
		UserRepository:     userRepo,
		Moderation:         filter,
	}
}

// CreatePost stores a new post authored by the actor. The author always
// comes from the authenticated identity, never from the input.
func (s *PostService) CreatePost(ctx context.Context, actorID string, in postPort.PostInput) (*postPort.PostDTO, error) {
	aid, err := uuid.FromString(actorID)
	if err != nil {
		return nil, fmt.Errorf("invalid actor id: %w", err)
	}

	if err := s.validate(in.Title, in.Text, in.PubDate); err != nil {
		return nil, err
	}

	p := &postEntity.Post{
		ID:          uuid.Must(uuid.NewV4()),
		Title:       in.Title,
		Text:        in.Text,
		PubDate:     in.PubDate,
		Image:       in.Image,
		IsPublished: true,
		AuthorID:    aid,
	}
	if in.IsPublished != nil {
		p.IsPublished = *in.IsPublished
	}
	if p.CategoryID, p.LocationID, err = s.resolveRefs(ctx, in); err != nil {
		return nil, err
	}

	created, err := s.PostRepository.Create(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	// Reload to resolve the author/category/location associations.
	loaded, err := s.PostRepository.FindByID(ctx, created.ID.String())
	if err != nil {
		return nil, err
	}
	return s.toDTO(loaded, actorID, nil), nil
}

// UpdatePost applies the input to the actor's own post. Posts of other
// authors are left untouched and reported via ErrNotOwner.
func (s *PostService) UpdatePost(ctx context.Context, actorID, postID string, in postPort.PostInput) (*postPort.PostDTO, error) {
	p, err := s.PostRepository.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	aid, err := uuid.FromString(actorID)
	if err != nil || !postEntity.CanMutate(aid, p) {
		return nil, postPort.ErrNotOwner
	}

	if err := s.validate(in.Title, in.Text, in.PubDate); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{
		"title":    in.Title,
		"text":     in.Text,
		"pub_date": in.PubDate,
		"image":    in.Image,
	}
	if in.IsPublished != nil {
		fields["is_published"] = *in.IsPublished
	}
	cid, lid, err := s.resolveRefs(ctx, in)
	if err != nil {
		return nil, err
	}
	fields["category_id"] = cid
	fields["location_id"] = lid

	if err := s.PostRepository.Update(ctx, postID, fields); err != nil {
		return nil, err
	}

	loaded, err := s.PostRepository.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	return s.toDTO(loaded, actorID, nil), nil
}

// DeletePost removes the actor's own post together with its comments.
func (s *PostService) DeletePost(ctx context.Context, actorID, postID string) error {
	p, err := s.PostRepository.FindByID(ctx, postID)
	if err != nil {
		return err
	}

	aid, err := uuid.FromString(actorID)
	if err != nil || !postEntity.CanMutate(aid, p) {
		return postPort.ErrNotOwner
	}

	return s.PostRepository.Delete(ctx, postID)
}

// GetPost returns the post with its comments in creation order. There is no
// visibility gate on the detail view.
func (s *PostService) GetPost(ctx context.Context, viewerID, postID string) (*postPort.PostDTO, []*commentPort.CommentDTO, error) {
	p, err := s.PostRepository.FindByID(ctx, postID)
	if err != nil {
		return nil, nil, err
	}

	counts, err := s.PostRepository.CountComments(ctx, []string{postID})
	if err != nil {
		return nil, nil, err
	}

	comments, err := s.CommentRepository.FindByPostID(ctx, postID)
	if err != nil {
		return nil, nil, err
	}

	dtos := make([]*commentPort.CommentDTO, 0, len(comments))
	for _, c := range comments {
		dtos = append(dtos, &commentPort.CommentDTO{
			ID:   c.ID.String(),
			Text: c.Text,
			Author: &userPort.UserDTO{
				ID:       c.Author.ID.String(),
				Username: c.Author.Username,
			},
			PostID:    c.PostID.String(),
			CreatedAt: c.CreatedAt,
		})
	}

	return s.toDTO(p, viewerID, counts), dtos, nil
}

// HomeListing returns the page of publicly visible posts, newest first.
func (s *PostService) HomeListing(ctx context.Context, viewerID string, page int) (*postPort.PageDTO, error) {
	now := time.Now()
	_, total, err := s.PostRepository.FindVisible(ctx, now, 0, 0)
	if err != nil {
		return nil, err
	}

	pg := pagination.Resolve(page, total)
	posts, _, err := s.PostRepository.FindVisible(ctx, now, pg.Offset(), pagination.PerPage)
	if err != nil {
		return nil, err
	}
	return s.buildPage(ctx, posts, viewerID, pg)
}

// CategoryListing returns the page of visible posts in a published category.
func (s *PostService) CategoryListing(ctx context.Context, viewerID, slug string, page int) (*postPort.PageDTO, *postPort.CategoryDTO, error) {
	cat, err := s.CategoryRepository.FindPublishedBySlug(ctx, slug)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()
	_, total, err := s.PostRepository.FindVisibleByCategory(ctx, cat.ID.String(), now, 0, 0)
	if err != nil {
		return nil, nil, err
	}

	pg := pagination.Resolve(page, total)
	posts, _, err := s.PostRepository.FindVisibleByCategory(ctx, cat.ID.String(), now, pg.Offset(), pagination.PerPage)
	if err != nil {
		return nil, nil, err
	}

	pageDTO, err := s.buildPage(ctx, posts, viewerID, pg)
	if err != nil {
		return nil, nil, err
	}
	return pageDTO, &postPort.CategoryDTO{
		Title:       cat.Title,
		Description: cat.Description,
		Slug:        cat.Slug,
	}, nil
}

// ProfileListing returns the page of a user's posts. The owner sees all of
// their posts; everyone else sees only publicly visible ones.
func (s *PostService) ProfileListing(ctx context.Context, viewerID, username string, page int) (*postPort.PageDTO, *userPort.UserDTO, error) {
	owner, err := s.UserRepository.FindByUsername(username)
	if err != nil {
		return nil, nil, err
	}

	visibleOnly := viewerID != owner.ID.String()
	now := time.Now()
	_, total, err := s.PostRepository.FindByAuthor(ctx, owner.ID.String(), visibleOnly, now, 0, 0)
	if err != nil {
		return nil, nil, err
	}

	pg := pagination.Resolve(page, total)
	posts, _, err := s.PostRepository.FindByAuthor(ctx, owner.ID.String(), visibleOnly, now, pg.Offset(), pagination.PerPage)
	if err != nil {
		return nil, nil, err
	}

	pageDTO, err := s.buildPage(ctx, posts, viewerID, pg)
	if err != nil {
		return nil, nil, err
	}
	return pageDTO, &userPort.UserDTO{
		ID:        owner.ID.String(),
		Username:  owner.Username,
		FirstName: owner.FirstName,
		LastName:  owner.LastName,
	}, nil
}

func (s *PostService) buildPage(ctx context.Context, posts []*postEntity.Post, viewerID string, pg pagination.Page) (*postPort.PageDTO, error) {
	ids := make([]string, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID.String())
	}

	counts := map[string]int64{}
	if len(ids) > 0 {
		var err error
		counts, err = s.PostRepository.CountComments(ctx, ids)
		if err != nil {
			return nil, err
		}
	}

	dtos := make([]*postPort.PostDTO, 0, len(posts))
	for _, p := range posts {
		dtos = append(dtos, s.toDTO(p, viewerID, counts))
	}

	return &postPort.PageDTO{
		Posts:      dtos,
		Page:       pg.Number,
		TotalPages: pg.TotalPages,
		TotalPosts: pg.TotalItems,
		HasNext:    pg.HasNext,
		HasPrev:    pg.HasPrev,
	}, nil
}

// toDTO maps a post for the given viewer. Unpublished category and location
// references stay hidden from everyone but the post's author.
func (s *PostService) toDTO(p *postEntity.Post, viewerID string, counts map[string]int64) *postPort.PostDTO {
	dto := &postPort.PostDTO{
		ID:          p.ID.String(),
		Title:       p.Title,
		Text:        p.Text,
		PubDate:     p.PubDate,
		Image:       p.Image,
		IsPublished: p.IsPublished,
		Author: &userPort.UserDTO{
			ID:       p.AuthorID.String(),
			Username: p.Author.Username,
		},
		CreatedAt: p.CreatedAt,
	}
	if counts != nil {
		dto.CommentCount = counts[dto.ID]
	}

	isOwner := viewerID == p.AuthorID.String()
	if p.Category != nil && (p.Category.IsPublished || isOwner) {
		dto.Category = &postPort.CategoryDTO{
			Title:       p.Category.Title,
			Description: p.Category.Description,
			Slug:        p.Category.Slug,
		}
	}
	if p.Location != nil && (p.Location.IsPublished || isOwner) {
		dto.Location = &postPort.LocationDTO{Name: p.Location.Name}
	}
	return dto
}

func (s *PostService) validate(title, text string, pubDate time.Time) error {
	if title == "" {
		return fmt.Errorf("%w: title is required", postPort.ErrValidation)
	}
	if utf8.RuneCountInString(title) > 256 {
		return fmt.Errorf("%w: title must be at most 256 characters", postPort.ErrValidation)
	}
	if text == "" {
		return fmt.Errorf("%w: text is required", postPort.ErrValidation)
	}
	if pubDate.IsZero() {
		return fmt.Errorf("%w: pub_date is required", postPort.ErrValidation)
	}
	if !s.Moderation.IsClean(title) || !s.Moderation.IsClean(text) {
		return fmt.Errorf("%w: text contains a blocked term", postPort.ErrValidation)
	}
	return nil
}

// resolveRefs parses the optional category/location references and checks
// that they point at existing rows.
func (s *PostService) resolveRefs(ctx context.Context, in postPort.PostInput) (*uuid.UUID, *uuid.UUID, error) {
	cid, err := parseOptionalID(in.CategoryID)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: malformed category id", postPort.ErrValidation)
	}
	if cid != nil {
		if _, err := s.CategoryRepository.FindByID(ctx, cid.String()); err != nil {
			if errors.Is(err, categoryPort.ErrNotFound) {
				return nil, nil, fmt.Errorf("%w: unknown category", postPort.ErrValidation)
			}
			return nil, nil, err
		}
	}

	lid, err := parseOptionalID(in.LocationID)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: malformed location id", postPort.ErrValidation)
	}
	if lid != nil {
		if _, err := s.LocationRepository.FindByID(ctx, lid.String()); err != nil {
			if errors.Is(err, locationPort.ErrNotFound) {
				return nil, nil, fmt.Errorf("%w: unknown location", postPort.ErrValidation)
			}
			return nil, nil, err
		}
	}
	return cid, lid, nil
}

func parseOptionalID(raw *string) (*uuid.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := uuid.FromString(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
