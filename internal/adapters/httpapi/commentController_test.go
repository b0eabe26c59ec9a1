package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	commentPort "weblog/internal/ports/comment"
	userPort "weblog/internal/ports/user"
)

type stubCommentUC struct {
	createComment func(ctx context.Context, actorID, postID, text string) (*commentPort.CommentDTO, error)
	updateComment func(ctx context.Context, actorID, commentID, text string) (*commentPort.CommentDTO, error)
	deleteComment func(ctx context.Context, actorID, commentID string) error
}

func (s *stubCommentUC) CreateComment(ctx context.Context, actorID, postID, text string) (*commentPort.CommentDTO, error) {
	return s.createComment(ctx, actorID, postID, text)
}
func (s *stubCommentUC) UpdateComment(ctx context.Context, actorID, commentID, text string) (*commentPort.CommentDTO, error) {
	return s.updateComment(ctx, actorID, commentID, text)
}
func (s *stubCommentUC) DeleteComment(ctx context.Context, actorID, commentID string) error {
	return s.deleteComment(ctx, actorID, commentID)
}

type stubUserUC struct{}

func (s *stubUserUC) RegisterUser(ctx context.Context, username, password, firstName, lastName, email string) (*userPort.UserDTO, error) {
	return &userPort.UserDTO{Username: username}, nil
}
func (s *stubUserUC) LoginUser(ctx context.Context, username, password string) (*userPort.LoginResponse, error) {
	return &userPort.LoginResponse{}, nil
}
func (s *stubUserUC) LogoutUser(ctx context.Context, tokenID string, expiresAt int64) error {
	return nil
}
func (s *stubUserUC) UpdateProfile(ctx context.Context, username string, update userPort.ProfileUpdate) (*userPort.UserDTO, error) {
	return &userPort.UserDTO{Username: username}, nil
}

func TestCreateComment_SuccessRedirectsToPost(t *testing.T) {
	gin.SetMode(gin.TestMode)
	stub := &stubCommentUC{
		createComment: func(ctx context.Context, actorID, postID, text string) (*commentPort.CommentDTO, error) {
			return &commentPort.CommentDTO{ID: "c1", Text: text, PostID: postID}, nil
		},
	}
	ctl := NewCommentController(stub)
	r := gin.New()
	r.POST("/posts/:id/comment/", withUser("commenter"), ctl.CreateComment)

	req := httptest.NewRequest(http.MethodPost, "/posts/abc/comment/", strings.NewReader(`{"text":"hello"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/posts/abc/", w.Header().Get("Location"))
}

func TestUpdateComment_NotOwnerRedirectsToPost(t *testing.T) {
	gin.SetMode(gin.TestMode)
	stub := &stubCommentUC{
		updateComment: func(ctx context.Context, actorID, commentID, text string) (*commentPort.CommentDTO, error) {
			return nil, commentPort.ErrNotOwner
		},
	}
	ctl := NewCommentController(stub)
	r := gin.New()
	r.POST("/posts/:id/edit_comment/:commentId/", withUser("intruder"), ctl.UpdateComment)

	req := httptest.NewRequest(http.MethodPost, "/posts/abc/edit_comment/c1/", strings.NewReader(`{"text":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/posts/abc/", w.Header().Get("Location"))
}

func TestDeleteComment_UnknownIs404(t *testing.T) {
	gin.SetMode(gin.TestMode)
	stub := &stubCommentUC{
		deleteComment: func(ctx context.Context, actorID, commentID string) error {
			return commentPort.ErrNotFound
		},
	}
	ctl := NewCommentController(stub)
	r := gin.New()
	r.POST("/posts/:id/delete_comment/:commentId/", withUser("someone"), ctl.DeleteComment)

	req := httptest.NewRequest(http.MethodPost, "/posts/abc/delete_comment/missing/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
