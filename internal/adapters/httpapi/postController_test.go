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

	"weblog/internal/adapters/memory"
	categoryPort "weblog/internal/ports/category"
	commentPort "weblog/internal/ports/comment"
	postPort "weblog/internal/ports/post"
	userPort "weblog/internal/ports/user"
)

type stubPostUC struct {
	createPost      func(ctx context.Context, actorID string, in postPort.PostInput) (*postPort.PostDTO, error)
	updatePost      func(ctx context.Context, actorID, postID string, in postPort.PostInput) (*postPort.PostDTO, error)
	deletePost      func(ctx context.Context, actorID, postID string) error
	getPost         func(ctx context.Context, viewerID, postID string) (*postPort.PostDTO, []*commentPort.CommentDTO, error)
	homeListing     func(ctx context.Context, viewerID string, page int) (*postPort.PageDTO, error)
	categoryListing func(ctx context.Context, viewerID, slug string, page int) (*postPort.PageDTO, *postPort.CategoryDTO, error)
	profileListing  func(ctx context.Context, viewerID, username string, page int) (*postPort.PageDTO, *userPort.UserDTO, error)
}

func (s *stubPostUC) CreatePost(ctx context.Context, actorID string, in postPort.PostInput) (*postPort.PostDTO, error) {
	return s.createPost(ctx, actorID, in)
}
func (s *stubPostUC) UpdatePost(ctx context.Context, actorID, postID string, in postPort.PostInput) (*postPort.PostDTO, error) {
	return s.updatePost(ctx, actorID, postID, in)
}
func (s *stubPostUC) DeletePost(ctx context.Context, actorID, postID string) error {
	return s.deletePost(ctx, actorID, postID)
}
func (s *stubPostUC) GetPost(ctx context.Context, viewerID, postID string) (*postPort.PostDTO, []*commentPort.CommentDTO, error) {
	return s.getPost(ctx, viewerID, postID)
}
func (s *stubPostUC) HomeListing(ctx context.Context, viewerID string, page int) (*postPort.PageDTO, error) {
	return s.homeListing(ctx, viewerID, page)
}
func (s *stubPostUC) CategoryListing(ctx context.Context, viewerID, slug string, page int) (*postPort.PageDTO, *postPort.CategoryDTO, error) {
	return s.categoryListing(ctx, viewerID, slug, page)
}
func (s *stubPostUC) ProfileListing(ctx context.Context, viewerID, username string, page int) (*postPort.PageDTO, *userPort.UserDTO, error) {
	return s.profileListing(ctx, viewerID, username, page)
}

func withUser(id string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", id)
		c.Next()
	}
}

func TestUpdatePost_NotOwnerRedirectsToDetail(t *testing.T) {
	gin.SetMode(gin.TestMode)
	stub := &stubPostUC{
		updatePost: func(ctx context.Context, actorID, postID string, in postPort.PostInput) (*postPort.PostDTO, error) {
			return nil, postPort.ErrNotOwner
		},
	}
	ctl := NewPostController(stub)
	r := gin.New()
	r.POST("/posts/:id/edit/", withUser("intruder"), ctl.UpdatePost)

	body := `{"title":"x","text":"y","pub_date":"2024-01-01T00:00:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/posts/abc/edit/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/posts/abc/", w.Header().Get("Location"))
}

func TestDeletePost_SuccessRedirectsHome(t *testing.T) {
	gin.SetMode(gin.TestMode)
	stub := &stubPostUC{
		deletePost: func(ctx context.Context, actorID, postID string) error { return nil },
	}
	ctl := NewPostController(stub)
	r := gin.New()
	r.POST("/posts/:id/delete/", withUser("owner"), ctl.DeletePost)

	req := httptest.NewRequest(http.MethodPost, "/posts/abc/delete/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestCreatePost_ValidationErrorIs400(t *testing.T) {
	gin.SetMode(gin.TestMode)
	stub := &stubPostUC{
		createPost: func(ctx context.Context, actorID string, in postPort.PostInput) (*postPort.PostDTO, error) {
			return nil, postPort.ErrValidation
		},
	}
	ctl := NewPostController(stub)
	r := gin.New()
	r.POST("/posts/create/", withUser("author"), ctl.CreatePost)

	req := httptest.NewRequest(http.MethodPost, "/posts/create/", strings.NewReader(`{"title":"t"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCategory_UnknownSlugIs404(t *testing.T) {
	gin.SetMode(gin.TestMode)
	stub := &stubPostUC{
		categoryListing: func(ctx context.Context, viewerID, slug string, page int) (*postPort.PageDTO, *postPort.CategoryDTO, error) {
			return nil, nil, categoryPort.ErrNotFound
		},
	}
	ctl := NewPostController(stub)
	r := gin.New()
	r.GET("/category/:slug/", ctl.Category)

	req := httptest.NewRequest(http.MethodGet, "/category/future-cat/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAnonymousMutationRedirectsToLogin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	stub := &stubPostUC{}
	r := SetupRoutes(&stubUserUC{}, stub, &stubCommentUC{}, []byte("key"), memory.NewSessionStoreMemory())

	req := httptest.NewRequest(http.MethodPost, "/posts/create/", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}
