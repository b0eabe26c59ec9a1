package httpapi

import (
	"context"

	"github.com/gin-gonic/gin"

	"weblog/internal/adapters/httpapi/middleware"
	commentPort "weblog/internal/ports/comment"
	postPort "weblog/internal/ports/post"
	sessionPort "weblog/internal/ports/session"
	userPort "weblog/internal/ports/user"
)

// UserUseCase is the inbound port the user controller needs.
type UserUseCase interface {
	RegisterUser(ctx context.Context, username, password, firstName, lastName, email string) (*userPort.UserDTO, error)
	LoginUser(ctx context.Context, username, password string) (*userPort.LoginResponse, error)
	LogoutUser(ctx context.Context, tokenID string, expiresAt int64) error
	UpdateProfile(ctx context.Context, username string, update userPort.ProfileUpdate) (*userPort.UserDTO, error)
}

// PostUseCase is the inbound port the post and category controllers need.
type PostUseCase interface {
	CreatePost(ctx context.Context, actorID string, in postPort.PostInput) (*postPort.PostDTO, error)
	UpdatePost(ctx context.Context, actorID, postID string, in postPort.PostInput) (*postPort.PostDTO, error)
	DeletePost(ctx context.Context, actorID, postID string) error
	GetPost(ctx context.Context, viewerID, postID string) (*postPort.PostDTO, []*commentPort.CommentDTO, error)
	HomeListing(ctx context.Context, viewerID string, page int) (*postPort.PageDTO, error)
	CategoryListing(ctx context.Context, viewerID, slug string, page int) (*postPort.PageDTO, *postPort.CategoryDTO, error)
	ProfileListing(ctx context.Context, viewerID, username string, page int) (*postPort.PageDTO, *userPort.UserDTO, error)
}

// CommentUseCase is the inbound port the comment controller needs.
type CommentUseCase interface {
	CreateComment(ctx context.Context, actorID, postID, text string) (*commentPort.CommentDTO, error)
	UpdateComment(ctx context.Context, actorID, commentID, text string) (*commentPort.CommentDTO, error)
	DeleteComment(ctx context.Context, actorID, commentID string) error
}

// SetupRoutes wires the controllers; use cases are injected from outside.
func SetupRoutes(
	userUC UserUseCase,
	postUC PostUseCase,
	commentUC CommentUseCase,
	jwtKey []byte,
	sessions sessionPort.Store,
) *gin.Engine {
	r := gin.Default()
	uc := NewUserController(userUC)
	pc := NewPostController(postUC)
	cc := NewCommentController(commentUC)

	auth := middleware.JWTAuthMiddleware(jwtKey, sessions)
	viewer := middleware.OptionalAuthMiddleware(jwtKey, sessions)

	r.POST("/register", uc.RegisterUser)
	r.POST("/login", uc.LoginUser)
	r.POST("/logout", auth, uc.LogoutUser)

	r.GET("/", viewer, pc.Home)
	r.GET("/posts/:id/", viewer, pc.Detail)
	r.POST("/posts/create/", auth, pc.CreatePost)
	r.POST("/posts/:id/edit/", auth, pc.UpdatePost)
	r.POST("/posts/:id/delete/", auth, pc.DeletePost)

	r.POST("/posts/:id/comment/", auth, cc.CreateComment)
	r.POST("/posts/:id/edit_comment/:commentId/", auth, cc.UpdateComment)
	r.POST("/posts/:id/delete_comment/:commentId/", auth, cc.DeleteComment)

	r.GET("/category/:slug/", viewer, pc.Category)
	r.GET("/profile/:username/", viewer, pc.Profile)
	r.POST("/edit_profile/:username/", auth, uc.UpdateProfile)

	return r
}
