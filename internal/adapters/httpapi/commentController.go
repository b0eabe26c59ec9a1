package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	commentPort "weblog/internal/ports/comment"
	postPort "weblog/internal/ports/post"
)

type CommentController struct{ cc CommentUseCase }

func NewCommentController(cc CommentUseCase) *CommentController {
	return &CommentController{cc: cc}
}

func (ctl *CommentController) CreateComment(c *gin.Context) {
	postID := c.Param("id")

	var req struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	_, err := ctl.cc.CreateComment(c.Request.Context(), c.GetString("userID"), postID, req.Text)
	if err != nil {
		switch {
		case errors.Is(err, postPort.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		case errors.Is(err, commentPort.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create comment"})
		}
		return
	}
	c.Redirect(http.StatusFound, "/posts/"+postID+"/")
}

func (ctl *CommentController) UpdateComment(c *gin.Context) {
	postID := c.Param("id")
	commentID := c.Param("commentId")

	var req struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	_, err := ctl.cc.UpdateComment(c.Request.Context(), c.GetString("userID"), commentID, req.Text)
	if err != nil {
		switch {
		case errors.Is(err, commentPort.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "comment not found"})
		case errors.Is(err, commentPort.ErrNotOwner):
			// Silent refusal: back to the post instead of an error page.
			c.Redirect(http.StatusFound, "/posts/"+postID+"/")
		case errors.Is(err, commentPort.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update comment"})
		}
		return
	}
	c.Redirect(http.StatusFound, "/posts/"+postID+"/")
}

func (ctl *CommentController) DeleteComment(c *gin.Context) {
	postID := c.Param("id")
	commentID := c.Param("commentId")

	err := ctl.cc.DeleteComment(c.Request.Context(), c.GetString("userID"), commentID)
	if err != nil {
		switch {
		case errors.Is(err, commentPort.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "comment not found"})
		case errors.Is(err, commentPort.ErrNotOwner):
			c.Redirect(http.StatusFound, "/posts/"+postID+"/")
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete comment"})
		}
		return
	}
	c.Redirect(http.StatusFound, "/posts/"+postID+"/")
}
