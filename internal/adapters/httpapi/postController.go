package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"weblog/internal/core/pagination"
	categoryPort "weblog/internal/ports/category"
	postPort "weblog/internal/ports/post"
	userPort "weblog/internal/ports/user"
)

type PostController struct{ pc PostUseCase }

func NewPostController(pc PostUseCase) *PostController { return &PostController{pc: pc} }

func (ctl *PostController) Home(c *gin.Context) {
	page := pagination.ParsePage(c.Query("page"))
	res, err := ctl.pc.HomeListing(c.Request.Context(), c.GetString("userID"), page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load posts"})
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *PostController) Detail(c *gin.Context) {
	p, comments, err := ctl.pc.GetPost(c.Request.Context(), c.GetString("userID"), c.Param("id"))
	if err != nil {
		if errors.Is(err, postPort.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load post"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": p, "comments": comments})
}

func (ctl *PostController) Category(c *gin.Context) {
	page := pagination.ParsePage(c.Query("page"))
	res, cat, err := ctl.pc.CategoryListing(c.Request.Context(), c.GetString("userID"), c.Param("slug"), page)
	if err != nil {
		if errors.Is(err, categoryPort.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load category"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"category": cat, "posts": res})
}

func (ctl *PostController) Profile(c *gin.Context) {
	page := pagination.ParsePage(c.Query("page"))
	res, profile, err := ctl.pc.ProfileListing(c.Request.Context(), c.GetString("userID"), c.Param("username"), page)
	if err != nil {
		if errors.Is(err, userPort.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile, "posts": res})
}

func (ctl *PostController) CreatePost(c *gin.Context) {
	var in postPort.PostInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	res, err := ctl.pc.CreatePost(c.Request.Context(), c.GetString("userID"), in)
	if err != nil {
		if errors.Is(err, postPort.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create post"})
		return
	}
	c.Redirect(http.StatusFound, "/posts/"+res.ID+"/")
}

func (ctl *PostController) UpdatePost(c *gin.Context) {
	id := c.Param("id")

	var in postPort.PostInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	_, err := ctl.pc.UpdatePost(c.Request.Context(), c.GetString("userID"), id, in)
	if err != nil {
		switch {
		case errors.Is(err, postPort.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		case errors.Is(err, postPort.ErrNotOwner):
			// Silent refusal: back to the post instead of an error page.
			c.Redirect(http.StatusFound, "/posts/"+id+"/")
		case errors.Is(err, postPort.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update post"})
		}
		return
	}
	c.Redirect(http.StatusFound, "/posts/"+id+"/")
}

func (ctl *PostController) DeletePost(c *gin.Context) {
	id := c.Param("id")

	err := ctl.pc.DeletePost(c.Request.Context(), c.GetString("userID"), id)
	if err != nil {
		switch {
		case errors.Is(err, postPort.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		case errors.Is(err, postPort.ErrNotOwner):
			c.Redirect(http.StatusFound, "/posts/"+id+"/")
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete post"})
		}
		return
	}
	c.Redirect(http.StatusFound, "/")
}
