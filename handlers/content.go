package handlers

import (
	"net/http"

	"oxywell/models"
	"oxywell/services/content"
	"oxywell/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContentHandler serves the blog and guide content system.
type ContentHandler struct {
	Service content.ContentService
}

func NewContentHandler(svc content.ContentService) *ContentHandler {
	return &ContentHandler{Service: svc}
}

// ListGuidesHandler returns all guide articles.
func (h *ContentHandler) ListGuidesHandler(c *gin.Context) {
	guides, err := h.Service.ListGuides(c.Request.Context())
	if err != nil {
		getLogger(c).Error("Failed to list guides", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to get guides", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"guides": guides})
}

// GetGuideHandler returns one guide by slug.
func (h *ContentHandler) GetGuideHandler(c *gin.Context) {
	slug := c.Param("slug")
	guide, err := h.Service.GetGuideBySlug(c.Request.Context(), slug)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Guide not found", "")
		return
	}
	c.JSON(http.StatusOK, guide)
}

// ListPostsHandler returns published blog posts.
func (h *ContentHandler) ListPostsHandler(c *gin.Context) {
	posts, err := h.Service.ListPosts(c.Request.Context())
	if err != nil {
		getLogger(c).Error("Failed to list posts", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to get posts", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// GetPostHandler returns one blog post by slug.
func (h *ContentHandler) GetPostHandler(c *gin.Context) {
	slug := c.Param("slug")
	post, err := h.Service.GetPostBySlug(c.Request.Context(), slug)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Post not found", "")
		return
	}
	c.JSON(http.StatusOK, post)
}

// CreatePostHandler stores a new blog post (admin).
func (h *ContentHandler) CreatePostHandler(c *gin.Context) {
	var post models.BlogPost
	if err := c.ShouldBindJSON(&post); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	id, err := h.Service.CreatePost(c.Request.Context(), post)
	if err != nil {
		getLogger(c).Error("Failed to create post", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create post", "")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}
