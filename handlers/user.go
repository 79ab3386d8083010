package handlers

import (
	"net/http"

	"oxywell/middleware"
	"oxywell/models"
	"oxywell/services/user"
	"oxywell/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves profile and bookmark endpoints. All routes sit behind
// the Firebase auth middleware, so the uid on the context is verified.
type UserHandler struct {
	Service user.UserService
}

func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{Service: svc}
}

// SyncProfileHandler creates or refreshes the caller's profile.
func (h *UserHandler) SyncProfileHandler(c *gin.Context) {
	var body struct {
		DisplayName     string `json:"displayName"`
		PhotoURL        string `json:"photoUrl"`
		NewsletterOptIn bool   `json:"newsletterOptIn"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	email, _ := c.Get("email")
	emailStr, _ := email.(string)

	profile, err := h.Service.SyncProfile(c.Request.Context(), models.UserProfile{
		UID:             middleware.UIDFromContext(c),
		Email:           emailStr,
		DisplayName:     body.DisplayName,
		PhotoURL:        body.PhotoURL,
		NewsletterOptIn: body.NewsletterOptIn,
	})
	if err != nil {
		getLogger(c).Error("Profile sync failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Profile sync failed", "")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GetProfileHandler returns the caller's profile.
func (h *UserHandler) GetProfileHandler(c *gin.Context) {
	profile, err := h.Service.GetProfile(c.Request.Context(), middleware.UIDFromContext(c))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Profile not found", "")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// AddBookmarkHandler saves an item to one of the caller's bookmark lists.
// kind is one of "guides", "providers", "chambers".
func (h *UserHandler) AddBookmarkHandler(c *gin.Context) {
	kind := c.Param("kind")
	itemID := c.Param("itemId")
	if err := h.Service.AddBookmark(c.Request.Context(), middleware.UIDFromContext(c), kind, itemID); err != nil {
		getLogger(c).Warn("Add bookmark failed", zap.String("kind", kind), zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Failed to add bookmark", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "bookmark added"})
}

// RemoveBookmarkHandler removes an item from a bookmark list.
func (h *UserHandler) RemoveBookmarkHandler(c *gin.Context) {
	kind := c.Param("kind")
	itemID := c.Param("itemId")
	if err := h.Service.RemoveBookmark(c.Request.Context(), middleware.UIDFromContext(c), kind, itemID); err != nil {
		getLogger(c).Warn("Remove bookmark failed", zap.String("kind", kind), zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Failed to remove bookmark", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "bookmark removed"})
}

// DeleteAccountHandler removes the caller's profile document.
func (h *UserHandler) DeleteAccountHandler(c *gin.Context) {
	if err := h.Service.DeleteAccount(c.Request.Context(), middleware.UIDFromContext(c)); err != nil {
		getLogger(c).Error("Account deletion failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete account", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "account deleted"})
}
