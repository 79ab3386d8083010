package handlers

import (
	"net/http"

	"oxywell/cron"
	"oxywell/models"
	"oxywell/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// CreateProviderHandler creates a new provider row (admin).
func (h *ProviderHandler) CreateProviderHandler(c *gin.Context) {
	var raw models.RawProviderRecord
	if err := c.ShouldBindJSON(&raw); err != nil {
		getLogger(c).Warn("Invalid provider creation request", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	p, err := h.Service.CreateProvider(c.Request.Context(), raw)
	if err != nil {
		getLogger(c).Error("Failed to create provider", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create provider", "")
		return
	}
	c.JSON(http.StatusCreated, p)
}

// UpdateProviderHandler patches provider fields (admin).
func (h *ProviderHandler) UpdateProviderHandler(c *gin.Context) {
	id := c.Param("id")
	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		getLogger(c).Warn("Invalid update request", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	p, err := h.Service.UpdateProvider(c.Request.Context(), id, updates)
	if err != nil {
		getLogger(c).Error("Failed to update provider", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update provider", "")
		return
	}
	c.JSON(http.StatusOK, p)
}

// DeleteProviderHandler removes a provider row (admin).
func (h *ProviderHandler) DeleteProviderHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.DeleteProvider(c.Request.Context(), id); err != nil {
		getLogger(c).Error("Failed to delete provider", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete provider", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "provider deleted"})
}

// RegeocodeHandler enqueues the bulk re-geocode job (admin). The job itself
// runs in the background worker so the request returns immediately.
func RegeocodeHandler(client *asynq.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		task := asynq.NewTask(cron.TypeGeocodeRefresh, nil)
		info, err := client.Enqueue(task)
		if err != nil {
			getLogger(c).Error("Failed to enqueue re-geocode job", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to schedule re-geocode", "")
			return
		}
		c.JSON(http.StatusAccepted, gin.H{"taskId": info.ID, "queue": info.Queue})
	}
}
