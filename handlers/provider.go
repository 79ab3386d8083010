package handlers

import (
	"net/http"
	"strconv"

	"oxywell/services/provider"
	"oxywell/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProviderHandler serves the public provider directory.
type ProviderHandler struct {
	Service provider.ProviderService
}

func NewProviderHandler(svc provider.ProviderService) *ProviderHandler {
	return &ProviderHandler{Service: svc}
}

// ListProvidersHandler returns the approved, enriched directory.
func (h *ProviderHandler) ListProvidersHandler(c *gin.Context) {
	providers, err := h.Service.ListProviders(c.Request.Context())
	if err != nil {
		getLogger(c).Error("Failed to list providers", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to get providers", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"providers": providers})
}

// GetProviderByIDHandler returns one provider in canonical shape.
func (h *ProviderHandler) GetProviderByIDHandler(c *gin.Context) {
	id := c.Param("id")
	p, err := h.Service.GetProviderByID(c.Request.Context(), id)
	if err != nil {
		getLogger(c).Warn("Provider not found", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusNotFound, "Provider not found", "")
		return
	}
	c.JSON(http.StatusOK, p)
}

// SearchProvidersHandler filters the directory on a free-text query.
func (h *ProviderHandler) SearchProvidersHandler(c *gin.Context) {
	query := c.Query("q")
	providers, err := h.Service.SearchProviders(c.Request.Context(), query)
	if err != nil {
		getLogger(c).Error("Provider search failed", zap.String("query", query), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Search failed", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"providers": providers})
}

// NearbyProvidersHandler returns providers within radiusKm of a point.
func (h *ProviderHandler) NearbyProvidersHandler(c *gin.Context) {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
	if latErr != nil || lngErr != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", "lat and lng query parameters are required")
		return
	}
	radiusKm := 50.0
	if r, err := strconv.ParseFloat(c.Query("radiusKm"), 64); err == nil && r > 0 {
		radiusKm = r
	}

	providers, err := h.Service.NearbyProviders(c.Request.Context(), lat, lng, radiusKm)
	if err != nil {
		getLogger(c).Error("Nearby provider lookup failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Nearby lookup failed", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"providers": providers})
}
