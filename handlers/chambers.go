package handlers

import (
	"net/http"

	chamberRepo "oxywell/database/repository/chamber"
	"oxywell/models"
	"oxywell/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// ChamberHandler serves the chamber product catalog.
type ChamberHandler struct {
	Repo chamberRepo.ChamberRepository
}

func NewChamberHandler(repo chamberRepo.ChamberRepository) *ChamberHandler {
	return &ChamberHandler{Repo: repo}
}

// ListChambersHandler returns the catalog, optionally filtered by type.
func (h *ChamberHandler) ListChambersHandler(c *gin.Context) {
	var (
		chambers []models.Chamber
		err      error
	)
	if t := c.Query("type"); t != "" {
		chambers, err = h.Repo.GetByType(c.Request.Context(), t)
	} else {
		chambers, err = h.Repo.GetAll(c.Request.Context())
	}
	if err != nil {
		getLogger(c).Error("Failed to list chambers", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to get chambers", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"chambers": chambers})
}

// GetChamberHandler returns one catalog entry.
func (h *ChamberHandler) GetChamberHandler(c *gin.Context) {
	id := c.Param("id")
	chamber, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		getLogger(c).Warn("Chamber not found", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusNotFound, "Chamber not found", "")
		return
	}
	c.JSON(http.StatusOK, chamber)
}

// CreateChamberHandler adds a catalog entry (admin).
func (h *ChamberHandler) CreateChamberHandler(c *gin.Context) {
	var chamber models.Chamber
	if err := c.ShouldBindJSON(&chamber); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	id, err := h.Repo.Create(c.Request.Context(), chamber)
	if err != nil {
		getLogger(c).Error("Failed to create chamber", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create chamber", "")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// UpdateChamberHandler updates a catalog entry (admin).
func (h *ChamberHandler) UpdateChamberHandler(c *gin.Context) {
	var chamber models.Chamber
	if err := c.ShouldBindJSON(&chamber); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	chamber.ID = c.Param("id")
	if err := h.Repo.Update(c.Request.Context(), chamber); err != nil {
		getLogger(c).Error("Failed to update chamber", zap.String("id", chamber.ID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update chamber", "")
		return
	}
	c.JSON(http.StatusOK, chamber)
}

// DeleteChamberHandler removes a catalog entry (admin).
func (h *ChamberHandler) DeleteChamberHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Repo.Delete(c.Request.Context(), id); err != nil {
		getLogger(c).Error("Failed to delete chamber", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete chamber", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "chamber deleted"})
}

// ChamberCheckoutHandler creates a Stripe payment intent for a chamber
// purchase and returns the client secret for the frontend payment flow.
func (h *ChamberHandler) ChamberCheckoutHandler(c *gin.Context) {
	id := c.Param("id")
	chamber, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Chamber not found", "")
		return
	}
	if !chamber.InStock {
		utils.JSONError(c, http.StatusConflict, "Chamber out of stock", "")
		return
	}

	currency := chamber.Currency
	if currency == "" {
		currency = "usd"
	}
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(chamber.Price * 100)),
		Currency: stripe.String(currency),
		Metadata: map[string]string{
			"chamberId":   chamber.ID,
			"chamberName": chamber.Name,
		},
	}
	intent, err := paymentintent.New(params)
	if err != nil {
		getLogger(c).Error("Failed to create payment intent", zap.String("chamberId", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Payment initialization failed", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": intent.ClientSecret})
}
