package handlers

import (
	"net/http"
	"strings"
	"time"

	"oxywell/config"
	"oxywell/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const adminTokenTTL = 12 * time.Hour

// AdminLoginHandler checks credentials against the configured admin account
// and issues a JWT for the admin route group.
func AdminLoginHandler(c *gin.Context) {
	var body struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	cfg := config.AppConfig
	if cfg.AdminEmail == "" || cfg.AdminPasswordHash == "" {
		utils.JSONError(c, http.StatusForbidden, "Admin login not configured", "")
		return
	}

	if !strings.EqualFold(body.Email, cfg.AdminEmail) ||
		bcrypt.CompareHashAndPassword([]byte(cfg.AdminPasswordHash), []byte(body.Password)) != nil {
		getLogger(c).Warn("Admin login rejected", zap.String("email", body.Email))
		utils.JSONError(c, http.StatusUnauthorized, "Invalid credentials", "")
		return
	}

	token, err := utils.GenerateToken(cfg.AdminEmail, adminTokenTTL)
	if err != nil {
		getLogger(c).Error("Failed to issue admin token", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Login failed", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "expiresIn": int(adminTokenTTL.Seconds())})
}

// HealthHandler reports liveness of the backing stores.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	if !status.Mongo || !status.Redis {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}
