package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"oxywell/services/storage"
	"oxywell/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MediaHandler uploads images for blog posts and chamber listings. The
// route is admin-guarded; files pass through a temp dir before Cloudinary.
type MediaHandler struct {
	Storage storage.StorageService
}

func NewMediaHandler(svc storage.StorageService) *MediaHandler {
	return &MediaHandler{Storage: svc}
}

// UploadMediaHandler accepts a multipart "file" field plus an optional
// "folder" field and responds with the public URL of the uploaded asset.
func (h *MediaHandler) UploadMediaHandler(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Missing file", err.Error())
		return
	}

	folder := c.PostForm("folder")
	if folder == "" {
		folder = "media"
	}

	tmpPath := filepath.Join(os.TempDir(), uuid.NewString()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, tmpPath); err != nil {
		getLogger(c).Error("Failed to stage upload", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Upload failed", "")
		return
	}
	defer os.Remove(tmpPath)

	url, err := h.Storage.UploadFile(c.Request.Context(), tmpPath, folder)
	if err != nil {
		getLogger(c).Error("Cloudinary upload failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Upload failed", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
