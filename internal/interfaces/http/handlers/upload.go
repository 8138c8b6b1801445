// internal/interfaces/http/handlers/upload.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/upload"
)

// UploadHandler handles design image uploads for custom orders
type UploadHandler struct {
	uploadService *upload.Service
	config        *config.Config
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(uploadService *upload.Service, cfg *config.Config) *UploadHandler {
	return &UploadHandler{
		uploadService: uploadService,
		config:        cfg,
	}
}

// UploadDesignImage handles POST /uploads/design
func (h *UploadHandler) UploadDesignImage(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "A file named 'file' is required",
		})
		return
	}
	defer file.Close()

	result, err := h.uploadService.SaveDesignImage(file, header)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Design image uploaded successfully",
		"data":    result,
	})
}
