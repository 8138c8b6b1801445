// internal/interfaces/http/handlers/meta.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/pricing"
)

// MetaHandler serves the storefront reference data: fonts, sizes,
// colors and shirt styles. Sizes and styles come straight from the
// pricing tables so displayed prices always match what is charged.
type MetaHandler struct {
	config *config.Config
}

// NewMetaHandler creates a new meta handler
func NewMetaHandler(cfg *config.Config) *MetaHandler {
	return &MetaHandler{config: cfg}
}

// Font describes a text customization font offered on custom designs
type Font struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Preview string `json:"preview"`
}

// availableFonts lists the fonts the print shop can produce
var availableFonts = []Font{
	{ID: "serif", Name: "Classic Serif", Preview: "Your Text Here"},
	{ID: "script", Name: "Elegant Script", Preview: "Your Text Here"},
	{ID: "modern", Name: "Modern Sans", Preview: "YOUR TEXT HERE"},
	{ID: "handwritten", Name: "Handwritten", Preview: "Your Text Here"},
	{ID: "bold", Name: "Bold Impact", Preview: "YOUR TEXT HERE"},
}

// availableColors lists the stocked garment colors
var availableColors = []string{
	"White", "Black", "Navy", "Gray", "Heather Gray", "Red", "Royal Blue",
	"Forest Green", "Purple", "Maroon", "Pink", "Light Blue", "Yellow",
	"Orange", "Brown", "Sage", "Mauve", "Rose Gold", "Burnt Orange",
}

// GetFonts handles GET /meta/fonts
func (h *MetaHandler) GetFonts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Fonts retrieved successfully",
		"data":    availableFonts,
	})
}

// GetSizes handles GET /meta/sizes
func (h *MetaHandler) GetSizes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Sizes retrieved successfully",
		"data":    pricing.Sizes(),
	})
}

// GetColors handles GET /meta/colors
func (h *MetaHandler) GetColors(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Colors retrieved successfully",
		"data":    availableColors,
	})
}

// GetShirtStyles handles GET /meta/shirt-styles
func (h *MetaHandler) GetShirtStyles(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Shirt styles retrieved successfully",
		"data":    pricing.Styles(),
	})
}
