package handler

import (
	"net/http"

	"rescribe/internal/presets"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

func (h *CatalogHandler) Presets(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"presets": presets.All()})
}

func (h *CatalogHandler) WritingSamples(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"samples": presets.Samples()})
}
