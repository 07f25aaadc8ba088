package handlers

import (
	"net/http"

	"albion-backend/internal/schema"

	"github.com/gin-gonic/gin"
)

// MetaHandler serves the embedded entity field registry
type MetaHandler struct {
	registry *schema.Registry
}

// NewMetaHandler creates a new metadata handler
func NewMetaHandler(registry *schema.Registry) *MetaHandler {
	return &MetaHandler{registry: registry}
}

// GetEntities lists the entity names the registry describes
func (h *MetaHandler) GetEntities(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"entities": h.registry.Entities()})
}

// GetEntityFields returns the field descriptors for one entity
func (h *MetaHandler) GetEntityFields(c *gin.Context) {
	entity := c.Param("entity")
	fields, ok := h.registry.Fields(entity)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown entity: " + entity})
		return
	}
	c.JSON(http.StatusOK, gin.H{"entity": entity, "fields": fields})
}
