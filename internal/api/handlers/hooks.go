package handlers

import (
	"net/http"

	"saasusync/internal/logger"
	"saasusync/internal/models"
	"saasusync/internal/sync"

	"github.com/gin-gonic/gin"
)

// HooksHandler exposes the host lifecycle hooks over HTTP so the commerce
// platform can call them synchronously from its own event handlers.
type HooksHandler struct {
	hooks  *sync.Hooks
	logger *logger.Logger
}

func NewHooksHandler(hooks *sync.Hooks, logger *logger.Logger) *HooksHandler {
	return &HooksHandler{
		hooks:  hooks,
		logger: logger,
	}
}

// VariantBeforeSave runs the stock sync and returns the variant for the
// host to persist. The response is always 200; a failed sync just leaves
// the variant unchanged.
func (h *HooksHandler) VariantBeforeSave(c *gin.Context) {
	var variant models.Variant
	if err := c.ShouldBindJSON(&variant); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.hooks.BeforeVariantSave(&variant)

	c.JSON(http.StatusOK, gin.H{"data": variant})
}

// OrderComplete posts the order's invoices. Fire-and-forget from the
// host's point of view: the invoices are posted before the response is
// written, but their outcome is only visible in the sync records.
func (h *HooksHandler) OrderComplete(c *gin.Context) {
	var order models.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.hooks.OrderComplete(&order)

	c.JSON(http.StatusAccepted, gin.H{"status": "accepted"})
}

// SnapshotFields returns the variant field set with the Saasu id added.
func (h *HooksHandler) SnapshotFields(c *gin.Context) {
	var req struct {
		Fields []string `json:"fields"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fields := h.hooks.BeforeSnapshotCapture(req.Fields)

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"fields": fields}})
}
