package handlers

import (
	"net/http"
	"strconv"

	"saasusync/internal/logger"
	"saasusync/internal/synclog"

	"github.com/gin-gonic/gin"
)

type SyncRecordHandler struct {
	store  *synclog.Store
	logger *logger.Logger
}

func NewSyncRecordHandler(store *synclog.Store, logger *logger.Logger) *SyncRecordHandler {
	return &SyncRecordHandler{
		store:  store,
		logger: logger,
	}
}

func (h *SyncRecordHandler) List(c *gin.Context) {
	// Pagination
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	// Filters
	flow := c.Query("flow")
	status := c.Query("status")

	records, total, err := h.store.List(page, limit, flow, status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sync records"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": records,
		"pagination": gin.H{
			"page":  page,
			"limit": limit,
			"total": total,
		},
	})
}
