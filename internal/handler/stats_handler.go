package handler

import (
	"github.com/gin-gonic/gin"

	"finsight/internal/service"
)

// StatsHandler serves the dashboard statistics endpoint.
type StatsHandler struct {
	statsService service.StatsService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(statsService service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// GetStats handles GET /api/v1/stats. Returns processed document counts,
// extraction failures, journal entry count, and the derived compliance
// score for the dashboard.
func (h *StatsHandler) GetStats(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	stats, err := h.statsService.GetStats(c.Request.Context(), tenantID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, stats)
}
