package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/AbdulmosenAlmuzaini/malek/internal/core/ports/services"
	"github.com/AbdulmosenAlmuzaini/malek/internal/dto"
	"github.com/AbdulmosenAlmuzaini/malek/internal/middleware"
)

// statsHandler serves the dashboard aggregation.
type statsHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func registerStatsRoutes(rg *gin.RouterGroup, rs portssvc.ReportingSvcFacade) {
	h := &statsHandler{reportingService: rs}
	rg.GET("/stats", h.getStats)
}

// getStats godoc
// @Summary Get the dashboard aggregation
// @Description Returns totals, balance, per-category/person/property breakdowns and the merged recent feed
// @Tags stats
// @Produce json
// @Success 200 {object} dto.StatsResponse
// @Router /stats [get]
// @Security BearerAuth
func (h *statsHandler) getStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	stats, err := h.reportingService.GetStats(c.Request.Context())
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToStatsResponse(stats))
}
