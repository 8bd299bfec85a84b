package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AbdulmosenAlmuzaini/malek/internal/core/domain"
	portssvc "github.com/AbdulmosenAlmuzaini/malek/internal/core/ports/services"
	"github.com/AbdulmosenAlmuzaini/malek/internal/dto"
	"github.com/AbdulmosenAlmuzaini/malek/internal/middleware"
)

// settingHandler handles the lookup registry behind dropdowns.
type settingHandler struct {
	settingService portssvc.SettingSvcFacade
}

func newSettingHandler(ss portssvc.SettingSvcFacade) *settingHandler {
	return &settingHandler{settingService: ss}
}

func registerSettingRoutes(rg *gin.RouterGroup, ss portssvc.SettingSvcFacade) {
	h := newSettingHandler(ss)

	settings := rg.Group("/settings")
	{
		settings.GET("", h.listSettings)
		settings.POST("", middleware.RequireRoles(domain.RoleAdmin), h.createSetting)
		settings.DELETE("/:id", middleware.RequireRoles(domain.RoleAdmin), h.deleteSetting)
	}
}

// listSettings godoc
// @Summary List all lookup entries
// @Description Returns every lookup entry across all kinds; the client groups them
// @Tags settings
// @Produce json
// @Success 200 {array} dto.SettingResponse
// @Router /settings [get]
// @Security BearerAuth
func (h *settingHandler) listSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	settings, err := h.settingService.ListSettings(c.Request.Context())
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListSettingsResponse(settings))
}

// createSetting godoc
// @Summary Create a lookup entry
// @Description Adds a named entry under the property_type, category or person kind
// @Tags settings
// @Accept json
// @Produce json
// @Param setting body dto.CreateSettingRequest true "Entry to create"
// @Success 201 {object} dto.SettingResponse
// @Failure 400 {object} map[string]string "Invalid input or duplicate entry"
// @Failure 403 {object} map[string]string "Forbidden"
// @Router /settings [post]
// @Security BearerAuth
func (h *settingHandler) createSetting(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind create setting request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
		return
	}

	setting, err := h.settingService.CreateSetting(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("Setting created", slog.Int64("setting_id", setting.SettingID), slog.String("kind", string(setting.Kind)))
	c.JSON(http.StatusCreated, dto.ToSettingResponse(setting))
}

// deleteSetting godoc
// @Summary Delete a lookup entry
// @Description Removes the entry; rows that referenced its name keep their stored text
// @Tags settings
// @Produce json
// @Param id path int true "Setting ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string "Not found"
// @Router /settings/{id} [delete]
// @Security BearerAuth
func (h *settingHandler) deleteSetting(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid setting ID"})
		return
	}

	if err := h.settingService.DeleteSetting(c.Request.Context(), id); err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("Setting deleted", slog.Int64("setting_id", id))
	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}
