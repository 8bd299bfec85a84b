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
	"github.com/AbdulmosenAlmuzaini/malek/internal/platform/uploads"
)

// platformHandler handles subscription platforms and their services.
type platformHandler struct {
	platformService portssvc.PlatformSvcFacade
	uploadStore     *uploads.Store
}

func newPlatformHandler(ps portssvc.PlatformSvcFacade, store *uploads.Store) *platformHandler {
	return &platformHandler{platformService: ps, uploadStore: store}
}

func registerPlatformRoutes(rg *gin.RouterGroup, ps portssvc.PlatformSvcFacade, store *uploads.Store) {
	h := newPlatformHandler(ps, store)

	platforms := rg.Group("/platforms")
	{
		platforms.GET("", h.listPlatforms)
		platforms.POST("", middleware.RequireRoles(domain.RoleEntry, domain.RoleAdmin), h.createPlatform)
		platforms.DELETE("/:id", middleware.RequireRoles(domain.RoleAdmin), h.deletePlatform)
	}

	services := rg.Group("/services")
	{
		services.POST("", middleware.RequireRoles(domain.RoleEntry, domain.RoleAdmin), h.createService)
		services.DELETE("/:id", middleware.RequireRoles(domain.RoleAdmin), h.deleteService)
	}
}

// listPlatforms godoc
// @Summary List platforms with their services
// @Tags platforms
// @Produce json
// @Success 200 {array} dto.PlatformResponse
// @Router /platforms [get]
// @Security BearerAuth
func (h *platformHandler) listPlatforms(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	platforms, err := h.platformService.ListPlatforms(c.Request.Context())
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListPlatformsResponse(platforms))
}

// createPlatform godoc
// @Summary Create a platform
// @Tags platforms
// @Accept json
// @Produce json
// @Param platform body dto.CreatePlatformRequest true "Platform to create"
// @Success 201 {object} dto.PlatformResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Forbidden"
// @Router /platforms [post]
// @Security BearerAuth
func (h *platformHandler) createPlatform(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	identity, ok := middleware.GetIdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreatePlatformRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind create platform request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
		return
	}

	platform, err := h.platformService.CreatePlatform(c.Request.Context(), req, identity.UserID)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("Platform created", slog.Int64("platform_id", platform.PlatformID))
	c.JSON(http.StatusCreated, dto.ToPlatformResponse(platform))
}

// deletePlatform godoc
// @Summary Delete a platform
// @Description Removes the platform and every service registered under it
// @Tags platforms
// @Produce json
// @Param id path int true "Platform ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string "Not found"
// @Router /platforms/{id} [delete]
// @Security BearerAuth
func (h *platformHandler) deletePlatform(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid platform ID"})
		return
	}

	if err := h.platformService.DeletePlatform(c.Request.Context(), id); err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("Platform deleted", slog.Int64("platform_id", id))
	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}

// createService godoc
// @Summary Register a service under a platform
// @Tags platforms
// @Accept multipart/form-data
// @Produce json
// @Param platform_id formData int true "Owning platform ID"
// @Param name formData string true "Service name"
// @Param start_date formData string false "Start date (YYYY-MM-DD)"
// @Param end_date formData string false "End date (YYYY-MM-DD)"
// @Param attachment formData file false "Attachment (max 10MB)"
// @Success 201 {object} dto.ServiceResponse
// @Failure 400 {object} map[string]string "Invalid input or unknown platform"
// @Failure 403 {object} map[string]string "Forbidden"
// @Router /services [post]
// @Security BearerAuth
func (h *platformHandler) createService(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	identity, ok := middleware.GetIdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateServiceRequest
	if err := c.ShouldBind(&req); err != nil {
		logger.Warn("Failed to bind create service request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
		return
	}

	attachmentPath, err := h.uploadStore.SaveFromForm(c, "attachment")
	if err != nil {
		respondError(c, logger, err)
		return
	}
	req.AttachmentPath = attachmentPath

	service, err := h.platformService.CreateService(c.Request.Context(), req, identity.UserID)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("Service created",
		slog.Int64("service_id", service.ServiceID),
		slog.Int64("platform_id", service.PlatformID))
	c.JSON(http.StatusCreated, dto.ToServiceResponse(service))
}

// deleteService godoc
// @Summary Delete a service
// @Tags platforms
// @Produce json
// @Param id path int true "Service ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string "Not found"
// @Router /services/{id} [delete]
// @Security BearerAuth
func (h *platformHandler) deleteService(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid service ID"})
		return
	}

	if err := h.platformService.DeleteService(c.Request.Context(), id); err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("Service deleted", slog.Int64("service_id", id))
	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}
