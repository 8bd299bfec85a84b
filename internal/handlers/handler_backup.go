package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AbdulmosenAlmuzaini/malek/internal/core/domain"
	portssvc "github.com/AbdulmosenAlmuzaini/malek/internal/core/ports/services"
	"github.com/AbdulmosenAlmuzaini/malek/internal/middleware"
)

// backupHandler triggers an immediate backup run, outside the daily
// schedule.
type backupHandler struct {
	backupService portssvc.BackupSvcFacade
}

func registerBackupRoutes(rg *gin.RouterGroup, bs portssvc.BackupSvcFacade) {
	h := &backupHandler{backupService: bs}
	rg.POST("/admin/backup-now", middleware.RequireRoles(domain.RoleAdmin), h.backupNow)
}

// backupNow godoc
// @Summary Run a backup immediately
// @Description Exports the full store and emails it to the configured recipient
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Export or send failed"
// @Router /admin/backup-now [post]
// @Security BearerAuth
func (h *backupHandler) backupNow(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.backupService.RunBackup(c.Request.Context()); err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Backup sent"})
}
