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

// transferHandler handles outgoing person transfers.
type transferHandler struct {
	transferService portssvc.TransferSvcFacade
	uploadStore     *uploads.Store
}

func newTransferHandler(ts portssvc.TransferSvcFacade, store *uploads.Store) *transferHandler {
	return &transferHandler{transferService: ts, uploadStore: store}
}

func registerTransferRoutes(rg *gin.RouterGroup, ts portssvc.TransferSvcFacade, store *uploads.Store) {
	h := newTransferHandler(ts, store)

	transfers := rg.Group("/transfers")
	{
		transfers.GET("", h.listTransfers)
		transfers.POST("", middleware.RequireRoles(domain.RoleEntry, domain.RoleAdmin), h.createTransfer)
		transfers.DELETE("/:id", middleware.RequireRoles(domain.RoleAdmin), h.deleteTransfer)
	}
}

// listTransfers godoc
// @Summary List transfers
// @Description Lists transfers newest first, optionally filtered to one person
// @Tags transfers
// @Produce json
// @Param person_name query string false "Exact person name"
// @Success 200 {array} dto.TransferResponse
// @Router /transfers [get]
// @Security BearerAuth
func (h *transferHandler) listTransfers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	transfers, err := h.transferService.ListTransfers(c.Request.Context(), c.Query("person_name"))
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListTransfersResponse(transfers))
}

// createTransfer godoc
// @Summary Record a transfer
// @Description Records an outgoing transfer to a person with an optional attachment
// @Tags transfers
// @Accept multipart/form-data
// @Produce json
// @Param date formData string true "Date (YYYY-MM-DD)"
// @Param person_name formData string true "Recipient person name"
// @Param amount formData string true "Amount"
// @Param attachment formData file false "Attachment (max 10MB)"
// @Success 201 {object} dto.TransferResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Forbidden"
// @Router /transfers [post]
// @Security BearerAuth
func (h *transferHandler) createTransfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	identity, ok := middleware.GetIdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateTransferRequest
	if err := c.ShouldBind(&req); err != nil {
		logger.Warn("Failed to bind create transfer request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
		return
	}

	attachmentPath, err := h.uploadStore.SaveFromForm(c, "attachment")
	if err != nil {
		respondError(c, logger, err)
		return
	}
	req.AttachmentPath = attachmentPath

	transfer, err := h.transferService.CreateTransfer(c.Request.Context(), req, identity.UserID)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("Transfer recorded",
		slog.Int64("transfer_id", transfer.TransferID),
		slog.String("person_name", transfer.PersonName))
	c.JSON(http.StatusCreated, dto.ToTransferResponse(transfer))
}

// deleteTransfer godoc
// @Summary Delete a transfer
// @Tags transfers
// @Produce json
// @Param id path int true "Transfer ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string "Not found"
// @Router /transfers/{id} [delete]
// @Security BearerAuth
func (h *transferHandler) deleteTransfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transfer ID"})
		return
	}

	if err := h.transferService.DeleteTransfer(c.Request.Context(), id); err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("Transfer deleted", slog.Int64("transfer_id", id))
	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}
