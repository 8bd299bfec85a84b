package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AbdulmosenAlmuzaini/malek/internal/core/domain"
	portsrepo "github.com/AbdulmosenAlmuzaini/malek/internal/core/ports/repositories"
	portssvc "github.com/AbdulmosenAlmuzaini/malek/internal/core/ports/services"
	"github.com/AbdulmosenAlmuzaini/malek/internal/dto"
	"github.com/AbdulmosenAlmuzaini/malek/internal/middleware"
	"github.com/AbdulmosenAlmuzaini/malek/internal/platform/uploads"
)

// operationHandler handles the cash movement ledger.
type operationHandler struct {
	operationService portssvc.OperationSvcFacade
	uploadStore      *uploads.Store
}

func newOperationHandler(os portssvc.OperationSvcFacade, store *uploads.Store) *operationHandler {
	return &operationHandler{operationService: os, uploadStore: store}
}

func registerOperationRoutes(rg *gin.RouterGroup, os portssvc.OperationSvcFacade, store *uploads.Store) {
	h := newOperationHandler(os, store)

	operations := rg.Group("/operations")
	{
		operations.GET("", h.listOperations)
		operations.POST("", middleware.RequireRoles(domain.RoleEntry, domain.RoleAdmin), h.createOperation)
		operations.PUT("/:id", middleware.RequireRoles(domain.RoleAdmin), h.updateOperation)
		operations.DELETE("/:id", middleware.RequireRoles(domain.RoleAdmin), h.deleteOperation)
	}
}

// listOperations godoc
// @Summary List operations
// @Description Lists operations newest first, optionally filtered by free text, category and property type
// @Tags operations
// @Produce json
// @Param q query string false "Substring match on reference number or description"
// @Param category query string false "Exact category"
// @Param property_type query string false "Exact property type"
// @Success 200 {array} dto.OperationResponse
// @Router /operations [get]
// @Security BearerAuth
func (h *operationHandler) listOperations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	filter := portsrepo.OperationFilter{
		Query:        c.Query("q"),
		Category:     c.Query("category"),
		PropertyType: c.Query("property_type"),
	}

	operations, err := h.operationService.ListOperations(c.Request.Context(), filter)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListOperationsResponse(operations))
}

// createOperation godoc
// @Summary Record an operation
// @Description Records a cash in/out movement with an optional attachment
// @Tags operations
// @Accept multipart/form-data
// @Produce json
// @Param date formData string true "Date (YYYY-MM-DD)"
// @Param direction formData string true "Movement direction (in or out)"
// @Param amount formData string false "Amount; empty coerces to 0"
// @Param property_type formData string false "Property type"
// @Param reference_number formData string false "Reference number"
// @Param category formData string false "Category"
// @Param description formData string false "Description"
// @Param attachment formData file false "Attachment (max 10MB)"
// @Success 201 {object} dto.OperationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Forbidden"
// @Router /operations [post]
// @Security BearerAuth
func (h *operationHandler) createOperation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	identity, ok := middleware.GetIdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateOperationRequest
	if err := c.ShouldBind(&req); err != nil {
		logger.Warn("Failed to bind create operation request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
		return
	}

	attachmentPath, err := h.uploadStore.SaveFromForm(c, "attachment")
	if err != nil {
		respondError(c, logger, err)
		return
	}
	req.AttachmentPath = attachmentPath

	operation, err := h.operationService.CreateOperation(c.Request.Context(), req, identity.UserID)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("Operation recorded",
		slog.Int64("operation_id", operation.OperationID),
		slog.String("direction", string(operation.Direction)))
	c.JSON(http.StatusCreated, dto.ToOperationResponse(operation))
}

// updateOperation godoc
// @Summary Update an operation
// @Description Replaces an operation's fields; a new attachment supersedes the stored one
// @Tags operations
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Operation ID"
// @Success 200 {object} dto.OperationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Not found"
// @Router /operations/{id} [put]
// @Security BearerAuth
func (h *operationHandler) updateOperation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid operation ID"})
		return
	}

	var req dto.UpdateOperationRequest
	if err := c.ShouldBind(&req); err != nil {
		logger.Warn("Failed to bind update operation request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
		return
	}

	attachmentPath, err := h.uploadStore.SaveFromForm(c, "attachment")
	if err != nil {
		respondError(c, logger, err)
		return
	}
	req.AttachmentPath = attachmentPath

	operation, err := h.operationService.UpdateOperation(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("Operation updated", slog.Int64("operation_id", id))
	c.JSON(http.StatusOK, dto.ToOperationResponse(operation))
}

// deleteOperation godoc
// @Summary Delete an operation
// @Tags operations
// @Produce json
// @Param id path int true "Operation ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string "Not found"
// @Router /operations/{id} [delete]
// @Security BearerAuth
func (h *operationHandler) deleteOperation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid operation ID"})
		return
	}

	if err := h.operationService.DeleteOperation(c.Request.Context(), id); err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("Operation deleted", slog.Int64("operation_id", id))
	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}
