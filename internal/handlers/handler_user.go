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

// userHandler handles user management. Every route is admin-only.
type userHandler struct {
	userService portssvc.UserSvcFacade
}

func newUserHandler(us portssvc.UserSvcFacade) *userHandler {
	return &userHandler{userService: us}
}

func registerUserRoutes(rg *gin.RouterGroup, us portssvc.UserSvcFacade) {
	h := newUserHandler(us)

	users := rg.Group("/users", middleware.RequireRoles(domain.RoleAdmin))
	{
		users.GET("", h.listUsers)
		users.POST("", h.createUser)
		users.DELETE("/:id", h.deleteUser)
	}
}

// listUsers godoc
// @Summary List all users
// @Tags users
// @Produce json
// @Success 200 {array} dto.UserResponse
// @Failure 403 {object} map[string]string "Forbidden"
// @Router /users [get]
// @Security BearerAuth
func (h *userHandler) listUsers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListUsersResponse(users))
}

// createUser godoc
// @Summary Create a user
// @Description Creates a user with one of the viewer, entry or admin roles
// @Tags users
// @Accept json
// @Produce json
// @Param user body dto.CreateUserRequest true "User to create"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} map[string]string "Invalid input or duplicate username"
// @Failure 403 {object} map[string]string "Forbidden"
// @Router /users [post]
// @Security BearerAuth
func (h *userHandler) createUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind create user request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("User created", slog.Int64("user_id", user.UserID), slog.String("role", string(user.Role)))
	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// deleteUser godoc
// @Summary Delete a user
// @Description Removes a user account; their recorded entries remain
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string "Not found"
// @Router /users/{id} [delete]
// @Security BearerAuth
func (h *userHandler) deleteUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), id); err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("User deleted", slog.Int64("user_id", id))
	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}
