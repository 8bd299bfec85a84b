package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AbdulmosenAlmuzaini/malek/internal/apperrors"
	"github.com/AbdulmosenAlmuzaini/malek/internal/core/domain"
	portssvc "github.com/AbdulmosenAlmuzaini/malek/internal/core/ports/services"
	"github.com/AbdulmosenAlmuzaini/malek/internal/dto"
	"github.com/AbdulmosenAlmuzaini/malek/internal/middleware"
	"github.com/AbdulmosenAlmuzaini/malek/internal/platform/config"
	"github.com/AbdulmosenAlmuzaini/malek/internal/utils"
)

// authHandler handles login, logout and session introspection.
type authHandler struct {
	userService portssvc.UserSvcFacade
	cfg         *config.Config
}

func newAuthHandler(us portssvc.UserSvcFacade, cfg *config.Config) *authHandler {
	return &authHandler{userService: us, cfg: cfg}
}

// registerAuthRoutes registers the public login/logout routes on the
// engine and /me behind the auth middleware.
func registerAuthRoutes(r *gin.Engine, authenticated *gin.RouterGroup, us portssvc.UserSvcFacade, cfg *config.Config) {
	h := newAuthHandler(us, cfg)

	r.POST("/api/login", h.login)
	r.POST("/api/logout", h.logout)
	authenticated.GET("/me", h.me)
}

// login godoc
// @Summary Log in with username and password
// @Description Verifies credentials and sets the session token cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Router /login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind login request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
		return
	}

	user, err := h.userService.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			logger.Warn("Login failed", slog.String("username", req.Username))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		respondError(c, logger, err)
		return
	}

	token, err := utils.IssueSessionToken(user, h.cfg.JWTSecret, h.cfg.JWTExpiryDuration, h.cfg.JWTIssuer)
	if err != nil {
		logger.Error("Failed to issue session token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(h.cfg.TokenCookieName, token, int(h.cfg.JWTExpiryDuration.Seconds()), "/", "", h.cfg.IsProduction, true)

	logger.Info("User logged in", slog.Int64("user_id", user.UserID))
	c.JSON(http.StatusOK, dto.LoginResponse{
		Message: "Logged in",
		User: domain.Identity{
			UserID: user.UserID,
			Role:   user.Role,
			Name:   user.Name,
		},
	})
}

// logout godoc
// @Summary Log out
// @Description Clears the session token cookie
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /logout [post]
func (h *authHandler) logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(h.cfg.TokenCookieName, "", -1, "/", "", h.cfg.IsProduction, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// me godoc
// @Summary Get the current session identity
// @Description Returns the decoded identity carried by the session token
// @Tags auth
// @Produce json
// @Success 200 {object} domain.Identity
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /me [get]
func (h *authHandler) me(c *gin.Context) {
	identity, ok := middleware.GetIdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	c.JSON(http.StatusOK, identity)
}
