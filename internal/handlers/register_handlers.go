package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/AbdulmosenAlmuzaini/malek/cmd/docs"
	portssvc "github.com/AbdulmosenAlmuzaini/malek/internal/core/ports/services"
	"github.com/AbdulmosenAlmuzaini/malek/internal/middleware"
	"github.com/AbdulmosenAlmuzaini/malek/internal/platform/config"
	"github.com/AbdulmosenAlmuzaini/malek/internal/platform/uploads"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	uploadStore *uploads.Store,
) {
	r.GET("/", getHome)

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Setup /api routes with Auth Middleware, passing service interfaces
	setupAPIRoutes(r, cfg, services, uploadStore)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIRoutes configures the /api group and delegates to specific entity route registrations
func setupAPIRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	uploadStore *uploads.Store,
) {
	// Apply AuthMiddleware to the entire /api group; login and logout
	// stay outside it
	api := r.Group("/api", middleware.AuthMiddleware(cfg.JWTSecret, cfg.TokenCookieName))

	registerAuthRoutes(r, api, services.User, cfg)
	registerUserRoutes(api, services.User)
	registerSettingRoutes(api, services.Setting)
	registerOperationRoutes(api, services.Operation, uploadStore)
	registerTransferRoutes(api, services.Transfer, uploadStore)
	registerPlatformRoutes(api, services.Platform, uploadStore)
	registerStatsRoutes(api, services.Reporting)
	registerBackupRoutes(api, services.Backup)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
