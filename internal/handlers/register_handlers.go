package handlers

import (
	"github.com/IpitingaJA/church_event_app/cmd/docs"
	portssvc "github.com/IpitingaJA/church_event_app/internal/core/ports/services"
	"github.com/IpitingaJA/church_event_app/internal/middleware"
	"github.com/IpitingaJA/church_event_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/", getHome)

	// Public authentication routes (plus the guarded /profile)
	registerAuthRoutes(r, cfg, services)

	// API routes under /api, mirroring the legacy backend's surface
	setupAPIRoutes(r, cfg, services)

	// Swagger routes (disabled in production)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIRoutes configures the /api group. Churches and the inscription
// endpoint stay public so the registration form works without a login;
// everything else sits behind the auth middleware.
func setupAPIRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	api := r.Group("/api")

	registerChurchRoutes(api, services.Church)
	registerPublicParticipantRoutes(api, services.Participant)

	authed := api.Group("", middleware.AuthMiddleware(cfg.JWTSecret))
	registerUserRoutes(authed, services.User)
	registerParticipantRoutes(authed, services.Participant)
	registerTransactionRoutes(authed, services.Transaction)
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
