package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	automationHTTP "nextplay-automation/internal/automation/delivery/http"
	"nextplay-automation/internal/model"
	"nextplay-automation/pkg/response"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		srv.l.Errorf(c.Request.Context(), "panic recovered: %v", recovered)
		response.InternalError(c)
		c.Abort()
	}))
	srv.gin.Use(srv.mw.RequestID())

	// Open CORS and request access log only outside production.
	if srv.environment != string(model.EnvironmentProduction) {
		srv.gin.Use(srv.mw.CORS())
		srv.gin.Use(gin.Logger())
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	api := srv.gin.Group("/api/v1")

	automationGroup := api.Group("/automation")
	if srv.rateLimitPerMin > 0 {
		automationGroup.Use(srv.mw.RateLimit(srv.rateLimitPerMin))
	}
	automationHTTP.RegisterRoutes(automationGroup, srv.automationHandler)
	srv.l.Infof(ctx, "Automation route registered at POST /api/v1/automation")

	return nil
}
