package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/yandre13/ytextract/internal/api/handlers"
	"github.com/yandre13/ytextract/internal/api/middleware"
	"github.com/yandre13/ytextract/internal/config"
	"github.com/yandre13/ytextract/internal/utils"
)

type Router struct {
	engine *gin.Engine
	server *http.Server
	config *config.Config
}

func NewRouter(cfg *config.Config, videoHandler *handlers.VideoHandler, healthHandler *handlers.HealthHandler) *Router {
	// Set Gin mode
	if !cfg.Server.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	// Add middleware
	engine.Use(recoveryMiddleware())
	engine.Use(middleware.CorrelationIDMiddleware())
	engine.Use(middleware.CORSMiddleware(&cfg.CORS))

	engine.GET("/health", healthHandler.Health)

	// The wildcard swallows embedded slashes, so full URLs work as the
	// trailing path segment.
	engine.GET("/extract/*url", videoHandler.ExtractGet)
	engine.POST("/extract", videoHandler.ExtractPost)
	engine.GET("/formats/*url", videoHandler.Formats)

	// Swagger documentation
	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	engine.NoRoute(func(c *gin.Context) {
		notFound := utils.NewNotFoundError()
		c.JSON(notFound.StatusCode, notFound)
	})

	return &Router{
		engine: engine,
		server: &http.Server{
			Addr:    cfg.Server.Addr(),
			Handler: engine,
		},
		config: cfg,
	}
}

// recoveryMiddleware converts panics into the public 500 error body instead
// of gin's default empty response.
func recoveryMiddleware() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		utils.LogError(c.Request.Context(), "Panic recovered", nil, utils.Fields{
			"panic": recovered,
			"path":  c.Request.URL.Path,
		})
		internal := utils.NewInternalError()
		c.AbortWithStatusJSON(internal.StatusCode, internal)
	})
}

func (r *Router) Start() error {
	if err := r.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (r *Router) Shutdown(ctx context.Context) error {
	return r.server.Shutdown(ctx)
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
