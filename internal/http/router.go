package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/wallabag2karakeep/internal/database"
	"github.com/mrlokans/wallabag2karakeep/internal/logger"
	"github.com/mrlokans/wallabag2karakeep/internal/services"
)

// RouterConfig holds the dependencies of the HTTP API.
type RouterConfig struct {
	Runner   *services.Runner
	Defaults services.Options
	DB       *database.Database // optional, only used by /health
	Version  string
	Log      logger.Logger
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(requestLogger(cfg.Log))
	router.Use(gin.Recovery())

	health := NewHealthController(cfg.DB, cfg.Version)
	router.GET("/health", health.Status)

	convert := NewConvertController(cfg.Runner, cfg.Defaults, cfg.Log)
	api := router.Group("/api/v1")
	api.POST("/convert", convert.Convert)

	return router
}

func requestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("HTTP request",
			logger.String("method", c.Request.Method),
			logger.String("path", c.Request.URL.Path),
			logger.Int("status", c.Writer.Status()),
			logger.String("duration", time.Since(start).String()))
	}
}
