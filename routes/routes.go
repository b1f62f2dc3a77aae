package routes

import (
	"net/http"
	"time"

	"stayhaven/config"
	"stayhaven/graph"
	"stayhaven/middleware"
	"stayhaven/services/viewer"
	"stayhaven/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"
	"go.uber.org/zap"
)

// RegisterHealthRoute exposes the health snapshot.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterGraphRoutes mounts the GraphQL endpoint behind the viewer context.
func RegisterGraphRoutes(r *gin.Engine, schema graphql.Schema, viewers viewer.ViewerService, logger *zap.Logger) {
	api := r.Group("/api")
	api.Use(middleware.ViewerContext(viewers))
	api.POST("", graph.Handler(schema, logger))
}

// RegisterRoutes wires global middleware and all endpoints.
func RegisterRoutes(r *gin.Engine, schema graphql.Schema, viewers viewer.ViewerService, logger *zap.Logger) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.AppConfig.PublicURL},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-CSRF-TOKEN"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterGraphRoutes(r, schema, viewers, logger)
	RegisterHealthRoute(r)
}
