package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"locallibrary/internal/infrastructure/database"
	"locallibrary/internal/shared/middleware"
	"locallibrary/internal/shared/response"
	"locallibrary/internal/web"
	"locallibrary/pkg/cache"
	"locallibrary/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.RequestID(),
		middleware.ClientIP(),
		middleware.Logger(),
		middleware.Recovery(),
		middleware.ErrorHandler(!c.Config.IsProduction()),
	)
	router.SetHTMLTemplate(web.MustTemplates())

	router.GET("/", func(ctx *gin.Context) {
		ctx.Redirect(http.StatusFound, "/catalog")
	})
	router.GET("/health", healthCheckHandler(c.DB, c.Cache, c.Config.App.Version))

	catalog := router.Group("/catalog")
	{
		catalog.GET("", c.IndexHandler.Index)
		catalog.GET("/", c.IndexHandler.Index)

		limit := c.FormLimiter.Middleware()
		setupGenreRoutes(catalog, c, limit)
		setupAuthorRoutes(catalog, c, limit)
		setupBookRoutes(catalog, c, limit)
	}

	return router
}

// ========================================
// GENRE ROUTES
// ========================================
func setupGenreRoutes(catalog *gin.RouterGroup, c *container.Container, limit gin.HandlerFunc) {
	h := c.GenreHandler

	catalog.GET("/genres", h.List)
	catalog.GET("/genre/create", h.CreateForm)
	catalog.POST("/genre/create", limit, h.Create)
	catalog.POST("/genre/delete", limit, h.Delete)
	catalog.GET("/genre/:id", h.Detail)
	catalog.GET("/genre/:id/delete", h.DeleteForm)
	catalog.GET("/genre/:id/update", h.UpdateForm)
	catalog.POST("/genre/:id/update", limit, h.Update)
}

// ========================================
// AUTHOR ROUTES
// ========================================
func setupAuthorRoutes(catalog *gin.RouterGroup, c *container.Container, limit gin.HandlerFunc) {
	h := c.AuthorHandler

	catalog.GET("/authors", h.List)
	catalog.GET("/author/create", h.CreateForm)
	catalog.POST("/author/create", limit, h.Create)
	catalog.POST("/author/delete", limit, h.Delete)
	catalog.GET("/author/:id", h.Detail)
	catalog.GET("/author/:id/delete", h.DeleteForm)
	catalog.GET("/author/:id/update", h.UpdateForm)
	catalog.POST("/author/:id/update", limit, h.Update)
}

// ========================================
// BOOK ROUTES
// ========================================
func setupBookRoutes(catalog *gin.RouterGroup, c *container.Container, limit gin.HandlerFunc) {
	h := c.BookHandler

	catalog.GET("/books", h.List)
	catalog.GET("/book/create", h.CreateForm)
	catalog.POST("/book/create", limit, h.Create)
	catalog.GET("/book/:id", h.Detail)
}

// ========================================
// HEALTH CHECK
// ========================================

type healthChecker interface {
	HealthCheck(ctx context.Context) error
	Stats() (*database.PoolStats, error)
}

func healthCheckHandler(db healthChecker, c cache.Cache, version string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
		defer cancel()

		services := gin.H{"database": "ok", "redis": "ok"}

		if err := c.Ping(checkCtx); err != nil {
			services["redis"] = "error: " + err.Error()
		}

		if err := db.HealthCheck(checkCtx); err != nil {
			services["database"] = "error: " + err.Error()
			response.ServiceUnavailable(ctx, "Database unavailable", services)
			return
		}

		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   version,
			"services":  services,
		}
		if stats, err := db.Stats(); err == nil {
			health["pool"] = stats
		}

		response.Success(ctx, http.StatusOK, health)
	}
}
