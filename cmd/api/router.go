package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"lostfound-backend/internal/shared/middleware"
	"lostfound-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	// Uploaded blobs are served straight from the upload directory when
	// the local driver is active; the minio driver serves from the bucket.
	if c.Config.Storage.Driver == "local" {
		router.Static(c.Config.Storage.URLPrefix, c.Config.Storage.UploadDir)
	}

	api := router.Group("/api")
	{
		api.GET("/health", healthCheckHandler(c))

		// ========================================
		// ITEM ROUTES
		// ========================================
		api.GET("/items", c.ItemHandler.ListItems)
		api.POST("/items", c.ItemHandler.CreateItem)
		api.PUT("/items/:id", c.ItemHandler.UpdateItem)
		api.DELETE("/items/:id", c.ItemHandler.DeleteItem)

		// ========================================
		// UPLOAD ROUTE
		// ========================================
		api.POST("/upload", c.UploadHandler.Upload)

		// ========================================
		// USER ROUTES
		// ========================================
		api.POST("/login1", c.UserHandler.Login)
		api.POST("/register", c.UserHandler.Register)
	}

	return router
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================

func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		dbStatus := "ok"
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := appCtx.DB.HealthCheck(ctx); err != nil {
			dbStatus = err.Error()
			health["status"] = "degraded"
		}
		health["database"] = dbStatus

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
