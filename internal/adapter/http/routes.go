package http

import (
	"github.com/gin-gonic/gin"

	"github.com/pine007/pi-todo/internal/adapter/http/handlers"
	"github.com/pine007/pi-todo/internal/adapter/http/middleware"
	"github.com/pine007/pi-todo/internal/core/ports"
)

func RegisterRoutes(
	r *gin.Engine,
	tokens ports.TokenManager,
	healthHandler *handlers.HealthHandler,
	authHandler *handlers.AuthHandler,
	taskHandler *handlers.TaskHandler,
	categoryHandler *handlers.CategoryHandler,
	statsHandler *handlers.StatsHandler,
) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/logout", authHandler.Logout)
	}

	protected := api.Group("")
	protected.Use(middleware.AuthRequired(tokens))
	{
		protected.GET("/auth/me", authHandler.Me)

		protected.POST("/tasks", taskHandler.CreateTask)
		protected.GET("/tasks", taskHandler.ListTasks)
		protected.GET("/tasks/:id", taskHandler.GetTask)
		protected.PUT("/tasks/:id", taskHandler.UpdateTask)
		protected.DELETE("/tasks/:id", taskHandler.DeleteTask)

		protected.POST("/categories", categoryHandler.CreateCategory)
		protected.GET("/categories", categoryHandler.ListCategories)
		protected.GET("/categories/:id", categoryHandler.GetCategory)
		protected.PUT("/categories/:id", categoryHandler.UpdateCategory)
		protected.DELETE("/categories/:id", categoryHandler.DeleteCategory)

		protected.GET("/stats", statsHandler.GetStats)
	}
}
