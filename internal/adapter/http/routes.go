package http

import (
	"github.com/gin-gonic/gin"

	"github.com/tomibudis/task-manager-webapp/internal/adapter/http/handlers"
	"github.com/tomibudis/task-manager-webapp/internal/adapter/http/middleware"
)

func RegisterRoutes(r *gin.Engine, healthHandler *handlers.HealthHandler, userHandler *handlers.UserHandler, taskHandler *handlers.TaskHandler, auth gin.HandlerFunc) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)

		api.POST("/auth/register", userHandler.Register)
		api.POST("/auth/login", userHandler.Login)

		me := api.Group("/me", auth)
		{
			me.GET("", userHandler.GetProfile)
			me.PUT("/password", userHandler.ChangePassword)
		}

		tasks := api.Group("/tasks", auth)
		{
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("", taskHandler.ListTasks)
			tasks.PATCH("/:id", taskHandler.UpdateTask)
			tasks.PATCH("/:id/status", taskHandler.UpdateTaskStatus)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
		}
	}
}
