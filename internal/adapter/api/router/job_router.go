package router

import (
	"github.com/labstack/echo/v4"

	"huduma/internal/adapter/api/handler"
	"huduma/internal/adapter/api/middleware"
)

func SetupJobRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	jobHandler := handler.GetJobHandler()

	jobs := e.Group("/v1/jobs")
	jobs.Use(authMiddleware.Authenticate)
	jobs.POST("", jobHandler.CreateJob)
	jobs.GET("", jobHandler.ListMyJobs)
	jobs.GET("/:id", jobHandler.GetJob)
	jobs.PATCH("/:id", jobHandler.UpdateJob)
}
