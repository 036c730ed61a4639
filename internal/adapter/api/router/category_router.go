package router

import (
	"github.com/labstack/echo/v4"

	"huduma/internal/adapter/api/handler"
)

func SetupCategoryRouter(e *echo.Echo) {
	categoryHandler := handler.GetCategoryHandler()

	categories := e.Group("/v1/categories")
	categories.GET("", categoryHandler.ListCategories)
	categories.GET("/:id", categoryHandler.GetCategory)
	categories.POST("/seed", categoryHandler.SeedCategories)
}
