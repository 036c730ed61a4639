package router

import (
	"github.com/labstack/echo/v4"

	"huduma/internal/adapter/api/handler"
	"huduma/internal/adapter/api/middleware"
)

func SetupFavoriteRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	favoriteHandler := handler.GetFavoriteHandler()

	favorites := e.Group("/v1/favorites")
	favorites.Use(authMiddleware.Authenticate)
	favorites.GET("", favoriteHandler.ListMyFavorites)
	favorites.POST("", favoriteHandler.AddFavorite)
	favorites.DELETE("/:providerId", favoriteHandler.RemoveFavorite)
}
