package router

import (
	"github.com/labstack/echo/v4"

	"huduma/internal/adapter/api/handler"
	"huduma/internal/adapter/api/middleware"
)

func SetupProviderRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	providerHandler := handler.GetProviderHandler()
	reviewHandler := handler.GetReviewHandler()

	providers := e.Group("/v1/providers")
	providers.GET("", providerHandler.ListProviders)
	providers.GET("/:id", providerHandler.GetProvider)
	providers.GET("/:id/reviews", reviewHandler.ListProviderReviews)

	myProfile := e.Group("/v1/my-provider-profile")
	myProfile.Use(authMiddleware.Authenticate)
	myProfile.POST("", providerHandler.CreateProfile)
	myProfile.GET("", providerHandler.GetMyProfile)
	myProfile.PATCH("", providerHandler.UpdateMyProfile)
}
