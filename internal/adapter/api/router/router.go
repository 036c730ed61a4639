package router

import (
	"github.com/labstack/echo/v4"

	"huduma/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	SetupAuthRouter(e, authMiddleware)
	SetupCategoryRouter(e)
	SetupProviderRouter(e, authMiddleware)
	SetupJobRouter(e, authMiddleware)
	SetupChatRouter(e, authMiddleware)
	SetupReviewRouter(e, authMiddleware)
	SetupFavoriteRouter(e, authMiddleware)
	SetupPaymentRouter(e, authMiddleware)
	SetupFileRouter(e, authMiddleware)
	SetupWebSocketRouter(e)
	SetupHealthRouter(e)
}
