package router

import (
	"github.com/labstack/echo/v4"

	"huduma/internal/adapter/api/handler"
	"huduma/internal/adapter/api/middleware"
)

func SetupChatRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	chatHandler := handler.GetChatHandler()

	messages := e.Group("/v1/messages")
	messages.Use(authMiddleware.Authenticate)
	messages.POST("", chatHandler.SendMessage)

	jobMessages := e.Group("/v1/jobs/:id/messages")
	jobMessages.Use(authMiddleware.Authenticate)
	jobMessages.GET("", chatHandler.GetJobMessages)
	jobMessages.POST("/read", chatHandler.MarkMessagesRead)
}
