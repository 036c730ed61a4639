package router

import (
	"github.com/labstack/echo/v4"

	"huduma/internal/adapter/api/handler"
)

func SetupWebSocketRouter(e *echo.Echo) {
	webSocketHandler := handler.GetWebSocketHandler()

	// Token auth happens inside the handler; upgrade requests cannot carry
	// an Authorization header from a browser.
	e.GET("/ws", webSocketHandler.HandleWebSocket)
}
