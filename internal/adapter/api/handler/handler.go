package handler

import (
	"huduma/internal/adapter/api/middleware"
	"huduma/internal/infrastructure/storage"
	"huduma/internal/infrastructure/websocket"
	"huduma/internal/usecase"
)

var (
	authHandler      *AuthHandler
	categoryHandler  *CategoryHandler
	providerHandler  *ProviderHandler
	jobHandler       *JobHandler
	chatHandler      *ChatHandler
	reviewHandler    *ReviewHandler
	favoriteHandler  *FavoriteHandler
	paymentHandler   *PaymentHandler
	fileHandler      *FileHandler
	webSocketHandler *WebSocketHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	categoryUseCase *usecase.CategoryUseCase,
	providerUseCase *usecase.ProviderUseCase,
	jobUseCase *usecase.JobUseCase,
	chatUseCase *usecase.ChatUseCase,
	reviewUseCase *usecase.ReviewUseCase,
	favoriteUseCase *usecase.FavoriteUseCase,
	paymentUseCase *usecase.PaymentUseCase,
	storageClient *storage.CloudStorageClient,
	manager *websocket.Manager,
	authMiddleware *middleware.AuthMiddleware,
) {
	authHandler = NewAuthHandler(authUseCase)
	categoryHandler = NewCategoryHandler(categoryUseCase)
	providerHandler = NewProviderHandler(providerUseCase)
	jobHandler = NewJobHandler(jobUseCase)
	chatHandler = NewChatHandler(chatUseCase)
	reviewHandler = NewReviewHandler(reviewUseCase)
	favoriteHandler = NewFavoriteHandler(favoriteUseCase)
	paymentHandler = NewPaymentHandler(paymentUseCase)
	fileHandler = NewFileHandler(storageClient)
	webSocketHandler = NewWebSocketHandler(manager, authMiddleware)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetCategoryHandler() *CategoryHandler {
	return categoryHandler
}

func GetProviderHandler() *ProviderHandler {
	return providerHandler
}

func GetJobHandler() *JobHandler {
	return jobHandler
}

func GetChatHandler() *ChatHandler {
	return chatHandler
}

func GetReviewHandler() *ReviewHandler {
	return reviewHandler
}

func GetFavoriteHandler() *FavoriteHandler {
	return favoriteHandler
}

func GetPaymentHandler() *PaymentHandler {
	return paymentHandler
}

func GetFileHandler() *FileHandler {
	return fileHandler
}

func GetWebSocketHandler() *WebSocketHandler {
	return webSocketHandler
}
