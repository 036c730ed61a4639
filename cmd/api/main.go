package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"huduma/internal/adapter/api"
	"huduma/internal/adapter/api/handler"
	apimiddleware "huduma/internal/adapter/api/middleware"
	"huduma/internal/adapter/api/router"
	"huduma/internal/adapter/repository"
	"huduma/internal/domain/service"
	"huduma/internal/infrastructure/firebase"
	"huduma/internal/infrastructure/ratelimit"
	"huduma/internal/infrastructure/storage"
	"huduma/internal/infrastructure/websocket"
	"huduma/internal/usecase"
	"huduma/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption
	credentialsPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opts...)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	firebaseAuth, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, credentialsPath)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	categoryRepo := repository.NewFirestoreCategoryRepository(firestoreClient)
	providerRepo := repository.NewFirestoreProviderRepository(firestoreClient)
	jobRepo := repository.NewFirestoreJobRepository(firestoreClient)
	messageRepo := repository.NewFirestoreMessageRepository(firestoreClient)
	reviewRepo := repository.NewFirestoreReviewRepository(firestoreClient)
	favoriteRepo := repository.NewFirestoreFavoriteRepository(firestoreClient)

	authClient := firebase.NewAuthClient(firebaseAuth)

	wsManager := websocket.NewManager()
	dispatcher := websocket.NewDispatcher(wsManager)
	notifier := usecase.NewJobNotifier(dispatcher)

	rateLimiter := ratelimit.NewRateLimiter()
	rateLimiter.StartCleanupRoutine()

	paymentService := service.NewMpesaPaymentService(
		cfg.MpesaBaseURL,
		cfg.MpesaConsumerKey,
		cfg.MpesaSecret,
		cfg.MpesaShortCode,
		cfg.MpesaPasskey,
		cfg.MpesaCallbackURL,
	)

	authUseCase := usecase.NewAuthUseCase(userRepo, authClient)
	categoryUseCase := usecase.NewCategoryUseCase(categoryRepo)
	providerUseCase := usecase.NewProviderUseCase(providerRepo, userRepo, categoryRepo)
	jobUseCase := usecase.NewJobUseCase(jobRepo, providerRepo, categoryRepo, userRepo, notifier, rateLimiter)
	chatUseCase := usecase.NewChatUseCase(messageRepo, jobRepo, userRepo, dispatcher, rateLimiter)
	reviewUseCase := usecase.NewReviewUseCase(reviewRepo, jobRepo, providerRepo, userRepo)
	favoriteUseCase := usecase.NewFavoriteUseCase(favoriteRepo, providerRepo, userRepo, categoryRepo)
	paymentUseCase := usecase.NewPaymentUseCase(jobRepo, paymentService, notifier)

	if err := categoryUseCase.Seed(ctx); err != nil {
		log.Printf("Category seeding skipped: %v", err)
	}

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)

	handler.Setup(
		authUseCase,
		categoryUseCase,
		providerUseCase,
		jobUseCase,
		chatUseCase,
		reviewUseCase,
		favoriteUseCase,
		paymentUseCase,
		storageClient,
		wsManager,
		authMiddleware,
	)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	router.Setup(e, authMiddleware)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
