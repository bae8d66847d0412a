package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	appBookmark "github.com/artfolio/artfolio/pkg/app/bookmark"
	appComment "github.com/artfolio/artfolio/pkg/app/comment"
	appDetection "github.com/artfolio/artfolio/pkg/app/detection"
	appFeed "github.com/artfolio/artfolio/pkg/app/feed"
	appFollow "github.com/artfolio/artfolio/pkg/app/follow"
	appUser "github.com/artfolio/artfolio/pkg/app/user"
	appWork "github.com/artfolio/artfolio/pkg/app/work"
	"github.com/artfolio/artfolio/pkg/config"
	handlers "github.com/artfolio/artfolio/pkg/handlers/http"
	"github.com/artfolio/artfolio/pkg/infra/cache"
	"github.com/artfolio/artfolio/pkg/infra/database"
	"github.com/artfolio/artfolio/pkg/infra/httpx"
	infraLogger "github.com/artfolio/artfolio/pkg/infra/logger"
	"github.com/artfolio/artfolio/pkg/infra/repository"
	"github.com/artfolio/artfolio/pkg/infra/storage"
	"github.com/artfolio/artfolio/pkg/middleware"
	"github.com/artfolio/artfolio/pkg/server"
)

func main() {
	ctx := context.Background()

	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	logger := infraLogger.NewLogger()

	if err := config.Load("./config"); err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	cfg := config.GetConfig()

	db, err := database.NewDB(&cfg.Database)
	if err != nil {
		logger.Fatalf("failed to initialize database: %v", err)
	}
	defer db.Close()

	cacheInstance, err := cache.NewCache(cfg.Redis)
	if err != nil {
		logger.Fatalf("failed to initialize cache: %v", err)
	}

	mediaStore, err := storage.NewS3Store(ctx, cfg.Storage, logger)
	if err != nil {
		logger.Fatalf("failed to initialize media store: %v", err)
	}

	// Outbound client for the detection vendors; the timeout bounds every
	// gate call, publish included.
	httpClient := httpx.NewClient(
		httpx.WithTimeout(time.Duration(cfg.Detection.TimeoutSeconds) * time.Second),
	)
	detectionService := appDetection.NewService(cfg.Detection, logger, httpClient)

	// repository
	userRepository := repository.NewUserRepository(db.DB)
	workRepository := repository.NewWorkRepository(db.DB)
	threadRepository := repository.NewThreadRepository(db.DB)
	commentRepository := repository.NewCommentRepository(db.DB)
	bookmarkRepository := repository.NewBookmarkRepository(db.DB)
	followRepository := repository.NewFollowRepository(db.DB)

	// service
	workPublisher := appWork.NewPublisher(logger, workRepository, detectionService, mediaStore)
	workFinder := appWork.NewFinder(logger, workRepository, commentRepository)
	workDeleter := appWork.NewDeleter(logger, workRepository, commentRepository, mediaStore)
	feedBuilder := appFeed.NewBuilder(logger, workRepository, followRepository, commentRepository, cacheInstance)
	followToggler := appFollow.NewToggler(logger, followRepository, cacheInstance)
	bookmarkToggler := appBookmark.NewToggler(logger, bookmarkRepository)
	commentCreator := appComment.NewCreator(logger, commentRepository, workRepository)
	userFinder := appUser.NewFinder(logger, userRepository, followRepository)
	userUpdater := appUser.NewUpdater(logger, userRepository)

	handlerTransport := handlers.HandlerTransport{
		DetectTextHandler:     handlers.NewDetectTextHandler(logger, detectionService),
		DetectImageHandler:    handlers.NewDetectImageHandler(logger, detectionService),
		PublishWorkHandler:    handlers.NewPublishWorkHandler(logger, workPublisher),
		GetWorkHandler:        handlers.NewGetWorkHandler(logger, workFinder),
		ListWorksHandler:      handlers.NewListWorksHandler(logger, workFinder),
		DeleteWorkHandler:     handlers.NewDeleteWorkHandler(logger, workDeleter),
		CreateCommentHandler:  handlers.NewCreateCommentHandler(logger, commentCreator),
		ListCommentsHandler:   handlers.NewListCommentsHandler(logger, commentRepository),
		ToggleBookmarkHandler: handlers.NewToggleBookmarkHandler(logger, bookmarkToggler),
		ListBookmarksHandler:  handlers.NewListBookmarksHandler(logger, bookmarkRepository, workFinder),
		ToggleFollowHandler:   handlers.NewToggleFollowHandler(logger, followToggler),
		GetUserHandler:        handlers.NewGetUserHandler(logger, userFinder),
		UpdateUserHandler:     handlers.NewUpdateUserHandler(logger, userUpdater),
		FeedHandler:           handlers.NewFeedHandler(logger, feedBuilder),
		ExploreHandler:        handlers.NewExploreHandler(logger, feedBuilder),
		ListThreadsHandler:    handlers.NewListThreadsHandler(logger, threadRepository),
		PresignUploadHandler:  handlers.NewPresignUploadHandler(logger, mediaStore),
		GetVersionHandler:     handlers.NewGetVersionHandler(logger),
	}

	middlewareTransport := middleware.Transport{
		AuthMiddleware:    middleware.NewAuthMiddleware(logger, cfg.Auth.JWTSecret),
		MetricsMiddleware: middleware.NewMetricsMiddleware(logger, cfg.Metrics),
	}

	apiServer := server.NewAPIServer(server.APIServerDI{
		MiddlewareTransport: middlewareTransport,
		HandlerTransport:    handlerTransport,
		Config:              cfg,
		Logger:              logger,
	})

	go func() {
		if err := apiServer.Run(); err != nil {
			logger.WithError(err).Fatal("api server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	if err := apiServer.Shutdown(); err != nil {
		logger.WithError(err).Error("failed to shut down api server")
	}
}
