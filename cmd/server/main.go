package main

import (
	"Closetly/internal/cache"
	"Closetly/internal/config"
	"Closetly/internal/handlers"
	"Closetly/internal/middleware"
	"Closetly/internal/repo"
	"Closetly/internal/service"
	"net/http"
	"time"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	userRepo := repo.NewUserRepository(gormDB)
	itemRepo := repo.NewItemRepository(gormDB)
	postRepo := repo.NewPostRepository(gormDB)
	offerRepo := repo.NewOfferRepository(gormDB)
	engagementRepo := repo.NewEngagementRepository(gormDB)
	photoRepo := repo.NewPhotoRepository(gormDB)

	// счётчики постов: напрямую из БД или через Redis
	var counts service.CountsProvider = &service.RepoCounts{Engagement: engagementRepo}
	var invalidator service.CountInvalidator
	if cfg.RedisAddr != "" {
		rdb, closeRedis, err := cache.NewRedis(cfg.RedisAddr, cfg.RedisUser, cfg.RedisPassword)
		if err != nil {
			sugar.Fatalw("failed to initialize redis", "error", err)
		}
		defer func() { _ = closeRedis() }()

		caching := &cache.CountsCaching{
			Next:   counts,
			Redis:  rdb,
			TTL:    time.Minute,
			Logger: sugar,
		}
		counts = caching
		invalidator = caching
	}

	userService := service.NewUserService(userRepo)
	listingService := service.NewListingService(itemRepo, postRepo, photoRepo, sugar)
	offerService := service.NewOfferService(offerRepo, itemRepo, postRepo, sugar)
	feedService := service.NewFeedService(postRepo, userRepo, counts)
	engagementService := service.NewEngagementService(engagementRepo, postRepo, invalidator)

	h := handlers.NewHandler(userService, listingService, offerService, feedService, engagementService, sugar, cfg)

	addr := cfg.BaseURL

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"RedisAddr", cfg.RedisAddr,
	)

	if err := http.ListenAndServe(addr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
