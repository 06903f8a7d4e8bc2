package handlers

import (
	"Closetly/internal/config"
	"Closetly/internal/middleware"
	"Closetly/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	listingService *service.ListingService,
	offerService *service.OfferService,
	feedService *service.FeedService,
	engagementService *service.EngagementService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(config.AuthSecret))

	// Handlers
	userHandler := NewUserHandler(userService, logger, config)
	itemHandler := NewItemHandler(listingService, logger, config)
	offerHandler := NewOfferHandler(offerService, logger)
	feedHandler := NewFeedHandler(feedService, logger)
	postHandler := NewPostHandler(engagementService, logger)

	// User routes
	r.Post("/api/user/register", userHandler.Register)
	r.Post("/api/user/login", userHandler.Login)
	r.Get("/api/user/friends", userHandler.Friends)
	r.Post("/api/user/friends", userHandler.AddFriend)

	// Feed
	r.Get("/api/feed", feedHandler.Feed)

	// Items
	r.Post("/api/items", itemHandler.CreateListing)
	r.Get("/api/items", itemHandler.Closet)
	r.Get("/api/items/{id}", itemHandler.GetItem)
	r.Get("/api/items/{id}/history", itemHandler.History)

	// Offers
	r.Post("/api/offers", offerHandler.Submit)
	r.Get("/api/offers", offerHandler.List)
	r.Post("/api/offers/{id}/accept", offerHandler.Accept)
	r.Post("/api/offers/{id}/reject", offerHandler.Reject)
	r.Post("/api/offers/{id}/post", offerHandler.DischargePost)

	// Posts engagement
	r.Post("/api/posts/{id}/like", postHandler.ToggleLike)
	r.Get("/api/posts/{id}/comments", postHandler.Comments)
	r.Post("/api/posts/{id}/comments", postHandler.AddComment)

	// Media
	r.Post("/api/media/upload", itemHandler.UploadPhoto)
	r.Get("/media/{id}", itemHandler.ServePhoto)

	return &Handler{Router: r}
}
