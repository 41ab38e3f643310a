// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"scancare/internal/delivery/http/middleware"
	"scancare/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler        *handler.CatalogHandler
	ScanHandler           *handler.ScanHandler
	RecommendationHandler *handler.RecommendationHandler
	FavoriteHandler       *handler.FavoriteHandler
	HistoryHandler        *handler.HistoryHandler
	ProfileHandler        *handler.ProfileHandler
	ReviewHandler         *handler.ReviewHandler
	SyncHandler           *handler.SyncHandler
	AssistantHandler      *handler.AssistantHandler
	AuthMiddleware        *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler        *handler.CatalogHandler
	scanHandler           *handler.ScanHandler
	recommendationHandler *handler.RecommendationHandler
	favoriteHandler       *handler.FavoriteHandler
	historyHandler        *handler.HistoryHandler
	profileHandler        *handler.ProfileHandler
	reviewHandler         *handler.ReviewHandler
	syncHandler           *handler.SyncHandler
	assistantHandler      *handler.AssistantHandler
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler:        params.CatalogHandler,
		scanHandler:           params.ScanHandler,
		recommendationHandler: params.RecommendationHandler,
		favoriteHandler:       params.FavoriteHandler,
		historyHandler:        params.HistoryHandler,
		profileHandler:        params.ProfileHandler,
		reviewHandler:         params.ReviewHandler,
		syncHandler:           params.SyncHandler,
		assistantHandler:      params.AssistantHandler,
		authMiddleware:        params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public catalog routes
	catalogGroup := e.Group("/catalog")
	{
		catalogGroup.GET("/products", r.catalogHandler.ListProducts)
		catalogGroup.GET("/products/:id", r.catalogHandler.GetProduct)
	}

	// Public review reads; writes require authentication
	e.GET("/products/:id/reviews", r.reviewHandler.GetProductReviews)
	e.POST("/products/:id/reviews", r.reviewHandler.SubmitReview, r.authMiddleware.Authenticate)
	e.DELETE("/reviews/:id", r.reviewHandler.DeleteReview, r.authMiddleware.Authenticate)

	// Scan flow requires authentication
	e.POST("/scan", r.scanHandler.Scan, r.authMiddleware.Authenticate)

	// Recommendations: stored-profile ranking needs a session, the
	// explicit preview does not
	e.GET("/recommendations", r.recommendationHandler.Recommend, r.authMiddleware.Authenticate)
	e.POST("/recommendations/preview", r.recommendationHandler.Preview)

	// Per-user collection routes
	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/favorites", r.favoriteHandler.ListFavorites)
		userGroup.POST("/favorites", r.favoriteHandler.AddFavorite)
		userGroup.DELETE("/favorites/:id", r.favoriteHandler.RemoveFavorite)
		userGroup.GET("/favorites/contains", r.favoriteHandler.ContainsFavorite)

		userGroup.GET("/history", r.historyHandler.ListHistory)
		userGroup.DELETE("/history/:id", r.historyHandler.RemoveHistoryEntry)
		userGroup.DELETE("/history", r.historyHandler.ClearHistory)

		userGroup.GET("/profile", r.profileHandler.GetProfile)
		userGroup.PUT("/profile", r.profileHandler.UpdateProfile)
	}

	// View snapshot routes
	syncGroup := e.Group("/sync")
	syncGroup.Use(r.authMiddleware.Authenticate)
	{
		syncGroup.POST("/reload", r.syncHandler.Reload)
		syncGroup.GET("/snapshot", r.syncHandler.Snapshot)
	}

	// Chat assistant
	e.POST("/assistant/chat", r.assistantHandler.Chat, r.authMiddleware.Authenticate)
}
