package main

import (
	"context"
	"log/slog"
	"os"

	"scancare/config"
	"scancare/internal/delivery"
	"scancare/internal/delivery/http"
	"scancare/internal/delivery/http/middleware"
	"scancare/internal/delivery/http/router/handler"
	"scancare/internal/infra/assistant"
	"scancare/internal/infra/auth"
	logs "scancare/internal/infra/log"
	"scancare/internal/infra/persistence/postgres"
	"scancare/internal/infra/persistence/redis"
	"scancare/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		redis.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewReviewRepository,
			redis.NewFavoriteRepository,
			redis.NewHistoryRepository,
			redis.NewProfileRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			assistant.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCatalogService,
			impl.NewScanService,
			impl.NewRecommendationService,
			impl.NewFavoriteService,
			impl.NewHistoryService,
			impl.NewProfileService,
			impl.NewReviewService,
			impl.NewSyncService,
			impl.NewAssistantService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCatalogHandler,
			handler.NewScanHandler,
			handler.NewRecommendationHandler,
			handler.NewFavoriteHandler,
			handler.NewHistoryHandler,
			handler.NewProfileHandler,
			handler.NewReviewHandler,
			handler.NewSyncHandler,
			handler.NewAssistantHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
