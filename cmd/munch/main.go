package main

import (
	"context"
	"log/slog"
	"os"

	"munch/config"
	"munch/internal/delivery"
	"munch/internal/delivery/http"
	httpmiddleware "munch/internal/delivery/http/middleware"
	"munch/internal/delivery/http/router/handler"
	"munch/internal/delivery/middleware"
	"munch/internal/infra/auth"
	logs "munch/internal/infra/log"
	"munch/internal/infra/persistence/memory"
	"munch/internal/infra/token"
	"munch/internal/usecase/impl"

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
		memory.LoadSeed,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			memory.NewDishRepository,
			memory.NewUserRepository,
			memory.NewCartRepository,
			memory.NewOrderRepository,
			memory.NewActivityRepository,
			memory.NewRatingRepository,
			memory.NewSupportRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			token.NewFakeTokenService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccountService,
			impl.NewProfileService,
			impl.NewMenuService,
			impl.NewCartService,
			impl.NewOrderService,
			impl.NewSupportService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewRequestIDMiddleware,
			httpmiddleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAccountHandler,
			handler.NewProfileHandler,
			handler.NewMenuHandler,
			handler.NewCartHandler,
			handler.NewOrderHandler,
			handler.NewSupportHandler,
			handler.NewMetaHandler,
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
