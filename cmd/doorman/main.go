package main

import (
	"context"
	"log/slog"
	"os"

	"doorman/config"
	"doorman/internal/delivery"
	"doorman/internal/delivery/http"
	"doorman/internal/delivery/http/middleware"
	"doorman/internal/delivery/http/router/handler"
	"doorman/internal/infra/auth"
	logs "doorman/internal/infra/log"
	"doorman/internal/infra/persistence/postgres"
	"doorman/internal/usecase/impl"

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
	)
}

func injectRepo() fx.Option {
	return fx.Provide(
		postgres.NewAccountRepository,
		postgres.NewTransactionManager,
	)
}

func injectService() fx.Option {
	return fx.Provide(
		auth.NewBcryptHasher,
	)
}

func injectUsecase() fx.Option {
	return fx.Provide(
		impl.NewAccountService,
	)
}

func injectMiddleware() fx.Option {
	return fx.Provide(
		middleware.NewRequestIDMiddleware,
		middleware.NewErrorMiddleware,
	)
}

func injectHandler() fx.Option {
	return fx.Provide(
		handler.NewAccountHandler,
	)
}

func injectDelivery() fx.Option {
	return fx.Provide(
		fx.Annotate(
			http.NewServer,
			fx.ResultTags(`group:"deliveries"`),
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
