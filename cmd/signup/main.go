package main

import (
	"context"
	"log/slog"
	"os"

	"signup/config"
	"signup/internal/delivery"
	"signup/internal/delivery/http"
	"signup/internal/delivery/http/controller"
	"signup/internal/infra/auth"
	logs "signup/internal/infra/log"
	"signup/internal/infra/metrics"
	"signup/internal/infra/validation"
	"signup/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Logger     *slog.Logger
	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectController(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		metrics.NewRegistry,
		metrics.NewCollector,
	)
}

func injectRepo() fx.Option {
	return fx.Provide(
		newAccountRepository,
	)
}

func injectService() fx.Option {
	return fx.Provide(
		auth.NewBcryptHasher,
		validation.NewEmailValidator,
	)
}

func injectUsecase() fx.Option {
	return fx.Provide(
		impl.NewAddAccountService,
	)
}

func injectController() fx.Option {
	return fx.Provide(
		controller.NewSignUpController,
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

// startServer serves from an OnStart hook. The store hooks were appended
// while building the deliveries, so they run first and a store that cannot
// connect aborts startup before the port is bound.
func startServer(params startServerParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			for _, d := range params.Deliveries {
				go func() {
					if err := d.Serve(context.Background()); err != nil {
						params.Logger.Error("Failed to start server", slog.Any("error", err))
						os.Exit(1)
					}
				}()
			}

			return nil
		},
	})
}
