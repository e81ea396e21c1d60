package main

import (
	"context"
	"log/slog"
	"os"

	"menuqr/config"
	"menuqr/internal/delivery"
	"menuqr/internal/delivery/http"
	"menuqr/internal/delivery/http/middleware"
	"menuqr/internal/delivery/http/router/handler"
	"menuqr/internal/domain/service"
	"menuqr/internal/infra/auth"
	logs "menuqr/internal/infra/log"
	"menuqr/internal/infra/persistence/postgres"
	"menuqr/internal/infra/pubsub"
	"menuqr/internal/infra/qrcode"
	"menuqr/internal/infra/storage"
	"menuqr/internal/usecase/impl"

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
	return fx.Options(
		fx.Provide(
			postgres.NewMenuRepository,
			postgres.NewAnalyticsRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			newQRCodeService,
			storage.NewImageStore,
			pubsub.NewEventPublisher,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	return qrcode.NewQRCodeService(cfg.QRCode)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewMenuService,
			impl.NewAnalyticsService,
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
			handler.NewMenuHandler,
			handler.NewAnalyticsHandler,
			handler.NewPublicHandler,
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
