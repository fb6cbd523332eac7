package main

import (
	"context"
	"log/slog"
	"os"

	"redcolabora/config"
	"redcolabora/internal/delivery"
	"redcolabora/internal/delivery/web"
	"redcolabora/internal/delivery/web/cookie"
	webmiddleware "redcolabora/internal/delivery/web/middleware"
	"redcolabora/internal/delivery/web/router/handler"
	"redcolabora/internal/delivery/web/view"
	"redcolabora/internal/domain/service"
	"redcolabora/internal/infra/auth"
	"redcolabora/internal/infra/guard"
	logs "redcolabora/internal/infra/log"
	"redcolabora/internal/infra/persistence/postgres"
	"redcolabora/internal/infra/qrcode"
	"redcolabora/internal/infra/supabase"
	"redcolabora/internal/usecase/impl"

	"go.uber.org/fx"
)

const (
	defaultQRSize  = 256
	defaultQRLevel = "M"
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
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			supabase.NewAuthClient,
			auth.NewJWTVerifier,
			guard.NewToggleGuard,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(defaultQRSize, defaultQRLevel, "")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewBusinessService,
			impl.NewSearchCoordinator,
			impl.NewReviewService,
			impl.NewRecommendationService,
			impl.NewAccountService,
			impl.NewSessionService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			cookie.NewJar,
			webmiddleware.NewSessionMiddleware,
			webmiddleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPageHandler,
			handler.NewSearchHandler,
			handler.NewBusinessHandler,
			handler.NewAccountHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			view.NewRenderer,
			fx.Annotate(
				web.NewServer,
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
