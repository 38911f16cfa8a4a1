package main

import (
	"context"
	"log/slog"
	"os"

	"geekstore/config"
	"geekstore/internal/delivery"
	"geekstore/internal/delivery/api"
	"geekstore/internal/delivery/api/middleware"
	"geekstore/internal/delivery/api/router/handler"
	"geekstore/internal/delivery/scheduler"
	"geekstore/internal/domain/service"
	"geekstore/internal/infra/auth"
	"geekstore/internal/infra/auth/google"
	logs "geekstore/internal/infra/log"
	"geekstore/internal/infra/mail"
	"geekstore/internal/infra/payment"
	"geekstore/internal/infra/persistence/postgres"
	"geekstore/internal/infra/pubsub"
	"geekstore/internal/infra/qrcode"
	"geekstore/internal/infra/storage"
	"geekstore/internal/usecase"
	"geekstore/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

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
			postgres.NewUserRepository,
			postgres.NewTokenRepository,
			postgres.NewAddressRepository,
			postgres.NewCategoryRepository,
			postgres.NewBrandRepository,
			postgres.NewProductRepository,
			postgres.NewOrderRepository,
			postgres.NewWishlistRepository,
			postgres.NewComplaintRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			google.NewAuthService,
			payment.NewMercadoPagoGateway,
			storage.NewFileStorage,
			newQRCodeService,
			pubsub.NewEventPublisher,
			// The in-process publisher delivers mail from this process
			mail.NewTemplateRenderer,
			mail.NewSMTPMailer,
			newMailEventHandler,
		),
	)
}

// newMailEventHandler exposes the mail usecase to the in-process publisher
func newMailEventHandler(uc usecase.MailUsecase) service.MailEventHandler {
	return uc
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M", "")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.YapePhone)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewUserService,
			impl.NewAddressService,
			impl.NewCategoryService,
			impl.NewBrandService,
			impl.NewProductService,
			impl.NewOrderService,
			impl.NewPaymentService,
			impl.NewWishlistService,
			impl.NewComplaintService,
			impl.NewMediaService,
			impl.NewMailService,
			impl.NewMaintenanceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewProductHandler,
			handler.NewCatalogHandler,
			handler.NewOrderHandler,
			handler.NewPaymentHandler,
			handler.NewAddressHandler,
			handler.NewWishlistHandler,
			handler.NewComplaintHandler,
			handler.NewMediaHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				scheduler.NewScheduler,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
