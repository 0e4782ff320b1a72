package main

import (
	"context"
	"log/slog"
	"os"

	"eventhub/config"
	"eventhub/internal/delivery"
	"eventhub/internal/delivery/api"
	"eventhub/internal/delivery/api/middleware"
	"eventhub/internal/delivery/api/router/handler"
	"eventhub/internal/domain/service"
	"eventhub/internal/infra/auth"
	"eventhub/internal/infra/cache"
	logs "eventhub/internal/infra/log"
	"eventhub/internal/infra/mail"
	"eventhub/internal/infra/payment"
	"eventhub/internal/infra/persistence/postgres"
	"eventhub/internal/infra/pubsub"
	"eventhub/internal/usecase/impl"

	"github.com/redis/go-redis/v9"
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
		cache.NewRedisClient,
		pubsub.NewEventPublisher,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewAddressRepository,
			postgres.NewLoveDecorationRepository,
			postgres.NewPartnerSupplierRepository,
			postgres.NewProfessionRepository,
			postgres.NewSubscriptionRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			mail.NewMailSender,
			payment.NewStripeWebhookVerifier,
			newCustomerDirectory,
		),
	)
}

// newCustomerDirectory puts the redis cache in front of Stripe when redis is configured.
func newCustomerDirectory(cfg *config.Config, rdb *redis.Client, logger *slog.Logger) (service.CustomerDirectory, error) {
	directory, err := payment.NewStripeCustomerDirectory(cfg)
	if err != nil {
		return nil, err
	}
	if rdb == nil {
		return directory, nil
	}

	return cache.NewCachedCustomerDirectory(directory, rdb, cfg.Redis.CustomerCacheTTL, logger), nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewLoveDecorationService,
			impl.NewPartnerSupplierService,
			impl.NewProfessionService,
			impl.NewSubscriptionService,
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
			handler.NewProfileGuard,
			handler.NewAuthHandler,
			handler.NewLoveDecorationHandler,
			handler.NewPartnerSupplierHandler,
			handler.NewProfessionHandler,
			handler.NewWebhookHandler,
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
