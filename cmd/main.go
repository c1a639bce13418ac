package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/SergeyBogomolovv/storefront-orders/docs"
	"github.com/SergeyBogomolovv/storefront-orders/internal/app"
	"github.com/SergeyBogomolovv/storefront-orders/internal/carrier"
	"github.com/SergeyBogomolovv/storefront-orders/internal/config"
	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"
	"github.com/SergeyBogomolovv/storefront-orders/internal/events"
	"github.com/SergeyBogomolovv/storefront-orders/internal/gateway"
	"github.com/SergeyBogomolovv/storefront-orders/internal/handler"
	"github.com/SergeyBogomolovv/storefront-orders/internal/middleware"
	"github.com/SergeyBogomolovv/storefront-orders/internal/postgres"
	"github.com/SergeyBogomolovv/storefront-orders/internal/repo"
	"github.com/SergeyBogomolovv/storefront-orders/internal/service"
	"github.com/SergeyBogomolovv/storefront-orders/pkg/cache"
	"github.com/SergeyBogomolovv/storefront-orders/pkg/tracing"
	"github.com/SergeyBogomolovv/storefront-orders/pkg/trm"

	"github.com/joho/godotenv"
)

const carrierTokenHeader = "X-Api-Key"

// @title           Storefront Orders API
// @version         1.0
// @description     Жизненный цикл заказов: вебхуки перевозчика и платежей, админка.
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-Api-Key
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	shutdownTracing, err := tracing.Init(ctx, tracing.Config{
		Endpoint:    conf.Tracing.Endpoint,
		ServiceName: conf.Tracing.ServiceName,
		Environment: conf.Env,
		SampleRate:  conf.Tracing.SampleRate,
	})
	panicIfErr("failed to init tracing", err)
	defer shutdownTracing(context.Background())

	db, err := postgres.New(ctx, conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	orderCache := cache.NewLRUCache[string, entities.Order](conf.Cache.Capacity, conf.Cache.TTL)
	orderRepo := repo.NewCachedRepo(repo.NewPostgresRepo(db), orderCache)
	txManager := trm.NewManager(db)

	var publisher interface {
		service.StatusPublisher
		app.Closer
	} = events.NopPublisher{}
	if conf.Kafka.Enabled {
		publisher = events.NewKafkaPublisher(logger, conf.Kafka)
	}

	orderService := service.NewOrderService(logger, service.Deps{
		Repo:      orderRepo,
		TxManager: txManager,
		Publisher: publisher,
		Tracker:   carrier.NewClient(conf.Carrier),
		Gateway:   gateway.NewClient(conf.Payment),
	})

	handler.RegisterMetrics()

	app := app.New(logger, conf)
	app.SetHTTPHandlers(
		handler.NewShipmentHandler(logger, orderService, middleware.APIKey(carrierTokenHeader, conf.Carrier.WebhookToken)),
		handler.NewAdminHandler(logger, orderService, middleware.AdminAuth(conf.Admin.JWTSecret)),
		handler.NewPaymentHandler(logger, orderService),
	)
	if conf.Kafka.Enabled {
		app.SetConsumers(handler.NewKafkaHandler(logger, conf.Kafka, orderService))
	}
	app.SetStarters(orderCache, cacheWarmUpAdapter{repo: orderRepo, count: conf.Cache.Capacity, logger: logger})
	app.SetClosers(publisher)

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}

type warmUpper interface {
	WarmUp(ctx context.Context, count int) error
}

type cacheWarmUpAdapter struct {
	repo   warmUpper
	count  int
	logger *slog.Logger
}

// Start прогревает кэш; ошибка не валит приложение, кэш заполнится по ходу работы.
func (a cacheWarmUpAdapter) Start(ctx context.Context) error {
	if err := a.repo.WarmUp(ctx, a.count); err != nil {
		a.logger.Warn("failed to warm up cache", slog.Any("error", err))
	}
	return nil
}
