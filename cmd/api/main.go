package main

import (
	"context"
	"time"

	"github.com/Behyna/common/pkg/httpclient"
	"github.com/Behyna/common/pkg/mq"
	"github.com/Behyna/payout-services/internal/api"
	v1 "github.com/Behyna/payout-services/internal/api/v1"
	"github.com/Behyna/payout-services/internal/api/v1/middleware"
	"github.com/Behyna/payout-services/internal/api/validator"
	"github.com/Behyna/payout-services/internal/config"
	"github.com/Behyna/payout-services/internal/constants"
	"github.com/Behyna/payout-services/internal/database"
	errmiddleware "github.com/Behyna/payout-services/internal/error"
	"github.com/Behyna/payout-services/internal/metrics"
	"github.com/Behyna/payout-services/internal/publishers"
	"github.com/Behyna/payout-services/internal/repository"
	"github.com/Behyna/payout-services/internal/service"
	"github.com/Behyna/payout-services/pkg/gateway"
	govalidator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	serviceName   = "payout-api"
	uploadLimit   = 20 * 1024 * 1024
	shutdownGrace = 10 * time.Second
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			zap.NewProduction,
			database.NewConnection,

			NewRegistry,
			NewMetrics,
			metrics.NewSystemCollector,
			metrics.NewDatabaseCollector,

			NewGateway,

			repository.NewBeneficiaryRepository,
			repository.NewBulkPaymentRepository,
			repository.NewBulkPaymentLineRepository,
			repository.NewSendMoneyRepository,
			repository.NewWalletBalanceRepository,
			repository.NewTransactionManager,

			NewWalletBalanceService,
			NewBeneficiaryService,
			NewTransferService,
			NewBatchDispatcher,
			service.NewBulkPayoutService,
			service.NewCallbackService,

			NewXValidator,
			v1.NewHandler,
			NewFiberApp,
		),
		fx.Invoke(startServer),
	).Run()
}

func startServer(app *fiber.App, handler *v1.Handler, cfg *config.Config, logger *zap.Logger, db *gorm.DB,
	m *metrics.Metrics, reg *prometheus.Registry, system *metrics.SystemCollector,
	dbCollector *metrics.DatabaseCollector, lc fx.Lifecycle) {
	app.Use(requestid.New())
	app.Use(middleware.HealthCheckMiddleware(serviceName, dbCollector))
	app.Use(middleware.HTTPMetricsMiddleware(m, logger))

	if cfg.Metrics.Enable {
		app.Get(cfg.Metrics.Path, adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	}

	api.SetupRoutes(app, handler, middleware.MemberAuth(cfg.Auth.Secret, logger))

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := database.Migrate(db); err != nil {
				logger.Error("migration failed", zap.Error(err))
				return err
			}

			if cfg.Metrics.Enable {
				system.Start(cfg.Metrics.Interval)
				dbCollector.Start(cfg.Metrics.Interval)
			}

			go func() {
				if err := app.Listen(cfg.API.Port); err != nil {
					logger.Error("server stopped", zap.Error(err))
				}
			}()

			logger.Info("payout api started",
				zap.String("port", cfg.API.Port),
				zap.Bool("asyncAccept", cfg.API.AsyncAccept))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if cfg.Metrics.Enable {
				system.Stop()
				dbCollector.Stop()
			}

			ctx, cancel := context.WithTimeout(ctx, shutdownGrace)
			defer cancel()
			return app.ShutdownWithContext(ctx)
		},
	})
}

func NewFiberApp(logger *zap.Logger) *fiber.App {
	return fiber.New(fiber.Config{
		AppName:      serviceName,
		BodyLimit:    uploadLimit,
		ErrorHandler: errmiddleware.ErrorHandler(logger),
	})
}

func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func NewMetrics(reg *prometheus.Registry) *metrics.Metrics {
	return metrics.NewMetrics(reg)
}

func NewGateway(cfg *config.Config, m *metrics.Metrics) gateway.Gateway {
	client := httpclient.NewHTTPClient(cfg.Gateway.Timeout)
	return metrics.InstrumentGateway(gateway.NewGateway(cfg.Gateway, client), m)
}

func NewWalletBalanceService(cfg *config.Config, repo repository.WalletBalanceRepository, gw gateway.Gateway,
	m *metrics.Metrics, logger *zap.Logger) service.WalletBalanceService {
	return service.NewWalletBalanceService(repo, gw, m, cfg.Gateway.MerchantID, logger)
}

func NewBeneficiaryService(cfg *config.Config, repo repository.BeneficiaryRepository, gw gateway.Gateway,
	logger *zap.Logger) service.BeneficiaryService {
	return service.NewBeneficiaryService(repo, gw, cfg.Gateway.MerchantID, logger)
}

func NewTransferService(cfg *config.Config, gw gateway.Gateway, sendMoneyRepo repository.SendMoneyRepository,
	beneRepo repository.BeneficiaryRepository, wallet service.WalletBalanceService,
	logger *zap.Logger) service.TransferService {
	return service.NewTransferService(gw, sendMoneyRepo, beneRepo, wallet, cfg.Gateway.MerchantID, logger)
}

// NewBatchDispatcher returns nil unless async accept is enabled, in which case accepted batches are
// published to the disburse worker.
func NewBatchDispatcher(cfg *config.Config, logger *zap.Logger, lc fx.Lifecycle) (service.BatchDispatcher, error) {
	if !cfg.API.AsyncAccept {
		return nil, nil
	}

	rabbit, err := mq.NewConnection(cfg.RabbitMQ.Config, logger)
	if err != nil {
		return nil, err
	}

	if err := rabbit.DeclareTopology([]string{constants.QueueBulkExecute}); err != nil {
		logger.Error("declare topology failed", zap.Error(err))
		return nil, err
	}

	publisher, err := rabbit.CreatePublisher()
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return rabbit.Close()
		},
	})

	return publishers.NewBatchPublisher(publisher, logger), nil
}

func NewXValidator(m *metrics.Metrics) validator.IXValidator {
	return validator.NewXValidator(govalidator.New(), m)
}
