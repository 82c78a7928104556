package main

import (
	"context"

	"github.com/Behyna/common/pkg/httpclient"
	"github.com/Behyna/payout-services/internal/config"
	"github.com/Behyna/payout-services/internal/database"
	"github.com/Behyna/payout-services/internal/metrics"
	"github.com/Behyna/payout-services/internal/repository"
	"github.com/Behyna/payout-services/internal/service"
	"github.com/Behyna/payout-services/pkg/gateway"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			zap.NewProduction,
			database.NewConnection,
			NewMetrics,
			NewGateway,

			repository.NewWalletBalanceRepository,
			NewWalletBalanceService,

			NewScheduler,
		),
		fx.Invoke(runBalanceSync),
	).Run()
}

func runBalanceSync(cfg *config.Config, scheduler *cron.Cron, wallet service.WalletBalanceService,
	logger *zap.Logger, lc fx.Lifecycle) error {
	appCtx, cancel := context.WithCancel(context.Background())

	_, err := scheduler.AddFunc(cfg.BalanceSync.Schedule, func() {
		updated, err := wallet.Sync(appCtx)
		if err != nil {
			logger.Error("failed to sync wallet balance", zap.Error(err))
			return
		}

		logger.Info("wallet balance synced", zap.Bool("updated", updated))
	})
	if err != nil {
		cancel()
		logger.Error("invalid balance sync schedule", zap.String("schedule", cfg.BalanceSync.Schedule), zap.Error(err))
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			scheduler.Start()
			logger.Info("balance sync scheduler started", zap.String("schedule", cfg.BalanceSync.Schedule))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping balance sync scheduler")
			cancel()

			select {
			case <-scheduler.Stop().Done():
			case <-ctx.Done():
			}
			return nil
		},
	})

	return nil
}

func NewScheduler(logger *zap.Logger) *cron.Cron {
	return cron.New(
		cron.WithSeconds(),
		cron.WithChain(cron.Recover(cron.PrintfLogger(zap.NewStdLog(logger)))),
	)
}

func NewMetrics() *metrics.Metrics {
	return metrics.NewMetrics(prometheus.NewRegistry())
}

func NewGateway(cfg *config.Config, m *metrics.Metrics) gateway.Gateway {
	client := httpclient.NewHTTPClient(cfg.Gateway.Timeout)
	return metrics.InstrumentGateway(gateway.NewGateway(cfg.Gateway, client), m)
}

func NewWalletBalanceService(cfg *config.Config, repo repository.WalletBalanceRepository, gw gateway.Gateway,
	m *metrics.Metrics, logger *zap.Logger) service.WalletBalanceService {
	return service.NewWalletBalanceService(repo, gw, m, cfg.Gateway.MerchantID, logger)
}
