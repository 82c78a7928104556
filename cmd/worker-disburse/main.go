package main

import (
	"context"

	"github.com/Behyna/common/pkg/httpclient"
	"github.com/Behyna/common/pkg/mq"
	"github.com/Behyna/payout-services/internal/config"
	"github.com/Behyna/payout-services/internal/constants"
	"github.com/Behyna/payout-services/internal/consumers"
	"github.com/Behyna/payout-services/internal/database"
	"github.com/Behyna/payout-services/internal/metrics"
	"github.com/Behyna/payout-services/internal/queue"
	"github.com/Behyna/payout-services/internal/repository"
	"github.com/Behyna/payout-services/internal/service"
	"github.com/Behyna/payout-services/pkg/gateway"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			zap.NewProduction,
			database.NewConnection,
			NewMQConnection,
			NewMQConsumer,
			NewMQConfig,
			NewMetrics,
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

			consumers.NewBatchConsumer,
		),
		fx.Invoke(runBatchConsumer),
	).Run()
}

func runBatchConsumer(batchConsumer consumers.BatchConsumer, logger *zap.Logger, rabbit *mq.RabbitMQ,
	lc fx.Lifecycle) {
	appCtx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := rabbit.DeclareTopology([]string{constants.QueueBulkExecute}); err != nil {
				logger.Error("declare topology failed", zap.Error(err))
				return err
			}
			logger.Info("queue declared", zap.String("queue", constants.QueueBulkExecute))

			go func() {
				if err := batchConsumer.Consume(appCtx); err != nil {
					logger.Error("consumer exited", zap.Error(err))
				}
			}()

			logger.Info("disburse consumer started")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping disburse consumer")
			cancel()
			return rabbit.Close()
		},
	})
}

func NewMQConnection(cfg *config.Config, logger *zap.Logger) (*mq.RabbitMQ, error) {
	return mq.NewConnection(cfg.RabbitMQ.Config, logger)
}

func NewMQConsumer(rabbitMQ *mq.RabbitMQ) (mq.Consumer, error) {
	return rabbitMQ.CreateConsumer()
}

func NewMQConfig(cfg *config.Config) queue.Config {
	return cfg.RabbitMQ
}

// NewMetrics keeps worker metrics on a private registry; the worker exposes no HTTP endpoint.
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

func NewBeneficiaryService(cfg *config.Config, repo repository.BeneficiaryRepository, gw gateway.Gateway,
	logger *zap.Logger) service.BeneficiaryService {
	return service.NewBeneficiaryService(repo, gw, cfg.Gateway.MerchantID, logger)
}

func NewTransferService(cfg *config.Config, gw gateway.Gateway, sendMoneyRepo repository.SendMoneyRepository,
	beneRepo repository.BeneficiaryRepository, wallet service.WalletBalanceService,
	logger *zap.Logger) service.TransferService {
	return service.NewTransferService(gw, sendMoneyRepo, beneRepo, wallet, cfg.Gateway.MerchantID, logger)
}

// NewBatchDispatcher is nil here: the worker executes batches itself.
func NewBatchDispatcher() service.BatchDispatcher {
	return nil
}
