package consumers

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/Behyna/common/pkg/mq"
	"github.com/Behyna/payout-services/internal/constants"
	"github.com/Behyna/payout-services/internal/queue"
	"github.com/Behyna/payout-services/internal/service"
	"go.uber.org/zap"
)

type BatchConsumer interface {
	Consume(ctx context.Context) error
}

type batchConsumer struct {
	service  service.BulkPayoutService
	consumer mq.Consumer
	prefetch int
	logger   *zap.Logger
}

func NewBatchConsumer(service service.BulkPayoutService, consumer mq.Consumer, cfg queue.Config,
	logger *zap.Logger) BatchConsumer {
	return &batchConsumer{
		service:  service,
		consumer: consumer,
		prefetch: cfg.Prefetch,
		logger:   logger,
	}
}

func (b *batchConsumer) Consume(ctx context.Context) error {
	return b.consumer.Consume(ctx, b.prefetch, constants.QueueBulkExecute, b.handleMessage)
}

func (b *batchConsumer) handleMessage(ctx context.Context, body []byte) error {
	b.logger.Info("received execute batch command", zap.ByteString("body", body))

	var cmd service.ExecuteBatchCommand
	if err := json.Unmarshal(body, &cmd); err != nil {
		b.logger.Warn("invalid execute batch command", zap.Error(err))
		return err
	}

	err := b.service.ExecuteBatch(ctx, cmd)
	if err == nil {
		return nil
	}

	// lines already executed are skipped on redelivery
	if retryable(err) {
		b.logger.Warn("execute batch interrupted, requeueing",
			zap.String("transaction_id", cmd.TransactionID), zap.Error(err))
		return mq.Temporary(err)
	}

	b.logger.Error("execute batch rejected",
		zap.String("transaction_id", cmd.TransactionID), zap.Error(err))
	return err
}

func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var svcErr service.Error
	return errors.As(err, &svcErr) && svcErr.Code == constants.ErrCodeDatabase
}
