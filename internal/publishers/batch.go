package publishers

import (
	"context"
	"encoding/json"

	"github.com/Behyna/common/pkg/mq"
	"github.com/Behyna/payout-services/internal/constants"
	"github.com/Behyna/payout-services/internal/service"
	"go.uber.org/zap"
)

type batchPublisher struct {
	publisher mq.Publisher
	logger    *zap.Logger
}

// NewBatchPublisher returns a dispatcher that queues accepted batches for the disburse worker.
func NewBatchPublisher(publisher mq.Publisher, logger *zap.Logger) service.BatchDispatcher {
	return &batchPublisher{publisher: publisher, logger: logger}
}

func (b *batchPublisher) DispatchBatch(ctx context.Context, cmd service.ExecuteBatchCommand) error {
	body, err := json.Marshal(cmd)
	if err != nil {
		return err
	}

	if err := b.publisher.Publish(ctx, "", constants.QueueBulkExecute, body); err != nil {
		b.logger.Error("Failed to publish batch",
			zap.Error(err),
			zap.String("transactionID", cmd.TransactionID))
		return err
	}

	b.logger.Info("Batch queued for execution",
		zap.String("transactionID", cmd.TransactionID),
		zap.String("memberID", cmd.MemberID))

	return nil
}
