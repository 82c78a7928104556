package publishers_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/Behyna/payout-services/internal/constants"
	"github.com/Behyna/payout-services/internal/mocks"
	"github.com/Behyna/payout-services/internal/publishers"
	"github.com/Behyna/payout-services/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBatchPublisher_DispatchBatch(t *testing.T) {
	ctx := context.Background()
	cmd := service.ExecuteBatchCommand{TransactionID: "T-1", MemberID: "M-1"}

	t.Run("publishes the command as json", func(t *testing.T) {
		publisher := &mocks.Publisher{}
		dispatcher := publishers.NewBatchPublisher(publisher, zap.NewNop())

		publisher.On("Publish", ctx, "", constants.QueueBulkExecute, mock.MatchedBy(func(body []byte) bool {
			var decoded map[string]string
			if err := json.Unmarshal(body, &decoded); err != nil {
				return false
			}
			return decoded["transaction_id"] == "T-1" && decoded["member_id"] == "M-1"
		})).Return(nil)

		require.NoError(t, dispatcher.DispatchBatch(ctx, cmd))
		publisher.AssertExpectations(t)
	})

	t.Run("broker failure", func(t *testing.T) {
		publisher := &mocks.Publisher{}
		dispatcher := publishers.NewBatchPublisher(publisher, zap.NewNop())

		brokerErr := errors.New("channel closed")
		publisher.On("Publish", ctx, "", constants.QueueBulkExecute, mock.Anything).Return(brokerErr)

		assert.Equal(t, brokerErr, dispatcher.DispatchBatch(ctx, cmd))
	})
}
