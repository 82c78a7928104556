package mocks

import (
	"context"

	"github.com/Behyna/payout-services/internal/service"
	"github.com/stretchr/testify/mock"
)

type BulkPayoutService struct {
	mock.Mock
}

func (m *BulkPayoutService) Upload(ctx context.Context, cmd service.UploadBulkPayoutCommand) (service.UploadBulkPayoutResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(service.UploadBulkPayoutResult), args.Error(1)
}

func (m *BulkPayoutService) AcceptOrDeny(ctx context.Context, cmd service.AcceptOrDenyCommand) (service.DecisionResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(service.DecisionResult), args.Error(1)
}

func (m *BulkPayoutService) ExecuteBatch(ctx context.Context, cmd service.ExecuteBatchCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

func (m *BulkPayoutService) ListBatches(ctx context.Context, memberID string, query service.PageQuery) (service.BatchPage, error) {
	args := m.Called(ctx, memberID, query)
	return args.Get(0).(service.BatchPage), args.Error(1)
}

func (m *BulkPayoutService) ListBatchLines(ctx context.Context, transactionID, memberID string) (service.BatchLines, error) {
	args := m.Called(ctx, transactionID, memberID)
	return args.Get(0).(service.BatchLines), args.Error(1)
}

type BatchDispatcher struct {
	mock.Mock
}

func (m *BatchDispatcher) DispatchBatch(ctx context.Context, cmd service.ExecuteBatchCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type CallbackService struct {
	mock.Mock
}

func (m *CallbackService) HandlePayout(ctx context.Context, cmd service.PayoutCallbackCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}
