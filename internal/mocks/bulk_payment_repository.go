package mocks

import (
	"context"

	"github.com/Behyna/payout-services/internal/model"
	"github.com/stretchr/testify/mock"
)

type BulkPaymentRepository struct {
	mock.Mock
}

func (m *BulkPaymentRepository) ExistsByTransactionID(ctx context.Context, transactionID string) (bool, error) {
	args := m.Called(ctx, transactionID)
	return args.Bool(0), args.Error(1)
}

func (m *BulkPaymentRepository) Create(ctx context.Context, header *model.BulkPayment) error {
	args := m.Called(ctx, header)
	return args.Error(0)
}

func (m *BulkPaymentRepository) UpdateStatusByMemberAndTransaction(ctx context.Context, memberID, transactionID string,
	status model.BulkPaymentStatus) (int64, error) {
	args := m.Called(ctx, memberID, transactionID, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *BulkPaymentRepository) FindByMember(ctx context.Context, memberID string, limit, offset int) ([]model.BulkPayment, error) {
	args := m.Called(ctx, memberID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.BulkPayment), args.Error(1)
}

func (m *BulkPaymentRepository) CountByMember(ctx context.Context, memberID string) (int64, error) {
	args := m.Called(ctx, memberID)
	return args.Get(0).(int64), args.Error(1)
}

type BulkPaymentLineRepository struct {
	mock.Mock
}

func (m *BulkPaymentLineRepository) CreateInBatches(ctx context.Context, lines []model.BulkPaymentLine) error {
	args := m.Called(ctx, lines)
	return args.Error(0)
}

func (m *BulkPaymentLineRepository) FindByTransactionAndMember(ctx context.Context, transactionID, memberID string) ([]model.BulkPaymentLine, error) {
	args := m.Called(ctx, transactionID, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.BulkPaymentLine), args.Error(1)
}

func (m *BulkPaymentLineRepository) CountByTransactionAndMember(ctx context.Context, transactionID, memberID string) (int64, error) {
	args := m.Called(ctx, transactionID, memberID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *BulkPaymentLineRepository) UpdateStatus(ctx context.Context, id int64, status model.BulkPaymentStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
