package mocks

import (
	"context"

	"github.com/Behyna/payout-services/internal/model"
	"github.com/stretchr/testify/mock"
)

type SendMoneyRepository struct {
	mock.Mock
}

func (m *SendMoneyRepository) Create(ctx context.Context, record *model.SendMoneyHistory) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *SendMoneyRepository) Update(ctx context.Context, record *model.SendMoneyHistory) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *SendMoneyRepository) FindByOrderID(ctx context.Context, orderID string) (*model.SendMoneyHistory, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SendMoneyHistory), args.Error(1)
}

func (m *SendMoneyRepository) FindByBeneficiaryID(ctx context.Context, beneficiaryID string, limit, offset int) ([]model.SendMoneyHistory, error) {
	args := m.Called(ctx, beneficiaryID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SendMoneyHistory), args.Error(1)
}

func (m *SendMoneyRepository) CountByBeneficiaryID(ctx context.Context, beneficiaryID string) (int64, error) {
	args := m.Called(ctx, beneficiaryID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *SendMoneyRepository) FindByMember(ctx context.Context, memberID string, limit, offset int) ([]model.SendMoneyHistory, error) {
	args := m.Called(ctx, memberID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SendMoneyHistory), args.Error(1)
}

func (m *SendMoneyRepository) CountByMember(ctx context.Context, memberID string) (int64, error) {
	args := m.Called(ctx, memberID)
	return args.Get(0).(int64), args.Error(1)
}
