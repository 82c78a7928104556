package mocks

import (
	"context"

	"github.com/Behyna/payout-services/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type WalletBalanceRepository struct {
	mock.Mock
}

func (m *WalletBalanceRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *WalletBalanceRepository) Create(ctx context.Context, wallet *model.WalletBalance) error {
	args := m.Called(ctx, wallet)
	return args.Error(0)
}

func (m *WalletBalanceRepository) FindByMember(ctx context.Context, memberID string) (*model.WalletBalance, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.WalletBalance), args.Error(1)
}

func (m *WalletBalanceRepository) UpdateBalanceByMember(ctx context.Context, memberID string, balance decimal.Decimal) (int64, error) {
	args := m.Called(ctx, memberID, balance)
	return args.Get(0).(int64), args.Error(1)
}
