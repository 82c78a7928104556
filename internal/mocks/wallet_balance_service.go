package mocks

import (
	"context"

	"github.com/Behyna/payout-services/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type WalletBalanceService struct {
	mock.Mock
}

func (m *WalletBalanceService) SeedIfEmpty(ctx context.Context, memberID string, openingBalance decimal.Decimal) error {
	args := m.Called(ctx, memberID, openingBalance)
	return args.Error(0)
}

func (m *WalletBalanceService) Get(ctx context.Context) (*model.WalletBalance, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.WalletBalance), args.Error(1)
}

func (m *WalletBalanceService) Sync(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}
