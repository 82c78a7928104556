package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Behyna/payout-services/internal/constants"
	"github.com/Behyna/payout-services/internal/mocks"
	"github.com/Behyna/payout-services/internal/model"
	"github.com/Behyna/payout-services/internal/repository"
	"github.com/Behyna/payout-services/internal/service"
	"github.com/Behyna/payout-services/pkg/gateway"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func decimalEq(value string) interface{} {
	expected := decimal.RequireFromString(value)
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(expected) })
}

func TestWalletBalance_SeedIfEmpty(t *testing.T) {
	ctx := context.Background()
	opening := decimal.RequireFromString("10500.50")

	t.Run("creates the first row", func(t *testing.T) {
		repo := &mocks.WalletBalanceRepository{}
		svc := service.NewWalletBalanceService(repo, &mocks.Gateway{}, newMetrics(), merchantID, zap.NewNop())

		repo.On("Count", ctx).Return(int64(0), nil)
		repo.On("Create", ctx, mock.MatchedBy(func(w *model.WalletBalance) bool {
			return w.MemberID == merchantID && w.Balance.Equal(opening)
		})).Return(nil)

		require.NoError(t, svc.SeedIfEmpty(ctx, merchantID, opening))
		repo.AssertExpectations(t)
	})

	t.Run("existing row is left alone", func(t *testing.T) {
		repo := &mocks.WalletBalanceRepository{}
		svc := service.NewWalletBalanceService(repo, &mocks.Gateway{}, newMetrics(), merchantID, zap.NewNop())

		repo.On("Count", ctx).Return(int64(1), nil)

		require.NoError(t, svc.SeedIfEmpty(ctx, merchantID, opening))
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("count failure", func(t *testing.T) {
		repo := &mocks.WalletBalanceRepository{}
		svc := service.NewWalletBalanceService(repo, &mocks.Gateway{}, newMetrics(), merchantID, zap.NewNop())

		repo.On("Count", ctx).Return(int64(0), errors.New("lost connection"))

		assert.Error(t, svc.SeedIfEmpty(ctx, merchantID, opening))
	})
}

func TestWalletBalance_Get(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.WalletBalanceRepository{}
	svc := service.NewWalletBalanceService(repo, &mocks.Gateway{}, newMetrics(), merchantID, zap.NewNop())

	repo.On("FindByMember", ctx, merchantID).Return(nil, repository.ErrWalletBalanceNotFound).Once()
	repo.On("FindByMember", ctx, merchantID).Return(&model.WalletBalance{MemberID: merchantID}, nil).Once()

	_, err := svc.Get(ctx)
	assert.Equal(t, constants.ErrCodeWalletNotFound, serviceErrorCode(t, err))

	wallet, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, merchantID, wallet.MemberID)
}

func TestWalletBalance_Sync(t *testing.T) {
	ctx := context.Background()

	balance := []gateway.BalanceResponse{{
		Status: "1",
		Data:   []gateway.BalanceData{{Balance: decimal.RequireFromString("2500.75")}},
	}}

	t.Run("updates the merchant wallet", func(t *testing.T) {
		repo := &mocks.WalletBalanceRepository{}
		gw := &mocks.Gateway{}
		svc := service.NewWalletBalanceService(repo, gw, newMetrics(), merchantID, zap.NewNop())

		gw.On("Balance", ctx).Return(balance, nil)
		repo.On("UpdateBalanceByMember", ctx, merchantID, decimalEq("2500.75")).Return(int64(1), nil)

		updated, err := svc.Sync(ctx)

		require.NoError(t, err)
		assert.True(t, updated)
		repo.AssertExpectations(t)
	})

	t.Run("missing row is not seeded", func(t *testing.T) {
		repo := &mocks.WalletBalanceRepository{}
		gw := &mocks.Gateway{}
		svc := service.NewWalletBalanceService(repo, gw, newMetrics(), merchantID, zap.NewNop())

		gw.On("Balance", ctx).Return(balance, nil)
		repo.On("UpdateBalanceByMember", ctx, merchantID, mock.Anything).Return(int64(0), nil)

		updated, err := svc.Sync(ctx)

		require.NoError(t, err)
		assert.False(t, updated)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("empty gateway answer", func(t *testing.T) {
		repo := &mocks.WalletBalanceRepository{}
		gw := &mocks.Gateway{}
		svc := service.NewWalletBalanceService(repo, gw, newMetrics(), merchantID, zap.NewNop())

		gw.On("Balance", ctx).Return([]gateway.BalanceResponse{{Status: "0"}}, nil)

		updated, err := svc.Sync(ctx)

		require.NoError(t, err)
		assert.False(t, updated)
		repo.AssertNotCalled(t, "UpdateBalanceByMember", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("gateway unauthorized", func(t *testing.T) {
		repo := &mocks.WalletBalanceRepository{}
		gw := &mocks.Gateway{}
		svc := service.NewWalletBalanceService(repo, gw, newMetrics(), merchantID, zap.NewNop())

		gw.On("Balance", ctx).Return(nil, gateway.ErrUnauthorized)

		_, err := svc.Sync(ctx)

		assert.Equal(t, constants.ErrCodeGatewayError, serviceErrorCode(t, err))
	})
}
