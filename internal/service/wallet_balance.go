package service

import (
	"context"
	"errors"
	"time"

	"github.com/Behyna/payout-services/internal/constants"
	"github.com/Behyna/payout-services/internal/metrics"
	"github.com/Behyna/payout-services/internal/model"
	"github.com/Behyna/payout-services/internal/repository"
	"github.com/Behyna/payout-services/pkg/gateway"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type WalletBalanceService interface {
	SeedIfEmpty(ctx context.Context, memberID string, openingBalance decimal.Decimal) error
	Get(ctx context.Context) (*model.WalletBalance, error)
	Sync(ctx context.Context) (bool, error)
}

type walletBalance struct {
	repo       repository.WalletBalanceRepository
	gateway    gateway.Gateway
	metrics    *metrics.Metrics
	merchantID string
	logger     *zap.Logger
}

func NewWalletBalanceService(repo repository.WalletBalanceRepository, gw gateway.Gateway, m *metrics.Metrics,
	merchantID string, logger *zap.Logger) WalletBalanceService {
	return &walletBalance{repo: repo, gateway: gw, metrics: m, merchantID: merchantID, logger: logger}
}

// SeedIfEmpty creates a wallet row only when the table has none at all. The
// count and insert are not atomic, so two concurrent first transfers can both insert.
func (w *walletBalance) SeedIfEmpty(ctx context.Context, memberID string, openingBalance decimal.Decimal) error {
	count, err := w.repo.Count(ctx)
	if err != nil {
		return err
	}

	if count > 0 {
		return nil
	}

	now := time.Now()
	wallet := model.WalletBalance{
		MemberID:  memberID,
		Balance:   openingBalance,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := w.repo.Create(ctx, &wallet); err != nil {
		return err
	}

	w.metrics.UpdateWalletBalance(memberID, openingBalance)
	w.logger.Info("Wallet balance seeded",
		zap.String("memberID", memberID),
		zap.String("balance", openingBalance.String()))

	return nil
}

func (w *walletBalance) Get(ctx context.Context) (*model.WalletBalance, error) {
	wallet, err := w.repo.FindByMember(ctx, w.merchantID)
	if errors.Is(err, repository.ErrWalletBalanceNotFound) {
		return nil, NewServiceError(constants.ErrCodeWalletNotFound, err)
	}

	if err != nil {
		return nil, databaseError(err)
	}

	return wallet, nil
}

// Sync copies the gateway balance onto the merchant's wallet row and reports
// whether a row was updated.
func (w *walletBalance) Sync(ctx context.Context) (bool, error) {
	resp, err := w.gateway.Balance(ctx)
	if err != nil {
		w.metrics.RecordBalanceSync("gateway_error")
		w.logger.Error("Failed to fetch gateway balance", zap.Error(err))
		return false, gatewayError(err)
	}

	if len(resp) == 0 || len(resp[0].Data) == 0 {
		w.metrics.RecordBalanceSync("empty")
		w.logger.Warn("Gateway balance response carried no balance")
		return false, nil
	}

	balance := resp[0].Data[0].Balance

	rows, err := w.repo.UpdateBalanceByMember(ctx, w.merchantID, balance)
	if err != nil {
		w.metrics.RecordBalanceSync("database_error")
		w.logger.Error("Failed to update wallet balance", zap.Error(err))
		return false, databaseError(err)
	}

	if rows == 0 {
		w.metrics.RecordBalanceSync("no_wallet")
		w.logger.Warn("No wallet balance row to update", zap.String("memberID", w.merchantID))
		return false, nil
	}

	w.metrics.RecordBalanceSync("success")
	w.metrics.UpdateWalletBalance(w.merchantID, balance)
	w.logger.Info("Wallet balance synchronised",
		zap.String("memberID", w.merchantID),
		zap.String("balance", balance.String()))

	return true, nil
}
