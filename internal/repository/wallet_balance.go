package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Behyna/payout-services/internal/model"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type WalletBalanceRepository interface {
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, wallet *model.WalletBalance) error
	FindByMember(ctx context.Context, memberID string) (*model.WalletBalance, error)
	UpdateBalanceByMember(ctx context.Context, memberID string, balance decimal.Decimal) (int64, error)
}

type WalletBalance struct {
	db *gorm.DB
}

func NewWalletBalanceRepository(db *gorm.DB) WalletBalanceRepository {
	return &WalletBalance{db: db}
}

// Count is not scoped by member; callers use it to detect an empty table.
func (w *WalletBalance) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := GetTx(ctx, w.db).Model(&model.WalletBalance{}).Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

func (w *WalletBalance) Create(ctx context.Context, wallet *model.WalletBalance) error {
	return GetTx(ctx, w.db).Create(wallet).Error
}

func (w *WalletBalance) FindByMember(ctx context.Context, memberID string) (*model.WalletBalance, error) {
	var wallet model.WalletBalance

	err := GetTx(ctx, w.db).Where("member_id = ?", memberID).Order("id ASC").First(&wallet).Error
	if err == nil {
		return &wallet, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrWalletBalanceNotFound
	}

	return nil, err
}

func (w *WalletBalance) UpdateBalanceByMember(ctx context.Context, memberID string, balance decimal.Decimal) (int64, error) {
	result := GetTx(ctx, w.db).Model(&model.WalletBalance{}).
		Where("member_id = ?", memberID).
		Updates(map[string]interface{}{"balance": balance, "updated_at": time.Now()})

	return result.RowsAffected, result.Error
}
