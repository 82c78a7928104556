package repository

import (
	"context"
	"time"

	"github.com/Behyna/payout-services/internal/model"
	"gorm.io/gorm"
)

const lineInsertBatchSize = 100

type BulkPaymentLineRepository interface {
	CreateInBatches(ctx context.Context, lines []model.BulkPaymentLine) error
	FindByTransactionAndMember(ctx context.Context, transactionID, memberID string) ([]model.BulkPaymentLine, error)
	CountByTransactionAndMember(ctx context.Context, transactionID, memberID string) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status model.BulkPaymentStatus) error
}

type BulkPaymentLine struct {
	db *gorm.DB
}

func NewBulkPaymentLineRepository(db *gorm.DB) BulkPaymentLineRepository {
	return &BulkPaymentLine{db: db}
}

func (r *BulkPaymentLine) CreateInBatches(ctx context.Context, lines []model.BulkPaymentLine) error {
	if len(lines) == 0 {
		return nil
	}

	return GetTx(ctx, r.db).CreateInBatches(&lines, lineInsertBatchSize).Error
}

func (r *BulkPaymentLine) FindByTransactionAndMember(ctx context.Context, transactionID, memberID string) ([]model.BulkPaymentLine, error) {
	var lines []model.BulkPaymentLine

	err := GetTx(ctx, r.db).
		Where("transaction_id = ? AND member_id = ?", transactionID, memberID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&lines).Error
	if err != nil {
		return nil, err
	}

	return lines, nil
}

func (r *BulkPaymentLine) CountByTransactionAndMember(ctx context.Context, transactionID, memberID string) (int64, error) {
	var count int64

	err := GetTx(ctx, r.db).Model(&model.BulkPaymentLine{}).
		Where("transaction_id = ? AND member_id = ?", transactionID, memberID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *BulkPaymentLine) UpdateStatus(ctx context.Context, id int64, status model.BulkPaymentStatus) error {
	result := GetTx(ctx, r.db).Model(&model.BulkPaymentLine{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"status": status, "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrNoRowsAffected
	}

	return nil
}
