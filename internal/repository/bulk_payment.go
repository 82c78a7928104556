package repository

import (
	"context"
	"time"

	"github.com/Behyna/payout-services/internal/model"
	"gorm.io/gorm"
)

type BulkPaymentRepository interface {
	ExistsByTransactionID(ctx context.Context, transactionID string) (bool, error)
	Create(ctx context.Context, header *model.BulkPayment) error
	UpdateStatusByMemberAndTransaction(ctx context.Context, memberID, transactionID string,
		status model.BulkPaymentStatus) (int64, error)
	FindByMember(ctx context.Context, memberID string, limit, offset int) ([]model.BulkPayment, error)
	CountByMember(ctx context.Context, memberID string) (int64, error)
}

type BulkPayment struct {
	db *gorm.DB
}

func NewBulkPaymentRepository(db *gorm.DB) BulkPaymentRepository {
	return &BulkPayment{db: db}
}

func (r *BulkPayment) ExistsByTransactionID(ctx context.Context, transactionID string) (bool, error) {
	var count int64

	err := GetTx(ctx, r.db).Model(&model.BulkPayment{}).
		Where("transaction_id = ?", transactionID).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *BulkPayment) Create(ctx context.Context, header *model.BulkPayment) error {
	err := GetTx(ctx, r.db).Create(header).Error
	if err == nil {
		return nil
	}

	if isDuplicateKey(err) {
		return ErrDuplicateTransactionID
	}

	return err
}

// UpdateStatusByMemberAndTransaction is a single UPDATE statement; line items are not touched.
func (r *BulkPayment) UpdateStatusByMemberAndTransaction(ctx context.Context, memberID, transactionID string,
	status model.BulkPaymentStatus) (int64, error) {
	result := GetTx(ctx, r.db).Model(&model.BulkPayment{}).
		Where("member_id = ? AND transaction_id = ?", memberID, transactionID).
		Updates(map[string]interface{}{"status": status, "updated_at": time.Now()})

	return result.RowsAffected, result.Error
}

func (r *BulkPayment) FindByMember(ctx context.Context, memberID string, limit, offset int) ([]model.BulkPayment, error) {
	var headers []model.BulkPayment

	err := GetTx(ctx, r.db).Where("member_id = ?", memberID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&headers).Error
	if err != nil {
		return nil, err
	}

	return headers, nil
}

func (r *BulkPayment) CountByMember(ctx context.Context, memberID string) (int64, error) {
	var count int64

	err := GetTx(ctx, r.db).Model(&model.BulkPayment{}).
		Where("member_id = ?", memberID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
