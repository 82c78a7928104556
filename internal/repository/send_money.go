package repository

import (
	"context"
	"errors"

	"github.com/Behyna/payout-services/internal/model"
	"gorm.io/gorm"
)

type SendMoneyRepository interface {
	Create(ctx context.Context, record *model.SendMoneyHistory) error
	Update(ctx context.Context, record *model.SendMoneyHistory) error
	FindByOrderID(ctx context.Context, orderID string) (*model.SendMoneyHistory, error)
	FindByBeneficiaryID(ctx context.Context, beneficiaryID string, limit, offset int) ([]model.SendMoneyHistory, error)
	CountByBeneficiaryID(ctx context.Context, beneficiaryID string) (int64, error)
	FindByMember(ctx context.Context, memberID string, limit, offset int) ([]model.SendMoneyHistory, error)
	CountByMember(ctx context.Context, memberID string) (int64, error)
}

type SendMoney struct {
	db *gorm.DB
}

func NewSendMoneyRepository(db *gorm.DB) SendMoneyRepository {
	return &SendMoney{db: db}
}

func (s *SendMoney) Create(ctx context.Context, record *model.SendMoneyHistory) error {
	err := GetTx(ctx, s.db).Create(record).Error
	if err == nil {
		return nil
	}

	if isDuplicateKey(err) {
		return ErrDuplicateOrderID
	}

	return err
}

func (s *SendMoney) Update(ctx context.Context, record *model.SendMoneyHistory) error {
	return GetTx(ctx, s.db).Model(record).Where("id = ?", record.ID).Updates(record).Error
}

func (s *SendMoney) FindByOrderID(ctx context.Context, orderID string) (*model.SendMoneyHistory, error) {
	var record model.SendMoneyHistory

	err := GetTx(ctx, s.db).Where("order_id = ?", orderID).First(&record).Error
	if err == nil {
		return &record, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSendMoneyNotFound
	}

	return nil, err
}

func (s *SendMoney) FindByBeneficiaryID(ctx context.Context, beneficiaryID string, limit, offset int) ([]model.SendMoneyHistory, error) {
	var records []model.SendMoneyHistory

	err := GetTx(ctx, s.db).Where("beneficiary_id = ?", beneficiaryID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (s *SendMoney) CountByBeneficiaryID(ctx context.Context, beneficiaryID string) (int64, error) {
	var count int64

	err := GetTx(ctx, s.db).Model(&model.SendMoneyHistory{}).
		Where("beneficiary_id = ?", beneficiaryID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (s *SendMoney) FindByMember(ctx context.Context, memberID string, limit, offset int) ([]model.SendMoneyHistory, error) {
	var records []model.SendMoneyHistory

	err := GetTx(ctx, s.db).Where("member_id = ?", memberID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (s *SendMoney) CountByMember(ctx context.Context, memberID string) (int64, error) {
	var count int64

	err := GetTx(ctx, s.db).Model(&model.SendMoneyHistory{}).
		Where("member_id = ?", memberID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
