package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Behyna/payout-services/internal/model"
	"gorm.io/gorm"
)

type BeneficiaryRepository interface {
	Create(ctx context.Context, beneficiary *model.Beneficiary) error
	FindActiveByAccountNumber(ctx context.Context, accountNumber string) (*model.Beneficiary, error)
	FindByBeneficiaryID(ctx context.Context, beneficiaryID string) (*model.Beneficiary, error)
	FindByBeneficiaryIDs(ctx context.Context, beneficiaryIDs []string) ([]model.Beneficiary, error)
	UpdateIFSC(ctx context.Context, id int64, ifsc string) error
	FindByMember(ctx context.Context, memberID string, limit, offset int) ([]model.Beneficiary, error)
	CountByMember(ctx context.Context, memberID string) (int64, error)
}

type Beneficiary struct {
	db *gorm.DB
}

func NewBeneficiaryRepository(db *gorm.DB) BeneficiaryRepository {
	return &Beneficiary{db: db}
}

func (b *Beneficiary) Create(ctx context.Context, beneficiary *model.Beneficiary) error {
	return GetTx(ctx, b.db).Create(beneficiary).Error
}

func (b *Beneficiary) FindActiveByAccountNumber(ctx context.Context, accountNumber string) (*model.Beneficiary, error) {
	var beneficiary model.Beneficiary

	err := GetTx(ctx, b.db).
		Where("account_number = ? AND status = ?", accountNumber, true).
		Order("id DESC").
		First(&beneficiary).Error
	if err == nil {
		return &beneficiary, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBeneficiaryNotFound
	}

	return nil, err
}

func (b *Beneficiary) FindByBeneficiaryID(ctx context.Context, beneficiaryID string) (*model.Beneficiary, error) {
	var beneficiary model.Beneficiary

	err := GetTx(ctx, b.db).Where("beneficiary_id = ?", beneficiaryID).First(&beneficiary).Error
	if err == nil {
		return &beneficiary, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBeneficiaryNotFound
	}

	return nil, err
}

func (b *Beneficiary) FindByBeneficiaryIDs(ctx context.Context, beneficiaryIDs []string) ([]model.Beneficiary, error) {
	var beneficiaries []model.Beneficiary
	if len(beneficiaryIDs) == 0 {
		return beneficiaries, nil
	}

	err := GetTx(ctx, b.db).Where("beneficiary_id IN ?", beneficiaryIDs).Find(&beneficiaries).Error
	if err != nil {
		return nil, err
	}

	return beneficiaries, nil
}

func (b *Beneficiary) UpdateIFSC(ctx context.Context, id int64, ifsc string) error {
	result := GetTx(ctx, b.db).Model(&model.Beneficiary{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"ifsc": ifsc, "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrNoRowsAffected
	}

	return nil
}

func (b *Beneficiary) FindByMember(ctx context.Context, memberID string, limit, offset int) ([]model.Beneficiary, error) {
	var beneficiaries []model.Beneficiary

	err := GetTx(ctx, b.db).Where("member_id = ?", memberID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&beneficiaries).Error
	if err != nil {
		return nil, err
	}

	return beneficiaries, nil
}

func (b *Beneficiary) CountByMember(ctx context.Context, memberID string) (int64, error) {
	var count int64

	err := GetTx(ctx, b.db).Model(&model.Beneficiary{}).
		Where("member_id = ?", memberID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
