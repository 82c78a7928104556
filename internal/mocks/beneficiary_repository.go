package mocks

import (
	"context"

	"github.com/Behyna/payout-services/internal/model"
	"github.com/stretchr/testify/mock"
)

type BeneficiaryRepository struct {
	mock.Mock
}

func (m *BeneficiaryRepository) Create(ctx context.Context, beneficiary *model.Beneficiary) error {
	args := m.Called(ctx, beneficiary)
	return args.Error(0)
}

func (m *BeneficiaryRepository) FindActiveByAccountNumber(ctx context.Context, accountNumber string) (*model.Beneficiary, error) {
	args := m.Called(ctx, accountNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Beneficiary), args.Error(1)
}

func (m *BeneficiaryRepository) FindByBeneficiaryID(ctx context.Context, beneficiaryID string) (*model.Beneficiary, error) {
	args := m.Called(ctx, beneficiaryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Beneficiary), args.Error(1)
}

func (m *BeneficiaryRepository) FindByBeneficiaryIDs(ctx context.Context, beneficiaryIDs []string) ([]model.Beneficiary, error) {
	args := m.Called(ctx, beneficiaryIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Beneficiary), args.Error(1)
}

func (m *BeneficiaryRepository) UpdateIFSC(ctx context.Context, id int64, ifsc string) error {
	args := m.Called(ctx, id, ifsc)
	return args.Error(0)
}

func (m *BeneficiaryRepository) FindByMember(ctx context.Context, memberID string, limit, offset int) ([]model.Beneficiary, error) {
	args := m.Called(ctx, memberID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Beneficiary), args.Error(1)
}

func (m *BeneficiaryRepository) CountByMember(ctx context.Context, memberID string) (int64, error) {
	args := m.Called(ctx, memberID)
	return args.Get(0).(int64), args.Error(1)
}
