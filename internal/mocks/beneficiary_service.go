package mocks

import (
	"context"

	"github.com/Behyna/payout-services/internal/model"
	"github.com/Behyna/payout-services/internal/service"
	"github.com/Behyna/payout-services/pkg/gateway"
	"github.com/stretchr/testify/mock"
)

type BeneficiaryService struct {
	mock.Mock
}

func (m *BeneficiaryService) FindActiveByAccountNumber(ctx context.Context, accountNumber string) (*model.Beneficiary, error) {
	args := m.Called(ctx, accountNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Beneficiary), args.Error(1)
}

func (m *BeneficiaryService) RegisterAndPersist(ctx context.Context, cmd service.RegisterBeneficiaryCommand) (*model.Beneficiary, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Beneficiary), args.Error(1)
}

func (m *BeneficiaryService) Add(ctx context.Context, cmd service.RegisterBeneficiaryCommand) (gateway.BeneficiaryResponse, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(gateway.BeneficiaryResponse), args.Error(1)
}

func (m *BeneficiaryService) UpdateRouting(ctx context.Context, cmd service.UpdateRoutingCommand) (service.UpdateRoutingResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(service.UpdateRoutingResult), args.Error(1)
}

func (m *BeneficiaryService) Details(ctx context.Context, phone string) (service.Document, error) {
	args := m.Called(ctx, phone)
	return document(args.Get(0)), args.Error(1)
}

func (m *BeneficiaryService) Types(ctx context.Context) (service.Document, error) {
	args := m.Called(ctx)
	return document(args.Get(0)), args.Error(1)
}

func (m *BeneficiaryService) PayReasons(ctx context.Context) (service.Document, error) {
	args := m.Called(ctx)
	return document(args.Get(0)), args.Error(1)
}

func (m *BeneficiaryService) List(ctx context.Context, query service.PageQuery) (service.BeneficiaryPage, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(service.BeneficiaryPage), args.Error(1)
}
