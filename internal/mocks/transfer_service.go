package mocks

import (
	"context"

	"github.com/Behyna/payout-services/internal/service"
	"github.com/Behyna/payout-services/pkg/gateway"
	"github.com/stretchr/testify/mock"
)

type TransferService struct {
	mock.Mock
}

func (m *TransferService) Transfer(ctx context.Context, cmd service.TransferCommand) (gateway.TransferResponse, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(gateway.TransferResponse), args.Error(1)
}

func (m *TransferService) SendMoney(ctx context.Context, cmd service.TransferCommand) (gateway.TransferResponse, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(gateway.TransferResponse), args.Error(1)
}

func (m *TransferService) CheckStatus(ctx context.Context, orderID string) (service.Document, error) {
	args := m.Called(ctx, orderID)
	return document(args.Get(0)), args.Error(1)
}

func (m *TransferService) TransactionsByBeneficiary(ctx context.Context, beneficiaryID string, query service.PageQuery) (service.TransactionPage, error) {
	args := m.Called(ctx, beneficiaryID, query)
	return args.Get(0).(service.TransactionPage), args.Error(1)
}

func (m *TransferService) AllTransactions(ctx context.Context, query service.PageQuery) (service.PayoutTransactionPage, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(service.PayoutTransactionPage), args.Error(1)
}
