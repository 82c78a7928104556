package mocks

import (
	"context"
	"encoding/json"

	"github.com/Behyna/payout-services/pkg/gateway"
	"github.com/stretchr/testify/mock"
)

type Gateway struct {
	mock.Mock
}

func (m *Gateway) RegisterBeneficiary(ctx context.Context, request gateway.RegisterBeneficiaryRequest) (gateway.BeneficiaryResponse, error) {
	args := m.Called(ctx, request)
	return args.Get(0).(gateway.BeneficiaryResponse), args.Error(1)
}

func (m *Gateway) UpdateRouting(ctx context.Context, beneficiaryID, ifsc string) (gateway.BeneficiaryResponse, error) {
	args := m.Called(ctx, beneficiaryID, ifsc)
	return args.Get(0).(gateway.BeneficiaryResponse), args.Error(1)
}

func (m *Gateway) BeneficiaryDetails(ctx context.Context, phone string) (json.RawMessage, error) {
	args := m.Called(ctx, phone)
	return document(args.Get(0)), args.Error(1)
}

func (m *Gateway) BeneficiaryTypes(ctx context.Context) (json.RawMessage, error) {
	args := m.Called(ctx)
	return document(args.Get(0)), args.Error(1)
}

func (m *Gateway) PayReasons(ctx context.Context) (json.RawMessage, error) {
	args := m.Called(ctx)
	return document(args.Get(0)), args.Error(1)
}

func (m *Gateway) TransferMoney(ctx context.Context, request gateway.TransferRequest) (gateway.TransferResponse, error) {
	args := m.Called(ctx, request)
	return args.Get(0).(gateway.TransferResponse), args.Error(1)
}

func (m *Gateway) CheckStatus(ctx context.Context, orderID string) (json.RawMessage, error) {
	args := m.Called(ctx, orderID)
	return document(args.Get(0)), args.Error(1)
}

func (m *Gateway) Balance(ctx context.Context) ([]gateway.BalanceResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]gateway.BalanceResponse), args.Error(1)
}

func document(v interface{}) json.RawMessage {
	if v == nil {
		return nil
	}
	return v.(json.RawMessage)
}
