package metrics

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Behyna/payout-services/pkg/gateway"
)

type instrumentedGateway struct {
	next    gateway.Gateway
	metrics *Metrics
}

// InstrumentGateway records the count and latency of every gateway call.
func InstrumentGateway(next gateway.Gateway, m *Metrics) gateway.Gateway {
	return &instrumentedGateway{next: next, metrics: m}
}

func (g *instrumentedGateway) observe(method string, start time.Time, err error) {
	g.metrics.RecordGatewayRequest(method, gatewayStatus(err), time.Since(start))
}

func gatewayStatus(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, gateway.ErrTimeout):
		return "timeout"
	case errors.Is(err, gateway.ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, gateway.ErrBadRequest):
		return "bad_request"
	default:
		return "error"
	}
}

func (g *instrumentedGateway) RegisterBeneficiary(ctx context.Context, request gateway.RegisterBeneficiaryRequest) (gateway.BeneficiaryResponse, error) {
	start := time.Now()
	resp, err := g.next.RegisterBeneficiary(ctx, request)
	g.observe(gateway.MethodRegisterBeneficiary, start, err)
	return resp, err
}

func (g *instrumentedGateway) UpdateRouting(ctx context.Context, beneficiaryID, ifsc string) (gateway.BeneficiaryResponse, error) {
	start := time.Now()
	resp, err := g.next.UpdateRouting(ctx, beneficiaryID, ifsc)
	g.observe(gateway.MethodUpdateRouting, start, err)
	return resp, err
}

func (g *instrumentedGateway) BeneficiaryDetails(ctx context.Context, phone string) (json.RawMessage, error) {
	start := time.Now()
	resp, err := g.next.BeneficiaryDetails(ctx, phone)
	g.observe(gateway.MethodBeneficiaryDetails, start, err)
	return resp, err
}

func (g *instrumentedGateway) BeneficiaryTypes(ctx context.Context) (json.RawMessage, error) {
	start := time.Now()
	resp, err := g.next.BeneficiaryTypes(ctx)
	g.observe(gateway.MethodBeneficiaryTypes, start, err)
	return resp, err
}

func (g *instrumentedGateway) PayReasons(ctx context.Context) (json.RawMessage, error) {
	start := time.Now()
	resp, err := g.next.PayReasons(ctx)
	g.observe(gateway.MethodPayReasons, start, err)
	return resp, err
}

func (g *instrumentedGateway) TransferMoney(ctx context.Context, request gateway.TransferRequest) (gateway.TransferResponse, error) {
	start := time.Now()
	resp, err := g.next.TransferMoney(ctx, request)
	g.observe(gateway.MethodSendMoney, start, err)
	return resp, err
}

func (g *instrumentedGateway) CheckStatus(ctx context.Context, orderID string) (json.RawMessage, error) {
	start := time.Now()
	resp, err := g.next.CheckStatus(ctx, orderID)
	g.observe(gateway.MethodCheckStatus, start, err)
	return resp, err
}

func (g *instrumentedGateway) Balance(ctx context.Context) ([]gateway.BalanceResponse, error) {
	start := time.Now()
	resp, err := g.next.Balance(ctx)
	g.observe("balance", start, err)
	return resp, err
}
