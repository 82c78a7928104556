package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/Behyna/common/pkg/httpclient"
)

const (
	MethodRegisterBeneficiary = "GET_BENEFICIARY"
	MethodUpdateRouting       = "UPDATE_IFSC"
	MethodBeneficiaryDetails  = "BENEFICIARY_DETAILS"
	MethodBeneficiaryTypes    = "BENE_TYPE"
	MethodPayReasons          = "PAY_REASON"
	MethodSendMoney           = "sendmoney"
	MethodCheckStatus         = "checkstatus"
)

var formHeaders = map[string]string{
	"Content-Type": "application/x-www-form-urlencoded",
}

type Gateway interface {
	RegisterBeneficiary(ctx context.Context, request RegisterBeneficiaryRequest) (BeneficiaryResponse, error)
	UpdateRouting(ctx context.Context, beneficiaryID, ifsc string) (BeneficiaryResponse, error)
	BeneficiaryDetails(ctx context.Context, phone string) (json.RawMessage, error)
	BeneficiaryTypes(ctx context.Context) (json.RawMessage, error)
	PayReasons(ctx context.Context) (json.RawMessage, error)
	TransferMoney(ctx context.Context, request TransferRequest) (TransferResponse, error)
	CheckStatus(ctx context.Context, orderID string) (json.RawMessage, error)
	Balance(ctx context.Context) ([]BalanceResponse, error)
}

type gateway struct {
	client httpclient.HTTPClient
	config Config
}

func NewGateway(cfg Config, client httpclient.HTTPClient) Gateway {
	return &gateway{config: cfg, client: client}
}

func (g *gateway) RegisterBeneficiary(ctx context.Context, request RegisterBeneficiaryRequest) (BeneficiaryResponse, error) {
	form := g.form(MethodRegisterBeneficiary)
	form.Set("pay_type", "account_number")
	form.Set("beneficiary_bank_account_number", request.AccountNumber)
	form.Set("beneficiary_bank_ifsc_code", request.IFSC)
	form.Set("beneficiary_name", request.Name)
	form.Set("beneficiary_email", request.Email)
	form.Set("beneficiary_phone", request.Phone)
	form.Set("beneficiary_pan", request.PAN)
	form.Set("beneficiary_aadhar", request.Aadhaar)
	form.Set("is_agreement_with_beneficiary", "YES")
	form.Set("beneficiary_verification_status", "YES")
	form.Set("beneficiary_address", request.Address)
	form.Set("bene_type", request.BeneType)
	form.Set("latlong", strconv.FormatInt(request.Latitude, 10)+","+strconv.FormatInt(request.Longitude, 10))

	var response BeneficiaryResponse
	if err := g.post(ctx, g.config.BeneficiaryPath, form, &response); err != nil {
		return BeneficiaryResponse{}, err
	}

	return response, nil
}

func (g *gateway) UpdateRouting(ctx context.Context, beneficiaryID, ifsc string) (BeneficiaryResponse, error) {
	form := g.form(MethodUpdateRouting)
	form.Set("beneficiary_bank_ifsc_code", ifsc)
	form.Set("beneficiary_id", beneficiaryID)

	var response BeneficiaryResponse
	if err := g.post(ctx, g.config.BeneficiaryPath, form, &response); err != nil {
		return BeneficiaryResponse{}, err
	}

	return response, nil
}

func (g *gateway) BeneficiaryDetails(ctx context.Context, phone string) (json.RawMessage, error) {
	form := g.form(MethodBeneficiaryDetails)
	form.Set("beneficiary_phone", phone)

	return g.document(ctx, g.config.BeneficiaryPath, form)
}

func (g *gateway) BeneficiaryTypes(ctx context.Context) (json.RawMessage, error) {
	return g.document(ctx, g.config.BeneficiaryPath, g.form(MethodBeneficiaryTypes))
}

func (g *gateway) PayReasons(ctx context.Context) (json.RawMessage, error) {
	return g.document(ctx, g.config.BeneficiaryPath, g.form(MethodPayReasons))
}

func (g *gateway) TransferMoney(ctx context.Context, request TransferRequest) (TransferResponse, error) {
	form := g.form(MethodSendMoney)
	form.Set("orderId", request.OrderID)
	form.Set("Name", request.Name)
	form.Set("amount", strconv.FormatInt(request.Amount, 10))
	form.Set("MobileNo", request.MobileNo)
	form.Set("comments", request.Comments)
	form.Set("TransferType", request.TransferType)
	form.Set("beneficiaryid", request.BeneficiaryID)
	form.Set("remarks", request.Remarks)

	var response TransferResponse
	if err := g.post(ctx, g.config.TransferPath, form, &response); err != nil {
		return TransferResponse{}, err
	}

	return response, nil
}

func (g *gateway) CheckStatus(ctx context.Context, orderID string) (json.RawMessage, error) {
	form := g.form(MethodCheckStatus)
	form.Set("orderId", orderID)

	return g.document(ctx, g.config.TransferPath, form)
}

func (g *gateway) Balance(ctx context.Context) ([]BalanceResponse, error) {
	path := strings.NewReplacer("{memberId}", g.config.MerchantID, "{pin}", g.config.RechargeKey).
		Replace(g.config.BalancePath)

	headers := map[string]string{
		"Content-Type": "application/json",
	}

	resp, err := g.client.Get(ctx, g.config.BaseURL+path, headers)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, ErrTimeout
		}

		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, MapStatusToError(resp.StatusCode)
	}

	var response []BalanceResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("decoding error: %w", err)
	}

	return response, nil
}

func (g *gateway) form(method string) url.Values {
	form := url.Values{}
	form.Set("MerchantID", g.config.MerchantID)
	form.Set("MerchantKey", g.config.MerchantKey)
	form.Set("MethodName", method)
	return form
}

func (g *gateway) document(ctx context.Context, path string, form url.Values) (json.RawMessage, error) {
	var response json.RawMessage
	if err := g.post(ctx, path, form, &response); err != nil {
		return nil, err
	}

	return response, nil
}

func (g *gateway) post(ctx context.Context, path string, form url.Values, out any) error {
	body := bytes.NewBufferString(form.Encode())

	resp, err := g.client.Post(ctx, g.config.BaseURL+path, body, formHeaders)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return ErrTimeout
		}

		return err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return MapStatusToError(resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding error: %w", err)
	}

	return nil
}
