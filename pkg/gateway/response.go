package gateway

import "github.com/shopspring/decimal"

type BeneficiaryResponse struct {
	StatusCode string           `json:"statuscode"`
	Status     string           `json:"status"`
	Data       *BeneficiaryData `json:"data"`
}

type BeneficiaryData struct {
	Status        string `json:"STATUS"`
	BeneficiaryID string `json:"BENEFICIARY_ID"`
}

// DataStatus returns the STATUS carried inside data, or "" when data is absent.
func (r BeneficiaryResponse) DataStatus() string {
	if r.Data == nil {
		return ""
	}
	return r.Data.Status
}

type TransferResponse struct {
	StatusCode string        `json:"statuscode"`
	Status     string        `json:"status"`
	Data       *TransferData `json:"data"`
}

type TransferData struct {
	OrderID        string `json:"orderId"`
	GatewayOrderID string `json:"cyrusOrderId"`
	GatewayID      string `json:"cyrus_id"`
	OpeningBalance string `json:"opening_bal"`
	LockedAmount   string `json:"locked_amt"`
	ChargedAmount  string `json:"charged_amt"`
	RRN            string `json:"rrn"`
}

// Accepted reports whether the gateway assigned an order id to the transfer.
func (r TransferResponse) Accepted() bool {
	return r.Data != nil && r.Data.OrderID != ""
}

type BalanceResponse struct {
	Status         string        `json:"Status"`
	SuccessMessage string        `json:"SuccessMessage"`
	Data           []BalanceData `json:"data"`
}

type BalanceData struct {
	Balance decimal.Decimal `json:"balance"`
}
