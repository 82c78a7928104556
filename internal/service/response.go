package service

import (
	"encoding/json"

	"github.com/Behyna/payout-services/internal/model"
	"github.com/Behyna/payout-services/pkg/gateway"
)

const (
	MsgUploadSucceeded      = "File uploaded successfully"
	MsgPaymentsDenied       = "All Payment Denied Successfully"
	MsgBatchProcessed       = "Bulk payment processed successfully."
	MsgBatchQueued          = "Bulk payment queued for processing."
	MsgBatchesFetched       = "Transaction history fetched successfully"
	MsgLinesFetched         = "Beneficiary Details Fetched Successfully"
	MsgLinesNotFound        = "Beneficiary Details Not Found"
	MsgTransactionsFetched  = "Transactions fetched successfully"
	MsgTransactionsNotFound = "No transactions found."
	MsgBeneficiariesFetched = "Beneficiaries fetched successfully"
	MsgNoBeneficiaries      = "No beneficiaries found."
)

type UploadBulkPayoutResult struct {
	Message       string              `json:"message"`
	TransactionID string              `json:"transactionId"`
	Ingested      int                 `json:"ingested"`
	Data          []map[string]string `json:"data"`
	Outcomes      []RowOutcome        `json:"-"`
}

type DecisionResult struct {
	Message string `json:"message"`
}

type BatchPage struct {
	TransactionHistory []model.BulkPayment `json:"transactionHistory"`
	TotalPages         int                 `json:"totalPages"`
	TotalElements      int64               `json:"totalElements"`
	CurrentPage        int                 `json:"currentPage"`
}

type BatchLines struct {
	Message string                  `json:"message"`
	Lines   []model.BulkPaymentLine `json:"data"`
}

type TransactionPage struct {
	Message       string                   `json:"message"`
	Transactions  []model.SendMoneyHistory `json:"transactions"`
	TotalPages    int                      `json:"totalPages"`
	TotalElements int64                    `json:"totalElements"`
}

type BeneficiaryPage struct {
	Message       string              `json:"message"`
	Beneficiaries []model.Beneficiary `json:"beneficiaries"`
	TotalPages    int                 `json:"totalPages"`
	TotalElements int64               `json:"totalElements"`
}

type PayoutTransaction struct {
	model.SendMoneyHistory
	BeneficiaryName string `json:"beneficiaryName"`
}

type PayoutTransactionPage struct {
	Message       string              `json:"message"`
	Transactions  []PayoutTransaction `json:"transactions"`
	TotalPages    int                 `json:"totalPages"`
	TotalElements int64               `json:"totalElements"`
	CurrentPage   int                 `json:"currentPage"`
}

type UpdateRoutingResult struct {
	Updated  bool                        `json:"updated"`
	Response gateway.BeneficiaryResponse `json:"response"`
}

type Document = json.RawMessage
