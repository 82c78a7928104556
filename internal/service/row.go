package service

import (
	"strconv"
	"strings"

	"github.com/Behyna/payout-services/pkg/spreadsheet"
)

const (
	ColumnAccountNumber   = "Beneficiary A/c No."
	ColumnAmount          = "Transaction Amount"
	ColumnName            = "Beneficiary Name"
	ColumnMobile          = "Beneficiary Mobile No"
	ColumnEmail           = "Beneficiary Email ID"
	ColumnIFSC            = "IFSC Code"
	ColumnPAN             = "Pan No"
	ColumnTransactionType = "Transaction Type"

	defaultTransferType = "IMPS"
)

type RowOutcome int

const (
	RowAccepted RowOutcome = iota
	RowSkippedBlankAccount
	RowRegistrationFailed
)

func (o RowOutcome) String() string {
	switch o {
	case RowAccepted:
		return "ACCEPTED"
	case RowSkippedBlankAccount:
		return "SKIPPED_BLANK_ACCOUNT"
	case RowRegistrationFailed:
		return "REGISTRATION_FAILED"
	default:
		return "UNKNOWN"
	}
}

// PayoutRow is one spreadsheet record resolved against the batch defaults.
type PayoutRow struct {
	AccountNumber string
	Amount        int64
	AmountRaw     string
	AmountValid   bool
	Name          string
	Mobile        string
	Email         string
	IFSC          string
	PAN           string
	TransferType  string
}

func ParseRow(record spreadsheet.Record, defaults BatchDefaults) PayoutRow {
	row := PayoutRow{
		AccountNumber: record[ColumnAccountNumber],
		AmountRaw:     record[ColumnAmount],
		Name:          record[ColumnName],
		Mobile:        firstNonBlank(record[ColumnMobile], defaults.Mobile),
		Email:         firstNonBlank(record[ColumnEmail], defaults.Email),
		IFSC:          record[ColumnIFSC],
		PAN:           firstNonBlank(record[ColumnPAN], defaults.PAN),
		TransferType:  firstNonBlank(record[ColumnTransactionType], defaultTransferType),
	}

	amount, err := strconv.ParseInt(row.AmountRaw, 10, 64)
	if err == nil {
		row.Amount = amount
		row.AmountValid = true
	}

	return row
}

func (r PayoutRow) HasAccount() bool {
	return strings.TrimSpace(r.AccountNumber) != ""
}

func (r PayoutRow) registration(defaults BatchDefaults) RegisterBeneficiaryCommand {
	return RegisterBeneficiaryCommand{
		AccountNumber: r.AccountNumber,
		IFSC:          r.IFSC,
		Name:          r.Name,
		Email:         r.Email,
		Mobile:        r.Mobile,
		PAN:           r.PAN,
		Aadhaar:       defaults.Aadhaar,
		BankName:      defaults.BankName,
		BeneType:      defaults.BeneType,
		Address:       defaults.Address,
		Latitude:      defaults.Latitude,
		Longitude:     defaults.Longitude,
	}
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
