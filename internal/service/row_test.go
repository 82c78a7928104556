package service_test

import (
	"testing"

	"github.com/Behyna/payout-services/internal/service"
	"github.com/Behyna/payout-services/pkg/spreadsheet"
	"github.com/stretchr/testify/assert"
)

func TestParseRow(t *testing.T) {
	tests := []struct {
		name     string
		record   spreadsheet.Record
		expected service.PayoutRow
	}{
		{
			name: "all columns present",
			record: spreadsheet.Record{
				service.ColumnAccountNumber:   "001122",
				service.ColumnAmount:          "1500",
				service.ColumnName:            "Asha Rao",
				service.ColumnMobile:          "9876543210",
				service.ColumnEmail:           "asha@example.com",
				service.ColumnIFSC:            "HDFC0000123",
				service.ColumnPAN:             "ABCDE1234F",
				service.ColumnTransactionType: "neft",
			},
			expected: service.PayoutRow{
				AccountNumber: "001122",
				Amount:        1500,
				AmountRaw:     "1500",
				AmountValid:   true,
				Name:          "Asha Rao",
				Mobile:        "9876543210",
				Email:         "asha@example.com",
				IFSC:          "HDFC0000123",
				PAN:           "ABCDE1234F",
				TransferType:  "neft",
			},
		},
		{
			name: "blank optional columns fall back to batch defaults",
			record: spreadsheet.Record{
				service.ColumnAccountNumber: "001122",
				service.ColumnAmount:        "abc",
				service.ColumnMobile:        "  ",
			},
			expected: service.PayoutRow{
				AccountNumber: "001122",
				AmountRaw:     "abc",
				Mobile:        defaults.Mobile,
				Email:         defaults.Email,
				PAN:           defaults.PAN,
				TransferType:  "IMPS",
			},
		},
		{
			name:   "decimal amount is rejected",
			record: spreadsheet.Record{service.ColumnAmount: "10.5"},
			expected: service.PayoutRow{
				AmountRaw:    "10.5",
				Mobile:       defaults.Mobile,
				Email:        defaults.Email,
				PAN:          defaults.PAN,
				TransferType: "IMPS",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := service.ParseRow(tt.record, defaults)
			assert.Equal(t, tt.expected, row)
		})
	}
}

func TestPayoutRow_HasAccount(t *testing.T) {
	assert.True(t, service.PayoutRow{AccountNumber: "1"}.HasAccount())
	assert.False(t, service.PayoutRow{AccountNumber: "   "}.HasAccount())
	assert.False(t, service.PayoutRow{}.HasAccount())
}

func TestRowOutcome_String(t *testing.T) {
	assert.Equal(t, "ACCEPTED", service.RowAccepted.String())
	assert.Equal(t, "SKIPPED_BLANK_ACCOUNT", service.RowSkippedBlankAccount.String())
	assert.Equal(t, "REGISTRATION_FAILED", service.RowRegistrationFailed.String())
}
