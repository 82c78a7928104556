package spreadsheet_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Behyna/payout-services/pkg/spreadsheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func workbook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	return buf
}

func TestRead(t *testing.T) {
	t.Run("header and records", func(t *testing.T) {
		buf := workbook(t, [][]interface{}{
			{"Beneficiary A/c No.", "Transaction Amount", "Beneficiary Name"},
			{"001122334455", 1500, "  Asha Rao  "},
			{"998877665544", 15000000000.0, "Ravi Kumar"},
		})

		sheet, err := spreadsheet.Read(buf)

		require.NoError(t, err)
		assert.Equal(t, []string{"Beneficiary A/c No.", "Transaction Amount", "Beneficiary Name"}, sheet.Headers)
		require.Len(t, sheet.Records, 2)
		assert.Equal(t, "001122334455", sheet.Records[0]["Beneficiary A/c No."])
		assert.Equal(t, "1500", sheet.Records[0]["Transaction Amount"])
		assert.Equal(t, "Asha Rao", sheet.Records[0]["Beneficiary Name"])
		assert.Equal(t, "15000000000", sheet.Records[1]["Transaction Amount"])
	})

	t.Run("date cells rendered as iso date", func(t *testing.T) {
		buf := workbook(t, [][]interface{}{
			{"Beneficiary A/c No.", "Value Date"},
			{"001122334455", time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)},
		})

		sheet, err := spreadsheet.Read(buf)

		require.NoError(t, err)
		require.Len(t, sheet.Records, 1)
		assert.Equal(t, "2026-01-02", sheet.Records[0]["Value Date"])
	})

	t.Run("blank rows omitted and short rows padded", func(t *testing.T) {
		buf := workbook(t, [][]interface{}{
			{"Beneficiary A/c No.", "Transaction Amount"},
			{"001122334455"},
			{"", ""},
			{"998877665544", 20},
		})

		sheet, err := spreadsheet.Read(buf)

		require.NoError(t, err)
		require.Len(t, sheet.Records, 2)
		assert.Equal(t, "", sheet.Records[0]["Transaction Amount"])
		assert.Equal(t, "998877665544", sheet.Records[1]["Beneficiary A/c No."])
	})

	t.Run("empty header cell gets positional name", func(t *testing.T) {
		buf := workbook(t, [][]interface{}{
			{"Beneficiary A/c No.", "", "Beneficiary Name"},
			{"001122334455", "x", "Asha"},
		})

		sheet, err := spreadsheet.Read(buf)

		require.NoError(t, err)
		assert.Equal(t, []string{"Beneficiary A/c No.", "Column1", "Beneficiary Name"}, sheet.Headers)
		assert.Equal(t, "x", sheet.Records[0]["Column1"])
	})

	t.Run("data beyond the last header cell gets positional names", func(t *testing.T) {
		buf := workbook(t, [][]interface{}{
			{"Beneficiary A/c No.", "Transaction Amount"},
			{"001122334455", 1500, "urgent", ""},
			{"998877665544", 20},
		})

		sheet, err := spreadsheet.Read(buf)

		require.NoError(t, err)
		assert.Equal(t, []string{"Beneficiary A/c No.", "Transaction Amount", "Column2"}, sheet.Headers)
		require.Len(t, sheet.Records, 2)
		assert.Equal(t, "urgent", sheet.Records[0]["Column2"])
		assert.Equal(t, "", sheet.Records[1]["Column2"])
	})

	t.Run("boolean cells rendered as true or false", func(t *testing.T) {
		buf := workbook(t, [][]interface{}{
			{"Beneficiary A/c No.", "Verified", "Flagged"},
			{"001122334455", true, false},
		})

		sheet, err := spreadsheet.Read(buf)

		require.NoError(t, err)
		require.Len(t, sheet.Records, 1)
		assert.Equal(t, "true", sheet.Records[0]["Verified"])
		assert.Equal(t, "false", sheet.Records[0]["Flagged"])
	})

	t.Run("header only yields no records", func(t *testing.T) {
		buf := workbook(t, [][]interface{}{
			{"Beneficiary A/c No.", "Transaction Amount"},
		})

		sheet, err := spreadsheet.Read(buf)

		require.NoError(t, err)
		assert.Empty(t, sheet.Records)
	})
}

func TestRead_EmptyFile(t *testing.T) {
	sheet, err := spreadsheet.Read(&bytes.Buffer{})

	assert.Nil(t, sheet)
	assert.ErrorIs(t, err, spreadsheet.ErrEmptyFile)
	assert.Equal(t, "invalid spreadsheet: file is empty", err.Error())
}

func TestRead_FormatErrors(t *testing.T) {
	tests := []struct {
		name  string
		input func(t *testing.T) *bytes.Buffer
	}{
		{
			name:  "empty file",
			input: func(t *testing.T) *bytes.Buffer { return &bytes.Buffer{} },
		},
		{
			name:  "not a workbook",
			input: func(t *testing.T) *bytes.Buffer { return bytes.NewBufferString("account,amount\n1,2\n") },
		},
		{
			name:  "empty sheet",
			input: func(t *testing.T) *bytes.Buffer { return workbook(t, nil) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sheet, err := spreadsheet.Read(tt.input(t))

			require.Error(t, err)
			assert.Nil(t, sheet)

			var formatErr *spreadsheet.FormatError
			assert.True(t, errors.As(err, &formatErr))
			assert.True(t, strings.HasPrefix(err.Error(), "invalid spreadsheet"))
		})
	}
}
