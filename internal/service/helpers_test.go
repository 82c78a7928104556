package service_test

import (
	"bytes"
	"testing"

	"github.com/Behyna/payout-services/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var payoutHeader = []interface{}{
	"Beneficiary A/c No.", "Transaction Amount", "Beneficiary Name", "Beneficiary Mobile No",
	"Beneficiary Email ID", "IFSC Code", "Pan No", "Transaction Type",
}

func newMetrics() *metrics.Metrics {
	return metrics.NewMetrics(prometheus.NewRegistry())
}

func payoutFile(t *testing.T, rows ...[]interface{}) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	all := append([][]interface{}{payoutHeader}, rows...)
	for i := range all {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &all[i]))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	return buf
}
