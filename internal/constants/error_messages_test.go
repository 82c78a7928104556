package constants_test

import (
	"testing"

	"github.com/Behyna/payout-services/internal/constants"
	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code     string
		expected int
	}{
		{constants.ErrCodeEmptyFile, 400},
		{constants.ErrCodeNoRows, 400},
		{constants.ErrCodeInvalidSpreadsheet, 400},
		{constants.ErrCodeBeneficiaryNotFound, 400},
		{constants.ErrCodeUnauthorized, 401},
		{constants.ErrCodeValidationFailed, 422},
		{constants.ErrCodeBatchNotFound, 404},
		{constants.ErrCodeGatewayError, 502},
		{constants.ErrCodeGatewayTimeout, 504},
		{constants.ErrCodeDatabase, 500},
		{constants.ErrCodeLineStatus, 500},
		{"SOMETHING_ELSE", 500},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, constants.GetHTTPStatus(tt.code))
		})
	}
}

func TestGetErrorMessage(t *testing.T) {
	assert.Equal(t, "File is empty", constants.GetErrorMessage(constants.ErrCodeEmptyFile))
	assert.Equal(t, "No bulk payment records found.", constants.GetErrorMessage(constants.ErrCodeBatchNotFound))
	assert.Equal(t, constants.ErrMsgInternalError, constants.GetErrorMessage("UNKNOWN"))
}
