package gateway_test

import (
	"testing"

	"github.com/Behyna/payout-services/pkg/gateway"
	"github.com/stretchr/testify/assert"
)

func TestMapStatusToError(t *testing.T) {
	testCases := []struct {
		name          string
		statusCode    int
		expectedError error
	}{
		{
			name:          "BadRequest",
			statusCode:    400,
			expectedError: gateway.ErrBadRequest,
		},
		{
			name:          "Unauthorized",
			statusCode:    401,
			expectedError: gateway.ErrUnauthorized,
		},
		{
			name:          "Forbidden",
			statusCode:    403,
			expectedError: gateway.ErrUnauthorized,
		},
		{
			name:          "GatewayTimeout",
			statusCode:    504,
			expectedError: gateway.ErrTimeout,
		},
		{
			name:          "InternalServerError",
			statusCode:    500,
			expectedError: gateway.ErrServerError,
		},
		{
			name:          "BadGateway",
			statusCode:    502,
			expectedError: gateway.ErrServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := gateway.MapStatusToError(tc.statusCode)

			assert.Error(t, err, "Expected an error for status code %d", tc.statusCode)
			assert.Equal(t, tc.expectedError, err)
		})
	}
}
