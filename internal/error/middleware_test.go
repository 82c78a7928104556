package middleware_test

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/Behyna/payout-services/internal/api/contract"
	"github.com/Behyna/payout-services/internal/constants"
	middleware "github.com/Behyna/payout-services/internal/error"
	"github.com/Behyna/payout-services/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "batch not found",
			err:            service.NewServiceError(constants.ErrCodeBatchNotFound, service.ErrBatchNotFound),
			expectedStatus: 404,
			expectedCode:   constants.ErrCodeBatchNotFound,
		},
		{
			name:           "empty file",
			err:            service.NewServiceError(constants.ErrCodeEmptyFile, service.ErrEmptyFile),
			expectedStatus: 400,
			expectedCode:   constants.ErrCodeEmptyFile,
		},
		{
			name:           "database failure keeps its code",
			err:            service.NewServiceError(constants.ErrCodeDatabase, errors.New("deadlock")),
			expectedStatus: 500,
			expectedCode:   constants.ErrCodeDatabase,
		},
		{
			name:           "unrecorded line outcome keeps its code",
			err:            service.NewServiceError(constants.ErrCodeLineStatus, errors.New("deadlock")),
			expectedStatus: 500,
			expectedCode:   constants.ErrCodeLineStatus,
		},
		{
			name:           "unknown service code",
			err:            service.NewServiceError("SOMETHING", errors.New("boom")),
			expectedStatus: 500,
			expectedCode:   constants.ErrCodeInternalError,
		},
		{
			name:           "plain error",
			err:            errors.New("boom"),
			expectedStatus: 500,
			expectedCode:   constants.ErrCodeInternalError,
		},
		{
			name:           "fiber error",
			err:            fiber.ErrRequestEntityTooLarge,
			expectedStatus: 413,
			expectedCode:   constants.ErrCodeInvalidRequestBody,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler(zap.NewNop())})
			app.Get("/", func(c *fiber.Ctx) error { return tt.err })

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			require.NoError(t, err)
			defer resp.Body.Close()

			var body contract.Response
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
			assert.Equal(t, tt.expectedCode, body.Code)
			assert.False(t, body.Successful)
		})
	}
}
