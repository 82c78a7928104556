package validator_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Behyna/payout-services/internal/api/contract"
	"github.com/Behyna/payout-services/internal/api/validator"
	"github.com/Behyna/payout-services/internal/constants"
	"github.com/Behyna/payout-services/internal/metrics"
	govalidator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type identity struct {
	Mobile  string `json:"mobile" validate:"mobile"`
	PAN     string `json:"pan" validate:"pan"`
	Aadhaar string `json:"aadhaar" validate:"aadhaar"`
	IFSC    string `json:"ifsc" validate:"ifsc"`
}

type lookup struct {
	TransactionID string `query:"transactionId" validate:"required"`
	Amount        int64  `json:"amount" validate:"min=1"`
}

func TestXValidator_Validate(t *testing.T) {
	xv := validator.NewXValidator(govalidator.New(), nil)

	tests := []struct {
		name         string
		data         identity
		failedFields []string
	}{
		{
			name: "all valid",
			data: identity{Mobile: "9876543210", PAN: "ABCDE1234F", Aadhaar: "123412341234", IFSC: "HDFC0000123"},
		},
		{
			name:         "mobile must start with 6-9",
			data:         identity{Mobile: "1234567890", PAN: "ABCDE1234F", Aadhaar: "123412341234", IFSC: "HDFC0000123"},
			failedFields: []string{"mobile"},
		},
		{
			name:         "lowercase pan and short aadhaar",
			data:         identity{Mobile: "9876543210", PAN: "abcde1234f", Aadhaar: "1234", IFSC: "HDFC0000123"},
			failedFields: []string{"pan", "aadhaar"},
		},
		{
			name:         "ifsc fifth character must be zero",
			data:         identity{Mobile: "9876543210", PAN: "ABCDE1234F", Aadhaar: "123412341234", IFSC: "HDFC1000123"},
			failedFields: []string{"ifsc"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := xv.Validate(tt.data)

			fields := make([]string, 0, len(errs))
			for _, err := range errs {
				assert.True(t, err.Error)
				fields = append(fields, err.FailedField)
			}

			assert.ElementsMatch(t, tt.failedFields, fields)
		})
	}
}

func TestXValidator_Validator(t *testing.T) {
	xv := validator.NewXValidator(govalidator.New(), metrics.NewMetrics(prometheus.NewRegistry()))

	app := fiber.New()
	app.Post("/lookup", func(c *fiber.Ctx) error {
		var request lookup
		if resp := xv.Validator(&request, constants.MessageErrorFormat, c); resp.Code != "" {
			return c.JSON(resp)
		}
		return c.JSON(request)
	})

	t.Run("query and body merged", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/lookup?transactionId=T-1", strings.NewReader(`{"amount":5}`))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		var body lookup
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "T-1", body.TransactionID)
		assert.Equal(t, int64(5), body.Amount)
	})

	t.Run("failed fields joined", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/lookup", strings.NewReader(`{"amount":0}`))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		var body contract.Response
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		assert.Equal(t, constants.ErrCodeValidationFailed, body.Code)
		assert.Equal(t, "transactionId is invalid and amount is invalid", body.Message)
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/lookup?transactionId=T-1", strings.NewReader(`{"amount":`))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
