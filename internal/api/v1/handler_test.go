package v1_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Behyna/payout-services/internal/api"
	"github.com/Behyna/payout-services/internal/api/contract"
	v1 "github.com/Behyna/payout-services/internal/api/v1"
	"github.com/Behyna/payout-services/internal/api/v1/middleware"
	"github.com/Behyna/payout-services/internal/api/validator"
	"github.com/Behyna/payout-services/internal/constants"
	errmiddleware "github.com/Behyna/payout-services/internal/error"
	"github.com/Behyna/payout-services/internal/metrics"
	"github.com/Behyna/payout-services/internal/mocks"
	"github.com/Behyna/payout-services/internal/model"
	"github.com/Behyna/payout-services/internal/service"
	govalidator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/golang-jwt/jwt/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const secret = "test-secret"

type testDeps struct {
	bulk      *mocks.BulkPayoutService
	benes     *mocks.BeneficiaryService
	transfers *mocks.TransferService
	wallet    *mocks.WalletBalanceService
	callbacks *mocks.CallbackService
	app       *fiber.App
}

func newTestApp() *testDeps {
	d := &testDeps{
		bulk:      &mocks.BulkPayoutService{},
		benes:     &mocks.BeneficiaryService{},
		transfers: &mocks.TransferService{},
		wallet:    &mocks.WalletBalanceService{},
		callbacks: &mocks.CallbackService{},
	}

	m := metrics.NewMetrics(prometheus.NewRegistry())
	xv := validator.NewXValidator(govalidator.New(), m)
	handler := v1.NewHandler(zap.NewNop(), d.bulk, d.benes, d.transfers, d.wallet, d.callbacks, xv, m)

	d.app = fiber.New(fiber.Config{ErrorHandler: errmiddleware.ErrorHandler(zap.NewNop())})
	d.app.Use(requestid.New())
	api.SetupRoutes(d.app, handler, middleware.MemberAuth(secret, zap.NewNop()))

	return d
}

func token(t *testing.T, memberID string) string {
	t.Helper()

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"memberId": memberID}).
		SignedString([]byte(secret))
	require.NoError(t, err)

	return "Bearer " + signed
}

func do(t *testing.T, app *fiber.App, req *http.Request) (int, contract.Response) {
	t.Helper()

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body contract.Response
	require.NoError(t, json.Unmarshal(raw, &body), string(raw))

	return resp.StatusCode, body
}

func uploadRequest(t *testing.T, data string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", "payouts.xlsx")
	require.NoError(t, err)
	_, err = part.Write([]byte("workbook-bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.WriteField("data", data))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/payout/beneficiaries/bulk-upload", &buf)
	req.Header.Set(fiber.HeaderContentType, writer.FormDataContentType())
	req.Header.Set(fiber.HeaderAuthorization, token(t, "M-1"))
	return req
}

const validDefaults = `{
	"mobile": "9000000000",
	"email": "ops@example.com",
	"pan": "ABCDE1234F",
	"aadhaar": "123412341234",
	"bankName": "HDFC Bank",
	"beneType": "VENDOR",
	"latitude": 18,
	"longitude": 73,
	"address": "{\"city\":\"Pune\"}"
}`

func TestHandler_BulkUpload(t *testing.T) {
	t.Run("passes file and defaults to the service", func(t *testing.T) {
		d := newTestApp()

		d.bulk.On("Upload", mock.Anything, mock.MatchedBy(func(cmd service.UploadBulkPayoutCommand) bool {
			return cmd.MemberID == "M-1" &&
				cmd.File != nil &&
				cmd.Defaults.Mobile == "9000000000" &&
				cmd.Defaults.Latitude == 18
		})).Return(service.UploadBulkPayoutResult{
			Message:       service.MsgUploadSucceeded,
			TransactionID: "T-1",
			Ingested:      1,
			Data:          []map[string]string{{"Beneficiary A/c No.": "111"}},
		}, nil)

		status, body := do(t, d.app, uploadRequest(t, validDefaults))

		assert.Equal(t, http.StatusOK, status)
		assert.True(t, body.Successful)
		assert.Equal(t, service.MsgUploadSucceeded, body.Message)
		assert.NotEmpty(t, body.TrackID)

		result := body.Result.(map[string]interface{})
		assert.Equal(t, "T-1", result["transactionId"])
		assert.Equal(t, float64(1), result["ingested"])
		assert.Len(t, result["data"], 1)
		d.bulk.AssertExpectations(t)
	})

	t.Run("invalid defaults", func(t *testing.T) {
		d := newTestApp()

		status, body := do(t, d.app, uploadRequest(t, `{"mobile":"123","email":"nope"}`))

		assert.Equal(t, http.StatusUnprocessableEntity, status)
		assert.Equal(t, constants.ErrCodeValidationFailed, body.Code)
		assert.Contains(t, body.Message, "mobile is invalid")
		d.bulk.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
	})

	t.Run("empty file surfaces as 400", func(t *testing.T) {
		d := newTestApp()

		d.bulk.On("Upload", mock.Anything, mock.Anything).
			Return(service.UploadBulkPayoutResult{}, service.NewServiceError(constants.ErrCodeEmptyFile, service.ErrEmptyFile))

		status, body := do(t, d.app, uploadRequest(t, validDefaults))

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, constants.ErrCodeEmptyFile, body.Code)
		assert.Equal(t, "File is empty", body.Message)
	})

	t.Run("missing token", func(t *testing.T) {
		d := newTestApp()

		req := uploadRequest(t, validDefaults)
		req.Header.Del(fiber.HeaderAuthorization)

		status, body := do(t, d.app, req)

		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, constants.ErrCodeUnauthorized, body.Code)
	})
}

func TestHandler_AcceptOrDeny(t *testing.T) {
	t.Run("deny", func(t *testing.T) {
		d := newTestApp()

		d.bulk.On("AcceptOrDeny", mock.Anything, service.AcceptOrDenyCommand{
			MemberID: "M-1", TransactionID: "T-1", Accept: false,
		}).Return(service.DecisionResult{Message: service.MsgPaymentsDenied}, nil)

		req := httptest.NewRequest(http.MethodPost,
			"/api/v1/payout/bulk-upload-payment-accept-or-denied?transactionId=T-1&status=false", nil)
		req.Header.Set(fiber.HeaderAuthorization, token(t, "M-1"))

		status, body := do(t, d.app, req)

		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "All Payment Denied Successfully", body.Message)
		d.bulk.AssertExpectations(t)
	})

	t.Run("accept of unknown batch", func(t *testing.T) {
		d := newTestApp()

		d.bulk.On("AcceptOrDeny", mock.Anything, mock.MatchedBy(func(cmd service.AcceptOrDenyCommand) bool {
			return cmd.Accept && cmd.TransactionID == "T-9"
		})).Return(service.DecisionResult{}, service.NewServiceError(constants.ErrCodeBatchNotFound, service.ErrBatchNotFound))

		req := httptest.NewRequest(http.MethodPost,
			"/api/v1/payout/bulk-upload-payment-accept-or-denied?transactionId=T-9&status=true", nil)
		req.Header.Set(fiber.HeaderAuthorization, token(t, "M-1"))

		status, body := do(t, d.app, req)

		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "No bulk payment records found.", body.Message)
	})

	t.Run("status must be a boolean", func(t *testing.T) {
		d := newTestApp()

		req := httptest.NewRequest(http.MethodPost,
			"/api/v1/payout/bulk-upload-payment-accept-or-denied?transactionId=T-1&status=maybe", nil)
		req.Header.Set(fiber.HeaderAuthorization, token(t, "M-1"))

		status, body := do(t, d.app, req)

		assert.Equal(t, http.StatusUnprocessableEntity, status)
		assert.Equal(t, "status is invalid", body.Message)
		d.bulk.AssertNotCalled(t, "AcceptOrDeny", mock.Anything, mock.Anything)
	})
}

func TestHandler_Listings(t *testing.T) {
	t.Run("batch listing clamps paging", func(t *testing.T) {
		d := newTestApp()

		d.bulk.On("ListBatches", mock.Anything, "M-7", service.PageQuery{Page: 0, Size: 10}).
			Return(service.BatchPage{TransactionHistory: []model.BulkPayment{{TransactionID: "T-1"}}, TotalPages: 1}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/payout/bulk-upload-transaction-ids?pageNo=-5&pageSize=500", nil)
		req.Header.Set(fiber.HeaderAuthorization, token(t, "M-7"))

		status, body := do(t, d.app, req)

		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, service.MsgBatchesFetched, body.Message)
		d.bulk.AssertExpectations(t)
	})

	t.Run("pageNumber alias", func(t *testing.T) {
		d := newTestApp()

		d.benes.On("List", mock.Anything, service.PageQuery{Page: 2, Size: 5}).
			Return(service.BeneficiaryPage{Message: service.MsgBeneficiariesFetched}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/payout/beneficiary-list?pageNumber=2&pageSize=5", nil)
		req.Header.Set(fiber.HeaderAuthorization, token(t, "M-1"))

		status, _ := do(t, d.app, req)

		assert.Equal(t, http.StatusOK, status)
		d.benes.AssertExpectations(t)
	})

	t.Run("line listing", func(t *testing.T) {
		d := newTestApp()

		d.bulk.On("ListBatchLines", mock.Anything, "T-1", "M-1").Return(service.BatchLines{
			Message: service.MsgLinesFetched,
			Lines:   []model.BulkPaymentLine{{ID: 1, Status: model.BulkPaymentStatusPending}},
		}, nil)

		req := httptest.NewRequest(http.MethodGet,
			"/api/v1/payout/bulk-upload-amount-details-by-transaction-id?transactionId=T-1", nil)
		req.Header.Set(fiber.HeaderAuthorization, token(t, "M-1"))

		status, body := do(t, d.app, req)

		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, service.MsgLinesFetched, body.Message)
		assert.Len(t, body.Result, 1)
	})
}

func TestHandler_PayoutCallback(t *testing.T) {
	d := newTestApp()

	d.callbacks.On("HandlePayout", mock.Anything, service.PayoutCallbackCommand{
		StatusCode: "TXN",
		Status:     "SUCCESS",
		Data:       `{"orderId":"order-1"}`,
	}).Return(nil)

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/callback/payout?statuscode=TXN&status=SUCCESS&data=%7B%22orderId%22%3A%22order-1%22%7D", nil)

	status, body := do(t, d.app, req)

	assert.Equal(t, http.StatusOK, status)
	assert.True(t, body.Successful)
	d.callbacks.AssertExpectations(t)
}

func TestHandler_SyncBalance(t *testing.T) {
	d := newTestApp()

	d.wallet.On("Sync", mock.Anything).Return(false, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/balance", nil)
	req.Header.Set(fiber.HeaderAuthorization, token(t, "M-1"))

	status, body := do(t, d.app, req)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, map[string]interface{}{"updated": false}, body.Result)
}
