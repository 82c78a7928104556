package v1

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/Behyna/payout-services/internal/api/v1/middleware"
	"github.com/Behyna/payout-services/internal/constants"
	"github.com/Behyna/payout-services/internal/service"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// BulkUpload ingests a spreadsheet sent as the multipart "file" part, with the batch
// defaults as JSON in the "data" part.
func (h *Handler) BulkUpload(c *fiber.Ctx) error {
	start := time.Now()
	memberID := middleware.MemberID(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.logger.Warn("Bulk upload without file", zap.String("memberID", memberID), zap.Error(err))
		return service.NewServiceError(constants.ErrCodeEmptyFile, service.ErrEmptyFile)
	}

	var request BatchDefaultsRequest
	if err := json.Unmarshal([]byte(c.FormValue("data")), &request); err != nil {
		h.logger.Warn("Failed to parse upload defaults", zap.String("memberID", memberID), zap.Error(err))
		return service.NewServiceError(constants.ErrCodeInvalidRequestBody, err)
	}

	validationStart := time.Now()
	responseError := h.XValidator.ValidateStruct(&request, constants.MessageErrorFormat, c)
	h.metrics.RecordValidationDuration("bulk_upload", time.Since(validationStart))
	if responseError.Code != "" {
		return h.invalid(c, responseError, request)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return service.NewServiceError(constants.ErrCodeInvalidSpreadsheet, err)
	}
	defer file.Close()

	result, err := h.bulkPayout.Upload(c.UserContext(), service.UploadBulkPayoutCommand{
		MemberID: memberID,
		File:     file,
		Defaults: service.BatchDefaults{
			Mobile:    request.Mobile,
			Email:     request.Email,
			PAN:       request.PAN,
			Aadhaar:   request.Aadhaar,
			BankName:  request.BankName,
			BeneType:  request.BeneType,
			Latitude:  request.Latitude,
			Longitude: request.Longitude,
			Address:   request.Address,
		},
	})
	if err != nil {
		return err
	}

	h.logger.Info("Bulk upload accepted",
		zap.String("memberID", memberID),
		zap.String("transactionID", result.TransactionID),
		zap.String("file", fileHeader.Filename),
		zap.Int("ingested", result.Ingested),
		zap.Duration("duration", time.Since(start)),
	)

	return h.success(c, result.Message, UploadResponse{
		Message:       result.Message,
		TransactionID: result.TransactionID,
		Ingested:      result.Ingested,
		Data:          result.Data,
	})
}

func (h *Handler) AcceptOrDeny(c *fiber.Ctx) error {
	var request DecisionRequest
	if responseError := h.XValidator.Validator(&request, constants.MessageErrorFormat, c); responseError.Code != "" {
		return h.invalid(c, responseError, request)
	}

	accept, _ := strconv.ParseBool(request.Status)
	memberID := middleware.MemberID(c)

	result, err := h.bulkPayout.AcceptOrDeny(c.UserContext(), service.AcceptOrDenyCommand{
		MemberID:      memberID,
		TransactionID: request.TransactionID,
		Accept:        accept,
	})
	if err != nil {
		h.logger.Error("Bulk payment decision failed",
			zap.String("transactionID", request.TransactionID),
			zap.Bool("accept", accept),
			zap.Error(err))
		return err
	}

	return h.success(c, result.Message, result)
}

func (h *Handler) BulkTransactionIDs(c *fiber.Ctx) error {
	page, err := h.bulkPayout.ListBatches(c.UserContext(), middleware.MemberID(c), pageQuery(c))
	if err != nil {
		return err
	}

	return h.success(c, service.MsgBatchesFetched, page)
}

func (h *Handler) BulkAmountDetails(c *fiber.Ctx) error {
	var request BatchLinesRequest
	if responseError := h.XValidator.Validator(&request, constants.MessageErrorFormat, c); responseError.Code != "" {
		return h.invalid(c, responseError, request)
	}

	lines, err := h.bulkPayout.ListBatchLines(c.UserContext(), request.TransactionID, middleware.MemberID(c))
	if err != nil {
		return err
	}

	return h.success(c, lines.Message, lines.Lines)
}
