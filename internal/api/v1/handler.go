package v1

import (
	"github.com/Behyna/payout-services/internal/api/contract"
	"github.com/Behyna/payout-services/internal/api/validator"
	"github.com/Behyna/payout-services/internal/metrics"
	"github.com/Behyna/payout-services/internal/service"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	defaultPageSize = 10
)

type Handler struct {
	logger        *zap.Logger
	bulkPayout    service.BulkPayoutService
	beneficiaries service.BeneficiaryService
	transfers     service.TransferService
	wallet        service.WalletBalanceService
	callbacks     service.CallbackService
	XValidator    validator.IXValidator
	metrics       *metrics.Metrics
}

func NewHandler(logger *zap.Logger, bulkPayout service.BulkPayoutService, beneficiaries service.BeneficiaryService,
	transfers service.TransferService, wallet service.WalletBalanceService, callbacks service.CallbackService,
	XValidator validator.IXValidator, metrics *metrics.Metrics) *Handler {
	return &Handler{
		logger:        logger,
		bulkPayout:    bulkPayout,
		beneficiaries: beneficiaries,
		transfers:     transfers,
		wallet:        wallet,
		callbacks:     callbacks,
		XValidator:    XValidator,
		metrics:       metrics,
	}
}

func (h *Handler) Pong(c *fiber.Ctx) error {
	return c.SendString("pong")
}

func (h *Handler) success(c *fiber.Ctx, message string, result any) error {
	return c.JSON(contract.Response{
		Successful: true,
		Code:       codeSuccess,
		Message:    message,
		TrackID:    c.GetRespHeader(fiber.HeaderXRequestID),
		Result:     result,
	})
}

func (h *Handler) invalid(c *fiber.Ctx, response contract.Response, request any) error {
	h.logger.Warn("Error Validator", zap.String("path", c.Path()), zap.Any("request", request))
	response.TrackID = c.GetRespHeader(fiber.HeaderXRequestID)
	return c.JSON(response)
}

// pageQuery reads pageNo (or its older alias pageNumber) and pageSize.
func pageQuery(c *fiber.Ctx) service.PageQuery {
	page := c.QueryInt("pageNo", c.QueryInt("pageNumber", 0))
	return service.ClampPage(page, c.QueryInt("pageSize", defaultPageSize))
}
