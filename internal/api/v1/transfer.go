package v1

import (
	"github.com/Behyna/payout-services/internal/constants"
	"github.com/Behyna/payout-services/internal/service"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func (h *Handler) SendMoney(c *fiber.Ctx) error {
	var request SendMoneyRequest
	if responseError := h.XValidator.Validator(&request, constants.MessageErrorFormat, c); responseError.Code != "" {
		return h.invalid(c, responseError, request)
	}

	resp, err := h.transfers.SendMoney(c.UserContext(), service.TransferCommand{
		OrderID:       request.OrderID,
		BeneficiaryID: request.BeneficiaryID,
		Name:          request.Name,
		MobileNo:      request.MobileNo,
		Amount:        request.Amount,
		TransferType:  request.TransferType,
		Comments:      request.Comments,
		Remarks:       request.Remarks,
	})
	if err != nil {
		return err
	}

	message := msgTransferAccepted
	if !resp.Accepted() {
		message = resp.Status
	}

	h.logger.Info("Single transfer processed",
		zap.String("beneficiaryID", request.BeneficiaryID),
		zap.Int64("amount", request.Amount),
		zap.Bool("accepted", resp.Accepted()))

	return h.success(c, message, resp)
}

func (h *Handler) CheckStatus(c *fiber.Ctx) error {
	var request CheckStatusRequest
	if responseError := h.XValidator.Validator(&request, constants.MessageErrorFormat, c); responseError.Code != "" {
		return h.invalid(c, responseError, request)
	}

	doc, err := h.transfers.CheckStatus(c.UserContext(), request.OrderID)
	if err != nil {
		return err
	}

	return h.success(c, msgStatusFetched, doc)
}

func (h *Handler) TransactionDetails(c *fiber.Ctx) error {
	var request TransactionDetailsRequest
	if responseError := h.XValidator.Validator(&request, constants.MessageErrorFormat, c); responseError.Code != "" {
		return h.invalid(c, responseError, request)
	}

	page, err := h.transfers.TransactionsByBeneficiary(c.UserContext(), request.BeneficiaryID, pageQuery(c))
	if err != nil {
		return err
	}

	return h.success(c, page.Message, page)
}

func (h *Handler) AllPayoutTransactions(c *fiber.Ctx) error {
	page, err := h.transfers.AllTransactions(c.UserContext(), pageQuery(c))
	if err != nil {
		return err
	}

	return h.success(c, page.Message, page)
}
