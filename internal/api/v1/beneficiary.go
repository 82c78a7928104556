package v1

import (
	"github.com/Behyna/payout-services/internal/constants"
	"github.com/Behyna/payout-services/internal/service"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func (h *Handler) BeneficiaryTypes(c *fiber.Ctx) error {
	doc, err := h.beneficiaries.Types(c.UserContext())
	if err != nil {
		return err
	}

	return h.success(c, msgTypesFetched, doc)
}

func (h *Handler) PayReasons(c *fiber.Ctx) error {
	doc, err := h.beneficiaries.PayReasons(c.UserContext())
	if err != nil {
		return err
	}

	return h.success(c, msgPayReasonsFetched, doc)
}

func (h *Handler) AddBeneficiary(c *fiber.Ctx) error {
	var request AddBeneficiaryRequest
	if responseError := h.XValidator.Validator(&request, constants.MessageErrorFormat, c); responseError.Code != "" {
		return h.invalid(c, responseError, request)
	}

	resp, err := h.beneficiaries.Add(c.UserContext(), service.RegisterBeneficiaryCommand{
		AccountNumber: request.AccountNumber,
		IFSC:          request.IFSC,
		Name:          request.Name,
		Email:         request.Email,
		Mobile:        request.Mobile,
		PAN:           request.PAN,
		Aadhaar:       request.Aadhaar,
		BankName:      request.BankName,
		BeneType:      request.BeneType,
		Address:       request.Address,
		Latitude:      request.Latitude,
		Longitude:     request.Longitude,
	})
	if err != nil {
		return err
	}

	message := msgBeneficiaryAdded
	if resp.Data == nil || resp.Data.BeneficiaryID == "" {
		message = resp.Status
	}

	return h.success(c, message, resp)
}

func (h *Handler) UpdateBeneficiary(c *fiber.Ctx) error {
	var request UpdateBeneficiaryRequest
	if responseError := h.XValidator.Validator(&request, constants.MessageErrorFormat, c); responseError.Code != "" {
		return h.invalid(c, responseError, request)
	}

	result, err := h.beneficiaries.UpdateRouting(c.UserContext(), service.UpdateRoutingCommand{
		BeneficiaryID: request.BeneficiaryID,
		IFSC:          request.IFSC,
	})
	if err != nil {
		return err
	}

	message := msgBeneficiaryUpdated
	if !result.Updated {
		message = result.Response.Status
	}

	return h.success(c, message, result.Response)
}

func (h *Handler) BeneficiaryDetails(c *fiber.Ctx) error {
	var request BeneficiaryDetailsRequest
	if responseError := h.XValidator.Validator(&request, constants.MessageErrorFormat, c); responseError.Code != "" {
		return h.invalid(c, responseError, request)
	}

	doc, err := h.beneficiaries.Details(c.UserContext(), request.Phone)
	if err != nil {
		return err
	}

	return h.success(c, msgDetailsFetched, doc)
}

func (h *Handler) BeneficiaryList(c *fiber.Ctx) error {
	page, err := h.beneficiaries.List(c.UserContext(), pageQuery(c))
	if err != nil {
		h.logger.Error("Failed to list beneficiaries", zap.Error(err))
		return err
	}

	return h.success(c, page.Message, page)
}
