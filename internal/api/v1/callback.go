package v1

import (
	"github.com/Behyna/payout-services/internal/constants"
	"github.com/Behyna/payout-services/internal/service"
	"github.com/gofiber/fiber/v2"
)

// PayoutCallback receives transfer status notifications from the gateway. It is not behind MemberAuth.
func (h *Handler) PayoutCallback(c *fiber.Ctx) error {
	var request PayoutCallbackRequest
	if responseError := h.XValidator.Validator(&request, constants.MessageErrorFormat, c); responseError.Code != "" {
		return h.invalid(c, responseError, request)
	}

	err := h.callbacks.HandlePayout(c.UserContext(), service.PayoutCallbackCommand{
		StatusCode: request.StatusCode,
		Status:     request.Status,
		Data:       request.Data,
	})
	if err != nil {
		return err
	}

	return h.success(c, msgCallbackReceived, nil)
}
