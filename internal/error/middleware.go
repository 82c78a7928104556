package middleware

import (
	"errors"

	"github.com/Behyna/payout-services/internal/api/contract"
	"github.com/Behyna/payout-services/internal/constants"
	"github.com/Behyna/payout-services/internal/service"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func ErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var serviceErr service.Error
		if errors.As(err, &serviceErr) {
			return handleServiceError(c, serviceErr)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(contract.Response{
				Code:    constants.ErrCodeInvalidRequestBody,
				Message: fiberErr.Message,
				TrackID: trackID(c),
			})
		}

		logger.Error("Unhandled request error",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err))

		return c.Status(fiber.StatusInternalServerError).JSON(contract.Response{
			Code:    constants.ErrCodeInternalError,
			Message: constants.GetErrorMessage(constants.ErrCodeInternalError),
			TrackID: trackID(c),
		})
	}
}

func handleServiceError(c *fiber.Ctx, err service.Error) error {
	errorCode := err.Code

	status := constants.GetHTTPStatus(errorCode)
	if status == fiber.StatusInternalServerError && errorCode != constants.ErrCodeDatabase &&
		errorCode != constants.ErrCodeQueue && errorCode != constants.ErrCodeLineStatus {
		errorCode = constants.ErrCodeInternalError
	}

	return c.Status(status).JSON(contract.Response{
		Code:    errorCode,
		Message: constants.GetErrorMessage(errorCode),
		TrackID: trackID(c),
	})
}

func trackID(c *fiber.Ctx) string {
	return c.GetRespHeader(fiber.HeaderXRequestID)
}
