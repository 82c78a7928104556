package validator

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/Behyna/payout-services/internal/api/contract"
	"github.com/Behyna/payout-services/internal/constants"
	"github.com/Behyna/payout-services/internal/metrics"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

const (
	sep = " and "
)

type Error struct {
	Error       bool
	FailedField string
	Tag         string
	Value       interface{}
}

type IXValidator interface {
	// Validator fills data from the JSON body (when present) and the query string, then validates it.
	Validator(data any, message string, c *fiber.Ctx) (responseErr contract.Response)
	// ValidateStruct validates data that the caller has already decoded.
	ValidateStruct(data any, message string, c *fiber.Ctx) (responseErr contract.Response)
	Validate(data interface{}) []Error
}

type XValidator struct {
	validator *validator.Validate
	metrics   *metrics.Metrics
}

func NewXValidator(validator *validator.Validate, metrics *metrics.Metrics) IXValidator {
	for key, function := range valid {
		_ = validator.RegisterValidation(key, function)
	}

	validator.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"json", "query", "form"} {
			name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return field.Name
	})

	return &XValidator{
		validator: validator,
		metrics:   metrics,
	}
}

func (x XValidator) Validator(data any, message string, c *fiber.Ctx) (responseErr contract.Response) {
	if len(c.Body()) > 0 && strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON) {
		if err := c.BodyParser(data); err != nil {
			c.Status(http.StatusBadRequest)
			return contract.Response{
				Code:    constants.ErrCodeInvalidRequestBody,
				Message: constants.GetErrorMessage(constants.ErrCodeInvalidRequestBody),
			}
		}
	}

	if err := c.QueryParser(data); err != nil {
		c.Status(http.StatusBadRequest)
		return contract.Response{
			Code:    constants.ErrCodeInvalidRequestBody,
			Message: err.Error(),
		}
	}

	return x.ValidateStruct(data, message, c)
}

func (x XValidator) ValidateStruct(data any, message string, c *fiber.Ctx) (responseErr contract.Response) {
	start := time.Now()

	if errs := x.Validate(data); len(errs) > 0 && errs[0].Error {
		errMsgs := make([]string, 0, len(errs))
		for _, err := range errs {
			errMsgs = append(errMsgs, fmt.Sprintf(message, err.FailedField))

			if x.metrics != nil {
				x.metrics.RecordValidationError(err.FailedField, err.Tag)
			}
		}
		c.Status(http.StatusUnprocessableEntity)

		if x.metrics != nil {
			x.metrics.RecordValidationDuration("validation_error", time.Since(start))
		}

		return contract.Response{
			Code:    constants.ErrCodeValidationFailed,
			Message: strings.Join(errMsgs, sep),
		}
	}

	if x.metrics != nil {
		x.metrics.RecordValidationDuration("validation_success", time.Since(start))
	}

	return responseErr
}

func (x XValidator) Validate(data interface{}) []Error {
	var validationErrors []Error

	errs := x.validator.Struct(data)
	if errs != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(errs, &fieldErrs) {
			return []Error{{Error: true, FailedField: "request", Tag: "invalid"}}
		}

		for _, err := range fieldErrs {
			var elem Error
			elem.FailedField = err.Field()
			elem.Tag = err.Tag()
			elem.Value = err.Value()
			elem.Error = true
			validationErrors = append(validationErrors, elem)
		}
	}
	return validationErrors
}
