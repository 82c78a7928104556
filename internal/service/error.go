package service

import (
	"errors"

	"github.com/Behyna/payout-services/internal/constants"
	"github.com/Behyna/payout-services/pkg/gateway"
)

var (
	ErrRegistrationRejected = errors.New("REGISTRATION_REJECTED")
	ErrBatchNotFound        = errors.New("BATCH_NOT_FOUND")
	ErrEmptyFile            = errors.New("EMPTY_FILE")
	ErrNoRows               = errors.New("NO_ROWS")
)

type Error struct {
	Code  string
	Cause error
}

func NewServiceError(code string, cause error) error {
	return Error{Code: code, Cause: cause}
}

func (e Error) Error() string {
	return e.Cause.Error()
}

func (e Error) Unwrap() error {
	return e.Cause
}

func gatewayError(err error) error {
	if errors.Is(err, gateway.ErrTimeout) {
		return NewServiceError(constants.ErrCodeGatewayTimeout, err)
	}
	return NewServiceError(constants.ErrCodeGatewayError, err)
}

func databaseError(err error) error {
	return NewServiceError(constants.ErrCodeDatabase, err)
}
