package gateway

import (
	"errors"
	"net/http"
)

const (
	ErrCodeBadRequest   = "BAD_REQUEST"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeTimeout      = "TIMEOUT"
	ErrCodeServerError  = "SERVER_ERROR"
)

var (
	ErrBadRequest   = errors.New(ErrCodeBadRequest)
	ErrUnauthorized = errors.New(ErrCodeUnauthorized)
	ErrTimeout      = errors.New(ErrCodeTimeout)
	ErrServerError  = errors.New(ErrCodeServerError)
)

var statusErrorMap = map[int]error{
	http.StatusBadRequest:     ErrBadRequest,
	http.StatusUnauthorized:   ErrUnauthorized,
	http.StatusForbidden:      ErrUnauthorized,
	http.StatusRequestTimeout: ErrTimeout,
	http.StatusGatewayTimeout: ErrTimeout,
}

func MapStatusToError(statusCode int) error {
	if err, exists := statusErrorMap[statusCode]; exists {
		return err
	}

	return ErrServerError
}
