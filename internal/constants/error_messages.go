package constants

const (
	ErrCodeInvalidSpreadsheet   = "INVALID_SPREADSHEET"
	ErrCodeEmptyFile            = "EMPTY_FILE"
	ErrCodeNoRows               = "NO_ROWS"
	ErrCodeBatchNotFound        = "BATCH_NOT_FOUND"
	ErrCodeBeneficiaryNotFound  = "BENEFICIARY_NOT_FOUND"
	ErrCodeRegistrationRejected = "REGISTRATION_REJECTED"
	ErrCodeWalletNotFound       = "WALLET_NOT_FOUND"
	ErrCodeGatewayError         = "GATEWAY_ERROR"
	ErrCodeGatewayTimeout       = "GATEWAY_TIMEOUT"
	ErrCodeDatabase             = "DATABASE_ERROR"
	ErrCodeQueue                = "QUEUE_ERROR"
	ErrCodeLineStatus           = "LINE_STATUS_ERROR"
	ErrCodeUnauthorized         = "UNAUTHORIZED"
	ErrCodeInternalError        = "INTERNAL_ERROR"
	ErrCodeInvalidRequestBody   = "INVALID_REQUEST_BODY"
	ErrCodeValidationFailed     = "VALIDATION_FAILED"
)

const (
	ErrMsgInvalidSpreadsheet   = "Invalid spreadsheet"
	ErrMsgEmptyFile            = "File is empty"
	ErrMsgNoRows               = "No beneficiaries found in the file"
	ErrMsgBatchNotFound        = "No bulk payment records found."
	ErrMsgBeneficiaryNotFound  = "Beneficiary not found with the provided ID"
	ErrMsgRegistrationRejected = "Beneficiary registration rejected by gateway"
	ErrMsgWalletNotFound       = "Wallet balance not found"
	ErrMsgGatewayError         = "Payment gateway request failed"
	ErrMsgGatewayTimeout       = "Payment gateway timed out"
	ErrMsgDatabase             = "Failed to process bulk payment."
	ErrMsgQueue                = "Failed to queue bulk payment."
	ErrMsgLineStatus           = "Bulk payment stopped: a line outcome could not be recorded."
	ErrMsgUnauthorized         = "Unauthorized"
	ErrMsgInternalError        = "Internal server error"
	ErrMsgInvalidRequestBody   = "failed to parse request body"
	ErrMsgValidationFailed     = "Request validation failed"
)

const MessageErrorFormat = "%s is invalid"

var errorMessages = map[string]string{
	ErrCodeInvalidSpreadsheet:   ErrMsgInvalidSpreadsheet,
	ErrCodeEmptyFile:            ErrMsgEmptyFile,
	ErrCodeNoRows:               ErrMsgNoRows,
	ErrCodeBatchNotFound:        ErrMsgBatchNotFound,
	ErrCodeBeneficiaryNotFound:  ErrMsgBeneficiaryNotFound,
	ErrCodeRegistrationRejected: ErrMsgRegistrationRejected,
	ErrCodeWalletNotFound:       ErrMsgWalletNotFound,
	ErrCodeGatewayError:         ErrMsgGatewayError,
	ErrCodeGatewayTimeout:       ErrMsgGatewayTimeout,
	ErrCodeDatabase:             ErrMsgDatabase,
	ErrCodeQueue:                ErrMsgQueue,
	ErrCodeLineStatus:           ErrMsgLineStatus,
	ErrCodeUnauthorized:         ErrMsgUnauthorized,
	ErrCodeInternalError:        ErrMsgInternalError,
	ErrCodeInvalidRequestBody:   ErrMsgInvalidRequestBody,
	ErrCodeValidationFailed:     ErrMsgValidationFailed,
}

func GetErrorMessage(code string) string {
	if msg, exists := errorMessages[code]; exists {
		return msg
	}
	return ErrMsgInternalError
}

func GetHTTPStatus(code string) int {
	switch code {
	case ErrCodeInvalidRequestBody, ErrCodeInvalidSpreadsheet, ErrCodeEmptyFile, ErrCodeNoRows,
		ErrCodeBeneficiaryNotFound, ErrCodeRegistrationRejected:
		return 400
	case ErrCodeUnauthorized:
		return 401
	case ErrCodeValidationFailed:
		return 422
	case ErrCodeBatchNotFound, ErrCodeWalletNotFound:
		return 404
	case ErrCodeGatewayError:
		return 502
	case ErrCodeGatewayTimeout:
		return 504
	default:
		return 500
	}
}
