package constants

const MessageErrorFormat = "The '%s' format is invalid"

const (
	ErrCodeInvalidRequestBody = "INVALID_REQUEST_BODY"
	ErrCodeValidationFailed   = "VALIDATION_FAILED"
	ErrCodePaymentNotFound    = "PAYMENT_NOT_FOUND"
	ErrCodeDuplicateTrackID   = "DUPLICATE_TRACK_ID"
	ErrCodeGatewayRejected    = "GATEWAY_REJECTED"
	ErrCodeGatewayUnavailable = "GATEWAY_UNAVAILABLE"
	ErrCodeGatewayTimeout     = "GATEWAY_TIMEOUT"
	ErrCodeInternalError      = "INTERNAL_ERROR"
)

const (
	ErrMsgInvalidRequestBody = "failed to parse request body"
	ErrMsgValidationFailed   = "payment request is invalid"
	ErrMsgPaymentNotFound    = "payment not found"
	ErrMsgDuplicateTrackID   = "track id already used"
	ErrMsgGatewayRejected    = "payment gateway rejected the request"
	ErrMsgGatewayUnavailable = "payment gateway unavailable"
	ErrMsgGatewayTimeout     = "payment gateway timed out"
	ErrMsgInternalError      = "Internal server error"
	MsgPaymentInitialized    = "payment initialized successfully"
	MsgPaymentRetrieved      = "payment retrieved successfully"
)

var errorMessages = map[string]string{
	ErrCodeInvalidRequestBody: ErrMsgInvalidRequestBody,
	ErrCodeValidationFailed:   ErrMsgValidationFailed,
	ErrCodePaymentNotFound:    ErrMsgPaymentNotFound,
	ErrCodeDuplicateTrackID:   ErrMsgDuplicateTrackID,
	ErrCodeGatewayRejected:    ErrMsgGatewayRejected,
	ErrCodeGatewayUnavailable: ErrMsgGatewayUnavailable,
	ErrCodeGatewayTimeout:     ErrMsgGatewayTimeout,
	ErrCodeInternalError:      ErrMsgInternalError,
}

func GetErrorMessage(code string) string {
	if msg, exists := errorMessages[code]; exists {
		return msg
	}
	return ErrMsgInternalError
}

func GetHTTPStatus(code string) int {
	switch code {
	case ErrCodeInvalidRequestBody:
		return 400
	case ErrCodePaymentNotFound:
		return 404
	case ErrCodeDuplicateTrackID:
		return 409
	case ErrCodeValidationFailed:
		return 422
	case ErrCodeGatewayRejected:
		return 502
	case ErrCodeGatewayUnavailable:
		return 503
	case ErrCodeGatewayTimeout:
		return 504
	default:
		return 500
	}
}
