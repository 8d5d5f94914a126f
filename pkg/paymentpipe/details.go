package paymentpipe

import "strings"

const (
	errorMarker       = "!ERROR!"
	responseSeparator = ":"
)

// PaymentDetails is the outcome of a successful payment initialization.
type PaymentDetails struct {
	PaymentID   string `json:"payment_id"`
	PaymentPage string `json:"payment_page"`
}

// ParseResponse interprets the gateway answer "paymentId:scheme:host[...]".
// attemptedURL and attemptedParams are attached to the returned error for diagnostics.
func ParseResponse(response, attemptedURL, attemptedParams string) (PaymentDetails, error) {
	badResponse := &BadResponseError{
		Response:        response,
		AttemptedURL:    attemptedURL,
		AttemptedParams: attemptedParams,
	}

	if response == "" || strings.HasPrefix(response, errorMarker) || !strings.Contains(response, responseSeparator) {
		return PaymentDetails{}, badResponse
	}

	parts := strings.Split(response, responseSeparator)
	if len(parts) < 3 {
		return PaymentDetails{}, badResponse
	}

	return PaymentDetails{
		PaymentID:   parts[0],
		PaymentPage: parts[1] + responseSeparator + parts[2] + "?PaymentID=" + parts[0],
	}, nil
}
