package service

import "time"

type InitializePaymentResponse struct {
	TrackID     string `json:"track_id"`
	PaymentID   string `json:"payment_id"`
	PaymentPage string `json:"payment_page"`
}

type Payment struct {
	TrackID     string    `json:"track_id"`
	Action      int       `json:"action"`
	Amount      string    `json:"amount"`
	Currency    int       `json:"currency"`
	Language    string    `json:"language"`
	PaymentID   string    `json:"payment_id,omitempty"`
	PaymentPage string    `json:"payment_page,omitempty"`
	State       string    `json:"state"`
	LastError   string    `json:"last_error,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
