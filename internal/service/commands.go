package service

import "github.com/shopspring/decimal"

type InitializePaymentCommand struct {
	TrackID  string
	Action   string
	Amount   decimal.Decimal
	Currency int
	Language string
	UDF      [5]string
}

type GetPaymentQuery struct {
	TrackID string
}
