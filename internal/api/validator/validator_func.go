package validator

import (
	"regexp"

	"github.com/Behyna/e24-payment-pipe/pkg/paymentpipe"
	"github.com/go-playground/validator/v10"
)

const (
	amountRegex = `^\d+(\.\d{1,2})?$`
)

const (
	AmountTag   = "amount"
	ActionTag   = "action"
	LanguageTag = "language"
)

var amountPattern = regexp.MustCompile(amountRegex)

var valid = map[string]func(fl validator.FieldLevel) bool{
	AmountTag:   ValidateAmount,
	ActionTag:   ValidateAction,
	LanguageTag: ValidateLanguage,
}

// ValidateAmount accepts non-negative amounts with at most two fraction digits and a '.' separator.
func ValidateAmount(fl validator.FieldLevel) bool {
	return amountPattern.MatchString(fl.Field().String())
}

func ValidateAction(fl validator.FieldLevel) bool {
	_, err := paymentpipe.ParseRequiredAction(fl.Field().String())
	return err == nil
}

func ValidateLanguage(fl validator.FieldLevel) bool {
	_, err := paymentpipe.ParseLanguage(fl.Field().String())
	return err == nil
}
