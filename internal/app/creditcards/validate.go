package creditcards

import (
	"errors"
	"reflect"
	"strings"

	"personal-trainer-app/internal/apperr"

	v10 "github.com/go-playground/validator/v10"
)

var cardRules = newValidator()

func newValidator() *v10.Validate {
	v := v10.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Explain turns struct validation failures, from the rules on CardInput or
// from gin binding, into the apperr vocabulary. A missing field is reported
// as missing-field, any other rule as invalid-credit-card.
func Explain(err error) error {
	if err == nil {
		return nil
	}
	var errs v10.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return apperr.Validation(apperr.ReasonMissingField, "Invalid request")
	}
	first := errs[0]
	field := strings.ToLower(first.Field())
	if first.Tag() == "required" {
		return apperr.Validation(apperr.ReasonMissingField, field+" is required")
	}
	return apperr.Validation(apperr.ReasonInvalidCreditCard, field+" is not valid")
}
