package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var messages = map[string]string{
	"required": "{field} is required",
	"oneof":    "{field} must be one of {param}",
	"gte":      "{field} must be at least {param}",
	"lte":      "{field} must be at most {param}",
	"min":      "{field} must be at least {param}",
	"max":      "{field} must be at most {param}",
	"email":    "{field} must be a valid email address",
	"uuid":     "{field} must be a valid UUID",
	"datetime": "{field} must match the format {param}",
	"batch":    "{field} must be A or B",
	"isoweek":  "{field} must be an ISO week formatted as YYYY-WW",
}

func describe(fieldErr val.FieldError) string {
	template, ok := messages[fieldErr.Tag()]
	if !ok {
		return fieldErr.Error()
	}

	return strings.NewReplacer("{field}", fieldErr.Field(), "{param}", fieldErr.Param()).Replace(template)
}

// message renders one sentence per failing field, joined by "; ".
func message(err error) string {
	var fieldErrs val.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		parts = append(parts, describe(fieldErr))
	}

	return strings.Join(parts, "; ")
}
