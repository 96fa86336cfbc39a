package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strconv"

	"desk/shared/calendar"
	"desk/shared/failure"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

var isoWeekPattern = regexp.MustCompile(`^(\d{4})-(\d{2})$`)

// rules are the domain tags available in struct validate tags.
var rules = map[string]val.Func{
	"batch": func(field val.FieldLevel) bool {
		return calendar.Batch(field.Field().String()).Valid()
	},
	// YYYY-WW naming a week that exists in that ISO year
	"isoweek": func(field val.FieldLevel) bool {
		_, _, err := ParseISOWeek(field.Field().String())

		return err == nil
	},
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	for tag, rule := range rules {
		if err := validate.RegisterValidation(tag, rule); err != nil {
			panic(err)
		}
	}
}

// ParseISOWeek splits "2026-13" into year and week.
func ParseISOWeek(value string) (year, week int, err error) {
	match := isoWeekPattern.FindStringSubmatch(value)
	if match == nil {
		return 0, 0, fmt.Errorf("invalid week %q, expected YYYY-WW", value)
	}

	year, _ = strconv.Atoi(match[1])
	week, _ = strconv.Atoi(match[2])

	if _, err = calendar.WeekDates(year, week); err != nil {
		return 0, 0, err
	}

	return year, week, nil
}

// Validate decodes a JSON body into data and validates it.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	if err := json.NewDecoder(r).Decode(data); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

// ValidateStruct checks the validate tags of data.
func ValidateStruct[T any](data *T) error {
	return badRequest(validate.Struct(data))
}

// ValidateVar checks a single value against tag.
func ValidateVar(field any, tag string) error {
	return badRequest(validate.Var(field, tag))
}

func badRequest(err error) error {
	if err == nil {
		return nil
	}

	return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
}
