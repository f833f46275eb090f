// Package validator adapts go-playground/validator to echo and registers the request tags.
package validator

import (
	"reflect"
	"regexp"
	"strings"
	"time"

	"hdnotes/internal/errors"

	"github.com/go-playground/validator/v10"
)

const (
	// TagOTPCode accepts a numeric code of 4 to 6 digits.
	TagOTPCode = "otpcode"
	// TagISODate accepts an ISO-8601 calendar date or an RFC 3339 timestamp.
	TagISODate = "isodate"
)

var otpCodePattern = regexp.MustCompile(`^[0-9]{4,6}$`)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New returns a validator with the otpcode and isodate tags registered.
func New() *CustomValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	// Report JSON field names instead of Go field names.
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	_ = validate.RegisterValidation(TagOTPCode, func(fl validator.FieldLevel) bool {
		return otpCodePattern.MatchString(fl.Field().String())
	})
	_ = validate.RegisterValidation(TagISODate, func(fl validator.FieldLevel) bool {
		_, err := ParseDate(fl.Field().String())

		return err == nil
	})

	return &CustomValidator{validate: validate}
}

// Validate runs the struct tags of i.
func (cv *CustomValidator) Validate(i any) error {
	return cv.validate.Struct(i)
}

// ParseDate parses an ISO-8601 date (2006-01-02) or an RFC 3339 timestamp and
// truncates it to midnight UTC.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)

	parsed, err := time.Parse(time.DateOnly, value)
	if err != nil {
		parsed, err = time.Parse(time.RFC3339, value)
		if err != nil {
			return time.Time{}, err
		}
	}

	parsed = parsed.UTC()

	return time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC), nil
}

// FieldErrors flattens validation errors into a field to message map.
// It returns nil for any other error.
func FieldErrors(err error) map[string]string {
	validationErrs, ok := errors.AsType[validator.ValidationErrors](err)
	if !ok {
		return nil
	}

	fields := make(map[string]string, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fields[fieldErr.Field()] = message(fieldErr)
	}

	return fields
}

func message(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fieldErr.Param() + " characters"
	case "max":
		return "must be at most " + fieldErr.Param() + " characters"
	case TagOTPCode:
		return "must be a 4 to 6 digit code"
	case TagISODate:
		return "must be a valid ISO-8601 date"
	case "gte":
		return "must be at least " + fieldErr.Param()
	case "lte":
		return "must be at most " + fieldErr.Param()
	default:
		return "is invalid"
	}
}
