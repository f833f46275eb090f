package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signinRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required,otpcode"`
	Born  string `json:"dateOfBirth,omitempty" validate:"omitempty,isodate"`
}

func TestValidator_OTPCode(t *testing.T) {
	v := New()

	for _, code := range []string{"1234", "12345", "012345"} {
		assert.NoError(t, v.Validate(&signinRequest{Email: "a@b.co", OTP: code}), code)
	}

	for _, code := range []string{"123", "1234567", "12a456", " 123456"} {
		err := v.Validate(&signinRequest{Email: "a@b.co", OTP: code})
		require.Error(t, err, code)
		assert.Equal(t, "must be a 4 to 6 digit code", FieldErrors(err)["otp"])
	}
}

func TestValidator_ISODate(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&signinRequest{Email: "a@b.co", OTP: "1234", Born: "1990-05-17"}))
	assert.NoError(t, v.Validate(&signinRequest{Email: "a@b.co", OTP: "1234", Born: "1990-05-17T10:00:00Z"}))

	err := v.Validate(&signinRequest{Email: "a@b.co", OTP: "1234", Born: "17/05/1990"})
	require.Error(t, err)
	assert.Contains(t, FieldErrors(err), "dateOfBirth")
}

func TestValidator_FieldErrorsUseJSONNames(t *testing.T) {
	err := New().Validate(&signinRequest{})

	fields := FieldErrors(err)
	assert.Equal(t, "is required", fields["email"])
	assert.Equal(t, "is required", fields["otp"])
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("1990-05-17T23:30:00-02:00")

	require.NoError(t, err)
	assert.Equal(t, time.Date(1990, 5, 18, 0, 0, 0, 0, time.UTC), got)
	assert.Nil(t, FieldErrors(assert.AnError))
}
