// Package otp implements one-time code generation and the challenge lifecycle on accounts.
package otp

import (
	"crypto/rand"
	"io"
	"math/big"

	"hdnotes/internal/domain/service"

	"github.com/pkg/errors"
)

var ten = big.NewInt(10)

type numericGenerator struct {
	random io.Reader
}

// NewGenerator returns a generator backed by crypto/rand.
func NewGenerator() service.OTPGenerator {
	return &numericGenerator{random: rand.Reader}
}

func (g *numericGenerator) Generate(length int) (string, error) {
	if length <= 0 {
		return "", errors.Errorf("invalid otp length %d", length)
	}

	digits := make([]byte, length)
	for i := range digits {
		n, err := rand.Int(g.random, ten)
		if err != nil {
			return "", errors.Wrap(err, "failed to read random digit")
		}
		digits[i] = byte('0' + n.Int64())
	}

	return string(digits), nil
}
