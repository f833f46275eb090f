package otp

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Generate(t *testing.T) {
	generator := NewGenerator()

	for _, length := range []int{4, 6, 8} {
		code, err := generator.Generate(length)
		require.NoError(t, err)
		assert.Len(t, code, length)
		assert.Regexp(t, `^[0-9]+$`, code)
	}
}

func TestGenerator_KeepsLeadingZeros(t *testing.T) {
	generator := &numericGenerator{random: bytes.NewReader(make([]byte, 64))}

	code, err := generator.Generate(6)
	require.NoError(t, err)
	assert.Equal(t, "000000", code)
}

func TestGenerator_InvalidLength(t *testing.T) {
	_, err := NewGenerator().Generate(0)
	assert.Error(t, err)
}

func TestGenerator_ShortRandomSource(t *testing.T) {
	generator := &numericGenerator{random: bytes.NewReader(nil)}

	_, err := generator.Generate(6)
	assert.Error(t, err)
}

func TestGenerator_DigitsAreSpread(t *testing.T) {
	generator := NewGenerator()
	seen := make(map[rune]bool)

	for range 200 {
		code, err := generator.Generate(6)
		require.NoError(t, err)
		for _, r := range code {
			seen[r] = true
		}
	}

	assert.Len(t, seen, 10)
}
