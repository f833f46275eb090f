package auth

import (
	"testing"

	"hdnotes/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	code := "042917"
	hash, err := hasher.Hash(code)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, code, hash)

	// Verify the hash can be checked
	assert.True(t, hasher.Check(code, hash))
}

func TestBcryptHasher_HashIsSalted(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	first, err := hasher.Hash("123456")
	require.NoError(t, err)
	second, err := hasher.Hash("123456")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)
	code := "123456"

	hash, err := hasher.Hash(code)
	require.NoError(t, err)

	assert.True(t, hasher.Check(code, hash))
	assert.False(t, hasher.Check("654321", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check(code, "invalid_hash"))
}

func TestBcryptHasher_CostFromConfig(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost + 1}}
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("000000")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost+1, cost)
}

func TestBcryptHasher_CostIsClamped(t *testing.T) {
	tests := []struct {
		name     string
		cost     int
		expected int
	}{
		{name: "zero uses default", cost: 0, expected: bcrypt.DefaultCost},
		{name: "below minimum", cost: 1, expected: bcrypt.MinCost},
		{name: "above maximum", cost: 99, expected: bcrypt.MaxCost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hasher, ok := NewBcryptHasherWithCost(tt.cost).(*bcryptHasher)
			require.True(t, ok)
			assert.Equal(t, tt.expected, hasher.cost)
		})
	}
}
