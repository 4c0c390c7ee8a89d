package auth

import (
	"strings"
	"testing"

	"accounts/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// Tests run at the minimum cost; the cost itself is covered separately.
func newTestHasher() *bcryptHasher {
	return NewBcryptHasherWithCost(bcrypt.MinCost).(*bcryptHasher)
}

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := newTestHasher()

	password := "secret123"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Verify the hash can be checked
	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_HashIsSalted(t *testing.T) {
	hasher := newTestHasher()

	first, err := hasher.Hash("secret123")
	require.NoError(t, err)
	second, err := hasher.Hash("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("secret123", first))
	assert.True(t, hasher.Check("secret123", second))
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := newTestHasher()
	password := "secret123"

	hash, err := hasher.Hash(password)
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		hash     string
		want     bool
	}{
		{name: "correct password", password: password, hash: hash, want: true},
		{name: "wrong password", password: "wrong", hash: hash, want: false},
		{name: "empty password", password: "", hash: hash, want: false},
		{name: "malformed hash", password: password, hash: "invalid_hash", want: false},
		{name: "plaintext stored as hash", password: password, hash: password, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hasher.Check(tt.password, tt.hash))
		})
	}
}

func TestBcryptHasher_DistinctPasswordsDoNotVerify(t *testing.T) {
	hasher := newTestHasher()

	passwords := []string{"alpha", "beta", "Alpha", "alpha ", "pässwörd"}
	hashes := make([]string, len(passwords))
	for i, p := range passwords {
		h, err := hasher.Hash(p)
		require.NoError(t, err)
		hashes[i] = h
	}

	for i, p := range passwords {
		for j, h := range hashes {
			assert.Equal(t, i == j, hasher.Check(p, h), "password %q against hash of %q", p, passwords[j])
		}
	}
}

func TestBcryptHasher_WithCustomCost(t *testing.T) {
	customCost := 6 // Lower cost for faster testing
	hasher := NewBcryptHasherWithCost(customCost)

	hash, err := hasher.Hash("secret123")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, customCost, cost)
}

func TestBcryptHasher_InvalidCostFallsBackToDefault(t *testing.T) {
	for _, cost := range []int{0, 3, 32, -1} {
		hasher := NewBcryptHasherWithCost(cost).(*bcryptHasher)
		assert.Equal(t, DefaultCost, hasher.cost, "cost %d", cost)
	}
}

func TestNewBcryptHasher_ReadsConfig(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: 5}}).(*bcryptHasher)
	assert.Equal(t, 5, hasher.cost)

	hasher = NewBcryptHasher(&config.Config{}).(*bcryptHasher)
	assert.Equal(t, DefaultCost, hasher.cost)

	hasher = NewBcryptHasher(nil).(*bcryptHasher)
	assert.Equal(t, DefaultCost, hasher.cost)
}

func TestBcryptHasher_PasswordTooLong(t *testing.T) {
	hasher := newTestHasher()

	_, err := hasher.Hash(strings.Repeat("a", 73))
	assert.Error(t, err)
}
