package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHasher_HashAndVerify(t *testing.T) {
	hasher := NewHasher(MinCost)

	tests := []struct {
		name     string
		password string
	}{
		{name: "simple password", password: "password123"},
		{name: "complex password", password: "P@ssw0rd!#$%^&*()"},
		{name: "unicode password", password: "kapitan-barko-ñ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := hasher.Hash(tt.password)
			require.NoError(t, err)
			assert.NotEqual(t, tt.password, hash)

			assert.True(t, hasher.Verify(tt.password, hash))
			assert.False(t, hasher.Verify(tt.password+"x", hash))
			assert.False(t, hasher.Verify("", hash))
		})
	}
}

func TestHasher_UniqueHashes(t *testing.T) {
	hasher := NewHasher(MinCost)

	hash1, err := hasher.Hash("samepassword")
	require.NoError(t, err)
	hash2, err := hasher.Hash("samepassword")
	require.NoError(t, err)

	assert.NotEqual(t, hash1, hash2, "salted hashes must differ")
	assert.True(t, hasher.Verify("samepassword", hash1))
	assert.True(t, hasher.Verify("samepassword", hash2))
}

func TestHasher_MalformedHash(t *testing.T) {
	hasher := NewHasher(MinCost)

	for _, hash := range []string{"", "not-a-hash", "$2a$10$short", "plaintext-password"} {
		assert.NotPanics(t, func() {
			assert.False(t, hasher.Verify("plaintext-password", hash))
		})
	}
}

func TestNewHasher_CostFloor(t *testing.T) {
	hasher := NewHasher(4)

	hash, err := hasher.Hash("password123")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, MinCost, cost)
}

func TestValidateStrength(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     error
	}{
		{name: "8 characters exactly", password: "12345678", want: nil},
		{name: "7 characters", password: "1234567", want: ErrTooShort},
		{name: "empty", password: "", want: ErrTooShort},
		{name: "72 bytes", password: strings.Repeat("a", 72), want: nil},
		{name: "73 bytes", password: strings.Repeat("a", 73), want: ErrTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateStrength(tt.password))
		})
	}
}

func TestHasher_Mismatch(t *testing.T) {
	hasher := NewHasher(MinCost)

	assert.False(t, hasher.Mismatch("password123"))
	assert.False(t, hasher.Mismatch("no-account-decoy"))

	cost, err := bcrypt.Cost(hasher.decoy)
	require.NoError(t, err)
	assert.Equal(t, MinCost, cost)
}
