package password

import (
	"errors"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultCost is the default bcrypt cost
	DefaultCost = 12
	// MinCost is the lowest work factor accepted
	MinCost = 10

	minLength = 8
	maxLength = 72 // bcrypt ignores input past 72 bytes
)

var (
	ErrTooShort = errors.New("password must be at least 8 characters")
	ErrTooLong  = errors.New("password must be at most 72 bytes")
)

// Hasher hashes and verifies passwords with bcrypt
type Hasher struct {
	cost int

	decoyOnce sync.Once
	decoy     []byte
}

// NewHasher creates a hasher; costs below MinCost are raised to MinCost
func NewHasher(cost int) *Hasher {
	if cost < MinCost {
		cost = MinCost
	}
	if cost > bcrypt.MaxCost {
		cost = bcrypt.MaxCost
	}
	return &Hasher{cost: cost}
}

// Hash hashes a password using bcrypt
func (h *Hasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// Verify compares a password with a hash.
// A malformed hash is reported as a mismatch.
func (h *Hasher) Verify(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// Mismatch spends the same bcrypt work as Verify against a hash of this
// hasher's cost and always returns false. Login calls it for unknown accounts
// so both failure paths take equal time.
func (h *Hasher) Mismatch(password string) bool {
	h.decoyOnce.Do(func() {
		h.decoy, _ = bcrypt.GenerateFromPassword([]byte("no-account-decoy"), h.cost)
	})
	_ = bcrypt.CompareHashAndPassword(h.decoy, []byte(password))
	return false
}

// ValidateStrength checks if password meets requirements
func ValidateStrength(password string) error {
	if len(password) < minLength {
		return ErrTooShort
	}
	if len(password) > maxLength {
		return ErrTooLong
	}
	return nil
}
