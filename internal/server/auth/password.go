package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrEmptyPassword is returned when an empty plaintext reaches the hasher.
var ErrEmptyPassword = errors.New("password must not be empty")

// Hasher wraps bcrypt with a fixed work factor. bcrypt embeds a random salt
// in every digest, so hashing the same password twice yields different
// digests.
type Hasher struct {
	cost int
}

// NewHasher returns a Hasher with the given cost. Costs outside the bcrypt
// range fall back to the library default.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash turns a plaintext password into a storable salted digest.
func (h *Hasher) Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}

	return string(bytes), nil
}

// Verify reports whether the plaintext matches the stored digest. Any
// failure, including a malformed digest, is treated as a mismatch rather
// than propagated.
func (h *Hasher) Verify(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
