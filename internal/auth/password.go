// Package auth wraps bcrypt for password storage. Digests embed their own
// salt and cost, so two hashes of the same password never compare equal —
// always go through Verify.
package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const defaultCost = bcrypt.DefaultCost

// bcrypt operates on at most 72 bytes and silently truncates beyond that;
// longer inputs are rejected up front instead.
const maxPasswordLength = 72

// Hasher produces and verifies salted password digests. The cost is
// injectable so tests can run at bcrypt.MinCost.
type Hasher struct {
	cost int
}

// NewHasher returns a Hasher with the production bcrypt cost.
func NewHasher() *Hasher {
	return &Hasher{cost: defaultCost}
}

// NewHasherWithCost returns a Hasher with an explicit bcrypt cost.
func NewHasherWithCost(cost int) *Hasher {
	return &Hasher{cost: cost}
}

// Hash derives a salted digest from the plaintext. A fresh salt is drawn
// per call.
func (h *Hasher) Hash(plaintext string) (string, error) {
	if len(plaintext) > maxPasswordLength {
		return "", fmt.Errorf("auth: password must be %d bytes or fewer", maxPasswordLength)
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("auth: hashing password: %w", err)
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches the stored digest. A malformed
// digest verifies as false rather than erroring out; callers treat both the
// same way.
func (h *Hasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
