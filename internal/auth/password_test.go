package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasher() *Hasher {
	// MinCost keeps each hash in the microsecond range.
	return NewHasherWithCost(bcrypt.MinCost)
}

func TestHashProducesFreshSaltPerCall(t *testing.T) {
	h := newTestHasher()

	first, err := h.Hash("same-password")
	require.NoError(t, err)
	second, err := h.Hash("same-password")
	require.NoError(t, err)

	// Equal digests would mean the salt is not random; digests must only
	// ever be compared through Verify.
	assert.NotEqual(t, first, second)
}

func TestVerifyRoundTrip(t *testing.T) {
	h := newTestHasher()

	digest, err := h.Hash("correct-horse-battery-staple")
	require.NoError(t, err)

	assert.True(t, h.Verify("correct-horse-battery-staple", digest))
	assert.False(t, h.Verify("wrong-password", digest))
	assert.False(t, h.Verify("", digest))
}

func TestVerifyMalformedDigest(t *testing.T) {
	h := newTestHasher()

	// A garbage digest must verify false, never panic or error out.
	assert.False(t, h.Verify("password", "not-a-bcrypt-digest"))
	assert.False(t, h.Verify("password", ""))
}

func TestHashRejectsOverlongPassword(t *testing.T) {
	h := newTestHasher()

	_, err := h.Hash(strings.Repeat("a", 73))
	require.Error(t, err)

	_, err = h.Hash(strings.Repeat("a", 72))
	require.NoError(t, err)
}
