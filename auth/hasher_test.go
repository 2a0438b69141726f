package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasherSaltUniqueness(t *testing.T) {
	h := NewBcryptHasher()

	first, err := h.Hash("secret1")
	require.NoError(t, err)
	second, err := h.Hash("secret1")
	require.NoError(t, err)

	// Fresh salt per call: identical passwords never produce identical hashes.
	assert.NotEqual(t, first, second)

	for _, hash := range []string{first, second} {
		ok, err := h.Verify("secret1", hash)
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestBcryptHasherMismatchReturnsFalseNotError(t *testing.T) {
	h := NewBcryptHasher()

	hash, err := h.Hash("secret1")
	require.NoError(t, err)

	ok, err := h.Verify("wrong", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBcryptHasherSelfDescribingFormat(t *testing.T) {
	h := NewBcryptHasher()

	hash, err := h.Hash("secret1")
	require.NoError(t, err)

	// Algorithm and cost are embedded in the hash string itself.
	assert.True(t, strings.HasPrefix(hash, "$2a$10$"), "unexpected hash prefix: %s", hash)
	assert.NotContains(t, hash, "secret1")
}

func TestBcryptHasherUnparseableHash(t *testing.T) {
	h := NewBcryptHasher()

	ok, err := h.Verify("secret1", "not-a-bcrypt-hash")
	assert.Error(t, err)
	assert.False(t, ok)
}
