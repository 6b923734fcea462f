package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_RoundTrip(t *testing.T) {
	h := NewBcryptHasher()

	hash, err := h.Hash("pw1")
	require.NoError(t, err)
	assert.NotEqual(t, "pw1", hash, "hash must not be the plaintext")

	assert.True(t, h.Compare(hash, "pw1"))
	assert.False(t, h.Compare(hash, "pw2"))
}

func TestBcryptHasher_HashesDiffer(t *testing.T) {
	h := NewBcryptHasher()

	a, err := h.Hash("pw1")
	require.NoError(t, err)
	b, err := h.Hash("pw1")
	require.NoError(t, err)

	// bcrypt salts every hash; equality would indicate a broken setup.
	assert.NotEqual(t, a, b)
}

func TestBcryptHasher_CompareGarbageHash(t *testing.T) {
	h := NewBcryptHasher()
	assert.False(t, h.Compare("not-a-hash", "pw1"))
}
