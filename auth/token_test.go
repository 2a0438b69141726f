package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestTokenCodecRoundTrip(t *testing.T) {
	codec := NewTokenCodec(testSecret, time.Hour)

	token, expiresAt, err := codec.Issue(42, "user@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := codec.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
}

func TestTokenCodecExpired(t *testing.T) {
	codec := NewTokenCodec(testSecret, -time.Minute)

	token, _, err := codec.Issue(42, "user@example.com")
	require.NoError(t, err)

	_, err = codec.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenCodecTamperedPayload(t *testing.T) {
	codec := NewTokenCodec(testSecret, time.Hour)

	token, _, err := codec.Issue(42, "user@example.com")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	// Any mutation of the payload must invalidate the signature.
	tampered := parts[0] + "." + parts[1][:len(parts[1])-2] + "xx." + parts[2]

	_, err = codec.Verify(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenCodecWrongSecret(t *testing.T) {
	issuer := NewTokenCodec(testSecret, time.Hour)
	verifier := NewTokenCodec("some-other-secret", time.Hour)

	token, _, err := issuer.Issue(42, "user@example.com")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenCodecMalformed(t *testing.T) {
	codec := NewTokenCodec(testSecret, time.Hour)

	for _, input := range []string{"", "garbage", "a.b.c", "a.b"} {
		_, err := codec.Verify(input)
		assert.ErrorIs(t, err, ErrInvalidToken, "input %q", input)
	}
}

func TestTokenCodecRejectionsIndistinguishable(t *testing.T) {
	codec := NewTokenCodec(testSecret, time.Hour)
	expiredCodec := NewTokenCodec(testSecret, -time.Minute)

	expired, _, err := expiredCodec.Issue(42, "user@example.com")
	require.NoError(t, err)

	valid, _, err := codec.Issue(42, "user@example.com")
	require.NoError(t, err)
	corrupted := valid[:len(valid)-4] + "AAAA"

	_, expiredErr := codec.Verify(expired)
	_, corruptedErr := codec.Verify(corrupted)

	// Expiry and corruption yield the exact same error value, so callers
	// cannot tell the cases apart.
	assert.Equal(t, expiredErr, corruptedErr)
	assert.ErrorIs(t, expiredErr, ErrInvalidToken)
}
