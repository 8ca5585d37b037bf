package identity

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-that-is-at-least-32-characters"

func TestJWTDirectory_RoundTrip(t *testing.T) {
	t.Parallel()
	d := NewJWTDirectory(testSecret, "bloghub-identity", "bloghub-client")

	token, err := d.IssueToken(42, time.Hour)
	require.NoError(t, err)

	userID, err := d.Resolve(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestJWTDirectory_Rejects(t *testing.T) {
	t.Parallel()
	d := NewJWTDirectory(testSecret, "bloghub-identity", "bloghub-client")

	expired := NewJWTDirectory(testSecret, "bloghub-identity", "bloghub-client")
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expiredToken, err := expired.IssueToken(1, time.Hour)
	require.NoError(t, err)

	otherSecret, err := NewJWTDirectory("another-secret-that-is-32-characters-long", "bloghub-identity", "bloghub-client").IssueToken(1, time.Hour)
	require.NoError(t, err)

	otherAudience, err := NewJWTDirectory(testSecret, "bloghub-identity", "someone-else").IssueToken(1, time.Hour)
	require.NoError(t, err)

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    "bloghub-identity",
		Audience:  jwt.ClaimStrings{"bloghub-client"},
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	noneAlg, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "1",
		Issuer:    "bloghub-identity",
		Audience:  jwt.ClaimStrings{"bloghub-client"},
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := map[string]string{
		"garbage":        "not-a-jwt",
		"expired":        expiredToken,
		"wrong secret":   otherSecret,
		"wrong audience": otherAudience,
		"no subject":     noSubject,
		"none alg":       noneAlg,
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := d.Resolve(context.Background(), token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
