package jwt

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func TestIssueParseRoundTrip(t *testing.T) {
	signed, err := Issue(secret, 42, "LIBRARIAN", 1)
	require.NoError(t, err)

	tok, err := ParseAuth("Bearer "+signed, secret)
	require.NoError(t, err)
	require.True(t, tok.Valid)

	mc, ok := tok.Claims.(jwt.MapClaims)
	require.True(t, ok)
	require.Equal(t, float64(42), mc["sub"])
	require.Equal(t, "LIBRARIAN", mc["role"])
}

func TestParseAuth_RawTokenWithoutPrefix(t *testing.T) {
	signed, err := Issue(secret, 7, "MEMBER", 1)
	require.NoError(t, err)

	tok, err := ParseAuth(signed, secret)
	require.NoError(t, err)
	require.True(t, tok.Valid)
}

func TestParseAuth_WrongSecret(t *testing.T) {
	signed, err := Issue(secret, 7, "MEMBER", 1)
	require.NoError(t, err)

	_, err = ParseAuth("Bearer "+signed, "another-secret")
	require.Error(t, err)
}

func TestParseAuth_EmptyHeader(t *testing.T) {
	_, err := ParseAuth("", secret)
	require.Error(t, err)

	_, err = ParseAuth("Bearer   ", secret)
	require.Error(t, err)
}

func TestParseAuth_RejectsUnsignedToken(t *testing.T) {
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub":  float64(7),
		"role": "ADMIN",
	})
	signed, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ParseAuth("Bearer "+signed, secret)
	require.Error(t, err)
}
