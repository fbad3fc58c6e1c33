package jwtx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/MedGm/Library-Management-Scrum/model"
	jwtutil "github.com/MedGm/Library-Management-Scrum/util/jwt"
)

func contextWithToken(t *testing.T, userID int64, role string) echo.Context {
	t.Helper()

	const secret = "test-secret"
	signed, err := jwtutil.Issue(secret, userID, role, 1)
	require.NoError(t, err)

	// Same shape the auth middleware stores after verifying the header.
	tok, err := jwtutil.ParseAuth("Bearer "+signed, secret)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.Set("user", tok)
	return c
}

func TestUserIDFromContext(t *testing.T) {
	c := contextWithToken(t, 42, "MEMBER")

	id, err := UserIDFromContext(c)
	require.NoError(t, err)
	require.Equal(t, int64(42), id)
}

func TestRoleFromContext(t *testing.T) {
	c := contextWithToken(t, 42, "ADMIN")

	role, err := RoleFromContext(c)
	require.NoError(t, err)
	require.Equal(t, model.RoleAdmin, role)
	require.True(t, role.IsStaff())
}

func TestClaimsMissingFromContext(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	_, err := UserIDFromContext(c)
	require.Error(t, err)
	_, err = RoleFromContext(c)
	require.Error(t, err)
}
