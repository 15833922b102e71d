package server_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProtectedRoutesRequireSession(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{"/equipment", "/picklist", "/calendar", "/dashboard"} {
		w := app.do(http.MethodGet, path, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestLoginDoesNotDistinguishUnknownUserFromWrongPassword(t *testing.T) {
	app := newTestApp(t)
	app.createUser("bob", "", "topsecret", false)

	unknown := app.doJSON(http.MethodPost, "/login", gin.H{"username": "nobody", "password": "x"}, nil)
	wrongPass := app.doJSON(http.MethodPost, "/login", gin.H{"username": "bob", "password": "wrong"}, nil)

	require.Equal(t, http.StatusUnauthorized, unknown.Code)
	require.Equal(t, http.StatusUnauthorized, wrongPass.Code)
	assert.JSONEq(t, unknown.Body.String(), wrongPass.Body.String())
}

func TestLoginLogout(t *testing.T) {
	app := newTestApp(t)
	app.createUser("bob", "", "topsecret", false)

	cookies := app.login("bob", "topsecret")
	w := app.do(http.MethodGet, "/equipment", cookies)
	require.Equal(t, http.StatusOK, w.Code)

	out := app.do(http.MethodGet, "/logout", cookies)
	require.Equal(t, http.StatusOK, out.Code)

	// The cleared cookie from the logout response must no longer work.
	w = app.do(http.MethodGet, "/equipment", out.Result().Cookies())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHealthIsPublic(t *testing.T) {
	app := newTestApp(t)

	w := app.do(http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}
