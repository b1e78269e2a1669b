package controllers_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Priest98/whatsapp-CRM/models"
)

func TestLoginSuccess(t *testing.T) {
	r, _ := newTestRouter(&stubGenerator{})

	w := doJSON(r, http.MethodPost, "/api/auth/login", "",
		models.LoginRequest{Email: "demo@salesagent.ai", Password: "password"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.AuthResponse
	decodeBody(t, w, &resp)
	assert.Equal(t, models.RoleOwner, resp.User.Role)
	assert.Equal(t, "John Doe", resp.User.Name)
	assert.NotEmpty(t, resp.Token)
	// password hash never leaves the server
	assert.NotContains(t, w.Body.String(), "password")
}

func TestLoginWrongPassword(t *testing.T) {
	r, _ := newTestRouter(&stubGenerator{})

	w := doJSON(r, http.MethodPost, "/api/auth/login", "",
		models.LoginRequest{Email: "demo@salesagent.ai", Password: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid credentials")
}

func TestSessionRoundTrip(t *testing.T) {
	r, _ := newTestRouter(&stubGenerator{})

	login := doJSON(r, http.MethodPost, "/api/auth/login", "",
		models.LoginRequest{Email: "staff@salesagent.ai", Password: "password"})
	require.Equal(t, http.StatusOK, login.Code)
	var resp models.AuthResponse
	decodeBody(t, login, &resp)

	w := doJSON(r, http.MethodGet, "/api/auth/session", resp.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var user models.User
	decodeBody(t, w, &user)
	assert.Equal(t, resp.User.ID, user.ID)
	assert.Equal(t, resp.User.Email, user.Email)
	assert.Equal(t, models.RoleStaff, user.Role)
}

func TestSessionGarbageToken(t *testing.T) {
	r, _ := newTestRouter(&stubGenerator{})

	w := doJSON(r, http.MethodGet, "/api/auth/session", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "session expired")
}

func TestMeRequiresToken(t *testing.T) {
	r, _ := newTestRouter(&stubGenerator{})

	w := doJSON(r, http.MethodGet, "/api/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, http.MethodGet, "/api/me", ownerToken(t), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var user models.User
	decodeBody(t, w, &user)
	assert.True(t, strings.EqualFold(user.Email, "demo@salesagent.ai"))
}
