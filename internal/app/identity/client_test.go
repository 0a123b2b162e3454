package identity

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient(Config{URL: srv.URL, AnonKey: "anon", ServiceKey: "service"})
	require.NoError(t, err)
	return c
}

func TestUserFromToken(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/user", r.URL.Path)
		assert.Equal(t, "Bearer caller-token", r.Header.Get("Authorization"))
		assert.Equal(t, "anon", r.Header.Get("apikey"))
		json.NewEncoder(w).Encode(map[string]string{"id": "u-1", "email": "a@b.co"})
	})

	user, err := c.UserFromToken(context.Background(), "caller-token")
	require.NoError(t, err)
	assert.Equal(t, "u-1", user.ID)
	assert.Equal(t, "a@b.co", user.Email)
}

func TestUserFromTokenRejected(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"msg": "invalid JWT"})
	})

	_, err := c.UserFromToken(context.Background(), "bad")
	var perr *ProviderError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, http.StatusUnauthorized, perr.Status)
	assert.Equal(t, "invalid JWT", perr.Message)
}

func TestCreateUserSendsConfirmedEmail(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/v1/admin/users", r.URL.Path)
		assert.Equal(t, "Bearer service", r.Header.Get("Authorization"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "new@agensi.id", body["email"])
		assert.Equal(t, true, body["email_confirm"])

		json.NewEncoder(w).Encode(map[string]string{"id": "u-new", "email": "new@agensi.id"})
	})

	user, err := c.CreateUser(context.Background(), "new@agensi.id", "rahasia1")
	require.NoError(t, err)
	assert.Equal(t, "u-new", user.ID)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]string{"msg": "A user with this email address has already been registered"})
	})

	_, err := c.CreateUser(context.Background(), "dup@agensi.id", "rahasia1")
	var perr *ProviderError
	require.ErrorAs(t, err, &perr)
	assert.Contains(t, perr.Message, "already been registered")
}

func TestGetUserNotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := c.GetUser(context.Background(), "missing")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestDeleteUser(t *testing.T) {
	var gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusOK)
	})

	require.NoError(t, c.DeleteUser(context.Background(), "u-9"))
	assert.Equal(t, "/auth/v1/admin/users/u-9", gotPath)
}

func TestGenerateRecoveryLink(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/admin/generate_link", r.URL.Path)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "recovery", body["type"])
		assert.Equal(t, "x@agensi.id", body["email"])

		json.NewEncoder(w).Encode(map[string]string{"action_link": "https://idp/recover?token=abc"})
	})

	link, err := c.GenerateRecoveryLink(context.Background(), "x@agensi.id")
	require.NoError(t, err)
	assert.Equal(t, "https://idp/recover?token=abc", link)
}
