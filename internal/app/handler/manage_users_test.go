package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agensi-backend/internal/app/identity"
	"agensi-backend/internal/app/role"
)

// fakeProvider is an in-memory identity provider recording every call.
type fakeProvider struct {
	users       map[string]*identity.User
	tokens      map[string]string // token -> user id
	nextID      int
	createCalls int
	failCreate  *identity.ProviderError
	failLink    *identity.ProviderError
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{
		users:  map[string]*identity.User{},
		tokens: map[string]string{},
	}
}

func (p *fakeProvider) addUser(id, email string) {
	p.users[id] = &identity.User{ID: id, Email: email, CreatedAt: time.Now()}
}

func (p *fakeProvider) UserFromToken(_ context.Context, token string) (*identity.User, error) {
	id, ok := p.tokens[token]
	if !ok {
		return nil, &identity.ProviderError{Status: 401, Message: "invalid JWT"}
	}
	return p.users[id], nil
}

func (p *fakeProvider) CreateUser(_ context.Context, email, password string) (*identity.User, error) {
	p.createCalls++
	if p.failCreate != nil {
		return nil, p.failCreate
	}
	p.nextID++
	id := fmt.Sprintf("u-%d", p.nextID)
	p.addUser(id, email)
	return p.users[id], nil
}

func (p *fakeProvider) GetUser(_ context.Context, id string) (*identity.User, error) {
	u, ok := p.users[id]
	if !ok {
		return nil, identity.ErrNotFound
	}
	return u, nil
}

func (p *fakeProvider) DeleteUser(_ context.Context, id string) error {
	if _, ok := p.users[id]; !ok {
		return identity.ErrNotFound
	}
	delete(p.users, id)
	return nil
}

func (p *fakeProvider) GenerateRecoveryLink(_ context.Context, email string) (string, error) {
	if p.failLink != nil {
		return "", p.failLink
	}
	return "https://idp/recover?email=" + email, nil
}

// fakeRoleStore is an in-memory role table, optionally failing inserts.
type fakeRoleStore struct {
	roles       map[string]role.Role
	failAssign  bool
	removeCalls []string
}

func newFakeRoleStore() *fakeRoleStore {
	return &fakeRoleStore{roles: map[string]role.Role{}}
}

func (s *fakeRoleStore) HasRole(userID string, want role.Role) (bool, error) {
	return s.roles[userID] == want, nil
}

func (s *fakeRoleStore) AssignRole(userID string, assigned role.Role) error {
	if s.failAssign {
		return errors.New("insert failed")
	}
	s.roles[userID] = assigned
	return nil
}

func (s *fakeRoleStore) RemoveRole(userID string) error {
	s.removeCalls = append(s.removeCalls, userID)
	delete(s.roles, userID)
	return nil
}

func (s *fakeRoleStore) UserIDsWithRole(want role.Role) ([]string, error) {
	var ids []string
	for id, r := range s.roles {
		if r == want {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

type gatewayFixture struct {
	router   *gin.Engine
	provider *fakeProvider
	roles    *fakeRoleStore
}

func newGatewayFixture() *gatewayFixture {
	gin.SetMode(gin.TestMode)

	provider := newFakeProvider()
	provider.addUser("admin-1", "admin@agensi.id")
	provider.tokens["admin-token"] = "admin-1"
	provider.addUser("plain-1", "plain@agensi.id")
	provider.tokens["plain-token"] = "plain-1"

	roles := newFakeRoleStore()
	roles.roles["admin-1"] = role.Admin

	router := gin.New()
	router.Use(cors.New(CORSConfig()))
	NewManageUsersHandler(provider, roles).Register(router)

	return &gatewayFixture{router: router, provider: provider, roles: roles}
}

func (f *gatewayFixture) post(body interface{}, token string) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/manage-users", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Origin", "https://admin.agensi.id")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestManageUsersMissingAuthHeader(t *testing.T) {
	f := newGatewayFixture()

	// 401 regardless of action or body contents
	for _, body := range []interface{}{
		map[string]string{"action": "list"},
		map[string]string{"action": "create", "email": "x@y.z", "password": "rahasia1"},
		map[string]string{},
	} {
		rec := f.post(body, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Authorization header required", decodeBody(t, rec)["error"])
	}
}

func TestManageUsersInvalidToken(t *testing.T) {
	f := newGatewayFixture()
	rec := f.post(map[string]string{"action": "list"}, "garbage")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Unauthorized", decodeBody(t, rec)["error"])
}

func TestManageUsersNonAdminForbiddenForEveryAction(t *testing.T) {
	f := newGatewayFixture()

	// valid identity, no admin role row; even the read-only list is refused
	for _, action := range []string{"list", "create", "delete", "reset-password", "bogus"} {
		rec := f.post(map[string]string{"action": action}, "plain-token")
		assert.Equal(t, http.StatusForbidden, rec.Code, "action %s", action)
		assert.Equal(t, "Only admins can manage users", decodeBody(t, rec)["error"])
	}
}

func TestManageUsersCORSHeader(t *testing.T) {
	f := newGatewayFixture()
	rec := f.post(map[string]string{"action": "list"}, "admin-token")
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestManageUsersPreflight(t *testing.T) {
	f := newGatewayFixture()
	req := httptest.NewRequest(http.MethodOptions, "/manage-users", nil)
	req.Header.Set("Origin", "https://admin.agensi.id")
	req.Header.Set("Access-Control-Request-Method", "POST")
	req.Header.Set("Access-Control-Request-Headers", "authorization, content-type")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	assert.Less(t, rec.Code, 300)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "authorization")
}

func TestManageUsersCreateShortPassword(t *testing.T) {
	f := newGatewayFixture()
	rec := f.post(map[string]string{"action": "create", "email": "baru@agensi.id", "password": "12345"}, "admin-token")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	// the provider must never be invoked for an invalid password
	assert.Zero(t, f.provider.createCalls)
}

func TestManageUsersCreateSuccess(t *testing.T) {
	f := newGatewayFixture()
	rec := f.post(map[string]string{"action": "create", "email": "baru@agensi.id", "password": "rahasia1"}, "admin-token")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])

	user := body["user"].(map[string]interface{})
	assert.Equal(t, "baru@agensi.id", user["email"])

	// role row created in lockstep
	ok, _ := f.roles.HasRole(user["id"].(string), role.Franchise)
	assert.True(t, ok)
}

func TestManageUsersCreateRollsBackOnRoleFailure(t *testing.T) {
	f := newGatewayFixture()
	f.roles.failAssign = true

	rec := f.post(map[string]string{"action": "create", "email": "baru@agensi.id", "password": "rahasia1"}, "admin-token")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to assign role", decodeBody(t, rec)["error"])

	// the identity created before the failed role insert must be gone
	_, err := f.provider.GetUser(context.Background(), "u-1")
	assert.True(t, errors.Is(err, identity.ErrNotFound))
}

func TestManageUsersCreateDuplicateEmail(t *testing.T) {
	f := newGatewayFixture()
	f.provider.failCreate = &identity.ProviderError{Status: 422, Message: "email already registered"}

	rec := f.post(map[string]string{"action": "create", "email": "dup@agensi.id", "password": "rahasia1"}, "admin-token")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "email already registered", decodeBody(t, rec)["error"])
}

func TestManageUsersListEmpty(t *testing.T) {
	f := newGatewayFixture()
	rec := f.post(map[string]string{"action": "list"}, "admin-token")

	require.Equal(t, http.StatusOK, rec.Code)
	users := decodeBody(t, rec)["users"].([]interface{})
	assert.Empty(t, users)
}

func TestManageUsersListSkipsUnresolvable(t *testing.T) {
	f := newGatewayFixture()
	f.provider.addUser("fr-1", "satu@agensi.id")
	f.roles.roles["fr-1"] = role.Franchise
	// role row without a provider identity; must be skipped, not fatal
	f.roles.roles["fr-gone"] = role.Franchise

	rec := f.post(map[string]string{"action": "list"}, "admin-token")

	require.Equal(t, http.StatusOK, rec.Code)
	users := decodeBody(t, rec)["users"].([]interface{})
	require.Len(t, users, 1)
	assert.Equal(t, "satu@agensi.id", users[0].(map[string]interface{})["email"])
}

func TestManageUsersDeleteMissingUserID(t *testing.T) {
	f := newGatewayFixture()
	rec := f.post(map[string]string{"action": "delete"}, "admin-token")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	// no deletion may be attempted before validation
	assert.Empty(t, f.roles.removeCalls)
}

func TestManageUsersDeleteSuccess(t *testing.T) {
	f := newGatewayFixture()
	f.provider.addUser("fr-1", "satu@agensi.id")
	f.roles.roles["fr-1"] = role.Franchise

	rec := f.post(map[string]string{"action": "delete", "userId": "fr-1"}, "admin-token")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decodeBody(t, rec)["success"])
	assert.Equal(t, []string{"fr-1"}, f.roles.removeCalls)
	_, err := f.provider.GetUser(context.Background(), "fr-1")
	assert.Error(t, err)
}

func TestManageUsersDeleteUnknownUser(t *testing.T) {
	f := newGatewayFixture()
	rec := f.post(map[string]string{"action": "delete", "userId": "ghost"}, "admin-token")

	// role-row deletion is still attempted, then the provider error surfaces
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []string{"ghost"}, f.roles.removeCalls)
	assert.Equal(t, "User not found", decodeBody(t, rec)["error"])
}

func TestManageUsersResetPassword(t *testing.T) {
	f := newGatewayFixture()
	f.provider.addUser("fr-1", "satu@agensi.id")
	f.roles.roles["fr-1"] = role.Franchise

	rec := f.post(map[string]string{"action": "reset-password", "userId": "fr-1"}, "admin-token")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "https://idp/recover?email=satu@agensi.id", body["recoveryLink"])
}

func TestManageUsersResetPasswordUnknownUser(t *testing.T) {
	f := newGatewayFixture()
	rec := f.post(map[string]string{"action": "reset-password", "userId": "ghost"}, "admin-token")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User not found", decodeBody(t, rec)["error"])
}

func TestManageUsersResetPasswordLinkFailure(t *testing.T) {
	f := newGatewayFixture()
	f.provider.addUser("fr-1", "satu@agensi.id")
	f.provider.failLink = &identity.ProviderError{Status: 500, Message: "smtp backend unavailable"}

	rec := f.post(map[string]string{"action": "reset-password", "userId": "fr-1"}, "admin-token")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "smtp backend unavailable", decodeBody(t, rec)["error"])
}

func TestManageUsersInvalidAction(t *testing.T) {
	f := newGatewayFixture()
	rec := f.post(map[string]string{"action": "explode"}, "admin-token")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid action", decodeBody(t, rec)["error"])
}
