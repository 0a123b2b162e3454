package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"agensi-backend/internal/app/config"
	"agensi-backend/internal/app/identity"
	"agensi-backend/internal/app/role"
)

type fakeVerifier struct {
	users map[string]*identity.User
}

func (f *fakeVerifier) UserFromToken(_ context.Context, token string) (*identity.User, error) {
	if u, ok := f.users[token]; ok {
		return u, nil
	}
	return nil, errors.New("invalid token")
}

type fakeRoles struct {
	roles map[string]role.Role
}

func (f *fakeRoles) HasRole(userID string, want role.Role) (bool, error) {
	return f.roles[userID] == want, nil
}

func newTestRouter(am *AuthMiddleware, required ...role.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", am.WithAuthCheck(required...), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("userID")})
	})
	return r
}

func testMiddleware() *AuthMiddleware {
	verifier := &fakeVerifier{users: map[string]*identity.User{
		"admin-token":  {ID: "u-admin", Email: "admin@agensi.id"},
		"mitra-token":  {ID: "u-mitra", Email: "mitra@agensi.id"},
		"roleless-tok": {ID: "u-none", Email: "none@agensi.id"},
	}}
	roles := &fakeRoles{roles: map[string]role.Role{
		"u-admin": role.Admin,
		"u-mitra": role.Mitra,
	}}
	return NewAuthMiddleware(verifier, nil, roles, &config.Config{})
}

func doGet(r http.Handler, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestWithAuthCheckMissingHeader(t *testing.T) {
	r := newTestRouter(testMiddleware(), role.Admin)
	rec := doGet(r, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Authorization header required")
}

func TestWithAuthCheckInvalidToken(t *testing.T) {
	r := newTestRouter(testMiddleware(), role.Admin)
	rec := doGet(r, "Bearer nope")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Unauthorized")
}

func TestWithAuthCheckWrongRole(t *testing.T) {
	r := newTestRouter(testMiddleware(), role.Admin)
	rec := doGet(r, "Bearer mitra-token")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestWithAuthCheckNoRoleRow(t *testing.T) {
	r := newTestRouter(testMiddleware(), role.Admin, role.Franchise)
	rec := doGet(r, "Bearer roleless-tok")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestWithAuthCheckAllowed(t *testing.T) {
	r := newTestRouter(testMiddleware(), role.Admin)
	rec := doGet(r, "Bearer admin-token")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "u-admin")
}

func TestWithAuthCheckSetsMatchedRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", testMiddleware().WithAuthCheck(role.Admin, role.Franchise), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"role": c.MustGet("userRole")})
	})
	rec := doGet(r, "Bearer admin-token")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "admin")
}

func TestWithAuthCheckAnyAuthenticated(t *testing.T) {
	// no roles required, any valid identity passes
	r := newTestRouter(testMiddleware())
	rec := doGet(r, "Bearer roleless-tok")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "abc", BearerToken("Bearer abc"))
	assert.Equal(t, "abc", BearerToken("abc"))
	assert.Equal(t, "", BearerToken(""))
}
