package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/sirupsen/logrus"

	"agensi-backend/internal/app/config"
	"agensi-backend/internal/app/identity"
	"agensi-backend/internal/app/role"
)

// TokenVerifier resolves a bearer token to its identity at the provider.
type TokenVerifier interface {
	UserFromToken(ctx context.Context, token string) (*identity.User, error)
}

// IdentityCache is the optional Redis cache in front of the provider.
type IdentityCache interface {
	CachedIdentity(ctx context.Context, token string) *identity.User
	CacheIdentity(ctx context.Context, token string, user *identity.User) error
	DropIdentity(ctx context.Context, token string)
}

type AuthMiddleware struct {
	Identity TokenVerifier
	Cache    IdentityCache
	Roles    RoleFinder
	Config   *config.Config
}

// RoleFinder is implemented by the repository.
type RoleFinder interface {
	HasRole(userID string, want role.Role) (bool, error)
}

func NewAuthMiddleware(verifier TokenVerifier, cache IdentityCache, roles RoleFinder, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{
		Identity: verifier,
		Cache:    cache,
		Roles:    roles,
		Config:   cfg,
	}
}

// WithAuthCheck authenticates the bearer token and, when roles are given,
// requires the caller to hold one of them.
func (am *AuthMiddleware) WithAuthCheck(assignedRoles ...role.Role) gin.HandlerFunc {
	return func(gCtx *gin.Context) {
		token := BearerToken(gCtx.GetHeader("Authorization"))
		if token == "" {
			gCtx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		user := am.resolveIdentity(gCtx.Request.Context(), token)
		if user == nil {
			gCtx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		if len(assignedRoles) > 0 {
			matched, ok := am.matchRole(user.ID, assignedRoles)
			if !ok {
				gCtx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
				return
			}
			gCtx.Set("userRole", matched)
		}

		gCtx.Set("userID", user.ID)
		gCtx.Set("userEmail", user.Email)

		gCtx.Next()
	}
}

// resolveIdentity checks the cache, then the local JWT secret, then the
// provider. Only provider-confirmed identities are cached.
func (am *AuthMiddleware) resolveIdentity(ctx context.Context, token string) *identity.User {
	if am.Cache != nil {
		if user := am.Cache.CachedIdentity(ctx, token); user != nil {
			return user
		}
	}

	if user := am.verifyLocal(token); user != nil {
		return user
	}

	user, err := am.Identity.UserFromToken(ctx, token)
	if err != nil {
		logrus.WithError(err).Debug("token introspection failed")
		if am.Cache != nil {
			am.Cache.DropIdentity(ctx, token)
		}
		return nil
	}

	if am.Cache != nil {
		if err := am.Cache.CacheIdentity(ctx, token, user); err != nil {
			logrus.WithError(err).Warn("failed to cache identity")
		}
	}
	return user
}

// verifyLocal validates the provider-signed access token against the shared
// JWT secret, avoiding a provider round-trip. Any failure falls back to
// introspection rather than rejecting the request.
func (am *AuthMiddleware) verifyLocal(tokenString string) *identity.User {
	secret := am.Config.Identity.JWTSecret
	if secret == "" {
		return nil
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrInvalidKeyType
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil
	}
	email, _ := claims["email"].(string)

	return &identity.User{ID: sub, Email: email}
}

// matchRole returns the first of the required roles the user holds.
func (am *AuthMiddleware) matchRole(userID string, requiredRoles []role.Role) (role.Role, bool) {
	for _, required := range requiredRoles {
		ok, err := am.Roles.HasRole(userID, required)
		if err != nil {
			logrus.WithError(err).Error("role lookup failed")
			return "", false
		}
		if ok {
			return required, true
		}
	}
	return "", false
}

// BearerToken strips the "Bearer " prefix from an Authorization header.
// Returns "" when the header is missing or malformed.
func BearerToken(header string) string {
	if header == "" {
		return ""
	}
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return header
}
