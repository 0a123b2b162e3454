package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"agensi-backend/internal/app/dto"
	"agensi-backend/internal/app/identity"
	"agensi-backend/internal/app/middleware"
	"agensi-backend/internal/app/role"
)

// IdentityAdmin is the provider surface the gateway needs. Implemented by
// *identity.Client; faked in tests.
type IdentityAdmin interface {
	UserFromToken(ctx context.Context, token string) (*identity.User, error)
	CreateUser(ctx context.Context, email, password string) (*identity.User, error)
	GetUser(ctx context.Context, id string) (*identity.User, error)
	DeleteUser(ctx context.Context, id string) error
	GenerateRecoveryLink(ctx context.Context, email string) (string, error)
}

// RoleStore is the role-assignment surface the gateway needs. Implemented
// by *repository.Repository.
type RoleStore interface {
	HasRole(userID string, want role.Role) (bool, error)
	AssignRole(userID string, assigned role.Role) error
	RemoveRole(userID string) error
	UserIDsWithRole(want role.Role) ([]string, error)
}

// ManageUsersHandler is the privileged account-management gateway. It keeps
// the exact wire contract of the admin UI: plain {"error": ...} bodies, and
// the franchise role row always created/removed in lockstep with the
// provider identity.
type ManageUsersHandler struct {
	Identity IdentityAdmin
	Roles    RoleStore
}

func NewManageUsersHandler(provider IdentityAdmin, roles RoleStore) *ManageUsersHandler {
	return &ManageUsersHandler{
		Identity: provider,
		Roles:    roles,
	}
}

// Preflight answers the CORS preflight with an empty success body.
func (h *ManageUsersHandler) Preflight(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

// Handle dispatches one account-management action.
// @Summary Manage franchise user accounts
// @Description Privileged create/list/delete/reset-password over franchise accounts. Caller must hold the admin role.
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ManageUsersRequest true "Action and its parameters"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /manage-users [post]
func (h *ManageUsersHandler) Handle(c *gin.Context) {
	var req dto.ManageUsersRequest

	// Validation and provider failures are handled explicitly below; this
	// catches only genuinely unexpected panics, which must never leak
	// their message to the caller.
	defer func() {
		if r := recover(); r != nil {
			logrus.WithFields(logrus.Fields{
				"action": req.Action,
				"panic":  r,
			}).Error("manage-users: unexpected failure")
			if !c.Writer.Written() {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			}
			c.Abort()
		}
	}()

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
		return
	}

	caller, err := h.Identity.UserFromToken(c.Request.Context(), middleware.BearerToken(authHeader))
	if err != nil {
		logrus.WithError(err).Warn("manage-users: token rejected")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	isAdmin, err := h.Roles.HasRole(caller.ID, role.Admin)
	if err != nil || !isAdmin {
		if err != nil {
			logrus.WithError(err).Error("manage-users: admin role lookup failed")
		}
		c.JSON(http.StatusForbidden, gin.H{"error": "Only admins can manage users"})
		return
	}

	// A malformed body is treated the same as an unknown action.
	_ = c.ShouldBindJSON(&req)

	switch req.Action {
	case "create":
		h.create(c, req)
	case "list":
		h.list(c)
	case "delete":
		h.delete(c, req)
	case "reset-password":
		h.resetPassword(c, req)
	default:
		logrus.WithField("action", req.Action).Warn("manage-users: invalid action")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid action"})
	}
}

// create provisions an identity and its franchise role row as a pair. If
// the role insert fails the identity is rolled back, so no credential ever
// exists without a role row.
func (h *ManageUsersHandler) create(c *gin.Context, req dto.ManageUsersRequest) {
	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}
	if len(req.Password) < 6 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at least 6 characters"})
		return
	}

	user, err := h.Identity.CreateUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		logrus.WithError(err).WithField("email", req.Email).Warn("manage-users: create rejected by provider")
		c.JSON(http.StatusBadRequest, gin.H{"error": providerMessage(err)})
		return
	}

	if err := h.Roles.AssignRole(user.ID, role.Franchise); err != nil {
		logrus.WithError(err).WithField("user_id", user.ID).Error("manage-users: role insert failed, rolling back identity")
		if delErr := h.Identity.DeleteUser(c.Request.Context(), user.ID); delErr != nil {
			logrus.WithError(delErr).WithField("user_id", user.ID).Error("manage-users: identity rollback failed")
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign role"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    gin.H{"id": user.ID, "email": user.Email},
	})
}

// list returns all franchise accounts. Individual provider lookups that
// fail are skipped rather than failing the whole call.
func (h *ManageUsersHandler) list(c *gin.Context) {
	ids, err := h.Roles.UserIDsWithRole(role.Franchise)
	if err != nil {
		logrus.WithError(err).Error("manage-users: role listing failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	users := make([]dto.ManagedUser, 0, len(ids))
	for _, id := range ids {
		user, err := h.Identity.GetUser(c.Request.Context(), id)
		if err != nil {
			logrus.WithError(err).WithField("user_id", id).Warn("manage-users: skipping unresolvable user")
			continue
		}
		users = append(users, dto.ManagedUser{
			ID:        user.ID,
			Email:     user.Email,
			CreatedAt: user.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

// delete removes the role row first (best-effort), then the identity.
func (h *ManageUsersHandler) delete(c *gin.Context, req dto.ManageUsersRequest) {
	if req.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
		return
	}

	if err := h.Roles.RemoveRole(req.UserID); err != nil {
		logrus.WithError(err).WithField("user_id", req.UserID).Warn("manage-users: role row removal failed")
	}

	if err := h.Identity.DeleteUser(c.Request.Context(), req.UserID); err != nil {
		logrus.WithError(err).WithField("user_id", req.UserID).Warn("manage-users: provider delete failed")
		if errors.Is(err, identity.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": providerMessage(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// resetPassword resolves the account's email and returns a one-time
// recovery link. The link is the deliverable; no mail is sent here.
func (h *ManageUsersHandler) resetPassword(c *gin.Context, req dto.ManageUsersRequest) {
	if req.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
		return
	}

	user, err := h.Identity.GetUser(c.Request.Context(), req.UserID)
	if err != nil {
		if errors.Is(err, identity.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		logrus.WithError(err).WithField("user_id", req.UserID).Warn("manage-users: user lookup failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": providerMessage(err)})
		return
	}

	link, err := h.Identity.GenerateRecoveryLink(c.Request.Context(), user.Email)
	if err != nil {
		logrus.WithError(err).WithField("user_id", req.UserID).Warn("manage-users: recovery link generation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": providerMessage(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "recoveryLink": link})
}

// providerMessage extracts the caller-safe message from a provider error.
func providerMessage(err error) string {
	var perr *identity.ProviderError
	if errors.As(err, &perr) {
		return perr.Message
	}
	return "identity provider error"
}
