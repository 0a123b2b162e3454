// Package identity is a client for the GoTrue-compatible identity provider
// that owns user accounts, sessions and recovery links. This service keeps
// only the role-assignment table; everything credential-shaped goes through
// the provider's REST API.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// ErrNotFound is returned when the provider reports that the referenced
// user does not exist.
var ErrNotFound = errors.New("identity: user not found")

// ProviderError is a non-404 error response from the provider. Its message
// is safe to show to the admin operating the UI (duplicate email etc).
type ProviderError struct {
	Status  int
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("identity provider: %s (status %d)", e.Message, e.Status)
}

// User is the subset of the provider's user object this service cares about.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Config holds provider connection settings. ServiceKey is the elevated
// credential used for admin endpoints; AnonKey is used only to introspect
// caller tokens.
type Config struct {
	URL        string
	AnonKey    string
	ServiceKey string
}

type Client struct {
	cfg    Config
	client *http.Client
}

func NewClient(cfg Config) (*Client, error) {
	if cfg.URL == "" {
		return nil, errors.New("identity provider URL is required")
	}
	if cfg.ServiceKey == "" {
		return nil, errors.New("identity provider service key is required")
	}
	return &Client{
		cfg:    cfg,
		client: &http.Client{Timeout: 10 * time.Second},
	}, nil
}

// UserFromToken exchanges a caller's bearer token for its identity.
func (c *Client) UserFromToken(ctx context.Context, token string) (*User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.URL+"/auth/v1/user", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("apikey", c.cfg.AnonKey)

	var user User
	if err := c.do(req, &user); err != nil {
		return nil, err
	}
	if user.ID == "" {
		return nil, &ProviderError{Status: http.StatusUnauthorized, Message: "token resolved to no user"}
	}
	return &user, nil
}

// CreateUser creates an identity with the email pre-confirmed, so the new
// franchise account can sign in without a verification round-trip.
func (c *Client) CreateUser(ctx context.Context, email, password string) (*User, error) {
	body := map[string]interface{}{
		"email":         email,
		"password":      password,
		"email_confirm": true,
	}
	req, err := c.adminRequest(ctx, http.MethodPost, "/auth/v1/admin/users", body)
	if err != nil {
		return nil, err
	}

	var user User
	if err := c.do(req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUser fetches a user by id. Returns ErrNotFound when the provider does
// not know the id.
func (c *Client) GetUser(ctx context.Context, id string) (*User, error) {
	req, err := c.adminRequest(ctx, http.MethodGet, "/auth/v1/admin/users/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}

	var user User
	if err := c.do(req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes the identity. Deleting an unknown id surfaces the
// provider's error unchanged.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	req, err := c.adminRequest(ctx, http.MethodDelete, "/auth/v1/admin/users/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

// GenerateRecoveryLink asks the provider for a one-time recovery link for
// the given email. The link itself is the deliverable; no mail is sent here.
func (c *Client) GenerateRecoveryLink(ctx context.Context, email string) (string, error) {
	body := map[string]interface{}{
		"type":  "recovery",
		"email": email,
	}
	req, err := c.adminRequest(ctx, http.MethodPost, "/auth/v1/admin/generate_link", body)
	if err != nil {
		return "", err
	}

	var resp struct {
		ActionLink string `json:"action_link"`
	}
	if err := c.do(req, &resp); err != nil {
		return "", err
	}
	if resp.ActionLink == "" {
		return "", &ProviderError{Status: http.StatusInternalServerError, Message: "provider returned no action link"}
	}
	return resp.ActionLink, nil
}

func (c *Client) adminRequest(ctx context.Context, method, path string, body interface{}) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.cfg.URL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.ServiceKey)
	req.Header.Set("apikey", c.cfg.ServiceKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// do executes the request and decodes into out (when non-nil). Error bodies
// are mapped to ErrNotFound / ProviderError; no retries are attempted.
func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("identity provider request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		io.Copy(io.Discard, resp.Body)
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &ProviderError{Status: resp.StatusCode, Message: readErrorMessage(resp.Body)}
	}
	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode provider response: %w", err)
	}
	return nil
}

// readErrorMessage extracts a human-readable message from the provider's
// error body. GoTrue is not consistent about the field name across versions.
func readErrorMessage(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil || len(raw) == 0 {
		return "request failed"
	}
	var body struct {
		Msg              string `json:"msg"`
		Message          string `json:"message"`
		Error            string `json:"error"`
		ErrorDescription string `json:"error_description"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return "request failed"
	}
	for _, m := range []string{body.Msg, body.Message, body.ErrorDescription, body.Error} {
		if m != "" {
			return m
		}
	}
	return "request failed"
}
