// Package shopsdk is a typed Go client for the storefront service. The
// SDKClient covers unauthenticated operations (signup, login, catalog,
// health); successful signup or login returns a Session bound to the issued
// bearer token for the authenticated endpoints.
package shopsdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// SDKClient is a client for the storefront service.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a storefront client with a sensible request timeout.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// AdminSignup registers an admin account and returns an authenticated session.
func (c *SDKClient) AdminSignup(ctx context.Context, req SignupRequest) (*Session, error) {
	return c.authPost(ctx, "/admin/signup", req, sessionAdmin)
}

// AdminLogin authenticates an admin and returns a session.
func (c *SDKClient) AdminLogin(ctx context.Context, email, password string) (*Session, error) {
	return c.authPost(ctx, "/admin/login", LoginRequest{Email: email, Password: password}, sessionAdmin)
}

// UserSignup registers a customer account and returns an authenticated session.
func (c *SDKClient) UserSignup(ctx context.Context, req SignupRequest) (*Session, error) {
	return c.authPost(ctx, "/user/signup", req, sessionUser)
}

// UserLogin authenticates a customer and returns a session.
func (c *SDKClient) UserLogin(ctx context.Context, email, password string) (*Session, error) {
	return c.authPost(ctx, "/user/login", LoginRequest{Email: email, Password: password}, sessionUser)
}

// Products fetches the public catalog, newest first.
func (c *SDKClient) Products(ctx context.Context) ([]Product, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/products", nil, "")
	if err != nil {
		return nil, err
	}

	var products []Product
	if err := decodeJSON(resp, &products, http.StatusOK); err != nil {
		return nil, err
	}
	return products, nil
}

// Livez calls the liveness probe.
func (c *SDKClient) Livez(ctx context.Context) (*HealthResponse, error) {
	return c.health(ctx, "/livez")
}

// Readyz calls the readiness probe.
func (c *SDKClient) Readyz(ctx context.Context) (*HealthResponse, error) {
	return c.health(ctx, "/readyz")
}

func (c *SDKClient) health(ctx context.Context, path string) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}

func (c *SDKClient) authPost(ctx context.Context, path string, body any, kind sessionKind) (*Session, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, path, body, "")
	if err != nil {
		return nil, err
	}

	expected := http.StatusOK
	if strings.HasSuffix(path, "/signup") {
		expected = http.StatusCreated
	}

	var auth AuthResponse
	if err := decodeJSON(resp, &auth, expected); err != nil {
		return nil, err
	}

	return &Session{client: c, token: auth.Token, account: auth.User, kind: kind}, nil
}
