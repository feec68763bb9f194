package backend

import (
	"context"
	"net/http"

	"github.com/wangishop/storefront/internal/domain"
)

// Login authenticates against the backend and installs the returned
// bearer token for subsequent requests. Token expiry is the backend's
// concern; a later 401 simply clears the token again.
func (c *Client) Login(ctx context.Context, email, password string) (*domain.User, error) {
	payload := map[string]string{
		"email":    email,
		"password": password,
	}

	var res struct {
		domain.User
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", payload, &res, nil); err != nil {
		return nil, err
	}

	c.SetToken(res.Token)
	user := res.User
	return &user, nil
}

// Register creates a new account and installs its token
func (c *Client) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	payload := map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	}

	var res struct {
		Token string      `json:"token"`
		User  domain.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", payload, &res, nil); err != nil {
		return nil, err
	}

	c.SetToken(res.Token)
	user := res.User
	return &user, nil
}

// Profile fetches the authenticated user's profile
func (c *Client) Profile(ctx context.Context) (*domain.User, error) {
	var user domain.User
	if err := c.do(ctx, http.MethodGet, "/api/users/profile", nil, &user, nil); err != nil {
		return nil, err
	}
	return &user, nil
}
