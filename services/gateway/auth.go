package gateway

import (
	"context"
	"net/http"
	"net/url"
)

// AuthClient talks to the auth service.
type AuthClient struct {
	client
}

func NewAuthClient(base string, hc *http.Client, tokens TokenSource) *AuthClient {
	return &AuthClient{newClient("auth", base, hc, tokens)}
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	RefreshToken string `json:"refresh_token"`
}

// Login exchanges credentials for an access token. The auth service speaks
// the OAuth2 password flow, so the email travels as `username` in a
// form-encoded body.
func (c *AuthClient) Login(ctx context.Context, email, password string) (string, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	var resp tokenResponse
	if err := c.doForm(ctx, "login", "/login", form, &resp); err != nil {
		return "", err
	}
	return resp.AccessToken, nil
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Register creates an account. The backend may ignore the requested role.
func (c *AuthClient) Register(ctx context.Context, email, password, role string) error {
	req := registerRequest{Email: email, Password: password, Role: role}
	return c.doJSON(ctx, "register", http.MethodPost, "/register", nil, req, nil)
}
