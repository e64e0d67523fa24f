package examapi

import (
	"context"
	"net/http"
)

type (
	Credentials struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	TokenResponse struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type,omitempty"`
	}
)

// Login exchanges credentials for a bearer token. The wrapper does not store
// it; the caller writes it to the application context.
func (c *Client) Login(ctx context.Context, creds Credentials) (TokenResponse, error) {
	var tok TokenResponse
	// login is the one call sent without a token
	unauthed := &Client{base: c.base, http: c.http, logger: c.logger}
	err := unauthed.do(ctx, http.MethodPost, "/auth/login", creds, &tok)
	return tok, err
}
