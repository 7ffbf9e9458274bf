package apiclient

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/example/shop-console/internal/model"
)

// Login exchanges credentials for a bearer token. The API has used several
// field names for the token over time, so all of them are checked after
// unwrapping; none present is a contract violation.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	body, err := c.do(ctx, http.MethodPost, "/auth/login", model.LoginPayload{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return "", err
	}

	for _, candidate := range []json.RawMessage{unwrapData(body), body} {
		var fields struct {
			AccessToken  string `json:"accessToken"`
			Token        string `json:"token"`
			AccessToken2 string `json:"access_token"`
		}
		if err := json.Unmarshal(candidate, &fields); err != nil {
			continue
		}
		switch {
		case fields.AccessToken != "":
			return fields.AccessToken, nil
		case fields.Token != "":
			return fields.Token, nil
		case fields.AccessToken2 != "":
			return fields.AccessToken2, nil
		}
	}
	return "", ErrNoToken
}

// Register creates a new account. The response body is opaque.
func (c *Client) Register(ctx context.Context, email, password string) error {
	_, err := c.do(ctx, http.MethodPost, "/auth/register", model.RegisterPayload{
		Email:    email,
		Password: password,
	})
	return err
}

// Profile fetches the authenticated user's record.
func (c *Client) Profile(ctx context.Context) (*model.User, error) {
	body, err := c.do(ctx, http.MethodGet, "/user/profile", nil)
	if err != nil {
		return nil, err
	}
	var user model.User
	if err := json.Unmarshal(unwrapData(body), &user); err != nil {
		return nil, err
	}
	return &user, nil
}
