package viddler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/antonholmquist/jason"

	"github.com/go-viddler/viddler/params"
)

// RegisterUser creates a Viddler account (viddler.users.register) and
// returns the new user name. Restricted to qualified API keys.
//
// attrs must hold user, email, fname, lname, password, question, answer,
// lang and termsaccepted ("1"), and may hold company.
func (c *Client) RegisterUser(ctx context.Context, attrs params.Values) (string, error) {
	if err := c.registry.Validate("users.register", attrs); err != nil {
		return "", err
	}
	resp, err := c.Run(ctx, http.MethodGet, "users.register", func(p *params.Values) {
		p.Set("api_key", c.apiKey)
		p.Merge(attrs)
	})
	if err != nil {
		return "", fmt.Errorf("viddler: register user: %w", err)
	}
	username := getString(resp, "user", "username")
	if username == "" {
		return "", fmt.Errorf("viddler: register user: no username in response")
	}
	return username, nil
}

// FindProfile returns a user's public profile (viddler.users.getProfile).
func (c *Client) FindProfile(ctx context.Context, username string) (*User, error) {
	resp, err := c.Run(ctx, http.MethodGet, "users.getProfile", func(p *params.Values) {
		p.Set("api_key", c.apiKey)
		p.Set("user", username)
	})
	if err != nil {
		return nil, fmt.Errorf("viddler: find profile %s: %w", username, err)
	}
	return userFrom(resp, "find profile")
}

// UpdateProfile changes the profile of the authenticated user
// (viddler.users.setProfile). attrs may hold first_name, last_name,
// about_me, birthdate (yyyy-mm-dd), gender ("m" or "f"), company and city.
// It requires a session.
func (c *Client) UpdateProfile(ctx context.Context, attrs params.Values) (*User, error) {
	if err := c.registry.Validate("users.setProfile", attrs); err != nil {
		return nil, err
	}
	if err := c.requireSession(ctx); err != nil {
		return nil, fmt.Errorf("viddler: update profile: %w", err)
	}
	resp, err := c.send(ctx, http.MethodPost, "users.setProfile", attrs, params.Values{})
	if err != nil {
		return nil, fmt.Errorf("viddler: update profile: %w", err)
	}
	return userFrom(resp, "update profile")
}

// UpdateAccount changes account options of the authenticated user
// (viddler.users.setOptions) and returns the number of options updated.
// Options are "1" or "0"; see DefaultRegistry for their names. Restricted
// to partner API keys. It requires a session.
func (c *Client) UpdateAccount(ctx context.Context, attrs params.Values) (int, error) {
	if err := c.registry.Validate("users.setOptions", attrs); err != nil {
		return 0, err
	}
	if err := c.requireSession(ctx); err != nil {
		return 0, fmt.Errorf("viddler: update account: %w", err)
	}
	resp, err := c.send(ctx, http.MethodGet, "users.setOptions", attrs, params.Values{})
	if err != nil {
		return 0, fmt.Errorf("viddler: update account: %w", err)
	}
	return getInt(resp, "updated"), nil
}

func userFrom(resp *jason.Object, op string) (*User, error) {
	node, err := resp.GetObject("user")
	if err != nil {
		return nil, fmt.Errorf("viddler: %s: no user in response", op)
	}
	return NewUser(node), nil
}
