package viddler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-viddler/viddler/params"
)

// Authenticate opens a session with the client's username and password
// (viddler.users.auth) and returns the session id.
//
// Methods that require a session call Authenticate on their own, so there
// is no need to call it first. It is useful to check credentials.
func (c *Client) Authenticate(ctx context.Context) (string, error) {
	if !c.canAuthenticate() {
		return "", ErrAuthenticationRequired
	}

	c.mu.RLock()
	user, password := c.username, c.password
	c.mu.RUnlock()

	resp, err := c.Run(ctx, http.MethodGet, "users.auth", func(p *params.Values) {
		p.Set("api_key", c.apiKey)
		p.Set("user", user)
		p.Set("password", password)
	})
	if err != nil {
		return "", fmt.Errorf("viddler: authenticate: %w", err)
	}

	sid := getString(resp, "auth", "sessionid")
	if sid == "" {
		return "", fmt.Errorf("viddler: authenticate: no session id in response")
	}
	c.SetSessionID(sid)
	c.logger.Debug().Str("user", user).Msg("Opened Viddler session")
	return sid, nil
}

// requireSession authenticates unless a session is already open.
func (c *Client) requireSession(ctx context.Context) error {
	if c.Authenticated() {
		return nil
	}
	_, err := c.Authenticate(ctx)
	return err
}

// optionalSession opens a session when credentials are available. Calls
// for which a session is optional still work without one.
func (c *Client) optionalSession(ctx context.Context) error {
	if c.Authenticated() || !c.canAuthenticate() {
		return nil
	}
	_, err := c.Authenticate(ctx)
	return err
}
