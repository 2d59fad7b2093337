package viddler

// SessionID returns the current session id, or "" if there is none.
func (c *Client) SessionID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sessionID
}

// SetSessionID sets the session id sent with calls that accept one, e.g.
// to reuse a session saved from an earlier run.
func (c *Client) SetSessionID(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sessionID = id
}

// Authenticated reports whether the client holds a session id.
func (c *Client) Authenticated() bool {
	return c.SessionID() != ""
}

func (c *Client) canAuthenticate() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.username != "" && c.password != ""
}
