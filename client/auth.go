package client

import "context"

type loginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
	Email string `json:"email"`
}

// Login authenticates and persists the session triple, the same three keys
// the web client kept in localStorage.
func (c *Client) Login(ctx context.Context, email, password string) error {
	body := map[string]string{"email": email, "password": password}

	var resp loginResponse
	if err := c.post(ctx, "/api/auth/login", body, &resp); err != nil {
		return err
	}

	c.Session.Token = resp.Token
	c.Session.Role = resp.Role
	c.Session.Email = resp.Email
	return c.Session.Save()
}

// Logout clears every persisted session field. No server call is involved.
func (c *Client) Logout() error {
	return c.Session.Clear()
}
