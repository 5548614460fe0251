package api

import "context"

type LoginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token   string  `json:"token"`
	Profile Profile `json:"profile"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password"`
}

// Login authenticates against the backend and stores the returned bearer
// token on the client.
func (c *Client) Login(ctx context.Context, phone, password string) (*LoginResult, error) {
	var res LoginResult
	err := c.post(ctx, "auth/login", LoginRequest{Phone: phone, Password: password}, &res)
	if err != nil {
		return nil, err
	}
	c.SetToken(res.Token)
	return &res, nil
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (*Profile, error) {
	var p Profile
	if err := c.post(ctx, "auth/register", req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) Profile(ctx context.Context) (*Profile, error) {
	var p Profile
	if err := c.get(ctx, "auth/profile", nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
