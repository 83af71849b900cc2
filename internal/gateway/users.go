package gateway

import (
	"context"
	"fmt"
	"net/http"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message  string `json:"message"`
	Email    string `json:"email"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
}

type signupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
}

// Login authenticates by email and returns the user's profile.
func (c *Client) Login(ctx context.Context, email, password string) (Profile, error) {
	resp, err := c.do(ctx, http.MethodPost, "/users/login", nil, loginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return Profile{}, err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		resp.Body.Close()
		return Profile{}, ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Profile{}, rejection(resp, "/users/login")
	}

	var parsed loginResponse
	if err := decodeInto(resp, &parsed); err != nil {
		return Profile{}, err
	}
	return Profile{
		Username: parsed.Username,
		Email:    parsed.Email,
		FullName: parsed.FullName,
	}, nil
}

// Signup registers a new account.
func (c *Client) Signup(ctx context.Context, username, email, fullName, password string) error {
	resp, err := c.do(ctx, http.MethodPost, "/users/signup", nil, signupRequest{
		Username: username,
		Email:    email,
		FullName: fullName,
		Password: password,
	})
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return rejection(resp, "/users/signup")
	}

	var ack struct {
		Message  string `json:"message"`
		Username string `json:"username"`
	}
	if err := decodeInto(resp, &ack); err != nil {
		return err
	}
	if ack.Username == "" {
		return fmt.Errorf("%w: signup returned no username", ErrServerRejected)
	}
	return nil
}
