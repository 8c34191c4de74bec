package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Session is what the auth provider hands back on sign-up or sign-in. UserID
// is the durable identity; AccessToken is short-lived and never persisted by
// the session store (the token cache is opt-in, see cache.go).
type Session struct {
	AccessToken string `json:"accessToken"`
	UserID      string `json:"userId"`
}

// ProfileFields are the optional profile attributes collected at sign-up.
type ProfileFields struct {
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

// Client talks to the auth provider. The provider is opaque: the client only
// knows the three operations below.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates an auth client for the given provider URL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type signUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	ProfileFields
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	encoded, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("auth %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var eb struct {
			Error string `json:"error"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&eb); decodeErr == nil && eb.Error != "" {
			return fmt.Errorf("auth %s: %s", path, eb.Error)
		}
		return fmt.Errorf("auth %s: provider returned %d", path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode auth response: %w", err)
	}
	return nil
}

// SignUp registers a new account and returns its session.
func (c *Client) SignUp(ctx context.Context, email, password string, fields ProfileFields) (*Session, error) {
	var s Session
	req := signUpRequest{Email: email, Password: password, ProfileFields: fields}
	if err := c.post(ctx, "/signup", req, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// SignIn authenticates an existing account and returns its session.
func (c *Client) SignIn(ctx context.Context, email, password string) (*Session, error) {
	var s Session
	if err := c.post(ctx, "/signin", signInRequest{Email: email, Password: password}, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// SignOut invalidates the given session token with the provider.
func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/signout", nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("auth /signout: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("auth /signout: provider returned %d", resp.StatusCode)
	}
	return nil
}
