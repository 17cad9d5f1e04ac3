package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"whatsapp-crm/internal/entities"
)

// ErrExchangeFailed is returned when the auth backend rejects a code.
var ErrExchangeFailed = errors.New("code exchange failed")

// Session is the result of a successful code exchange.
type Session struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    time.Duration
	Identity     entities.Identity
}

// Client talks to the hosted auth backend's REST API.
type Client struct {
	baseURL  string
	anonKey  string
	provider string
	http     *http.Client
}

// NewClient constructs a Client. A nil httpClient uses a 10s timeout client.
func NewClient(baseURL, anonKey, provider string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		anonKey:  anonKey,
		provider: provider,
		http:     httpClient,
	}
}

// AuthorizeURL builds the OAuth authorize URL that sends the user back to
// redirectTo with a PKCE code.
func (c *Client) AuthorizeURL(redirectTo, challenge string) string {
	q := url.Values{}
	q.Set("provider", c.provider)
	q.Set("redirect_to", redirectTo)
	q.Set("code_challenge", challenge)
	q.Set("code_challenge_method", "s256")
	return c.baseURL + "/auth/v1/authorize?" + q.Encode()
}

type tokenRequest struct {
	AuthCode     string `json:"auth_code"`
	CodeVerifier string `json:"code_verifier"`
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	User         struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

// ExchangeCode trades an authorization code and its PKCE verifier for a session.
func (c *Client) ExchangeCode(ctx context.Context, code, verifier string) (*Session, error) {
	if strings.TrimSpace(code) == "" {
		return nil, fmt.Errorf("%w: code is required", entities.ErrInvalidArgument)
	}

	body, err := json.Marshal(tokenRequest{AuthCode: code, CodeVerifier: verifier})
	if err != nil {
		return nil, fmt.Errorf("encode token request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/v1/token?grant_type=pkce", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.anonKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("token request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: status %d: %s", ErrExchangeFailed, resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return nil, fmt.Errorf("decode token response: %w", err)
	}
	if tr.AccessToken == "" || tr.User.ID == "" {
		return nil, fmt.Errorf("%w: incomplete session", ErrExchangeFailed)
	}

	return &Session{
		AccessToken:  tr.AccessToken,
		RefreshToken: tr.RefreshToken,
		ExpiresIn:    time.Duration(tr.ExpiresIn) * time.Second,
		Identity:     entities.Identity{UserID: tr.User.ID, Email: tr.User.Email},
	}, nil
}
