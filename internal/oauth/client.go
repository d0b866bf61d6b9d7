// Package oauth talks to the external identity provider that signs admins in.
package oauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

var ErrNotConfigured = errors.New("oauth provider is not configured")

// UserInfo is the identity returned by the provider.
type UserInfo struct {
	OpenID      string `json:"openId"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	LoginMethod string `json:"loginMethod"`
}

type Client struct {
	conf        oauth2.Config
	userInfoURL string
	httpClient  *http.Client
}

// NewClient builds a client for serverURL. An empty serverURL or appID yields
// a disabled client.
func NewClient(serverURL, appID, redirectURL string) *Client {
	base := strings.TrimRight(strings.TrimSpace(serverURL), "/")
	c := &Client{httpClient: &http.Client{Timeout: 10 * time.Second}}
	if base == "" || appID == "" {
		return c
	}
	c.conf = oauth2.Config{
		ClientID:    appID,
		RedirectURL: redirectURL,
		Endpoint: oauth2.Endpoint{
			AuthURL:   base + "/oauth/authorize",
			TokenURL:  base + "/oauth/token",
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
	c.userInfoURL = base + "/oauth/userinfo"
	return c
}

func (c *Client) Enabled() bool {
	return c != nil && c.userInfoURL != ""
}

func (c *Client) AuthCodeURL(state string) string {
	return c.conf.AuthCodeURL(state)
}

// Exchange trades an authorization code for the user's identity.
func (c *Client) Exchange(ctx context.Context, code string) (*UserInfo, error) {
	if !c.Enabled() {
		return nil, ErrNotConfigured
	}
	if strings.TrimSpace(code) == "" {
		return nil, errors.New("missing authorization code")
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	tok, err := c.conf.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchange code: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.userInfoURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.conf.Client(ctx, tok).Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("fetch user info: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var info UserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("decode user info: %w", err)
	}
	if info.OpenID == "" {
		return nil, errors.New("user info without openId")
	}
	return &info, nil
}
