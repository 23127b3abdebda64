package telegraph

import (
	"context"
	"encoding/json"
	"net/url"
)

// Account is a publishing identity on the service.
type Account struct {
	ShortName   string `json:"short_name"`
	AuthorName  string `json:"author_name,omitempty"`
	AuthorURL   string `json:"author_url,omitempty"`
	AccessToken string `json:"access_token,omitempty"`
	AuthURL     string `json:"auth_url,omitempty"`
	PageCount   int    `json:"page_count,omitempty"`
}

// CreateAccount registers a new account and adopts its access token for
// subsequent calls on this client.
func (c *Client) CreateAccount(ctx context.Context, shortName, authorName, authorURL string) (*Account, error) {
	params := url.Values{}
	params.Set("short_name", shortName)
	if authorName != "" {
		params.Set("author_name", authorName)
	}
	if authorURL != "" {
		params.Set("author_url", authorURL)
	}

	var account Account
	if err := c.invoke(ctx, "createAccount", params, &account); err != nil {
		return nil, err
	}
	c.accessToken = account.AccessToken
	return &account, nil
}

// EditAccountInfo updates account fields; empty arguments are left
// untouched on the server.
func (c *Client) EditAccountInfo(ctx context.Context, shortName, authorName, authorURL string) (*Account, error) {
	if err := c.requireToken(); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("access_token", c.accessToken)
	if shortName != "" {
		params.Set("short_name", shortName)
	}
	if authorName != "" {
		params.Set("author_name", authorName)
	}
	if authorURL != "" {
		params.Set("author_url", authorURL)
	}

	var account Account
	if err := c.invoke(ctx, "editAccountInfo", params, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// GetAccountInfo fetches the requested account fields. With no fields it
// asks for the service's full set.
func (c *Client) GetAccountInfo(ctx context.Context, fields ...string) (*Account, error) {
	if err := c.requireToken(); err != nil {
		return nil, err
	}

	if len(fields) == 0 {
		fields = []string{"short_name", "author_name", "author_url", "auth_url", "page_count"}
	}
	encoded, err := json.Marshal(fields)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("access_token", c.accessToken)
	params.Set("fields", string(encoded))

	var account Account
	if err := c.invoke(ctx, "getAccountInfo", params, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// RevokeAccessToken invalidates the current token and adopts the freshly
// issued one. All previously generated auth links stop working.
func (c *Client) RevokeAccessToken(ctx context.Context) (*Account, error) {
	if err := c.requireToken(); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("access_token", c.accessToken)

	var account Account
	if err := c.invoke(ctx, "revokeAccessToken", params, &account); err != nil {
		return nil, err
	}
	c.accessToken = account.AccessToken
	return &account, nil
}
