package api

import (
	"context"
	"net/http"
	"net/url"
)

// CreateSession starts a new, empty calculator session.
func (c *Client) CreateSession(ctx context.Context) (*Session, error) {
	var out Session
	if err := c.do(ctx, http.MethodPost, "/v1/sessions", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetSession returns the current state of a session.
func (c *Client) GetSession(ctx context.Context, id string) (*Session, error) {
	var out Session
	if err := c.do(ctx, http.MethodGet, "/v1/sessions/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Press presses a keypad button in a session and returns the new state.
func (c *Client) Press(ctx context.Context, id, button string) (*Session, error) {
	var out Session
	path := "/v1/sessions/" + url.PathEscape(id) + "/buttons"
	if err := c.do(ctx, http.MethodPost, path, PressRequest{Button: button}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteSession ends a session.
func (c *Client) DeleteSession(ctx context.Context, id string) (*DeleteSessionResponse, error) {
	var out DeleteSessionResponse
	if err := c.do(ctx, http.MethodDelete, "/v1/sessions/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
