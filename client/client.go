// Package client is the single point of outbound communication with the
// Metroll API. Calls are single-attempt (no retry); every failure comes
// back as a tagged *Error so call sites can match on the kind instead of
// probing response shapes.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"metroll_cms/constants"
	"metroll_cms/model"
)

type ErrorKind string

const (
	KindNetwork    ErrorKind = "NETWORK"
	KindAuth       ErrorKind = "AUTH"
	KindValidation ErrorKind = "VALIDATION"
	KindUnknown    ErrorKind = "UNKNOWN"
)

type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// AsError returns the tagged error inside err, normalizing anything else
// into an unknown-kind error so nothing escapes the taxonomy.
func AsError(err error) *Error {
	if err == nil {
		return nil
	}
	if ce, ok := err.(*Error); ok {
		return ce
	}
	return &Error{Kind: KindUnknown, Message: err.Error()}
}

type sessionKey struct{}

// WithSession attaches the login session to a request context; Perform
// reads the upstream bearer token from it.
func WithSession(ctx context.Context, s *model.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

func SessionFromContext(ctx context.Context) *model.Session {
	s, _ := ctx.Value(sessionKey{}).(*model.Session)
	return s
}

type Client struct {
	BaseURL string
	HTTP    *http.Client

	// OnUnauthorized runs when the upstream answers 401, before the Auth
	// error is returned. main wires it to destroy the local session.
	OnUnauthorized func(ctx context.Context, s *model.Session)
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Perform sends one JSON request and returns the raw 2xx body. body may be
// nil; query may be nil.
func (c *Client) Perform(ctx context.Context, method, path string, body any, query url.Values) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, &Error{Kind: KindUnknown, Message: err.Error()}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.buildURL(path, query), reader)
	if err != nil {
		return nil, &Error{Kind: KindUnknown, Message: err.Error()}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.attachBearer(ctx, req)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Message: err.Error()}
	}
	return c.finish(ctx, resp.StatusCode, raw)
}

func (c *Client) buildURL(path string, query url.Values) string {
	u := c.BaseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

func (c *Client) attachBearer(ctx context.Context, req *http.Request) {
	if s := SessionFromContext(ctx); s != nil && s.UpstreamToken != "" {
		req.Header.Set("Authorization", "Bearer "+s.UpstreamToken)
	}
}

// finish turns a status/body pair into either the raw JSON or a tagged
// error via the normalization chain: server "error" field, server
// "message" field, then the generic fallback.
func (c *Client) finish(ctx context.Context, status int, raw []byte) (json.RawMessage, error) {
	if status >= 200 && status < 300 {
		return raw, nil
	}
	if status == http.StatusUnauthorized {
		if c.OnUnauthorized != nil {
			c.OnUnauthorized(ctx, SessionFromContext(ctx))
		}
		return nil, &Error{Kind: KindAuth, Message: normalizeMessage(raw, constants.SESSION_EXPIRED)}
	}
	kind := KindUnknown
	if status >= 400 && status < 500 {
		kind = KindValidation
	}
	return nil, &Error{Kind: kind, Message: normalizeMessage(raw, constants.ERROR_UNKNOWN)}
}

func normalizeMessage(raw []byte, fallback string) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	return fallback
}
