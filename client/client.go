// Package client is the typed Go client for the Forkful API.
//
// A Client wraps one shared http.Client and exposes one service per backend
// resource. Every request goes through the same path: encode the body, attach
// the session token, decode the response envelope. Services never talk to the
// network themselves.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

// TokenHeader is the request header the API reads the session token from.
const TokenHeader = "User-Token"

// Client is the shared transport for all resource services.
type Client struct {
	baseURL string
	httpc   *http.Client
	session SessionStore
	log     *slog.Logger

	Auth         *AuthService
	Recipes      *RecipeService
	Comments     *CommentService
	Favorites    *FavoriteService
	Likes        *LikeService
	Tags         *TagService
	Inventory    *InventoryService
	ShoppingList *ShoppingListService
	Users        *UserService
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpc = hc }
}

// WithSession injects the session store consulted for the auth token.
func WithSession(s SessionStore) Option {
	return func(c *Client) { c.session = s }
}

// WithLogger sets the logger used for transport failures.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New creates a Client rooted at baseURL (e.g. "http://localhost:8080/api").
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   http.DefaultClient,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.Auth = &AuthService{c}
	c.Recipes = &RecipeService{c}
	c.Comments = &CommentService{c}
	c.Favorites = &FavoriteService{c}
	c.Likes = &LikeService{c}
	c.Tags = &TagService{c}
	c.Inventory = &InventoryService{c}
	c.ShoppingList = &ShoppingListService{c}
	c.Users = &UserService{c}
	return c
}

// request describes one API call before it hits the wire.
type request struct {
	method string
	path   string
	query  url.Values
	body   any
	header http.Header
}

// envelope is the uniform server reply shape. The backend writes the reason
// under "msg"; some responses use "message", so both are accepted.
type envelope[T any] struct {
	Code    int    `json:"code"`
	Msg     string `json:"msg"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

func (e *envelope[T]) reason() string {
	if e.Msg != "" {
		return e.Msg
	}
	return e.Message
}

func (c *Client) newRequest(ctx context.Context, r request) (*http.Request, error) {
	u := c.baseURL + r.path
	if len(r.query) > 0 {
		u += "?" + r.query.Encode()
	}

	var body io.Reader
	if r.body != nil {
		buf, err := json.Marshal(r.body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, u, body)
	if err != nil {
		return nil, err
	}
	if r.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.session != nil {
		if token := c.session.Token(); token != "" {
			req.Header.Set(TokenHeader, token)
		}
	}
	// Per-call headers win over the session token (password reset sends its
	// own one-shot token in the same header).
	for k, vals := range r.header {
		req.Header.Del(k)
		for _, v := range vals {
			req.Header.Add(k, v)
		}
	}
	return req, nil
}

// do executes one API call and unwraps the envelope into T.
//
// Transport failures (network error, undecodable reply, non-2xx without an
// envelope) come back as plain errors. A decoded envelope with code != 1 comes
// back as *Error carrying the server's code and message; callers distinguish
// the two with errors.As.
func do[T any](ctx context.Context, c *Client, r request) (T, error) {
	var zero T

	req, err := c.newRequest(ctx, r)
	if err != nil {
		return zero, err
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.log.Error("api request failed", "method", r.method, "path", r.path, "error", err)
		return zero, fmt.Errorf("%s %s: %w", r.method, r.path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		c.log.Error("api response read failed", "method", r.method, "path", r.path, "error", err)
		return zero, fmt.Errorf("%s %s: reading response: %w", r.method, r.path, err)
	}

	var env envelope[T]
	if err := json.Unmarshal(raw, &env); err != nil {
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return zero, fmt.Errorf("%s %s: unexpected status %d", r.method, r.path, resp.StatusCode)
		}
		c.log.Error("api response decode failed", "method", r.method, "path", r.path, "error", err)
		return zero, fmt.Errorf("%s %s: decoding response: %w", r.method, r.path, err)
	}

	if env.Code != CodeOK {
		return zero, &Error{Code: env.Code, Msg: env.reason(), Status: resp.StatusCode}
	}
	return env.Data, nil
}

// doNoData executes a call whose envelope carries no payload of interest.
func doNoData(ctx context.Context, c *Client, r request) error {
	_, err := do[json.RawMessage](ctx, c, r)
	return err
}

func query(pairs ...string) url.Values {
	v := url.Values{}
	for i := 0; i+1 < len(pairs); i += 2 {
		v.Set(pairs[i], pairs[i+1])
	}
	return v
}
