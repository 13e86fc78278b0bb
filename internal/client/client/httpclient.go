package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/lectureportal/internal/client/models"
	"github.com/dmitrijs2005/lectureportal/internal/common"
	"github.com/dmitrijs2005/lectureportal/internal/logging"
	"golang.org/x/sync/singleflight"
)

// Session is the token source behind an HTTPClient.
type Session interface {
	AccessToken() string
	RefreshToken() string
	// RefreshTokens exchanges the refresh token for a new pair and returns the
	// new access token.
	RefreshTokens(ctx context.Context) (string, error)
	Logout(ctx context.Context) error
}

// Request describes one API call. Path is relative to the base URL; Body is
// encoded as JSON.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
	Header http.Header
}

type HTTPClient struct {
	baseURL string
	http    *http.Client
	session Session
	logger  logging.Logger
	refresh singleflight.Group
}

type Option func(*HTTPClient)

// WithSession enables bearer authentication and the refresh-on-401 flow.
func WithSession(s Session) Option {
	return func(c *HTTPClient) { c.session = s }
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.logger = l }
}

// WithTransport replaces the underlying round tripper, keeping the timeout.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *HTTPClient) { c.http.Transport = rt }
}

func NewHTTPClient(baseURL string, timeout time.Duration, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logging.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *HTTPClient) BaseURL() string {
	return c.baseURL
}

func (c *HTTPClient) Do(ctx context.Context, r Request, out any) error {
	_, err := c.DoStatus(ctx, r, out)
	return err
}

// DoStatus performs r and decodes a 2xx body into out, returning the response
// status. A 401 answered while a refresh token is held triggers one token
// refresh and a single replay of the request; a failed refresh logs the
// session out and the original error is returned.
func (c *HTTPClient) DoStatus(ctx context.Context, r Request, out any) (int, error) {
	body, err := encodeBody(r.Body)
	if err != nil {
		return 0, err
	}

	token := c.accessToken()
	status, err := c.exchange(ctx, r, body, token, out)
	if err == nil || status != http.StatusUnauthorized {
		return status, err
	}
	if c.session == nil || c.session.RefreshToken() == "" {
		return status, err
	}

	fresh, refreshErr := c.refreshAccessToken(ctx, token)
	if refreshErr != nil {
		c.logger.Warn(ctx, "token refresh failed, logging out", "path", r.Path, "error", refreshErr)
		if logoutErr := c.session.Logout(context.WithoutCancel(ctx)); logoutErr != nil {
			c.logger.Error(ctx, "logout after failed refresh", "error", logoutErr)
		}
		return status, err
	}

	c.logger.Debug(ctx, "replaying request with refreshed token", "method", r.Method, "path", r.Path)
	return c.exchange(ctx, r, body, fresh, out)
}

// refreshAccessToken collapses concurrent refreshes into one call. A caller
// whose token was already replaced by an earlier refresh gets the current
// token without refreshing again.
func (c *HTTPClient) refreshAccessToken(ctx context.Context, stale string) (string, error) {
	v, err, _ := c.refresh.Do("refresh", func() (any, error) {
		if current := c.session.AccessToken(); current != "" && current != stale {
			return current, nil
		}
		c.logger.Info(ctx, "refreshing access token")
		return c.session.RefreshTokens(context.WithoutCancel(ctx))
	})
	if err != nil {
		return "", err
	}
	token, _ := v.(string)
	if token == "" {
		return "", ErrUnauthorized
	}
	return token, nil
}

func (c *HTTPClient) accessToken() string {
	if c.session == nil {
		return ""
	}
	return c.session.AccessToken()
}

func (c *HTTPClient) exchange(ctx context.Context, r Request, body []byte, token string, out any) (int, error) {
	u := c.baseURL + r.Path
	if len(r.Query) > 0 {
		u += "?" + r.Query.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, u, reader)
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	for k, values := range r.Header {
		for _, v := range values {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return 0, ctxErr
		}
		return 0, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("%w: read response: %w", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, &APIError{
			Status:  resp.StatusCode,
			Message: serverMessage(data),
			Method:  r.Method,
			Path:    r.Path,
		}
	}

	if out != nil && len(bytes.TrimSpace(data)) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return resp.StatusCode, fmt.Errorf("decode %s %s response: %w", r.Method, r.Path, err)
		}
	}
	return resp.StatusCode, nil
}

func encodeBody(body any) ([]byte, error) {
	if body == nil {
		return nil, nil
	}
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}
	return data, nil
}

// serverMessage extracts {"message": ...} (or {"error": ...}) from an error
// body.
func serverMessage(data []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	return payload.Error
}

func (c *HTTPClient) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.Do(ctx, Request{Method: http.MethodGet, Path: path, Query: query}, out)
}

func (c *HTTPClient) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, Request{Method: http.MethodPost, Path: path, Body: body}, out)
}

func (c *HTTPClient) Put(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, Request{Method: http.MethodPut, Path: path, Body: body}, out)
}

func (c *HTTPClient) Patch(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, Request{Method: http.MethodPatch, Path: path, Body: body}, out)
}

func (c *HTTPClient) Delete(ctx context.Context, path string) error {
	return c.Do(ctx, Request{Method: http.MethodDelete, Path: path}, nil)
}

// GetPage fetches one page of a paginated collection.
func GetPage[T any](ctx context.Context, c *HTTPClient, path string, page, pageSize int) (models.Page[T], error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("pageSize", strconv.Itoa(pageSize))

	var out models.Page[T]
	if err := c.Get(ctx, path, q, &out); err != nil {
		return models.Page[T]{}, err
	}
	return out, nil
}
