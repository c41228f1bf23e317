// transport/client.go
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	console_errors "github.com/buildtrack/epc-console/errors"
	logger "github.com/buildtrack/epc-console/logging"
	"github.com/buildtrack/epc-console/model"
	"github.com/buildtrack/epc-console/session"
)

// Client is the shared REST transport every resource client is built on.
// It attaches the session's bearer token, encodes bodies, and decodes the
// backend's {status, data, message} envelope exactly once, so callers only
// ever see a typed value or an error. There is no retry, timeout or backoff:
// a failed call is reported once and abandoned.
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    *session.Session
}

// New creates a transport client for the given base URL and session.
func New(baseURL string, sess *session.Session) (*Client, error) {
	if baseURL == "" {
		return nil, console_errors.ErrMissingBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
		session:    sess,
	}, nil
}

// NewWithHTTPClient creates a transport client using a caller-supplied
// http.Client, used by tests.
func NewWithHTTPClient(baseURL string, sess *session.Session, hc *http.Client) (*Client, error) {
	c, err := New(baseURL, sess)
	if err != nil {
		return nil, err
	}
	c.httpClient = hc
	return c, nil
}

// ListParams are the optional pagination/search parameters of list
// operations. Zero values are omitted from the query string entirely so an
// empty search never over-filters on the server.
type ListParams struct {
	Page     int
	PageSize int
	Search   string
}

// Values encodes the non-empty parameters.
func (p ListParams) Values() url.Values {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.PageSize > 0 {
		q.Set("page_size", strconv.Itoa(p.PageSize))
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	return q
}

// Get performs a GET and decodes the envelope's data into out.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return c.do(ctx, http.MethodGet, u, "", nil, out)
}

// Post performs a JSON POST.
func (c *Client) Post(ctx context.Context, path string, body any, out any) error {
	return c.doJSON(ctx, http.MethodPost, path, body, out)
}

// Put performs a JSON PUT.
func (c *Client) Put(ctx context.Context, path string, body any, out any) error {
	return c.doJSON(ctx, http.MethodPut, path, body, out)
}

// Delete performs a DELETE.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, c.baseURL+path, "", nil, nil)
}

// PostForm performs a multipart POST for file-bearing operations.
func (c *Client) PostForm(ctx context.Context, path string, form *Form, out any) error {
	contentType, body, err := form.Encode()
	if err != nil {
		return fmt.Errorf("failed to encode form: %w", err)
	}
	return c.do(ctx, http.MethodPost, c.baseURL+path, contentType, body, out)
}

// PutForm performs a multipart PUT for file-bearing updates.
func (c *Client) PutForm(ctx context.Context, path string, form *Form, out any) error {
	contentType, body, err := form.Encode()
	if err != nil {
		return fmt.Errorf("failed to encode form: %w", err)
	}
	return c.do(ctx, http.MethodPut, c.baseURL+path, contentType, body, out)
}

func (c *Client) doJSON(ctx context.Context, method, path string, body any, out any) error {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}
	return c.do(ctx, method, c.baseURL+path, "application/json", bytes.NewReader(jsonData), out)
}

func (c *Client) do(ctx context.Context, method, u, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	// The Authorization header is omitted entirely when the session holds no
	// token; it must never be sent as a bare "Bearer ".
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error("Request failed", zap.String("method", method), zap.String("url", u), zap.Error(err))
		return fmt.Errorf("failed to call backend: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	return decodeEnvelope(resp.StatusCode, respBody, out)
}

// decodeEnvelope turns one raw response into either out (populated from the
// envelope's data) or an *errors.APIError. An HTTP success with status=false
// in the envelope is still a failure.
func decodeEnvelope(statusCode int, body []byte, out any) error {
	success := statusCode >= 200 && statusCode < 300

	if len(body) == 0 {
		if success {
			return nil
		}
		return &console_errors.APIError{StatusCode: statusCode}
	}

	var env model.Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		if success {
			return fmt.Errorf("failed to unmarshal response: %w", err)
		}
		return &console_errors.APIError{StatusCode: statusCode}
	}

	if !success || !env.Status {
		return &console_errors.APIError{
			StatusCode: statusCode,
			Message:    env.Message,
			Fields:     flattenFieldErrors(env.Errors),
		}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to unmarshal response data: %w", err)
		}
	}
	return nil
}

func flattenFieldErrors(errs map[string][]string) map[string]string {
	if len(errs) == 0 {
		return nil
	}
	flat := make(map[string]string, len(errs))
	for field, msgs := range errs {
		if len(msgs) > 0 {
			flat[field] = msgs[0]
		}
	}
	return flat
}
