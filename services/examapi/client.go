package examapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/vamsidulam/exameval/core"
	"github.com/vamsidulam/exameval/core/session"
)

// Client is the console's single gateway to the backend REST API. Wrappers
// attach auth and content-type headers, (de)serialize JSON or multipart
// bodies, and surface failure as-is: no retries, no backoff, no idempotency
// handling anywhere.

type (
	Options struct {
		// BaseURL overrides the configured API base URL (tests mostly).
		BaseURL string
		// Timeout overrides the configured request timeout; the default of 0
		// is faithful to the original client, which configured none.
		Timeout time.Duration

		Session *session.Context
		Logger  core.Logger
	}

	Client struct {
		base    string
		http    *http.Client
		session *session.Context
		logger  core.Logger
	}
)

// APIError is a backend-reported failure: a non-2xx status with a JSON
// `detail` message, surfaced verbatim.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

func NewClient(opts Options) *Client {
	base := opts.BaseURL
	if base == "" {
		base = core.Conf.GetString("apiBaseUrl")
	}
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = core.Conf.GetDuration("requestTimeout")
	}
	logger := opts.Logger
	if logger == nil {
		logger = core.NewStdLogger(log.New(io.Discard, "", 0))
	}
	return &Client{
		base:    strings.TrimRight(base, "/"),
		http:    &http.Client{Timeout: timeout},
		session: opts.Session,
		logger:  logger,
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "encoding request body")
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reqBody)
	if err != nil {
		return errors.Wrap(err, "building request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if err := c.authorize(req); err != nil {
		return err
	}
	return c.send(req, out)
}

// upload issues a multipart request with a `file` part plus metadata fields.
func (c *Client) upload(ctx context.Context, path string, file io.Reader, filename string, fields map[string]string, out interface{}) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return errors.Wrap(err, "creating file part")
	}
	if _, err := io.Copy(part, file); err != nil {
		return errors.Wrap(err, "copying file contents")
	}
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return errors.Wrapf(err, "writing field %s", k)
		}
	}
	if err := w.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, &buf)
	if err != nil {
		return errors.Wrap(err, "building request")
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	if err := c.authorize(req); err != nil {
		return err
	}
	return c.send(req, out)
}

// authorize attaches the bearer token; with no token the request fails here,
// before ever reaching the network.
func (c *Client) authorize(req *http.Request) error {
	if c.session == nil {
		return nil // unauthenticated endpoints (login)
	}
	token, err := c.session.Token()
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	return nil
}

func (c *Client) send(req *http.Request, out interface{}) error {
	c.logger.Debug(fmt.Sprintf("%s %s", req.Method, req.URL.Path))

	resp, err := c.http.Do(req)
	if err != nil {
		// transport failure: backend unreachable, DNS, timeout...
		return errors.Wrapf(err, "%s %s: backend unreachable", req.Method, req.URL.Path)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "reading response body")
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeAPIError(resp.StatusCode, data)
	}
	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrapf(err, "decoding %s response", req.URL.Path)
	}
	return nil
}

func decodeAPIError(status int, data []byte) error {
	apiErr := &APIError{StatusCode: status}
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(data, &payload); err == nil && payload.Detail != "" {
		apiErr.Detail = payload.Detail
	} else if msg := strings.TrimSpace(string(data)); msg != "" && msg[0] != '<' {
		apiErr.Detail = msg
	}
	return apiErr
}
