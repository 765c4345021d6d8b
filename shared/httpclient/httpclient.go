// Package httpclient is the JSON-over-HTTP transport used by services to call each other.
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dfryer1193/memestack/shared/errs"
	"github.com/dfryer1193/memestack/shared/requestid"
)

const maxErrorBody = 1 << 10

// StatusError is returned for any response whose status was not the expected one. It
// unwraps to the error kind matching the status, if any.
type StatusError struct {
	Method string
	URL    string
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.URL, e.Status, e.Body)
}

func (e *StatusError) Unwrap() error {
	return errs.FromStatus(e.Status)
}

type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client for the service at baseURL. A nil httpClient uses a client with
// the given timeout.
func New(baseURL string, httpClient *http.Client, timeout time.Duration) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// Request describes one call. Body is JSON encoded when non-nil; Out receives the decoded
// response body when non-nil and the status matches Expect.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
	Out    any
	Expect int
}

// Do performs req. Transport failures are returned as-is; unexpected statuses become a
// *StatusError.
func (c *Client) Do(ctx context.Context, req Request) error {
	target := c.baseURL + req.Path
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	var body io.Reader
	if req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if id := requestid.FromContext(ctx); id != "" {
		httpReq.Header.Set(requestid.Header, id)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return fmt.Errorf("couldn't make the request to %s: %w", target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != req.Expect {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{
			Method: req.Method,
			URL:    target,
			Status: resp.StatusCode,
			Body:   strings.TrimSpace(string(snippet)),
		}
	}

	if req.Out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(req.Out); err != nil {
		return fmt.Errorf("decode response from %s: %w", target, err)
	}
	return nil
}
