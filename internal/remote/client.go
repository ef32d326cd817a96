package remote

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
)

// Client issues bearer-authenticated JSON requests against one service.
type Client struct {
	service string
	baseURL string
	token   string
	http    *http.Client
}

func NewClient(service, baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		service: service,
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: timeout},
	}
}

// Response is a fully read HTTP response.
type Response struct {
	StatusCode int
	Body       []byte
}

func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Do sends body (if not nil) as JSON and reads the whole response. Only
// transport problems are returned as errors; status handling is left to
// the caller.
func (c *Client) Do(ctx context.Context, op, method, path string, query url.Values, body interface{}) (*Response, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, c.transportErr(op, fmt.Errorf("encode request: %w", err))
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, c.transportErr(op, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, c.transportErr(op, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.transportErr(op, fmt.Errorf("read response: %w", err))
	}

	return &Response{StatusCode: resp.StatusCode, Body: data}, nil
}

// DoJSON is Do followed by a status check and decoding into out.
func (c *Client) DoJSON(ctx context.Context, op, method, path string, query url.Values, body, out interface{}) error {
	resp, err := c.Do(ctx, op, method, path, query, body)
	if err != nil {
		return err
	}
	if !resp.OK() {
		return c.Rejection(op, resp)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Body, out); err != nil {
		return c.transportErr(op, fmt.Errorf("decode response: %w", err))
	}
	return nil
}

func (c *Client) Rejection(op string, resp *Response) *RejectionError {
	return &RejectionError{
		Service:    c.service,
		Op:         op,
		StatusCode: resp.StatusCode,
		Body:       strings.TrimSpace(string(resp.Body)),
	}
}

func (c *Client) Decode(op string, resp *Response, out interface{}) error {
	if err := json.Unmarshal(resp.Body, out); err != nil {
		return c.transportErr(op, fmt.Errorf("decode response: %w", err))
	}
	return nil
}

func (c *Client) transportErr(op string, err error) *TransportError {
	return &TransportError{Service: c.service, Op: op, Err: err}
}
