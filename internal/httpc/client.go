package httpc

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Request is a single-use description of an HTTP call.
type Request struct {
	URL     string
	Method  string
	Headers map[string]string
	Body    string
	Timeout time.Duration
}

// Response carries the status, body text, and headers of a completed call.
type Response struct {
	Status  int
	Body    string
	Headers map[string]string
}

// Client executes single-shot requests. No retries, no deduplication.
type Client struct {
	httpClient *http.Client
	timeout    time.Duration
}

// New creates a client with the given default per-request timeout.
func New(timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{},
		timeout:    timeout,
	}
}

// NewWithHTTPClient wraps an existing http.Client (useful for testing).
func NewWithHTTPClient(hc *http.Client, timeout time.Duration) *Client {
	return &Client{httpClient: hc, timeout: timeout}
}

// Get executes a GET request for the URL with the given headers.
func (c *Client) Get(ctx context.Context, rawURL string, headers map[string]string) (Response, error) {
	return c.Do(ctx, Request{URL: rawURL, Method: http.MethodGet, Headers: headers})
}

// Post executes a POST request with the given body and headers.
func (c *Client) Post(ctx context.Context, rawURL, body string, headers map[string]string) (Response, error) {
	return c.Do(ctx, Request{URL: rawURL, Method: http.MethodPost, Headers: headers, Body: body})
}

// Do executes the request and returns a response record, or a typed *Error.
// 4xx and 5xx statuses are returned as errors alongside the response body.
func (c *Client) Do(ctx context.Context, r Request) (Response, error) {
	if _, err := url.ParseRequestURI(r.URL); err != nil {
		return Response{}, &Error{Kind: KindBadURL, URL: r.URL, Err: err}
	}

	timeout := r.Timeout
	if timeout <= 0 {
		timeout = c.timeout
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	method := r.Method
	if method == "" {
		method = http.MethodGet
	}

	var bodyReader io.Reader
	if r.Body != "" {
		bodyReader = strings.NewReader(r.Body)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.URL, bodyReader)
	if err != nil {
		return Response{}, &Error{Kind: KindBadURL, URL: r.URL, Err: err}
	}
	for k, v := range r.Headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Response{}, classifyTransport(r.URL, err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, classifyTransport(r.URL, err)
	}

	out := Response{
		Status:  resp.StatusCode,
		Body:    string(bodyBytes),
		Headers: flattenHeaders(resp.Header),
	}

	if statusErr := classifyStatus(r.URL, resp.StatusCode); statusErr != nil {
		return out, statusErr
	}
	return out, nil
}

// GetBytes executes a GET request and returns the raw body bytes. Used for
// binary payloads such as images, where string conversion would be waste.
func (c *Client) GetBytes(ctx context.Context, rawURL string, headers map[string]string) ([]byte, error) {
	if _, err := url.ParseRequestURI(rawURL); err != nil {
		return nil, &Error{Kind: KindBadURL, URL: rawURL, Err: err}
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &Error{Kind: KindBadURL, URL: rawURL, Err: err}
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, classifyTransport(rawURL, err)
	}
	defer resp.Body.Close()

	if statusErr := classifyStatus(rawURL, resp.StatusCode); statusErr != nil {
		return nil, statusErr
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classifyTransport(rawURL, err)
	}
	return data, nil
}

func flattenHeaders(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for k, vs := range h {
		if len(vs) > 0 {
			out[k] = vs[0]
		}
	}
	return out
}
