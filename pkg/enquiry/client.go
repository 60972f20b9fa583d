package enquiry

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/paradise-realestate/relay/pkg/contact"
)

// ContactPath is the relay endpoint, relative to the base URL.
const ContactPath = "/api/contact"

// maxResponseBytes caps how much of a response body is read.
const maxResponseBytes = 64 << 10

// Client submits enquiries to a remote relay over HTTP.
type Client struct {
	endpoint string
	http     *http.Client
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the HTTP client. Its transport is used as is.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// NewClient creates a Client posting to baseURL + ContactPath. Requests
// are traced with the global OpenTelemetry provider.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		endpoint: strings.TrimRight(baseURL, "/") + ContactPath,
		http:     &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Submit posts s and decodes the relay result. Transport errors, non-2xx
// statuses and undecodable bodies are returned as errors; a decoded
// Result is returned alongside when available.
func (c *Client) Submit(ctx context.Context, s contact.Submission) (contact.Result, error) {
	body, err := json.Marshal(s)
	if err != nil {
		return contact.Result{}, fmt.Errorf("enquiry: encode submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return contact.Result{}, fmt.Errorf("enquiry: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return contact.Result{}, fmt.Errorf("enquiry: post submission: %w", err)
	}
	defer resp.Body.Close()

	var res contact.Result
	decodeErr := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&res)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err := fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
		if decodeErr == nil && res.Error != "" {
			err = fmt.Errorf("%w: %s", err, res.Error)
		}
		return res, err
	}
	if decodeErr != nil {
		return contact.Result{}, errors.Join(ErrMalformedResponse, decodeErr)
	}
	return res, nil
}
