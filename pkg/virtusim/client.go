// Package virtusim is a thin client for the upstream store API that resells
// VirtuSIM virtual phone numbers. Every endpoint answers with the same
// success/data/message envelope; the client normalizes transport failures
// into that envelope as well, so callers always deal with one shape.
package virtusim

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"chirostore/internal/core/httpclient"
)

const unknownErrorMessage = "Unknown error occurred"

// ErrMalformedResponse is returned when the envelope reports success but the
// data payload is missing or does not match the endpoint's contract.
var ErrMalformedResponse = errors.New("malformed response data")

// Error is an application-level failure reported (or synthesized) by the
// store API envelope.
type Error struct {
	// Message is the envelope's message field.
	Message string
	// StatusCode is the envelope's optional application status code.
	StatusCode int
	// Detail is the envelope's optional error field.
	Detail string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Detail != "" {
		return e.Detail
	}
	return unknownErrorMessage
}

// Client calls the upstream store API. Construct it once and pass it to the
// components that need it; it holds no mutable state.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a Client for the given base URL with a fixed per-request timeout.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpclient.NewClient(timeout),
	}
}

// Do executes a single request against the store API and normalizes the
// outcome into an Envelope. It never reports a transport error directly:
// network and parse failures come back as unsuccessful envelopes carrying the
// failure text, and non-2xx responses carry only the status code.
//
// The body of a non-2xx response is discarded even when it holds a structured
// error. This mirrors the upstream client contract; whether the backend ever
// sends a usable error body there is unconfirmed.
func (c *Client) Do(ctx context.Context, method, path string, body any, headers map[string]string) Envelope {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return failureEnvelope(err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return failureEnvelope(err)
	}

	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return failureEnvelope(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return Envelope{
			Success: false,
			Message: fmt.Sprintf("HTTP error! status: %d", resp.StatusCode),
		}
	}

	var env Envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return failureEnvelope(err)
	}
	return env
}

// failureEnvelope wraps a client-side failure into the uniform envelope shape.
func failureEnvelope(err error) Envelope {
	msg := unknownErrorMessage
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	return Envelope{Success: false, Message: msg}
}

// envelopeError converts an unsuccessful envelope into an *Error.
func envelopeError(env Envelope) error {
	return &Error{
		Message:    env.Message,
		StatusCode: env.StatusCode,
		Detail:     env.Error,
	}
}

// ListServices fetches the purchasable service catalog.
func (c *Client) ListServices(ctx context.Context) ([]Service, error) {
	env := c.Do(ctx, http.MethodGet, "/services", nil, nil)
	if !env.Success {
		return nil, envelopeError(env)
	}

	var payload struct {
		Data []Service `json:"data"`
	}
	if err := json.Unmarshal(env.Data, &payload); err != nil || payload.Data == nil {
		return nil, ErrMalformedResponse
	}
	return payload.Data, nil
}

// CreateOrder places an order for a service/operator pair.
func (c *Client) CreateOrder(ctx context.Context, req OrderRequest) (Order, error) {
	env := c.Do(ctx, http.MethodPost, "/order", req, nil)
	if !env.Success {
		return Order{}, envelopeError(env)
	}

	var order Order
	if len(env.Data) == 0 || json.Unmarshal(env.Data, &order) != nil {
		return Order{}, ErrMalformedResponse
	}
	return order, nil
}

// ActiveOrders fetches all orders that are still in flight.
func (c *Client) ActiveOrders(ctx context.Context) ([]Order, error) {
	env := c.Do(ctx, http.MethodGet, "/active-orders", nil, nil)
	if !env.Success {
		return nil, envelopeError(env)
	}

	// An empty list ("[]") is valid; an absent, null or non-array payload is not.
	var orders []Order
	if err := json.Unmarshal(env.Data, &orders); err != nil || orders == nil {
		return nil, ErrMalformedResponse
	}
	return orders, nil
}

// OrderStatus fetches the current state of a single order.
func (c *Client) OrderStatus(ctx context.Context, orderID string) (Order, error) {
	env := c.Do(ctx, http.MethodGet, "/status/"+orderID, nil, nil)
	if !env.Success {
		return Order{}, envelopeError(env)
	}

	var order Order
	if len(env.Data) == 0 || json.Unmarshal(env.Data, &order) != nil {
		return Order{}, ErrMalformedResponse
	}
	return order, nil
}

// UpdateStatus requests a status change for an order. The upstream response
// data shape is unspecified, so only the envelope outcome is interpreted.
func (c *Client) UpdateStatus(ctx context.Context, req SetStatusRequest) error {
	env := c.Do(ctx, http.MethodPut, "/status", req, nil)
	if !env.Success {
		return envelopeError(env)
	}
	return nil
}

// PricingPreview computes the markup breakdown for a given wholesale price.
func (c *Client) PricingPreview(ctx context.Context, originalPrice int64) (Pricing, error) {
	env := c.Do(ctx, http.MethodGet, fmt.Sprintf("/pricing/%d", originalPrice), nil, nil)
	if !env.Success {
		return Pricing{}, envelopeError(env)
	}

	var pricing Pricing
	if len(env.Data) == 0 || json.Unmarshal(env.Data, &pricing) != nil {
		return Pricing{}, ErrMalformedResponse
	}
	return pricing, nil
}

// Health fetches the upstream health report.
func (c *Client) Health(ctx context.Context) (HealthCheck, error) {
	env := c.Do(ctx, http.MethodGet, "/health", nil, nil)
	if !env.Success {
		return HealthCheck{}, envelopeError(env)
	}

	var health HealthCheck
	if len(env.Data) == 0 || json.Unmarshal(env.Data, &health) != nil {
		return HealthCheck{}, ErrMalformedResponse
	}
	return health, nil
}
