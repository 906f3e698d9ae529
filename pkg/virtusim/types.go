package virtusim

import "encoding/json"

// Envelope is the uniform response wrapper every store API endpoint returns.
// Client-side failures are synthesized into the same shape.
type Envelope struct {
	// Success reports whether the call succeeded at the application level.
	Success bool `json:"success"`
	// Data holds the endpoint-specific payload. Only meaningful when Success is true.
	Data json.RawMessage `json:"data,omitempty"`
	// Message is a human-readable description, usually present on failures.
	Message string `json:"message,omitempty"`
	// StatusCode is an optional application status code.
	StatusCode int `json:"status_code,omitempty"`
	// Error is an optional machine-readable error detail.
	Error string `json:"error,omitempty"`
}

// Service is a purchasable virtual-number product as returned by the store API.
type Service struct {
	// ID is the service identifier.
	ID string `json:"id"`
	// Name is the display name (e.g., "WhatsApp").
	Name string `json:"name"`
	// Price is the raw upstream price string.
	Price string `json:"price,omitempty"`
	// DisplayPrice is the pre-computed price to show, when provided.
	DisplayPrice int64 `json:"display_price,omitempty"`
	// Pricing is the optional markup breakdown.
	Pricing *Pricing `json:"pricing,omitempty"`
}

// Pricing is the backend-computed markup breakdown for a service.
type Pricing struct {
	// OriginalPrice is the wholesale price.
	OriginalPrice int64 `json:"original_price"`
	// MarkupPercentage is the percentage markup applied.
	MarkupPercentage float64 `json:"markup_percentage"`
	// FixedMarkup is the fixed markup amount added on top.
	FixedMarkup int64 `json:"fixed_markup"`
	// SellingPrice is the price shown to the end user.
	SellingPrice int64 `json:"selling_price"`
	// Profit is SellingPrice minus OriginalPrice.
	Profit int64 `json:"profit"`
}

// Order is an order as returned by the store API. The identifier may arrive
// under either "id" or "order_id" depending on the endpoint.
type Order struct {
	ID        string `json:"id,omitempty"`
	OrderID   string `json:"order_id,omitempty"`
	Service   string `json:"service"`
	Operator  string `json:"operator"`
	Phone     string `json:"phone,omitempty"`
	Status    int    `json:"status,omitempty"`
	SMS       string `json:"sms,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// OrderRequest is the body for creating an order.
type OrderRequest struct {
	// Service is the service identifier to order.
	Service string `json:"service"`
	// Operator is the requested mobile operator ("any" for unconstrained).
	Operator string `json:"operator"`
}

// SetStatusRequest is the body for updating an order's status.
type SetStatusRequest struct {
	// OrderID is the canonical order identifier.
	OrderID string `json:"order_id"`
	// Status is the requested status code.
	Status int `json:"status"`
}

// HealthCheck is the store API health report.
type HealthCheck struct {
	Status           string `json:"status"`
	Service          string `json:"service"`
	APIKeyConfigured bool   `json:"api_key_configured"`
	Timestamp        string `json:"timestamp"`
	Version          string `json:"version"`
}
