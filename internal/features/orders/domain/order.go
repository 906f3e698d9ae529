package domain

import "strings"

// Operator is the mobile network a virtual number belongs to.
type Operator string

const (
	// OperatorTelkomsel requests a Telkomsel number.
	OperatorTelkomsel Operator = "telkomsel"
	// OperatorIndosat requests an Indosat number.
	OperatorIndosat Operator = "indosat"
	// OperatorAxis requests an Axis number.
	OperatorAxis Operator = "axis"
	// OperatorAny leaves the operator choice to the backend.
	OperatorAny Operator = "any"
)

// ParseOperator matches an operator name case-insensitively. Unknown or empty
// input yields OperatorAny with ok=false.
func ParseOperator(s string) (Operator, bool) {
	switch Operator(strings.ToLower(strings.TrimSpace(s))) {
	case OperatorTelkomsel:
		return OperatorTelkomsel, true
	case OperatorIndosat:
		return OperatorIndosat, true
	case OperatorAxis:
		return OperatorAxis, true
	case OperatorAny:
		return OperatorAny, true
	default:
		return OperatorAny, false
	}
}

// Status is the lifecycle state of an order as an integer code. The client
// does not enforce a transition graph; any status may be requested from any
// other and the backend is trusted to validate.
type Status int

const (
	// StatusReady indicates the number is active and waiting for SMS.
	StatusReady Status = 1
	// StatusCancel requests cancellation of the order.
	StatusCancel Status = 2
	// StatusResend requests the SMS to be sent again.
	StatusResend Status = 3
	// StatusComplete finalizes the order.
	StatusComplete Status = 4
)

// Valid reports whether the status is one of the four defined codes.
func (s Status) Valid() bool {
	return s >= StatusReady && s <= StatusComplete
}

// Order represents a tracked order for a service/operator pair. ID is the
// canonical identifier, normalized once when the order is received from the
// upstream API (which may deliver it as either "id" or "order_id").
type Order struct {
	// ID is the canonical order identifier.
	ID string `json:"id"`
	// Service is the ordered service identifier or name.
	Service string `json:"service"`
	// Operator is the requested mobile operator.
	Operator Operator `json:"operator"`
	// Phone is the delivered virtual number, when assigned.
	Phone string `json:"phone,omitempty"`
	// Status is the current lifecycle state.
	Status Status `json:"status,omitempty"`
	// SMS is the last received message text, when any.
	SMS string `json:"sms,omitempty"`
	// CreatedAt is the upstream creation timestamp, passed through verbatim.
	CreatedAt string `json:"created_at,omitempty"`
}
