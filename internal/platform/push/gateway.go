// Package push provides the push-notification gateway boundary: a small
// interface the notification dispatcher sends through, plus an HTTP client
// implementation speaking an FCM-style REST API.
//
// Delivery is best-effort by contract. A gateway failure is logged by the
// caller and never propagated; the persisted notification record, not the
// push, is the durability guarantee.
package push

import "context"

// Message is the payload shown on the recipient's device.
type Message struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Gateway sends push messages to registered devices.
type Gateway interface {
	// Send delivers the message to the device identified by deviceToken.
	// Returns an error on rejection or transport failure; callers treat
	// any error as non-fatal.
	Send(ctx context.Context, msg Message, deviceToken string) error
}

// NoopGateway discards every message. Used when no gateway endpoint is
// configured, keeping notifications persistence-only.
type NoopGateway struct{}

var _ Gateway = NoopGateway{}

// Send discards the message and reports success.
func (NoopGateway) Send(ctx context.Context, msg Message, deviceToken string) error {
	return nil
}
