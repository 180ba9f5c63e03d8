// Package events publishes order lifecycle events for downstream consumers
// (fulfillment, notifications). Publishing is best-effort: a failed publish
// is logged by the caller and never fails the checkout.
package events

import (
	"encoding/json"
	"time"

	"github.com/nats-io/nats.go"
)

// Subject for paid-order events.
const SubjectOrderPaid = "store.orders.paid"

// OrderPaid is emitted after a capture has been reconciled into a local
// order and payment.
type OrderPaid struct {
	OrderID         string    `json:"order_id"`
	PaymentID       string    `json:"payment_id"`
	ProviderOrderID string    `json:"provider_order_id"`
	Amount          string    `json:"amount"`
	Currency        string    `json:"currency"`
	OccurredAt      time.Time `json:"occurred_at"`
}

// Publisher emits order events.
type Publisher interface {
	PublishOrderPaid(event OrderPaid) error
	Close()
}

// NATSPublisher publishes events to a NATS subject.
type NATSPublisher struct {
	conn *nats.Conn
}

// Compile-time check that NATSPublisher implements Publisher.
var _ Publisher = (*NATSPublisher)(nil)

// NewNATSPublisher connects to the given NATS URL.
func NewNATSPublisher(natsURL string) (*NATSPublisher, error) {
	conn, err := nats.Connect(natsURL,
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, err
	}
	return &NATSPublisher{conn: conn}, nil
}

// PublishOrderPaid publishes the event to SubjectOrderPaid.
func (p *NATSPublisher) PublishOrderPaid(event OrderPaid) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.conn.Publish(SubjectOrderPaid, payload)
}

// Close drains and closes the connection.
func (p *NATSPublisher) Close() {
	_ = p.conn.Drain()
}

// NoopPublisher discards events. Used when no NATS URL is configured.
type NoopPublisher struct{}

var _ Publisher = NoopPublisher{}

func (NoopPublisher) PublishOrderPaid(OrderPaid) error { return nil }
func (NoopPublisher) Close()                           {}
