package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
)

// event is the wire envelope for listing lifecycle messages. Subscribers
// get the subject and emission time alongside the payload, so a replayed
// or delayed message stays interpretable.
type event struct {
	Subject    string      `json:"subject"`
	OccurredAt time.Time   `json:"occurredAt"`
	Payload    interface{} `json:"payload"`
}

// Publisher emits listing lifecycle events (listing.created, listing.updated,
// listing.deleted) as JSON envelopes on core NATS subjects.
type Publisher struct {
	conn *nats.Conn
}

func NewPublisher(url string) (*Publisher, error) {
	conn, err := nats.Connect(url,
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS at %s: %w", url, err)
	}
	return &Publisher{conn: conn}, nil
}

func (p *Publisher) Publish(_ context.Context, subject string, payload interface{}) error {
	data, err := json.Marshal(newEvent(subject, payload))
	if err != nil {
		return fmt.Errorf("failed to encode event for subject %s: %w", subject, err)
	}
	return p.conn.Publish(subject, data)
}

// Close flushes buffered messages before dropping the connection so
// shutdown does not lose the tail of the event stream.
func (p *Publisher) Close() {
	_ = p.conn.Flush()
	p.conn.Close()
}

func newEvent(subject string, payload interface{}) event {
	return event{
		Subject:    subject,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
}
