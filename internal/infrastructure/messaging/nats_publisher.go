// Package messaging publishes health check events on NATS with trace context
// carried in the message headers.
package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	"vhc_service/internal/infrastructure/logging"

	"github.com/nats-io/nats.go"
	"go.opentelemetry.io/otel"
)

// natsHeaderCarrier adapts nats.Msg headers for the OTel TextMapCarrier.
type natsHeaderCarrier nats.Msg

func (c *natsHeaderCarrier) Get(key string) string {
	if c.Header == nil {
		return ""
	}
	return c.Header.Get(key)
}

func (c *natsHeaderCarrier) Set(key, val string) {
	if c.Header == nil {
		c.Header = make(nats.Header)
	}
	c.Header.Set(key, val)
}

func (c *natsHeaderCarrier) Keys() []string {
	if c.Header == nil {
		return nil
	}
	keys := make([]string, 0, len(c.Header))
	for k := range c.Header {
		keys = append(keys, k)
	}
	return keys
}

// msgPublisher is the part of *nats.Conn the publisher needs.
type msgPublisher interface {
	PublishMsg(m *nats.Msg) error
}

type NATSPublisher struct {
	conn msgPublisher
}

func NewNATSPublisher(conn msgPublisher) *NATSPublisher {
	return &NATSPublisher{conn: conn}
}

// Connect dials NATS, or returns a NoopPublisher when url is empty.
func Connect(url string) (Publisher, func(), error) {
	if url == "" {
		logging.GetLogger().Info("NATS_URL not set; event publishing disabled")
		return NoopPublisher{}, func() {}, nil
	}
	nc, err := nats.Connect(url, nats.Name("vhc-service"), nats.MaxReconnects(-1))
	if err != nil {
		return nil, nil, fmt.Errorf("nats connect %s: %w", url, err)
	}
	return NewNATSPublisher(nc), func() { _ = nc.Drain() }, nil
}

// Publisher is implemented by NATSPublisher and NoopPublisher.
type Publisher interface {
	Publish(ctx context.Context, subject string, v any) error
}

// Publish serialises v as JSON and injects the trace context from ctx.
func (p *NATSPublisher) Publish(ctx context.Context, subject string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	msg := &nats.Msg{Subject: subject, Data: data}
	otel.GetTextMapPropagator().Inject(ctx, (*natsHeaderCarrier)(msg))
	return p.conn.PublishMsg(msg)
}

type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, string, any) error { return nil }
