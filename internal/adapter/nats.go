package adapter

import (
	"context"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// NatsConn abstracts a NATS connection
type NatsConn interface {
	// Close closes the connection
	Close()
}

// JetStream abstracts the JetStream publishing surface
type JetStream interface {
	// Publish publishes a message to the given subject and waits for the stream acknowledgement
	Publish(ctx context.Context, subject string, payload []byte) error
}

// NatsJetStream defines an interface for establishing NATS connections to enable mocking
//
//go:generate mockgen -source=nats.go -destination=../mocks/nats.go -package=mocks -mock_names=NatsJetStream=MockNatsJetStream,NatsConn=MockNatsConn,JetStream=MockJetStream
type NatsJetStream interface {
	// Connect establishes a connection to the NATS server and returns a JetStream context
	Connect(url string, opts ...nats.Option) (NatsConn, JetStream, error)
}

// RealNatsJetStream implements NatsJetStream using the nats.go package
type RealNatsJetStream struct{}

// NewNatsJetStream creates a new real NATS JetStream adapter
func NewNatsJetStream() NatsJetStream {
	return &RealNatsJetStream{}
}

// Connect establishes a connection to the NATS server and returns a JetStream context
func (n *RealNatsJetStream) Connect(url string, opts ...nats.Option) (NatsConn, JetStream, error) {
	conn, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, nil, err
	}

	js, err := jetstream.New(conn)
	if err != nil {
		conn.Close()
		return nil, nil, err
	}

	return conn, &jetStreamAdapter{js: js}, nil
}

type jetStreamAdapter struct {
	js jetstream.JetStream
}

func (a *jetStreamAdapter) Publish(ctx context.Context, subject string, payload []byte) error {
	_, err := a.js.Publish(ctx, subject, payload)
	return err
}
