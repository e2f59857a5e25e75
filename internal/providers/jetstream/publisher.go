package jetstream

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/raffleworks/raffle-coordinator/internal/adapter"
	"github.com/raffleworks/raffle-coordinator/internal/domain"
	"github.com/raffleworks/raffle-coordinator/internal/logger"
	"github.com/raffleworks/raffle-coordinator/internal/messaging"
)

const (
	subjectPublic       = "raffle.announce.public"
	subjectCommunity    = "raffle.announce.community"
	subjectOperator     = "raffle.notify.operator"
	subjectConfirmation = "raffle.confirm"
	subjectEdit         = "raffle.edit"
	subjectRollHistory  = "raffle.rollhistory"
)

// Config holds the configuration for NATS JetStream connection
type Config struct {
	URL            string
	StreamName     string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectionName string
}

type publisher struct {
	nc         adapter.NatsConn
	js         adapter.JetStream
	streamName string
	json       adapter.JSON
}

// NewPublisher creates a new NATS JetStream publisher
func NewPublisher(cfg Config, natsJS adapter.NatsJetStream, jsonAdapter adapter.JSON) (messaging.Publisher, error) {
	opts := []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error(err, zap.String("message", "Disconnected from NATS"))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}

	nc, js, err := natsJS.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	return &publisher{
		nc:         nc,
		js:         js,
		streamName: cfg.StreamName,
		json:       jsonAdapter,
	}, nil
}

// PublishPublicResult publishes the public announcement of a draw
func (p *publisher) PublishPublicResult(ctx context.Context, announcement *domain.PublicAnnouncement) error {
	return p.publish(ctx, subjectPublic, announcement)
}

// PublishCommunityResult publishes the community-channel announcement
func (p *publisher) PublishCommunityResult(ctx context.Context, announcement *domain.CommunityAnnouncement) error {
	return p.publish(ctx, subjectCommunity, announcement)
}

// PublishConfirmation publishes the requester's private confirmation
func (p *publisher) PublishConfirmation(ctx context.Context, confirmation *domain.RequesterConfirmation) error {
	subject := subjectConfirmation + "." + subjectToken(confirmation.Requester)
	return p.publish(ctx, subject, confirmation)
}

// PublishOperatorNotice publishes a failure or diagnostics notice to operators
func (p *publisher) PublishOperatorNotice(ctx context.Context, notice *domain.OperatorNotice) error {
	return p.publish(ctx, subjectOperator, notice)
}

// PublishEdit publishes an in-place content edit for an earlier announcement
func (p *publisher) PublishEdit(ctx context.Context, edit *domain.AnnouncementEdit) error {
	subject := subjectEdit + "." + subjectToken(edit.MessageID)
	return p.publish(ctx, subject, edit)
}

// PublishRollHistory publishes the per-day roll tally summary
func (p *publisher) PublishRollHistory(ctx context.Context, summary *domain.RollHistorySummary) error {
	return p.publish(ctx, subjectRollHistory, summary)
}

// Close closes the NATS connection
func (p *publisher) Close() {
	if p.nc == nil {
		return
	}

	p.nc.Close()
}

func (p *publisher) publish(ctx context.Context, subject string, payload interface{}) error {
	logger.Debug("publishing raffle event", zap.String("subject", subject))

	data, err := p.json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := p.js.Publish(ctx, subject, data); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}

// subjectToken makes an identifier safe for use as a NATS subject token
func subjectToken(id string) string {
	replacer := strings.NewReplacer(".", "_", " ", "_", "*", "_", ">", "_", "\t", "_")
	token := replacer.Replace(strings.TrimSpace(id))
	if token == "" {
		return "unknown"
	}
	return token
}
