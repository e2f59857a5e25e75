package messaging

import (
	"context"

	"github.com/raffleworks/raffle-coordinator/internal/domain"
)

// Publisher defines the interface for publishing raffle events to the chat transport
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishPublicResult publishes the public announcement of a draw
	PublishPublicResult(ctx context.Context, announcement *domain.PublicAnnouncement) error
	// PublishCommunityResult publishes the community-channel announcement
	PublishCommunityResult(ctx context.Context, announcement *domain.CommunityAnnouncement) error
	// PublishConfirmation publishes the requester's private confirmation
	PublishConfirmation(ctx context.Context, confirmation *domain.RequesterConfirmation) error
	// PublishOperatorNotice publishes a failure or diagnostics notice to operators
	PublishOperatorNotice(ctx context.Context, notice *domain.OperatorNotice) error
	// PublishEdit publishes an in-place content edit for an earlier announcement
	PublishEdit(ctx context.Context, edit *domain.AnnouncementEdit) error
	// PublishRollHistory publishes the per-day roll tally summary
	PublishRollHistory(ctx context.Context, summary *domain.RollHistorySummary) error
	// Close closes the connection
	Close()
}
