package store

import (
	"context"

	"github.com/raffleworks/raffle-coordinator/internal/store/schema"
)

// VerificationStore defines the interface for verification record persistence
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=VerificationStore=MockVerificationStore,IdentityStore=MockIdentityStore,RollHistoryStore=MockRollHistoryStore,Store=MockStore
type VerificationStore interface {
	// SaveVerification persists a verification record, retrying transient failures
	SaveVerification(ctx context.Context, record *schema.VerificationRecord) error
	// GetVerification retrieves a verification record by its result identifier
	GetVerification(ctx context.Context, id string) (*schema.VerificationRecord, error)
	// WipeVerifications removes every verification record and returns the count removed
	WipeVerifications(ctx context.Context) (int64, error)
}

// IdentityStore defines the interface for identity link and message-winner persistence
type IdentityStore interface {
	// UpsertLink creates or replaces an identity link
	UpsertLink(ctx context.Context, link *schema.IdentityLink) error
	// GetLink retrieves the link for an external identity
	GetLink(ctx context.Context, externalID string) (*schema.IdentityLink, error)
	// DeleteLink removes the link for an external identity, reporting whether it existed
	DeleteLink(ctx context.Context, externalID string) (bool, error)
	// ListLinks returns every identity link
	ListLinks(ctx context.Context) ([]schema.IdentityLink, error)
	// IdentitiesFor returns the external identities linked to one community identity
	IdentitiesFor(ctx context.Context, communityID string) ([]string, error)
	// SaveMessageWinners persists the winner mapping for a published announcement
	SaveMessageWinners(ctx context.Context, mapping *schema.MessageWinnerMapping) error
	// GetMessageWinners retrieves the winner mapping for a published announcement
	GetMessageWinners(ctx context.Context, messageID string) (*schema.MessageWinnerMapping, error)
	// MessagesMentioning returns every mapping whose winner list contains externalID
	MessagesMentioning(ctx context.Context, externalID string) ([]schema.MessageWinnerMapping, error)
}

// RollHistoryStore defines the interface for the per-day roll tally
type RollHistoryStore interface {
	// RecordRolls increments the tally for each drawn number on the given day
	RecordRolls(ctx context.Context, day string, numbers []int) error
	// SummaryFor returns the tallies for a day ordered by slot number
	SummaryFor(ctx context.Context, day string) ([]schema.RollHistory, error)
}

// Store aggregates all database operations
type Store interface {
	VerificationStore
	IdentityStore
	RollHistoryStore
}
