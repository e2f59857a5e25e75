package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/raffleworks/raffle-coordinator/internal/adapter"
	"github.com/raffleworks/raffle-coordinator/internal/domain"
	"github.com/raffleworks/raffle-coordinator/internal/logger"
	"github.com/raffleworks/raffle-coordinator/internal/messaging"
	"github.com/raffleworks/raffle-coordinator/internal/store"
	"github.com/raffleworks/raffle-coordinator/internal/store/schema"
)

// Matcher suggests a community identity for an external identity that has no
// stored link
//
//go:generate mockgen -source=identity.go -destination=../mocks/identity.go -package=mocks -mock_names=Matcher=MockMatcher,Linker=MockLinker
type Matcher interface {
	// Match returns the community identity for externalID, or false when no
	// candidate exists
	Match(ctx context.Context, externalID string) (string, bool)
}

// NoopMatcher never suggests a match
type NoopMatcher struct{}

func (NoopMatcher) Match(context.Context, string) (string, bool) { return "", false }

// Linker manages identity links and the announcement edits they trigger
type Linker interface {
	// LinkIdentity stores a link and re-renders every announcement that
	// mentions the external identity, returning the number updated
	LinkIdentity(ctx context.Context, externalID, communityID, linkedBy string) (int, error)

	// UnlinkIdentity removes a link and re-renders affected announcements,
	// reporting whether the link existed
	UnlinkIdentity(ctx context.Context, externalID string) (bool, error)

	// ListLinks returns every stored identity link
	ListLinks(ctx context.Context) ([]schema.IdentityLink, error)

	// IdentitiesFor returns the external identities linked to one community
	// identity
	IdentitiesFor(ctx context.Context, communityID string) ([]string, error)

	// RerenderAnnouncement republishes the mention content of one
	// announcement from its stored winner mapping
	RerenderAnnouncement(ctx context.Context, messageID string) error
}

// Service implements Linker and renders mention content for the announcer.
// Re-renders fan out on a bounded pool so a popular participant does not
// serialize hundreds of edits.
type Service struct {
	store     store.IdentityStore
	publisher messaging.Publisher
	matcher   Matcher
	json      adapter.JSON
	pool      pond.Pool
}

// NewService creates the identity service. workers bounds concurrent
// announcement re-renders.
func NewService(identityStore store.IdentityStore, publisher messaging.Publisher, matcher Matcher, json adapter.JSON, workers int) *Service {
	if matcher == nil {
		matcher = NoopMatcher{}
	}
	return &Service{
		store:     identityStore,
		publisher: publisher,
		matcher:   matcher,
		json:      json,
		pool:      pond.NewPool(workers),
	}
}

// LinkIdentity stores the link and upgrades the mention content of every
// announcement whose winners include externalID
func (s *Service) LinkIdentity(ctx context.Context, externalID, communityID, linkedBy string) (int, error) {
	if externalID == "" || communityID == "" {
		return 0, fmt.Errorf("%w: external and community identities are required", domain.ErrInvalidParameters)
	}

	if err := s.store.UpsertLink(ctx, &schema.IdentityLink{
		ExternalID:  externalID,
		CommunityID: communityID,
		LinkedBy:    linkedBy,
	}); err != nil {
		return 0, fmt.Errorf("failed to store identity link: %w", err)
	}

	return s.rerenderMentioning(ctx, externalID), nil
}

// UnlinkIdentity removes the link and downgrades affected announcements back
// to plain external mentions
func (s *Service) UnlinkIdentity(ctx context.Context, externalID string) (bool, error) {
	existed, err := s.store.DeleteLink(ctx, externalID)
	if err != nil {
		return false, fmt.Errorf("failed to delete identity link: %w", err)
	}
	if existed {
		s.rerenderMentioning(ctx, externalID)
	}
	return existed, nil
}

// ListLinks returns every stored identity link
func (s *Service) ListLinks(ctx context.Context) ([]schema.IdentityLink, error) {
	return s.store.ListLinks(ctx)
}

// IdentitiesFor returns the external identities linked to communityID
func (s *Service) IdentitiesFor(ctx context.Context, communityID string) ([]string, error) {
	if communityID == "" {
		return nil, fmt.Errorf("%w: community identity is required", domain.ErrInvalidParameters)
	}
	return s.store.IdentitiesFor(ctx, communityID)
}

// RerenderAnnouncement rebuilds one announcement's mention content from its
// stored winner mapping and publishes the edit
func (s *Service) RerenderAnnouncement(ctx context.Context, messageID string) error {
	mapping, err := s.store.GetMessageWinners(ctx, messageID)
	if err != nil {
		return fmt.Errorf("failed to load winner mapping: %w", err)
	}

	var identities []string
	if err := s.json.Unmarshal(mapping.Identities, &identities); err != nil {
		return fmt.Errorf("failed to decode winner mapping: %w", err)
	}

	if err := s.publisher.PublishEdit(ctx, &domain.AnnouncementEdit{
		MessageID: messageID,
		Content:   s.MentionContent(ctx, identities),
	}); err != nil {
		return fmt.Errorf("failed to publish announcement edit: %w", err)
	}
	return nil
}

// MentionContent renders the mention string for identities. Linked
// identities become community mentions, the matcher may upgrade unlinked
// ones, and the rest stay plain external handles.
func (s *Service) MentionContent(ctx context.Context, identities []string) string {
	parts := make([]string, 0, len(identities))
	for _, id := range identities {
		parts = append(parts, s.mention(ctx, id))
	}
	return strings.Join(parts, ", ")
}

func (s *Service) mention(ctx context.Context, externalID string) string {
	link, err := s.store.GetLink(ctx, externalID)
	if err == nil {
		return communityMention(link.CommunityID)
	}
	if !errors.Is(err, domain.ErrRecordNotFound) {
		logger.Warn("identity link lookup failed",
			zap.Error(err),
			zap.String("external_id", externalID))
	}
	if communityID, ok := s.matcher.Match(ctx, externalID); ok {
		return communityMention(communityID)
	}
	return "u/" + externalID
}

// rerenderMentioning fans out edits for every announcement mentioning
// externalID and returns the number successfully republished
func (s *Service) rerenderMentioning(ctx context.Context, externalID string) int {
	mappings, err := s.store.MessagesMentioning(ctx, externalID)
	if err != nil {
		logger.Warn("failed to list announcements mentioning identity",
			zap.Error(err),
			zap.String("external_id", externalID))
		return 0
	}

	var updated atomic.Int64
	group := s.pool.NewGroup()
	for _, mapping := range mappings {
		messageID := mapping.MessageID
		group.Submit(func() {
			if err := s.RerenderAnnouncement(ctx, messageID); err != nil {
				logger.Warn("failed to re-render announcement",
					zap.Error(err),
					zap.String("message_id", messageID))
				return
			}
			updated.Add(1)
		})
	}
	if err := group.Wait(); err != nil {
		logger.Warn("announcement re-render group failed", zap.Error(err))
	}

	return int(updated.Load())
}

func communityMention(communityID string) string {
	return "<@" + communityID + ">"
}
