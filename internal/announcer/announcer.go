package announcer

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/raffleworks/raffle-coordinator/internal/adapter"
	"github.com/raffleworks/raffle-coordinator/internal/domain"
	"github.com/raffleworks/raffle-coordinator/internal/logger"
	"github.com/raffleworks/raffle-coordinator/internal/messaging"
	"github.com/raffleworks/raffle-coordinator/internal/store"
	"github.com/raffleworks/raffle-coordinator/internal/store/schema"
)

const (
	// contentCeiling bounds the inline winner list in the public announcement
	contentCeiling = 256

	tooLongPlaceholder = "List of winners is too long. See desc. for details."

	verifyFormURL = "https://api.random.org/signatures/form"
)

// Mentioner renders community mention content for a list of external identities
type Mentioner interface {
	// MentionContent returns the mention string for identities, upgrading
	// linked identities to community mentions
	MentionContent(ctx context.Context, identities []string) string
}

// Announcer defines the interface for publishing draw outcomes
//
//go:generate mockgen -source=announcer.go -destination=../mocks/announcer.go -package=mocks -mock_names=Announcer=MockAnnouncer,Mentioner=MockMentioner
type Announcer interface {
	// Announce publishes the result of a completed draw and persists its
	// verification record, returning the published-result identifier
	Announce(ctx context.Context, req *domain.RaffleRequest, res *domain.Resolution, draw *domain.DrawResult, totalSlots int) (string, error)

	// VerificationText renders the operator verification affordance from the
	// persisted record, never recomputing the signed bytes
	VerificationText(record *schema.VerificationRecord) string
}

// Service implements Announcer over the messaging publisher and stores
type Service struct {
	publisher     messaging.Publisher
	verifications store.VerificationStore
	identities    store.IdentityStore
	mentioner     Mentioner
	jcs           adapter.JCS
	json          adapter.JSON
	usage         func() domain.CredentialUsage
}

// NewService creates a new announcer service. usage reports randomness
// credential consumption for the announcement footer.
func NewService(publisher messaging.Publisher, verifications store.VerificationStore, identities store.IdentityStore, mentioner Mentioner, jcs adapter.JCS, json adapter.JSON, usage func() domain.CredentialUsage) *Service {
	return &Service{
		publisher:     publisher,
		verifications: verifications,
		identities:    identities,
		mentioner:     mentioner,
		jcs:           jcs,
		json:          json,
		usage:         usage,
	}
}

// Announce publishes the result of a completed draw. Sequencing is fixed:
// public result first, then the verification record, then the community
// announcement, then the requester's confirmation. Only the first two are
// fatal; community and confirmation failures are logged and skipped.
func (s *Service) Announce(ctx context.Context, req *domain.RaffleRequest, res *domain.Resolution, draw *domain.DrawResult, totalSlots int) (string, error) {
	resultID := ulid.Make().String()

	lines := DetailedLines(draw.Numbers, res.Assignments, res.Tally, totalSlots)
	content := PublicContent(lines, draw.Numbers, len(res.Assignments) == 0)

	detail := domain.ResultDetail{
		Title:          res.Post.Title,
		TotalSlots:     totalSlots,
		Numbers:        draw.Numbers,
		Host:           res.Post.Author,
		HostURL:        res.Post.AuthorURL,
		Permalink:      res.Post.Permalink,
		ImageURL:       res.Post.ImageURL,
		CalledBy:       req.RequesterName,
		CompletionTime: draw.CompletionTime,
		WinnerLines:    lines,
		Usage:          s.usage(),
	}

	if err := s.publisher.PublishPublicResult(ctx, &domain.PublicAnnouncement{
		ResultID: resultID,
		Content:  content,
		Detail:   detail,
	}); err != nil {
		return "", fmt.Errorf("failed to publish public result: %w", err)
	}

	if err := s.persistVerification(ctx, resultID, req, res, draw, totalSlots); err != nil {
		return "", err
	}

	s.announceCommunity(ctx, resultID, req, res, draw, totalSlots)

	if err := s.publisher.PublishConfirmation(ctx, &domain.RequesterConfirmation{
		Requester: req.Requester,
		ResultID:  resultID,
		Detail:    detail,
	}); err != nil {
		logger.Warn("requester confirmation failed",
			zap.Error(err),
			zap.String("requester", req.Requester),
			zap.String("result_id", resultID))
	}

	return resultID, nil
}

// persistVerification stores the signed draw outcome keyed by the result ID
func (s *Service) persistVerification(ctx context.Context, resultID string, req *domain.RaffleRequest, res *domain.Resolution, draw *domain.DrawResult, totalSlots int) error {
	numbers, err := s.json.Marshal(draw.Numbers)
	if err != nil {
		return fmt.Errorf("failed to marshal winner numbers: %w", err)
	}

	metadata, err := s.json.Marshal(res.Post)
	if err != nil {
		return fmt.Errorf("failed to marshal post metadata: %w", err)
	}
	// Canonicalize so identical resolutions persist byte-identical rows
	canonical, err := s.jcs.Transform(metadata)
	if err != nil {
		return fmt.Errorf("failed to canonicalize post metadata: %w", err)
	}

	record := &schema.VerificationRecord{
		ID:             resultID,
		Verification:   string(draw.Verification),
		Signature:      draw.Signature,
		WinnerNumbers:  numbers,
		PostMetadata:   canonical,
		CompletionTime: draw.CompletionTime,
		TotalSlots:     totalSlots,
		RequesterName:  req.RequesterName,
	}

	if err := s.verifications.SaveVerification(ctx, record); err != nil {
		return fmt.Errorf("failed to persist verification record: %w", err)
	}
	return nil
}

// announceCommunity publishes the community-channel result and records the
// message-winner mapping for later mention upgrades. Failures never fail the
// draw; the public result is already out. When nobody claimed any slot there
// is no community audience, so operators get the numbers instead.
func (s *Service) announceCommunity(ctx context.Context, resultID string, req *domain.RaffleRequest, res *domain.Resolution, draw *domain.DrawResult, totalSlots int) {
	if len(res.Assignments) == 0 {
		notice := &domain.OperatorNotice{
			Requester:   req.Requester,
			SourceURL:   req.SourceURL,
			WinnerCount: req.WinnerCount,
			TotalSlots:  totalSlots,
			Reason:      "raffle completed but no participants found",
			Numbers:     draw.Numbers,
		}
		if err := s.publisher.PublishOperatorNotice(ctx, notice); err != nil {
			logger.Warn("operator notice failed",
				zap.Error(err),
				zap.String("result_id", resultID))
		}
		return
	}

	winners := winnerIdentities(draw.Numbers, res.Assignments)
	assigned := len(res.Assignments)
	lines := CommunityLines(draw.Numbers, res.Assignments, res.Tally, assigned)

	// Casing and order are kept as the host wrote them; lookups lowercase
	// on their side
	mapping, err := s.json.Marshal(storedWinners(draw.Numbers, res.Assignments))
	if err == nil {
		if err := s.identities.SaveMessageWinners(ctx, &schema.MessageWinnerMapping{
			MessageID:  resultID,
			Subject:    "raffle.announce.community",
			Identities: mapping,
		}); err != nil {
			logger.Warn("failed to store message winners",
				zap.Error(err),
				zap.String("result_id", resultID))
		}
	}

	announcement := &domain.CommunityAnnouncement{
		MessageID:   resultID,
		Content:     res.Post.Title,
		Tag:         s.mentioner.MentionContent(ctx, winners),
		Permalink:   res.Post.Permalink,
		WinnerLines: lines,
		ResultID:    resultID,
		ImageURL:    res.Post.ImageURL,
	}

	if err := s.publisher.PublishCommunityResult(ctx, announcement); err != nil {
		logger.Warn("community announcement failed",
			zap.Error(err),
			zap.String("result_id", resultID))
	}
}

// VerificationText renders the operator verification affordance from the
// persisted record. The signed bytes are included verbatim.
func (s *Service) VerificationText(record *schema.VerificationRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Result %s drawn at %s over %d slots.\n\n", record.ID, record.CompletionTime, record.TotalSlots)

	var numbers []int
	if err := s.json.Unmarshal(record.WinnerNumbers, &numbers); err == nil {
		fmt.Fprintf(&b, "Winning numbers: %s\n\n", SimpleNumbersLine(numbers))
	}

	b.WriteString("Random:\n")
	b.WriteString(record.Verification)
	b.WriteString("\n\nSignature:\n")
	b.WriteString(record.Signature)
	fmt.Fprintf(&b, "\n\nPaste both into %s to verify.", verifyFormURL)
	return b.String()
}

// DetailedLines renders one line per winning number in provider order, with
// the holder's share of the requested slot total
func DetailedLines(numbers []int, assignments domain.ParticipantAssignment, tally domain.SpotTally, totalSlots int) []string {
	lines := make([]string, 0, len(numbers))
	for _, n := range numbers {
		identity, ok := assignments[n]
		if !ok {
			lines = append(lines, fmt.Sprintf("%d - unclaimed", n))
			continue
		}
		lines = append(lines, fmt.Sprintf("%d - u/%s (%s)", n, identity, share(tally[identity], totalSlots)))
	}
	return lines
}

// CommunityLines renders winner lines with shares of the assigned slot count
// rather than the requested total
func CommunityLines(numbers []int, assignments domain.ParticipantAssignment, tally domain.SpotTally, assigned int) []string {
	lines := make([]string, 0, len(numbers))
	for _, n := range numbers {
		identity, ok := assignments[n]
		if !ok {
			lines = append(lines, fmt.Sprintf("%d - unclaimed", n))
			continue
		}
		lines = append(lines, fmt.Sprintf("%d - %s (%s)", n, identity, share(tally[identity], assigned)))
	}
	return lines
}

// SimpleNumbersLine renders the numbers-only variant, sorted ascending
func SimpleNumbersLine(numbers []int) string {
	sorted := make([]int, len(numbers))
	copy(sorted, numbers)
	sort.Ints(sorted)

	parts := make([]string, len(sorted))
	for i, n := range sorted {
		parts[i] = fmt.Sprintf("%d", n)
	}
	return strings.Join(parts, ", ")
}

// PublicContent assembles the inline announcement body. Winner lines get a
// count-matched header; a draw without any claimed slot falls back to the
// numbers-only form.
func PublicContent(lines []string, numbers []int, numbersOnly bool) string {
	content := ""
	if numbersOnly {
		content = "Winning number(s): " + SimpleNumbersLine(numbers)
	} else {
		header := "Winner"
		if len(numbers) > 1 {
			header = "Winners"
		}
		content = header + "\n" + strings.Join(lines, "\n")
	}
	if len(content) >= contentCeiling {
		content = tooLongPlaceholder
	}
	return content
}

func winnerIdentities(numbers []int, assignments domain.ParticipantAssignment) []string {
	identities := make([]string, 0, len(numbers))
	seen := make(map[string]bool)
	for _, n := range numbers {
		identity, ok := assignments[n]
		if !ok || seen[identity] {
			continue
		}
		seen[identity] = true
		identities = append(identities, identity)
	}
	return identities
}

// storedWinners keeps one entry per winning slot in draw order, skipping
// unclaimed slots
func storedWinners(numbers []int, assignments domain.ParticipantAssignment) []string {
	out := make([]string, 0, len(numbers))
	for _, n := range numbers {
		if identity, ok := assignments[n]; ok {
			out = append(out, identity)
		}
	}
	return out
}

func share(count, total int) string {
	if total <= 0 {
		return fmt.Sprintf("%d spots", count)
	}
	pct := strings.TrimSuffix(fmt.Sprintf("%.1f", float64(count)*100/float64(total)), ".0")
	return fmt.Sprintf("%d/%d, %s%%", count, total, pct)
}
