package engine

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/raffleworks/raffle-coordinator/internal/adapter"
	"github.com/raffleworks/raffle-coordinator/internal/announcer"
	"github.com/raffleworks/raffle-coordinator/internal/domain"
	"github.com/raffleworks/raffle-coordinator/internal/ledger"
	"github.com/raffleworks/raffle-coordinator/internal/logger"
	"github.com/raffleworks/raffle-coordinator/internal/messaging"
	"github.com/raffleworks/raffle-coordinator/internal/providers/randomorg"
	"github.com/raffleworks/raffle-coordinator/internal/providers/reddit"
	"github.com/raffleworks/raffle-coordinator/internal/resolver"
	"github.com/raffleworks/raffle-coordinator/internal/store"
)

// Engine runs one raffle request through the full pipeline
//
//go:generate mockgen -source=engine.go -destination=../mocks/engine.go -package=mocks -mock_names=Engine=MockEngine
type Engine interface {
	// Process resolves, validates, draws, and announces one request. Every
	// failure is also routed to the operator channel before returning.
	Process(ctx context.Context, req *domain.RaffleRequest) (string, error)
}

// DrawEngine is the production pipeline over the content provider, the
// randomness provider, the announcer, and the durable stores.
type DrawEngine struct {
	reddit     reddit.Client
	resolver   resolver.Resolver
	random     randomorg.Client
	announcer  announcer.Announcer
	publisher  messaging.Publisher
	ledger     ledger.Ledger
	rolls      store.RollHistoryStore
	clock      adapter.Clock
	displayTZ  *time.Location
	maxSlots   int
	maxWinners int
}

// NewDrawEngine creates the pipeline with the configured parameter bounds
func NewDrawEngine(
	redditClient reddit.Client,
	participantResolver resolver.Resolver,
	random randomorg.Client,
	announcerService announcer.Announcer,
	publisher messaging.Publisher,
	calledLedger ledger.Ledger,
	rolls store.RollHistoryStore,
	clock adapter.Clock,
	displayTZ *time.Location,
	maxSlots int,
	maxWinners int,
) *DrawEngine {
	if displayTZ == nil {
		displayTZ = time.UTC
	}
	return &DrawEngine{
		reddit:     redditClient,
		resolver:   participantResolver,
		random:     random,
		announcer:  announcerService,
		publisher:  publisher,
		ledger:     calledLedger,
		rolls:      rolls,
		clock:      clock,
		displayTZ:  displayTZ,
		maxSlots:   maxSlots,
		maxWinners: maxWinners,
	}
}

// Process runs one request through the pipeline and returns the published
// result ID. A successful draw that later fails to announce still notifies
// operators with the drawn numbers so the outcome is never silently lost.
func (e *DrawEngine) Process(ctx context.Context, req *domain.RaffleRequest) (string, error) {
	normalized, err := e.reddit.NormalizeURL(req.SourceURL)
	if err != nil {
		return "", e.fail(ctx, req, nil, err)
	}

	// First duplicate check on the submitted URL, before spending any
	// provider requests
	normalizedCalled, err := e.checkDuplicate(req, normalized)
	if err != nil {
		return "", e.fail(ctx, req, nil, err)
	}

	res, err := e.resolver.Resolve(ctx, normalized)
	if err != nil {
		return "", e.fail(ctx, req, nil, err)
	}

	// Second check on the canonical permalink; two distinct submitted URLs
	// can resolve to the same post
	permalinkCalled := normalizedCalled
	if res.Post.Permalink != normalized {
		permalinkCalled, err = e.checkDuplicate(req, res.Post.Permalink)
		if err != nil {
			return "", e.fail(ctx, req, nil, err)
		}
	}

	totalSlots, err := e.totalSlots(req, res)
	if err != nil {
		return "", e.fail(ctx, req, nil, err)
	}
	req.TotalSlots = &totalSlots

	if err := e.validateParameters(req.WinnerCount, totalSlots); err != nil {
		return "", e.fail(ctx, req, nil, err)
	}

	// More winners than assigned slots would guarantee unclaimed wins
	if assigned := len(res.Assignments); assigned > 0 && req.WinnerCount > assigned {
		return "", e.fail(ctx, req, nil, fmt.Errorf("%w: cannot draw %d winners from %d assigned slots",
			domain.ErrInvalidParameters, req.WinnerCount, assigned))
	}

	draw, err := e.random.Draw(ctx, req.WinnerCount, totalSlots)
	if err != nil {
		return "", e.fail(ctx, req, nil, fmt.Errorf("draw failed: %w", err))
	}

	resultID, err := e.announcer.Announce(ctx, req, res, draw, totalSlots)
	if err != nil {
		// The numbers are already drawn; operators need them to finish
		// the raffle by hand
		return "", e.fail(ctx, req, draw.Numbers, fmt.Errorf("announcement failed: %w", err))
	}

	// URLs the ledger already holds keep their original entry
	var ledgerURLs []string
	if !normalizedCalled {
		ledgerURLs = append(ledgerURLs, normalized)
	}
	if res.Post.Permalink != "" && res.Post.Permalink != normalized && !permalinkCalled {
		ledgerURLs = append(ledgerURLs, res.Post.Permalink)
	}
	e.recordCompletion(ctx, ledgerURLs, draw.Numbers)

	return resultID, nil
}

// checkDuplicate reports whether url is already on the called ledger.
// Operators may re-roll an already-called raffle; for them the hit is
// logged instead of refused.
func (e *DrawEngine) checkDuplicate(req *domain.RaffleRequest, url string) (bool, error) {
	called, err := e.ledger.Contains(url)
	if err != nil {
		return false, fmt.Errorf("failed to read called ledger: %w", err)
	}
	if called {
		if !req.Operator {
			return true, domain.ErrRaffleAlreadyCalled
		}
		logger.Info("operator re-rolling an already-called raffle",
			zap.String("requester", req.Requester),
			zap.String("url", url))
	}
	return called, nil
}

func (e *DrawEngine) totalSlots(req *domain.RaffleRequest, res *domain.Resolution) (int, error) {
	if req.TotalSlots != nil {
		return *req.TotalSlots, nil
	}
	if n, ok := resolver.SpotsFromTitle(res.Post.Title); ok {
		return n, nil
	}
	return 0, domain.ErrSlotsUnknown
}

func (e *DrawEngine) validateParameters(winnerCount, totalSlots int) error {
	switch {
	case winnerCount < 1:
		return fmt.Errorf("%w: winner count must be at least 1", domain.ErrInvalidParameters)
	case totalSlots < 2:
		return fmt.Errorf("%w: a raffle needs at least 2 slots", domain.ErrInvalidParameters)
	case winnerCount > e.maxWinners:
		return fmt.Errorf("%w: winner count %d exceeds the maximum of %d", domain.ErrInvalidParameters, winnerCount, e.maxWinners)
	case totalSlots > e.maxSlots:
		return fmt.Errorf("%w: slot count %d exceeds the maximum of %d", domain.ErrInvalidParameters, totalSlots, e.maxSlots)
	case winnerCount > totalSlots:
		return fmt.Errorf("%w: cannot draw %d winners from %d slots", domain.ErrInvalidParameters, winnerCount, totalSlots)
	}
	return nil
}

// recordCompletion appends the given ledger entries and updates the roll
// history. Failures here only log; the raffle is already announced.
func (e *DrawEngine) recordCompletion(ctx context.Context, ledgerURLs []string, numbers []int) {
	for _, url := range ledgerURLs {
		if err := e.ledger.Append(url); err != nil {
			logger.Warn("failed to append called ledger",
				zap.Error(err),
				zap.String("url", url))
		}
	}

	// Days are keyed in the announcement audience's timezone, not UTC
	day := e.clock.Now().In(e.displayTZ).Format("2006-01-02")
	if err := e.rolls.RecordRolls(ctx, day, numbers); err != nil {
		logger.Warn("failed to record roll history",
			zap.Error(err),
			zap.String("day", day))
		return
	}

	rows, err := e.rolls.SummaryFor(ctx, day)
	if err != nil {
		logger.Warn("failed to load roll history summary",
			zap.Error(err),
			zap.String("day", day))
		return
	}
	summary := &domain.RollHistorySummary{Day: day, Counts: make([]domain.RollCount, 0, len(rows))}
	for _, row := range rows {
		summary.Counts = append(summary.Counts, domain.RollCount{Number: row.Slot, Count: row.Count})
	}
	if err := e.publisher.PublishRollHistory(ctx, summary); err != nil {
		logger.Warn("failed to publish roll history",
			zap.Error(err),
			zap.String("day", day))
	}
}

// fail notifies operators about a failed request and returns err. Numbers is
// non-nil when a draw had already completed.
func (e *DrawEngine) fail(ctx context.Context, req *domain.RaffleRequest, numbers []int, err error) error {
	notice := &domain.OperatorNotice{
		Requester:   req.Requester,
		SourceURL:   req.SourceURL,
		WinnerCount: req.WinnerCount,
		Reason:      err.Error(),
		Numbers:     numbers,
	}
	if req.TotalSlots != nil {
		notice.TotalSlots = *req.TotalSlots
	}
	if notifyErr := e.publisher.PublishOperatorNotice(ctx, notice); notifyErr != nil {
		logger.Error(fmt.Errorf("failed to publish operator notice: %w", notifyErr),
			zap.String("source_url", req.SourceURL))
	}
	return err
}
