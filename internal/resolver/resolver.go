package resolver

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/raffleworks/raffle-coordinator/internal/domain"
	"github.com/raffleworks/raffle-coordinator/internal/logger"
	"github.com/raffleworks/raffle-coordinator/internal/providers/reddit"
)

var (
	// One assignment per line: slot number, identity, optional PAID marker.
	// Lines that do not match are ignored.
	assignmentPattern = regexp.MustCompile(`(?i)^(\d+)\s+/?u/([\w-]+)(?:\s+\*{0,2}PAID\*{0,2})?`)

	// A selftext line announcing that the slot list lives elsewhere
	indirectionPattern = regexp.MustCompile(`(?mi)^\s*(?:full\s+)?(?:spot|slot)\s*list\b.*?(https?://\S+)`)

	// Bare raw-paste links count as indirection even without a marker line
	rawPastePattern = regexp.MustCompile(`https?://(?:pastebin\.com/raw/\S+|rentry\.co/\S+/raw)\b`)

	spotsPattern = regexp.MustCompile(`(\d+)\s+[Ss]pots`)
)

// Resolver defines the interface for resolving a source URL into participants
//
//go:generate mockgen -source=resolver.go -destination=../mocks/resolver.go -package=mocks -mock_names=Resolver=MockResolver
type Resolver interface {
	// Resolve fetches the post behind sourceURL and parses its slot assignments
	Resolve(ctx context.Context, sourceURL string) (*domain.Resolution, error)
}

// ParticipantResolver implements Resolver on top of the reddit client
type ParticipantResolver struct {
	client reddit.Client
}

// NewParticipantResolver creates a new participant resolver
func NewParticipantResolver(client reddit.Client) *ParticipantResolver {
	return &ParticipantResolver{client: client}
}

// Resolve fetches the post behind sourceURL and parses its slot assignments.
// Resolution is read only and may be repeated without side effects.
func (r *ParticipantResolver) Resolve(ctx context.Context, sourceURL string) (*domain.Resolution, error) {
	post, err := r.client.GetPost(ctx, sourceURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrResolutionFailed, err)
	}

	var assignments domain.ParticipantAssignment
	if link := IndirectionLink(post.Selftext); link != "" {
		// The slot list lives elsewhere; the post body is not a fallback
		secondary, err := r.client.FetchRaw(ctx, link)
		if err != nil {
			logger.Warn("secondary slot list fetch failed",
				zap.Error(err),
				zap.String("url", link),
				zap.String("post", post.Permalink))
			assignments = domain.ParticipantAssignment{}
		} else {
			assignments = ParseAssignments(secondary)
		}
	} else {
		assignments = ParseAssignments(post.Selftext)
	}

	return &domain.Resolution{
		Post: domain.PostMetadata{
			Title:     post.Title,
			Author:    post.Author,
			AuthorURL: "https://www.reddit.com/u/" + post.Author,
			Permalink: post.Permalink,
			ImageURL:  post.ImageURL,
			Subreddit: post.Subreddit,
		},
		Assignments: assignments,
		Tally:       assignments.Tally(),
	}, nil
}

// ParseAssignments extracts slot assignments from a text body, one per line.
// Duplicate slot numbers resolve last-write-wins, matching how hosts edit
// their lists in place.
func ParseAssignments(text string) domain.ParticipantAssignment {
	assignments := domain.ParticipantAssignment{}

	for _, line := range strings.Split(text, "\n") {
		m := assignmentPattern.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		slot, err := strconv.Atoi(m[1])
		if err != nil || slot < 1 {
			continue
		}
		assignments[slot] = m[2]
	}

	return assignments
}

// IndirectionLink returns the URL of an externally hosted slot list, or ""
// when the post body itself carries the list
func IndirectionLink(selftext string) string {
	if m := indirectionPattern.FindStringSubmatch(selftext); m != nil {
		return strings.TrimRight(m[1], ").,")
	}
	if m := rawPastePattern.FindString(selftext); m != "" {
		return strings.TrimRight(m, ").,")
	}
	return ""
}

// SpotsFromTitle extracts the advertised slot count from a post title
func SpotsFromTitle(title string) (int, bool) {
	m := spotsPattern.FindStringSubmatch(title)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}
