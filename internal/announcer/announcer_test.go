package announcer_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raffleworks/raffle-coordinator/internal/adapter"
	"github.com/raffleworks/raffle-coordinator/internal/announcer"
	"github.com/raffleworks/raffle-coordinator/internal/domain"
	"github.com/raffleworks/raffle-coordinator/internal/logger"
	"github.com/raffleworks/raffle-coordinator/internal/mocks"
	"github.com/raffleworks/raffle-coordinator/internal/store/schema"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: true}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type fixture struct {
	publisher     *mocks.MockPublisher
	verifications *mocks.MockVerificationStore
	identities    *mocks.MockIdentityStore
	mentioner     *mocks.MockMentioner
	service       *announcer.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &fixture{
		publisher:     mocks.NewMockPublisher(ctrl),
		verifications: mocks.NewMockVerificationStore(ctrl),
		identities:    mocks.NewMockIdentityStore(ctrl),
		mentioner:     mocks.NewMockMentioner(ctrl),
	}
	f.service = announcer.NewService(
		f.publisher, f.verifications, f.identities, f.mentioner,
		adapter.NewJCS(), adapter.NewJSON(),
		func() domain.CredentialUsage {
			return domain.CredentialUsage{Requests: 12, LimitPerKey: 4000}
		})
	return f
}

func testRequest() *domain.RaffleRequest {
	return &domain.RaffleRequest{
		SourceURL:     "https://www.reddit.com/r/raffles/comments/abc123",
		WinnerCount:   2,
		Requester:     "user-1",
		RequesterName: "Caller",
	}
}

func testResolution() *domain.Resolution {
	assignments := domain.ParticipantAssignment{
		5: "alice", 17: "bob", 30: "alice", 31: "carol",
	}
	return &domain.Resolution{
		Post: domain.PostMetadata{
			Title:     "100 spots giveaway",
			Author:    "hoster",
			AuthorURL: "https://www.reddit.com/u/hoster",
			Permalink: "https://www.reddit.com/r/raffles/comments/abc123/giveaway",
			ImageURL:  "https://i.redd.it/pic.jpg",
		},
		Assignments: assignments,
		Tally:       assignments.Tally(),
	}
}

func testDraw() *domain.DrawResult {
	return &domain.DrawResult{
		Numbers:        []int{17, 5},
		Verification:   []byte(`{"method":"generateSignedIntegers","n":2,"data":[17,5]}`),
		Signature:      "c2ln",
		CompletionTime: "2026-01-02 10:20:30Z",
	}
}

func TestService_Announce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	var resultID string
	f.publisher.EXPECT().
		PublishPublicResult(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, a *domain.PublicAnnouncement) error {
			resultID = a.ResultID
			require.NotEmpty(t, a.ResultID)
			// Provider order, percentage of the requested slot total
			assert.Equal(t, "Winners\n17 - u/bob (1/100, 1%)\n5 - u/alice (2/100, 2%)", a.Content)
			assert.Equal(t, []int{17, 5}, a.Detail.Numbers)
			assert.Equal(t, "hoster", a.Detail.Host)
			assert.Equal(t, "Caller", a.Detail.CalledBy)
			assert.Equal(t, 12, a.Detail.Usage.Requests)
			return nil
		})

	f.verifications.EXPECT().
		SaveVerification(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, record *schema.VerificationRecord) error {
			assert.Equal(t, resultID, record.ID)
			// Signed bytes stored verbatim
			assert.Equal(t, `{"method":"generateSignedIntegers","n":2,"data":[17,5]}`, record.Verification)
			assert.Equal(t, "c2ln", record.Signature)
			assert.Equal(t, 100, record.TotalSlots)
			// Metadata canonicalized: keys sorted per RFC 8785
			assert.True(t, strings.HasPrefix(string(record.PostMetadata), `{"author":`),
				"canonicalized metadata should start with the author key, got %s", record.PostMetadata)
			return nil
		})

	f.identities.EXPECT().
		SaveMessageWinners(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, mapping *schema.MessageWinnerMapping) error {
			assert.Equal(t, resultID, mapping.MessageID)
			var ids []string
			require.NoError(t, json.Unmarshal(mapping.Identities, &ids))
			assert.Equal(t, []string{"bob", "alice"}, ids)
			return nil
		})

	f.mentioner.EXPECT().
		MentionContent(ctx, []string{"bob", "alice"}).
		Return("@Bob, u/alice")

	f.publisher.EXPECT().
		PublishCommunityResult(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, a *domain.CommunityAnnouncement) error {
			assert.Equal(t, resultID, a.MessageID)
			assert.Equal(t, "@Bob, u/alice", a.Tag)
			// Percentage of assigned slots (4), not the requested total
			assert.Equal(t, []string{"17 - bob (1/4, 25%)", "5 - alice (2/4, 50%)"}, a.WinnerLines)
			return nil
		})

	f.publisher.EXPECT().
		PublishConfirmation(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, c *domain.RequesterConfirmation) error {
			assert.Equal(t, "user-1", c.Requester)
			assert.Equal(t, resultID, c.ResultID)
			return nil
		})

	got, err := f.service.Announce(ctx, testRequest(), testResolution(), testDraw(), 100)
	require.NoError(t, err)
	assert.Equal(t, resultID, got)
}

func TestService_Announce_ContentCeiling(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	assignments := domain.ParticipantAssignment{}
	numbers := make([]int, 30)
	for i := range 30 {
		slot := i + 1
		assignments[slot] = "participant-with-a-long-name"
		numbers[i] = slot
	}
	res := &domain.Resolution{
		Post:        domain.PostMetadata{Title: "big raffle", Author: "hoster"},
		Assignments: assignments,
		Tally:       assignments.Tally(),
	}
	draw := testDraw()
	draw.Numbers = numbers

	f.publisher.EXPECT().
		PublishPublicResult(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, a *domain.PublicAnnouncement) error {
			assert.Equal(t, "List of winners is too long. See desc. for details.", a.Content)
			// The detail keeps the full list for the renderer's description
			assert.Len(t, a.Detail.WinnerLines, 30)
			return nil
		})
	f.verifications.EXPECT().SaveVerification(ctx, gomock.Any()).Return(nil)
	f.identities.EXPECT().SaveMessageWinners(ctx, gomock.Any()).Return(nil)
	f.mentioner.EXPECT().MentionContent(ctx, gomock.Any()).Return("u/participant-with-a-long-name")
	f.publisher.EXPECT().PublishCommunityResult(ctx, gomock.Any()).Return(nil)
	f.publisher.EXPECT().PublishConfirmation(ctx, gomock.Any()).Return(nil)

	_, err := f.service.Announce(ctx, testRequest(), res, draw, 30)
	require.NoError(t, err)
}

func TestService_Announce_NoParticipants(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res := &domain.Resolution{
		Post:        domain.PostMetadata{Title: "brand new raffle", Author: "hoster"},
		Assignments: domain.ParticipantAssignment{},
		Tally:       domain.SpotTally{},
	}

	f.publisher.EXPECT().
		PublishPublicResult(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, a *domain.PublicAnnouncement) error {
			assert.Equal(t, "Winning number(s): 5, 17", a.Content)
			return nil
		})
	f.verifications.EXPECT().SaveVerification(ctx, gomock.Any()).Return(nil)

	// No community audience without assignments; operators get the numbers
	f.publisher.EXPECT().
		PublishOperatorNotice(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, notice *domain.OperatorNotice) error {
			assert.Equal(t, "raffle completed but no participants found", notice.Reason)
			assert.Equal(t, []int{17, 5}, notice.Numbers)
			assert.Equal(t, "user-1", notice.Requester)
			return nil
		})
	f.publisher.EXPECT().PublishConfirmation(ctx, gomock.Any()).Return(nil)

	_, err := f.service.Announce(ctx, testRequest(), res, testDraw(), 100)
	require.NoError(t, err)
}

func TestService_Announce_StoredWinnersKeepOrderAndCasing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	assignments := domain.ParticipantAssignment{5: "Alice", 17: "Bob", 30: "Alice"}
	res := &domain.Resolution{
		Post:        domain.PostMetadata{Title: "30 spots", Author: "hoster"},
		Assignments: assignments,
		Tally:       assignments.Tally(),
	}
	req := testRequest()
	req.WinnerCount = 3
	draw := testDraw()
	draw.Numbers = []int{17, 5, 30}

	f.publisher.EXPECT().PublishPublicResult(ctx, gomock.Any()).Return(nil)
	f.verifications.EXPECT().SaveVerification(ctx, gomock.Any()).Return(nil)

	// One entry per winning slot, draw order, casing as the host wrote it
	f.identities.EXPECT().
		SaveMessageWinners(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, mapping *schema.MessageWinnerMapping) error {
			var ids []string
			require.NoError(t, json.Unmarshal(mapping.Identities, &ids))
			assert.Equal(t, []string{"Bob", "Alice", "Alice"}, ids)
			return nil
		})
	// Mentions stay deduplicated
	f.mentioner.EXPECT().MentionContent(ctx, []string{"Bob", "Alice"}).Return("u/Bob, u/Alice")
	f.publisher.EXPECT().PublishCommunityResult(ctx, gomock.Any()).Return(nil)
	f.publisher.EXPECT().PublishConfirmation(ctx, gomock.Any()).Return(nil)

	_, err := f.service.Announce(ctx, req, res, draw, 30)
	require.NoError(t, err)
}

func TestService_Announce_PublicPublishFails(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.publisher.EXPECT().
		PublishPublicResult(ctx, gomock.Any()).
		Return(errors.New("nats down"))

	// Nothing is persisted or published past the public failure
	_, err := f.service.Announce(ctx, testRequest(), testResolution(), testDraw(), 100)
	assert.Error(t, err)
}

func TestService_Announce_PersistFails(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.publisher.EXPECT().PublishPublicResult(ctx, gomock.Any()).Return(nil)
	f.verifications.EXPECT().
		SaveVerification(ctx, gomock.Any()).
		Return(errors.New("db down"))

	// The community announcement and confirmation are skipped
	_, err := f.service.Announce(ctx, testRequest(), testResolution(), testDraw(), 100)
	assert.Error(t, err)
}

func TestService_Announce_ConfirmationFailureIsNotFatal(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.publisher.EXPECT().PublishPublicResult(ctx, gomock.Any()).Return(nil)
	f.verifications.EXPECT().SaveVerification(ctx, gomock.Any()).Return(nil)
	f.identities.EXPECT().SaveMessageWinners(ctx, gomock.Any()).Return(nil)
	f.mentioner.EXPECT().MentionContent(ctx, gomock.Any()).Return("")
	f.publisher.EXPECT().PublishCommunityResult(ctx, gomock.Any()).Return(errors.New("nats hiccup"))
	f.publisher.EXPECT().PublishConfirmation(ctx, gomock.Any()).Return(errors.New("nats hiccup"))

	resultID, err := f.service.Announce(ctx, testRequest(), testResolution(), testDraw(), 100)
	require.NoError(t, err)
	assert.NotEmpty(t, resultID)
}

func TestService_VerificationText(t *testing.T) {
	f := newFixture(t)

	record := &schema.VerificationRecord{
		ID:             "01JD9ZHMRNV1GC8WTXD2B3K4F5",
		Verification:   `{"method":"generateSignedIntegers","data":[17,5]}`,
		Signature:      "c2lnbmF0dXJl",
		WinnerNumbers:  []byte("[17,5]"),
		CompletionTime: "2026-01-02 10:20:30Z",
		TotalSlots:     100,
	}

	text := f.service.VerificationText(record)

	// Persisted bytes verbatim, numbers sorted ascending
	assert.Contains(t, text, `{"method":"generateSignedIntegers","data":[17,5]}`)
	assert.Contains(t, text, "c2lnbmF0dXJl")
	assert.Contains(t, text, "Winning numbers: 5, 17")
	assert.Contains(t, text, "https://api.random.org/signatures/form")
}

func TestDetailedLines_ProviderOrder(t *testing.T) {
	assignments := domain.ParticipantAssignment{1: "alice", 2: "bob", 3: "carol"}
	lines := announcer.DetailedLines([]int{3, 1, 2}, assignments, assignments.Tally(), 10)
	assert.Equal(t, []string{
		"3 - u/carol (1/10, 10%)",
		"1 - u/alice (1/10, 10%)",
		"2 - u/bob (1/10, 10%)",
	}, lines)
}

func TestDetailedLines_UnclaimedSlot(t *testing.T) {
	lines := announcer.DetailedLines([]int{7}, domain.ParticipantAssignment{}, domain.SpotTally{}, 10)
	assert.Equal(t, []string{"7 - unclaimed"}, lines)
}

func TestSimpleNumbersLine_SortsAscending(t *testing.T) {
	assert.Equal(t, "3, 17, 42", announcer.SimpleNumbersLine([]int{42, 3, 17}))
}

func TestPublicContent_HeaderMatchesWinnerCount(t *testing.T) {
	assert.Equal(t, "Winner\n7 - u/a (1/2, 50%)",
		announcer.PublicContent([]string{"7 - u/a (1/2, 50%)"}, []int{7}, false))
	assert.Equal(t, "Winners\na\nb",
		announcer.PublicContent([]string{"a", "b"}, []int{1, 2}, false))
}

func TestPublicContent_CeilingBoundary(t *testing.T) {
	// The header and newline put a 249-byte line exactly on the ceiling
	atCeiling := strings.Repeat("x", 249)
	assert.Equal(t, "List of winners is too long. See desc. for details.",
		announcer.PublicContent([]string{atCeiling}, []int{1}, false))

	underCeiling := strings.Repeat("x", 248)
	assert.Equal(t, "Winner\n"+underCeiling,
		announcer.PublicContent([]string{underCeiling}, []int{1}, false))
}
