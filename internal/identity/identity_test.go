package identity_test

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raffleworks/raffle-coordinator/internal/adapter"
	"github.com/raffleworks/raffle-coordinator/internal/domain"
	"github.com/raffleworks/raffle-coordinator/internal/identity"
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
	store     *mocks.MockIdentityStore
	publisher *mocks.MockPublisher
	matcher   *mocks.MockMatcher
	service   *identity.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &fixture{
		store:     mocks.NewMockIdentityStore(ctrl),
		publisher: mocks.NewMockPublisher(ctrl),
		matcher:   mocks.NewMockMatcher(ctrl),
	}
	f.service = identity.NewService(f.store, f.publisher, f.matcher, adapter.NewJSON(), 4)
	return f
}

func mapping(messageID string, identities string) *schema.MessageWinnerMapping {
	return &schema.MessageWinnerMapping{
		MessageID:  messageID,
		Subject:    "raffle.announce.community",
		Identities: []byte(identities),
	}
}

func TestService_LinkIdentity(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.store.EXPECT().
		UpsertLink(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, link *schema.IdentityLink) error {
			assert.Equal(t, "alice", link.ExternalID)
			assert.Equal(t, "111222333", link.CommunityID)
			assert.Equal(t, "operator-1", link.LinkedBy)
			return nil
		})
	f.store.EXPECT().
		MessagesMentioning(ctx, "alice").
		Return([]schema.MessageWinnerMapping{*mapping("msg-1", `["alice"]`), *mapping("msg-2", `["alice","bob"]`)}, nil)
	f.store.EXPECT().GetMessageWinners(ctx, "msg-1").Return(mapping("msg-1", `["alice"]`), nil)
	f.store.EXPECT().GetMessageWinners(ctx, "msg-2").Return(mapping("msg-2", `["alice","bob"]`), nil)

	// Re-renders run concurrently; lookups may interleave
	f.store.EXPECT().
		GetLink(ctx, "alice").
		Return(&schema.IdentityLink{ExternalID: "alice", CommunityID: "111222333"}, nil).
		Times(2)
	f.store.EXPECT().GetLink(ctx, "bob").Return(nil, domain.ErrRecordNotFound)
	f.matcher.EXPECT().Match(ctx, "bob").Return("", false)

	var mu sync.Mutex
	edits := map[string]string{}
	f.publisher.EXPECT().
		PublishEdit(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, edit *domain.AnnouncementEdit) error {
			mu.Lock()
			edits[edit.MessageID] = edit.Content
			mu.Unlock()
			return nil
		}).
		Times(2)

	updated, err := f.service.LinkIdentity(ctx, "alice", "111222333", "operator-1")
	require.NoError(t, err)
	assert.Equal(t, 2, updated)
	assert.Equal(t, "<@111222333>", edits["msg-1"])
	assert.Equal(t, "<@111222333>, u/bob", edits["msg-2"])
}

func TestService_LinkIdentity_Validation(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.LinkIdentity(context.Background(), "", "111", "op")
	assert.ErrorIs(t, err, domain.ErrInvalidParameters)

	_, err = f.service.LinkIdentity(context.Background(), "alice", "", "op")
	assert.ErrorIs(t, err, domain.ErrInvalidParameters)
}

func TestService_LinkIdentity_EditFailuresDoNotCount(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.store.EXPECT().UpsertLink(ctx, gomock.Any()).Return(nil)
	f.store.EXPECT().
		MessagesMentioning(ctx, "alice").
		Return([]schema.MessageWinnerMapping{*mapping("msg-1", `["alice"]`), *mapping("msg-2", `["alice"]`)}, nil)
	f.store.EXPECT().GetMessageWinners(ctx, "msg-1").Return(mapping("msg-1", `["alice"]`), nil)
	f.store.EXPECT().GetMessageWinners(ctx, "msg-2").Return(nil, errors.New("db down"))
	f.store.EXPECT().
		GetLink(ctx, "alice").
		Return(&schema.IdentityLink{ExternalID: "alice", CommunityID: "111"}, nil)
	f.publisher.EXPECT().PublishEdit(ctx, gomock.Any()).Return(nil)

	updated, err := f.service.LinkIdentity(ctx, "alice", "111", "op")
	require.NoError(t, err)
	assert.Equal(t, 1, updated)
}

func TestService_UnlinkIdentity(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.store.EXPECT().DeleteLink(ctx, "alice").Return(true, nil)
	f.store.EXPECT().
		MessagesMentioning(ctx, "alice").
		Return([]schema.MessageWinnerMapping{*mapping("msg-1", `["alice"]`)}, nil)
	f.store.EXPECT().GetMessageWinners(ctx, "msg-1").Return(mapping("msg-1", `["alice"]`), nil)
	// The link is gone; the mention downgrades to the external handle
	f.store.EXPECT().GetLink(ctx, "alice").Return(nil, domain.ErrRecordNotFound)
	f.matcher.EXPECT().Match(ctx, "alice").Return("", false)
	f.publisher.EXPECT().
		PublishEdit(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, edit *domain.AnnouncementEdit) error {
			assert.Equal(t, "u/alice", edit.Content)
			return nil
		})

	existed, err := f.service.UnlinkIdentity(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, existed)
}

func TestService_UnlinkIdentity_Absent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// No re-render when nothing was removed
	f.store.EXPECT().DeleteLink(ctx, "ghost").Return(false, nil)

	existed, err := f.service.UnlinkIdentity(ctx, "ghost")
	require.NoError(t, err)
	assert.False(t, existed)
}

func TestService_MentionContent_MatcherFallback(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.store.EXPECT().GetLink(ctx, "carol").Return(nil, domain.ErrRecordNotFound)
	f.matcher.EXPECT().Match(ctx, "carol").Return("999888777", true)

	assert.Equal(t, "<@999888777>", f.service.MentionContent(ctx, []string{"carol"}))
}

func TestService_RerenderAnnouncement_MissingMapping(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.store.EXPECT().GetMessageWinners(ctx, "missing").Return(nil, domain.ErrRecordNotFound)

	err := f.service.RerenderAnnouncement(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)
}

func TestService_IdentitiesFor(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.store.EXPECT().
		IdentitiesFor(ctx, "111222333").
		Return([]string{"alice", "alice_alt"}, nil)

	ids, err := f.service.IdentitiesFor(ctx, "111222333")
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "alice_alt"}, ids)

	_, err = f.service.IdentitiesFor(ctx, "")
	assert.ErrorIs(t, err, domain.ErrInvalidParameters)
}
