package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillswap/skillswap/internal/app/models"
	"github.com/skillswap/skillswap/internal/app/models/dto"
	"github.com/skillswap/skillswap/internal/app/stores"
	"github.com/skillswap/skillswap/internal/pkg/apperrors"
	"github.com/skillswap/skillswap/internal/pkg/auth"
)

type groupServiceFixture struct {
	svc    GroupService
	drafts *stores.DraftStore
	userID int64
}

func newGroupServiceFixture(t *testing.T) *groupServiceFixture {
	t.Helper()

	groupStore := stores.NewGroupStore(0, zerolog.Nop())
	require.NoError(t, groupStore.Seed(context.Background(), []*models.StudyGroup{
		{ID: 1, Name: "React Study Circle", Description: "Hooks and patterns", Subject: "Programming", Members: 8, MaxMembers: 12, Location: models.LocationOnline},
	}))

	sessionStore := stores.NewSessionStore(0, zerolog.Nop())
	hash, err := auth.HashPassword("password123")
	require.NoError(t, err)
	user := &models.User{Name: "Alex Johnson", Email: "alex@university.edu", Password: hash, Role: "student"}
	sessionStore.SeedUser(user)

	drafts := stores.NewDraftStore()
	svc := NewGroupService(groupStore, stores.NewChatStore(zerolog.Nop()), drafts, sessionStore, zerolog.Nop())

	return &groupServiceFixture{svc: svc, drafts: drafts, userID: user.ID}
}

func TestChatRequiresMembership(t *testing.T) {
	f := newGroupServiceFixture(t)
	ctx := context.Background()

	_, err := f.svc.OpenChat(ctx, f.userID, 1)
	assert.ErrorIs(t, err, apperrors.ErrNotMember)

	_, err = f.svc.Messages(ctx, f.userID, 1)
	assert.ErrorIs(t, err, apperrors.ErrNotMember)

	_, err = f.svc.SendMessage(ctx, f.userID, 1, "let me in")
	assert.ErrorIs(t, err, apperrors.ErrNotMember)

	_, err = f.svc.OpenChat(ctx, f.userID, 99)
	assert.ErrorIs(t, err, apperrors.ErrGroupNotFound)
}

func TestJoinOpensChatWithWelcome(t *testing.T) {
	f := newGroupServiceFixture(t)
	ctx := context.Background()

	_, err := f.svc.Join(ctx, 1, f.userID)
	require.NoError(t, err)

	log, err := f.svc.OpenChat(ctx, f.userID, 1)
	require.NoError(t, err)
	require.Len(t, log.Messages, 1)
	assert.Equal(t, "Welcome to React Study Circle!", log.Messages[0].Message)

	msg, err := f.svc.SendMessage(ctx, f.userID, 1, "Anyone up for a session tonight?")
	require.NoError(t, err)
	require.NotNil(t, msg)
	assert.Equal(t, "Alex Johnson", msg.Sender)

	// Blank messages are accepted and silently dropped.
	msg, err = f.svc.SendMessage(ctx, f.userID, 1, "   ")
	require.NoError(t, err)
	assert.Nil(t, msg)

	log, err = f.svc.Messages(ctx, f.userID, 1)
	require.NoError(t, err)
	assert.Len(t, log.Messages, 2)
}

func TestLeaveClosesOwnChatPanel(t *testing.T) {
	f := newGroupServiceFixture(t)
	ctx := context.Background()

	_, err := f.svc.Join(ctx, 1, f.userID)
	require.NoError(t, err)
	_, err = f.svc.OpenChat(ctx, f.userID, 1)
	require.NoError(t, err)

	_, open := f.drafts.ChatPanel(f.userID)
	assert.True(t, open)

	_, err = f.svc.Leave(ctx, 1, f.userID)
	require.NoError(t, err)

	_, open = f.drafts.ChatPanel(f.userID)
	assert.False(t, open)
}

func TestCreateGroupAutoJoinsAndRegistersChat(t *testing.T) {
	f := newGroupServiceFixture(t)
	ctx := context.Background()

	f.svc.OpenCreateForm(ctx, f.userID)

	resp, err := f.svc.CreateGroup(ctx, f.userID, &dto.CreateGroupRequest{
		Name:        "Algorithms Circle",
		Description: "Weekly problem sessions",
		Subject:     "Computer Science",
		MaxMembers:  8,
		NextSession: "2025-07-05T18:00:00",
	})
	require.NoError(t, err)

	assert.True(t, resp.IsJoined)
	assert.Equal(t, 1, resp.Members)
	assert.Equal(t, "Alex Johnson", resp.Organizer)

	log, err := f.svc.Messages(ctx, f.userID, resp.ID)
	require.NoError(t, err)
	require.Len(t, log.Messages, 1)
	assert.Equal(t, "Welcome to Algorithms Circle!", log.Messages[0].Message)

	// Submitting closed the form.
	_, open := f.drafts.GroupForm(f.userID)
	assert.False(t, open)
}

func TestCreateGroupValidationKeepsFormOpen(t *testing.T) {
	f := newGroupServiceFixture(t)
	ctx := context.Background()

	draft := f.svc.OpenCreateForm(ctx, f.userID)
	draft.Description = "typed so far"
	require.NoError(t, f.svc.SaveDraft(ctx, f.userID, draft))

	_, err := f.svc.CreateGroup(ctx, f.userID, &dto.CreateGroupRequest{
		Description: "typed so far",
		Subject:     "Computer Science",
		MaxMembers:  8,
		NextSession: "2025-07-05T18:00:00",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	list, err := f.svc.ListGroups(ctx, f.userID, "", stores.FilterAll)
	require.NoError(t, err)
	assert.Len(t, list.Groups, 1)

	got, open := f.drafts.GroupForm(f.userID)
	assert.True(t, open)
	assert.Equal(t, "typed so far", got.Description)
}

func TestCreateGroupRequiresNextSession(t *testing.T) {
	f := newGroupServiceFixture(t)
	ctx := context.Background()

	_, err := f.svc.CreateGroup(ctx, f.userID, &dto.CreateGroupRequest{
		Name:        "Algorithms Circle",
		Description: "Weekly problem sessions",
		Subject:     "Computer Science",
		MaxMembers:  8,
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	list, err := f.svc.ListGroups(ctx, f.userID, "", stores.FilterAll)
	require.NoError(t, err)
	assert.Len(t, list.Groups, 1)
}
