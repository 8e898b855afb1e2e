package stores

import (
	"context"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillswap/skillswap/internal/app/models"
	"github.com/skillswap/skillswap/internal/pkg/apperrors"
)

func newTestGroupStore(t *testing.T) *GroupStore {
	t.Helper()
	s := NewGroupStore(0, zerolog.Nop())
	require.NoError(t, s.Seed(context.Background(), []*models.StudyGroup{
		{ID: 1, Name: "React Study Circle", Description: "Hooks and patterns", Subject: "Programming", Members: 8, MaxMembers: 12, Location: models.LocationOnline},
		{ID: 2, Name: "Calculus Study Group", Description: "Exam preparation", Subject: "Mathematics", Members: 12, MaxMembers: 12, Location: "Math Building 101"},
		{ID: 3, Name: "Spanish Conversation Club", Description: "Practice speaking", Subject: "Languages", Members: 6, MaxMembers: 10, Location: "Campus Cafe"},
	}))
	return s
}

func TestJoinRefusedAtCapacity(t *testing.T) {
	s := newTestGroupStore(t)

	// Group 2 is full (12/12).
	_, err := s.Join(2, 7)
	assert.ErrorIs(t, err, apperrors.ErrGroupFull)

	g, getErr := s.Get(2)
	require.NoError(t, getErr)
	assert.Equal(t, 12, g.Members)
	assert.False(t, s.IsJoined(2, 7))
}

func TestMembershipToggleIsIdempotent(t *testing.T) {
	s := newTestGroupStore(t)
	const userID = 7

	g, err := s.Join(1, userID)
	require.NoError(t, err)
	assert.Equal(t, 9, g.Members)

	_, err = s.Join(1, userID)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyJoined)
	g, err = s.Get(1)
	require.NoError(t, err)
	assert.Equal(t, 9, g.Members)

	g, err = s.Leave(1, userID)
	require.NoError(t, err)
	assert.Equal(t, 8, g.Members)

	_, err = s.Leave(1, userID)
	assert.ErrorIs(t, err, apperrors.ErrNotMember)
}

func TestGroupListFilters(t *testing.T) {
	s := newTestGroupStore(t)
	const userID = 7

	_, err := s.Join(1, userID)
	require.NoError(t, err)

	joined := s.List("", FilterJoined, userID)
	require.Len(t, joined, 1)
	assert.Equal(t, int64(1), joined[0].ID)

	// Available means not at capacity, regardless of membership.
	available := s.List("", FilterAvailable, userID)
	assert.Len(t, available, 2)

	online := s.List("", FilterOnline, userID)
	require.Len(t, online, 1)
	assert.Equal(t, int64(1), online[0].ID)

	inPerson := s.List("", FilterInPerson, userID)
	assert.Len(t, inPerson, 2)

	// Any other filter value selects by subject.
	bySubject := s.List("", "Languages", userID)
	require.Len(t, bySubject, 1)
	assert.Equal(t, "Spanish Conversation Club", bySubject[0].Name)

	search := s.List("exam", FilterAll, userID)
	require.Len(t, search, 1)
	assert.Equal(t, int64(2), search[0].ID)
}

func TestGroupCreateMakesCreatorFirstMember(t *testing.T) {
	s := newTestGroupStore(t)
	const creatorID = 7

	created := s.Create(&models.StudyGroup{Name: "New Group", Description: "Fresh", Subject: "Programming", MaxMembers: 5}, creatorID)
	assert.Equal(t, int64(4), created.ID)
	assert.Equal(t, 1, created.Members)
	assert.True(t, s.IsJoined(created.ID, creatorID))

	list := s.List("", FilterAll, creatorID)
	require.Len(t, list, 4)
	assert.Equal(t, "New Group", list[0].Name)
}

func TestConcurrentJoinAndListing(t *testing.T) {
	s := newTestGroupStore(t)
	created := s.Create(&models.StudyGroup{Name: "Open Seminar", Description: "Room for everyone", Subject: "Programming", MaxMembers: 50}, 100)

	var wg sync.WaitGroup
	for userID := int64(1); userID <= 20; userID++ {
		wg.Add(2)
		go func(id int64) {
			defer wg.Done()
			_, err := s.Join(created.ID, id)
			assert.NoError(t, err)
		}(userID)
		go func(id int64) {
			defer wg.Done()
			for i := 0; i < 10; i++ {
				s.List("", FilterAll, id)
				s.Stats(id)
			}
		}(userID)
	}
	wg.Wait()

	g, err := s.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, 21, g.Members)
}

func TestGroupStats(t *testing.T) {
	s := newTestGroupStore(t)
	const userID = 7

	_, err := s.Join(1, userID)
	require.NoError(t, err)

	stats := s.Stats(userID)
	assert.Equal(t, 3, stats.ActiveGroups)
	assert.Equal(t, 1, stats.JoinedGroups)
	assert.Equal(t, 1, stats.OnlineGroups)
	assert.Equal(t, 2, stats.InPersonGroups)
}
