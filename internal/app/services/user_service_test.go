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

func newTestUserService(t *testing.T) (UserService, int64) {
	t.Helper()

	sessionStore := stores.NewSessionStore(0, zerolog.Nop())
	hash, err := auth.HashPassword("password123")
	require.NoError(t, err)
	user := &models.User{
		Name:          "Alex Johnson",
		Email:         "alex@university.edu",
		Password:      hash,
		Role:          "student",
		SkillsOffered: []string{"React", "Python", "UI Design"},
		SkillsWanted:  []string{"Machine Learning", "Spanish", "Photography"},
		Rating:        4.8,
		Sessions:      23,
	}
	sessionStore.SeedUser(user)

	return NewUserService(sessionStore, zerolog.Nop()), user.ID
}

func TestUpdateProfileRejectsInvalidWebsite(t *testing.T) {
	svc, userID := newTestUserService(t)
	ctx := context.Background()

	bad := "not a url"
	_, err := svc.UpdateProfile(ctx, userID, &dto.UpdateProfileRequest{Website: &bad})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	// The rejected update changed nothing.
	user, err := svc.GetProfile(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, user.Website)

	good := "https://alex.dev"
	updated, err := svc.UpdateProfile(ctx, userID, &dto.UpdateProfileRequest{Website: &good})
	require.NoError(t, err)
	assert.Equal(t, good, updated.Website)
}

func TestDashboardAggregates(t *testing.T) {
	svc, userID := newTestUserService(t)
	ctx := context.Background()

	dashboard, err := svc.Dashboard(ctx, userID)
	require.NoError(t, err)

	assert.Equal(t, 23, dashboard.Stats.SessionsCompleted)
	assert.InDelta(t, 4.8, dashboard.Stats.Rating, 0.001)
	assert.Equal(t, 3, dashboard.Stats.SkillsOffered)
	assert.Equal(t, 3, dashboard.Stats.SkillsWanted)
	assert.Equal(t, []string{"React", "Python", "UI Design"}, dashboard.Skills.Offered)
	require.Len(t, dashboard.UpcomingSessions, 2)
	assert.Equal(t, "React", dashboard.UpcomingSessions[0].Skill)
	assert.Equal(t, "teaching", dashboard.UpcomingSessions[0].Type)
}

func TestSkillManagementThroughService(t *testing.T) {
	svc, userID := newTestUserService(t)
	ctx := context.Background()

	user, err := svc.AddSkill(ctx, userID, &dto.SkillRequest{List: "wanted", Skill: "Guitar"})
	require.NoError(t, err)
	assert.Contains(t, user.SkillsWanted, "Guitar")

	user, err = svc.RemoveSkill(ctx, userID, &dto.SkillRequest{List: "offered", Skill: "Python"})
	require.NoError(t, err)
	assert.Equal(t, []string{"React", "UI Design"}, user.SkillsOffered)
}
