package stores

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillswap/skillswap/internal/app/models"
	"github.com/skillswap/skillswap/internal/pkg/apperrors"
	"github.com/skillswap/skillswap/internal/pkg/auth"
)

func newTestSessionStore(t *testing.T) *SessionStore {
	t.Helper()
	return NewSessionStore(0, zerolog.Nop())
}

func seedAccount(t *testing.T, s *SessionStore, email, password string) *models.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	user := &models.User{
		Name:          "Alex Johnson",
		Email:         email,
		Password:      hash,
		Role:          "student",
		SkillsOffered: []string{},
		SkillsWanted:  []string{},
	}
	s.SeedUser(user)
	return user
}

func TestLoginRequiresBothFields(t *testing.T) {
	s := newTestSessionStore(t)

	_, err := s.Login(context.Background(), "", "password123")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = s.Login(context.Background(), "alex@university.edu", "")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestLoginProvisionsDemoAccount(t *testing.T) {
	s := newTestSessionStore(t)

	user, err := s.Login(context.Background(), "jane.doe@university.edu", "password123")
	require.NoError(t, err)

	assert.Equal(t, "Jane.doe", user.Name)
	assert.Equal(t, "student", user.Role)
	assert.Equal(t, "👨‍💻", user.Avatar)
	assert.NotZero(t, user.ID)

	// Same credentials log back into the same account.
	again, err := s.Login(context.Background(), "jane.doe@university.edu", "password123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, again.ID)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	s := newTestSessionStore(t)
	seedAccount(t, s, "alex@university.edu", "password123")

	_, err := s.Login(context.Background(), "alex@university.edu", "wrong-password")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestSignupPasswordLength(t *testing.T) {
	s := newTestSessionStore(t)

	_, err := s.Signup(context.Background(), "Alex", "alex@university.edu", "12345")
	assert.ErrorIs(t, err, apperrors.ErrPasswordTooShort)

	user, err := s.Signup(context.Background(), "Alex", "alex@university.edu", "123456")
	require.NoError(t, err)
	assert.Equal(t, "Alex", user.Name)
}

func TestSignupRequiresAllFields(t *testing.T) {
	s := newTestSessionStore(t)

	_, err := s.Signup(context.Background(), "", "alex@university.edu", "password123")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	s := newTestSessionStore(t)
	seedAccount(t, s, "alex@university.edu", "password123")

	_, err := s.Signup(context.Background(), "Other Alex", "alex@university.edu", "password456")
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestLoginCancelledContext(t *testing.T) {
	s := NewSessionStore(time.Minute, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Login(ctx, "alex@university.edu", "password123")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestUpdateProfilePartial(t *testing.T) {
	s := newTestSessionStore(t)
	seeded := seedAccount(t, s, "alex@university.edu", "password123")

	bio := "Trading React lessons for Spanish."
	updated, err := s.UpdateProfile(context.Background(), seeded.ID, ProfileUpdate{Bio: &bio})
	require.NoError(t, err)

	assert.Equal(t, bio, updated.Bio)
	assert.Equal(t, "Alex Johnson", updated.Name)
}

func TestUpdateProfileUnknownUser(t *testing.T) {
	s := newTestSessionStore(t)

	_, err := s.UpdateProfile(context.Background(), 42, ProfileUpdate{})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestSkillListRoundTrip(t *testing.T) {
	s := newTestSessionStore(t)
	seeded := seedAccount(t, s, "alex@university.edu", "password123")

	_, err := s.AddSkill(seeded.ID, SkillsOffered, "React")
	require.NoError(t, err)
	_, err = s.AddSkill(seeded.ID, SkillsOffered, "React")
	require.NoError(t, err)
	user, err := s.AddSkill(seeded.ID, SkillsWanted, "Spanish")
	require.NoError(t, err)

	assert.Equal(t, []string{"React", "React"}, user.SkillsOffered)
	assert.Equal(t, []string{"Spanish"}, user.SkillsWanted)

	// Removal drops every copy.
	user, err = s.RemoveSkill(seeded.ID, SkillsOffered, "React")
	require.NoError(t, err)
	assert.Empty(t, user.SkillsOffered)

	// Removing an absent skill is a no-op.
	user, err = s.RemoveSkill(seeded.ID, SkillsWanted, "Photography")
	require.NoError(t, err)
	assert.Equal(t, []string{"Spanish"}, user.SkillsWanted)
}

func TestDisplayNameFromEmail(t *testing.T) {
	assert.Equal(t, "Alex", displayNameFromEmail("alex@university.edu"))
	assert.Equal(t, "Jane.doe", displayNameFromEmail("jane.doe@example.com"))
}
