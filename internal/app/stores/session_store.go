package stores

import (
	"context"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/rs/zerolog"

	"github.com/skillswap/skillswap/internal/app/models"
	"github.com/skillswap/skillswap/internal/pkg/apperrors"
	"github.com/skillswap/skillswap/internal/pkg/auth"
)

// SkillList selects which of a user's two skill lists an operation
// targets.
type SkillList string

const (
	SkillsOffered SkillList = "offered"
	SkillsWanted  SkillList = "wanted"
)

// ProfileUpdate carries the editable profile fields. Nil fields are
// left untouched.
type ProfileUpdate struct {
	Name       *string
	Avatar     *string
	Bio        *string
	Location   *string
	Website    *string
	University *string
	Major      *string
}

// SessionStore owns user accounts and the authentication state. All
// state is process-local; a restart starts from the seeded accounts.
// Login and signup pass through a single simulated-latency suspension
// and are single-flighted per email, so a double-submit cannot run two
// overlapping attempts for the same account.
type SessionStore struct {
	mu       sync.Mutex
	byID     map[int64]*models.User
	byEmail  map[string]*models.User
	inFlight map[string]struct{}
	refresh  map[string]int64
	nextID   int64
	latency  time.Duration
	logger   zerolog.Logger
}

// NewSessionStore creates an empty session store.
func NewSessionStore(latency time.Duration, logger zerolog.Logger) *SessionStore {
	return &SessionStore{
		byID:     make(map[int64]*models.User),
		byEmail:  make(map[string]*models.User),
		inFlight: make(map[string]struct{}),
		refresh:  make(map[string]int64),
		latency:  latency,
		logger:   logger.With().Str("store", "session").Logger(),
	}
}

// StoreRefreshToken binds an opaque refresh token to a user.
func (s *SessionStore) StoreRefreshToken(token string, userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refresh[token] = userID
}

// RedeemRefreshToken consumes a refresh token and returns a copy of
// its user. Tokens are single-use; redeeming invalidates them.
func (s *SessionStore) RedeemRefreshToken(token string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	userID, ok := s.refresh[token]
	if !ok {
		return nil, apperrors.ErrTokenInvalid
	}
	delete(s.refresh, token)

	user, ok := s.byID[userID]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user.Clone(), nil
}

// SeedUser registers an account directly, bypassing latency and
// single-flight. Used only for startup seeding.
func (s *SessionStore) SeedUser(user *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user.ID == 0 {
		s.nextID++
		user.ID = s.nextID
	} else if user.ID > s.nextID {
		s.nextID = user.ID
	}
	s.byID[user.ID] = user
	s.byEmail[strings.ToLower(user.Email)] = user
}

// Login authenticates an email/password pair. An unknown email creates
// a demo account on the fly, with a display name derived from the email
// local part; a known account requires the stored password to match.
func (s *SessionStore) Login(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, apperrors.NewValidationError("Email and password are required")
	}

	release, err := s.acquire(email)
	if err != nil {
		return nil, err
	}
	defer release()

	if err := simulateLatency(ctx, s.latency); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.byEmail[email]
	if ok {
		if !auth.CheckPassword(user.Password, password) {
			s.logger.Warn().Str("email", email).Msg("Login failed: invalid credentials")
			return nil, apperrors.ErrInvalidCredentials
		}
		s.logger.Info().Int64("userId", user.ID).Msg("User logged in")
		return user.Clone(), nil
	}

	// First sight of this email: provision a demo account so any
	// well-formed credential pair gets a session.
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}
	s.nextID++
	now := time.Now()
	user = &models.User{
		ID:            s.nextID,
		Name:          displayNameFromEmail(email),
		Email:         email,
		Password:      hash,
		Avatar:        "👨‍💻",
		Role:          "student",
		SkillsOffered: []string{},
		SkillsWanted:  []string{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	s.byID[user.ID] = user
	s.byEmail[email] = user
	s.logger.Info().Int64("userId", user.ID).Msg("Demo account provisioned on login")
	return user.Clone(), nil
}

// Signup registers a new account.
func (s *SessionStore) Signup(ctx context.Context, name, email, password string) (*models.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(strings.ToLower(email))
	if name == "" || email == "" || password == "" {
		return nil, apperrors.NewValidationError("All fields are required")
	}
	if len(password) < 6 {
		return nil, apperrors.ErrPasswordTooShort
	}

	release, err := s.acquire(email)
	if err != nil {
		return nil, err
	}
	defer release()

	if err := simulateLatency(ctx, s.latency); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[email]; exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}
	s.nextID++
	now := time.Now()
	user := &models.User{
		ID:            s.nextID,
		Name:          name,
		Email:         email,
		Password:      hash,
		Avatar:        "🎓",
		Role:          "student",
		SkillsOffered: []string{},
		SkillsWanted:  []string{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	s.byID[user.ID] = user
	s.byEmail[email] = user
	s.logger.Info().Int64("userId", user.ID).Msg("User signed up")
	return user.Clone(), nil
}

// UserByID returns a copy of the account with the given identifier.
func (s *SessionStore) UserByID(id int64) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.byID[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user.Clone(), nil
}

// UpdateProfile applies a partial profile update after the simulated
// latency. Unknown users fail; nil fields keep their current value.
func (s *SessionStore) UpdateProfile(ctx context.Context, userID int64, update ProfileUpdate) (*models.User, error) {
	if err := simulateLatency(ctx, s.latency); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.byID[userID]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}

	if update.Name != nil {
		if strings.TrimSpace(*update.Name) == "" {
			return nil, apperrors.NewValidationError("Name cannot be empty")
		}
		user.Name = strings.TrimSpace(*update.Name)
	}
	if update.Avatar != nil {
		user.Avatar = *update.Avatar
	}
	if update.Bio != nil {
		user.Bio = *update.Bio
	}
	if update.Location != nil {
		user.Location = *update.Location
	}
	if update.Website != nil {
		user.Website = *update.Website
	}
	if update.University != nil {
		user.University = *update.University
	}
	if update.Major != nil {
		user.Major = *update.Major
	}
	user.UpdatedAt = time.Now()

	s.logger.Info().Int64("userId", userID).Msg("Profile updated")
	return user.Clone(), nil
}

// AddSkill appends a skill to one of the user's lists. Duplicates are
// allowed; removal later drops every copy.
func (s *SessionStore) AddSkill(userID int64, list SkillList, skill string) (*models.User, error) {
	skill = strings.TrimSpace(skill)
	if skill == "" {
		return nil, apperrors.NewValidationError("Skill cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.byID[userID]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}

	switch list {
	case SkillsOffered:
		user.SkillsOffered = append(user.SkillsOffered, skill)
	case SkillsWanted:
		user.SkillsWanted = append(user.SkillsWanted, skill)
	default:
		return nil, apperrors.NewValidationError("Unknown skill list")
	}
	user.UpdatedAt = time.Now()
	return user.Clone(), nil
}

// RemoveSkill removes every exact match of skill from the chosen list.
// Removing a skill that is not present is a no-op.
func (s *SessionStore) RemoveSkill(userID int64, list SkillList, skill string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.byID[userID]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}

	switch list {
	case SkillsOffered:
		user.SkillsOffered = removeAll(user.SkillsOffered, skill)
	case SkillsWanted:
		user.SkillsWanted = removeAll(user.SkillsWanted, skill)
	default:
		return nil, apperrors.NewValidationError("Unknown skill list")
	}
	user.UpdatedAt = time.Now()
	return user.Clone(), nil
}

// acquire marks an email as having an authentication attempt in flight
// and returns the release func. A second attempt while one is running
// is refused rather than queued.
func (s *SessionStore) acquire(email string) (func(), error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, busy := s.inFlight[email]; busy {
		return nil, apperrors.ErrOperationInFlight
	}
	s.inFlight[email] = struct{}{}
	return func() {
		s.mu.Lock()
		delete(s.inFlight, email)
		s.mu.Unlock()
	}, nil
}

func removeAll(list []string, skill string) []string {
	out := list[:0]
	for _, s := range list {
		if s != skill {
			out = append(out, s)
		}
	}
	return out
}

// displayNameFromEmail turns the local part of an email into a display
// name: "jane.doe@x" becomes "Jane.doe".
func displayNameFromEmail(email string) string {
	local := email
	if at := strings.IndexByte(email, '@'); at > 0 {
		local = email[:at]
	}
	if local == "" {
		return email
	}
	runes := []rune(local)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
