package stores

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/skillswap/skillswap/internal/app/models"
	"github.com/skillswap/skillswap/internal/pkg/apperrors"
)

// Group list filters beyond a plain subject match.
const (
	FilterAll       = "all"
	FilterJoined    = "joined"
	FilterAvailable = "available"
	FilterOnline    = "online"
	FilterInPerson  = "in-person"
)

// GroupStats are the aggregates shown above the group list.
type GroupStats struct {
	ActiveGroups   int `json:"activeGroups"`
	JoinedGroups   int `json:"joinedGroups"`
	OnlineGroups   int `json:"onlineGroups"`
	InPersonGroups int `json:"inPersonGroups"`
}

// GroupStore owns the study group list and per-user membership.
// Membership is a set per group; the Members counter moves with the
// set, so a double-fired join or leave cannot drift the count.
type GroupStore struct {
	collection Collection[*models.StudyGroup]

	mu      sync.RWMutex
	members map[int64]map[int64]struct{}

	latency time.Duration
	logger  zerolog.Logger
}

// NewGroupStore creates an empty group store.
func NewGroupStore(latency time.Duration, logger zerolog.Logger) *GroupStore {
	return &GroupStore{
		members: make(map[int64]map[int64]struct{}),
		latency: latency,
		logger:  logger.With().Str("store", "groups").Logger(),
	}
}

// Seed installs the initial group list after the simulated load delay.
// Runs once; later calls do nothing.
func (s *GroupStore) Seed(ctx context.Context, groups []*models.StudyGroup) error {
	if err := simulateLatency(ctx, s.latency); err != nil {
		return err
	}
	s.collection.Seed(groups)
	s.logger.Info().Int("count", len(groups)).Msg("Study groups seeded")
	return nil
}

// List returns the groups matching the search term and filter, in list
// order. The search term matches name or description. The filter is
// one of the Filter* selectors; any other value is treated as a
// subject match.
func (s *GroupStore) List(search, filter string, viewerID int64) []*models.StudyGroup {
	// Filter hands back clones, so membership checks (which take the
	// store lock) run after the collection lock is released, never
	// inside it.
	candidates := s.collection.Filter(func(g *models.StudyGroup) bool {
		return matchesSearch(search, g.Name, g.Description)
	})
	out := make([]*models.StudyGroup, 0, len(candidates))
	for _, g := range candidates {
		if s.matchesFilter(filter, g, viewerID) {
			out = append(out, g)
		}
	}
	return out
}

func (s *GroupStore) matchesFilter(filter string, g *models.StudyGroup, viewerID int64) bool {
	switch filter {
	case "", FilterAll:
		return true
	case FilterJoined:
		return s.IsJoined(g.ID, viewerID)
	case FilterAvailable:
		return g.HasCapacity()
	case FilterOnline:
		return g.IsOnline()
	case FilterInPerson:
		return !g.IsOnline()
	default:
		return g.Subject == filter
	}
}

// Get returns a copy of a single group.
func (s *GroupStore) Get(id int64) (*models.StudyGroup, error) {
	g, ok := s.collection.Get(id)
	if !ok {
		return nil, apperrors.ErrGroupNotFound
	}
	return g, nil
}

// Create adds a new group at the front of the list, with the creator
// as its first member.
func (s *GroupStore) Create(group *models.StudyGroup, creatorID int64) *models.StudyGroup {
	s.mu.Lock()
	defer s.mu.Unlock()

	group.ID = s.collection.NextID()
	group.CreatedAt = time.Now()
	group.Members = 1
	s.members[group.ID] = map[int64]struct{}{creatorID: {}}
	// The collection keeps its own clone; the caller's instance never
	// aliases collection-owned memory.
	s.collection.Prepend(group.Clone())
	s.logger.Info().Int64("groupId", group.ID).Str("name", group.Name).Msg("Study group created")
	return group
}

// Join adds the user to a group. A group at capacity refuses the join,
// and joining twice is refused rather than double-counted.
func (s *GroupStore) Join(groupID, userID int64) (*models.StudyGroup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.collection.Get(groupID)
	if !ok {
		return nil, apperrors.ErrGroupNotFound
	}
	set := s.members[groupID]
	if set == nil {
		set = make(map[int64]struct{})
		s.members[groupID] = set
	}
	if _, joined := set[userID]; joined {
		return nil, apperrors.ErrAlreadyJoined
	}
	if !g.HasCapacity() {
		return nil, apperrors.ErrGroupFull
	}
	set[userID] = struct{}{}

	var updated *models.StudyGroup
	s.collection.Mutate(groupID, func(g *models.StudyGroup) {
		g.Members++
		updated = g.Clone()
	})
	s.logger.Info().Int64("groupId", groupID).Int64("userId", userID).Msg("User joined group")
	return updated, nil
}

// Leave removes the user from a group and decrements the counter.
func (s *GroupStore) Leave(groupID, userID int64) (*models.StudyGroup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.collection.Contains(groupID) {
		return nil, apperrors.ErrGroupNotFound
	}
	set := s.members[groupID]
	if _, joined := set[userID]; !joined {
		return nil, apperrors.ErrNotMember
	}
	delete(set, userID)

	var updated *models.StudyGroup
	s.collection.Mutate(groupID, func(g *models.StudyGroup) {
		if g.Members > 0 {
			g.Members--
		}
		updated = g.Clone()
	})
	s.logger.Info().Int64("groupId", groupID).Int64("userId", userID).Msg("User left group")
	return updated, nil
}

// IsJoined reports whether the user is a member of the group.
func (s *GroupStore) IsJoined(groupID, userID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.members[groupID][userID]
	return ok
}

// Stats computes the group aggregates for a viewer over all groups,
// ignoring any active search or filter.
func (s *GroupStore) Stats(viewerID int64) GroupStats {
	groups := s.collection.Filter(func(*models.StudyGroup) bool { return true })
	var stats GroupStats
	for _, g := range groups {
		stats.ActiveGroups++
		if s.IsJoined(g.ID, viewerID) {
			stats.JoinedGroups++
		}
		if g.IsOnline() {
			stats.OnlineGroups++
		} else {
			stats.InPersonGroups++
		}
	}
	return stats
}
