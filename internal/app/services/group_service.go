package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/skillswap/skillswap/internal/app/models"
	"github.com/skillswap/skillswap/internal/app/models/dto"
	"github.com/skillswap/skillswap/internal/app/stores"
	"github.com/skillswap/skillswap/internal/pkg/apperrors"
)

const defaultGroupAvatar = "📖"

// GroupService handles study groups, membership, the creation form,
// and per-group chat.
type GroupService interface {
	ListGroups(ctx context.Context, viewerID int64, search, filter string) (*dto.GroupListResponse, error)
	GetGroup(ctx context.Context, groupID, viewerID int64) (*dto.GroupResponse, error)
	CreateGroup(ctx context.Context, userID int64, req *dto.CreateGroupRequest) (*dto.GroupResponse, error)
	Join(ctx context.Context, groupID, userID int64) (*dto.GroupResponse, error)
	Leave(ctx context.Context, groupID, userID int64) (*dto.GroupResponse, error)

	OpenCreateForm(ctx context.Context, userID int64) stores.GroupDraft
	SaveDraft(ctx context.Context, userID int64, draft stores.GroupDraft) error
	CloseCreateForm(ctx context.Context, userID int64)

	OpenChat(ctx context.Context, userID, groupID int64) (*dto.ChatLogResponse, error)
	CloseChat(ctx context.Context, userID int64)
	Messages(ctx context.Context, userID, groupID int64) (*dto.ChatLogResponse, error)
	SendMessage(ctx context.Context, userID, groupID int64, text string) (*models.ChatMessage, error)
}

type groupServiceImpl struct {
	groups   *stores.GroupStore
	chat     *stores.ChatStore
	drafts   *stores.DraftStore
	sessions *stores.SessionStore
	logger   zerolog.Logger
}

// NewGroupService creates a new group service.
func NewGroupService(groups *stores.GroupStore, chat *stores.ChatStore, drafts *stores.DraftStore, sessions *stores.SessionStore, logger zerolog.Logger) GroupService {
	return &groupServiceImpl{
		groups:   groups,
		chat:     chat,
		drafts:   drafts,
		sessions: sessions,
		logger:   logger.With().Str("service", "group").Logger(),
	}
}

// ListGroups returns the filtered list plus the aggregates. The
// aggregates always cover the whole list, not the filtered slice.
func (s *groupServiceImpl) ListGroups(_ context.Context, viewerID int64, search, filter string) (*dto.GroupListResponse, error) {
	groups := s.groups.List(search, filter, viewerID)
	out := make([]dto.GroupResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, dto.GroupResponse{
			StudyGroup: g,
			IsJoined:   s.groups.IsJoined(g.ID, viewerID),
		})
	}
	return &dto.GroupListResponse{
		Groups: out,
		Stats:  s.groups.Stats(viewerID),
	}, nil
}

// GetGroup returns one group with the viewer's membership flag.
func (s *groupServiceImpl) GetGroup(_ context.Context, groupID, viewerID int64) (*dto.GroupResponse, error) {
	g, err := s.groups.Get(groupID)
	if err != nil {
		return nil, err
	}
	return &dto.GroupResponse{StudyGroup: g, IsJoined: s.groups.IsJoined(groupID, viewerID)}, nil
}

// CreateGroup validates the form and publishes the group. The creator
// becomes the first member, the group's chat log opens with its
// welcome message, and the form closes. On validation failure nothing
// is created and the form stays open with its draft intact.
func (s *groupServiceImpl) CreateGroup(_ context.Context, userID int64, req *dto.CreateGroupRequest) (*dto.GroupResponse, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Description) == "" ||
		strings.TrimSpace(req.Subject) == "" || strings.TrimSpace(req.NextSession) == "" {
		return nil, apperrors.NewValidationError("Name, description, subject, and next session are required")
	}
	if req.MaxMembers < 2 {
		return nil, apperrors.NewValidationError("A group needs room for at least 2 members")
	}

	organizer := "You"
	if user, err := s.sessions.UserByID(userID); err == nil {
		organizer = user.Name
	}

	group := &models.StudyGroup{
		Name:         strings.TrimSpace(req.Name),
		Description:  strings.TrimSpace(req.Description),
		Subject:      req.Subject,
		MaxMembers:   req.MaxMembers,
		NextSession:  req.NextSession,
		Location:     defaultString(req.Location, models.LocationOnline),
		Frequency:    defaultString(req.Frequency, models.FrequencyWeekly),
		Difficulty:   defaultString(req.Difficulty, models.DifficultyBeginner),
		Tags:         splitTags(req.Tags),
		Organizer:    organizer,
		Avatar:       defaultGroupAvatar,
		LastActivity: "just now",
	}

	created := s.groups.Create(group, userID)
	s.chat.Register(created.ID, created.Name)
	s.drafts.CloseGroupForm(userID)

	return &dto.GroupResponse{StudyGroup: created, IsJoined: true}, nil
}

// Join adds the viewer to the group.
func (s *groupServiceImpl) Join(_ context.Context, groupID, userID int64) (*dto.GroupResponse, error) {
	g, err := s.groups.Join(groupID, userID)
	if err != nil {
		return nil, err
	}
	// Seeded groups get their chat log on first join.
	s.chat.Register(g.ID, g.Name)
	return &dto.GroupResponse{StudyGroup: g, IsJoined: true}, nil
}

// Leave removes the viewer from the group. The chat log survives; the
// viewer's chat panel closes if it pointed at this group.
func (s *groupServiceImpl) Leave(_ context.Context, groupID, userID int64) (*dto.GroupResponse, error) {
	g, err := s.groups.Leave(groupID, userID)
	if err != nil {
		return nil, err
	}
	if open, ok := s.drafts.ChatPanel(userID); ok && open == groupID {
		s.drafts.CloseChatPanel(userID)
	}
	return &dto.GroupResponse{StudyGroup: g, IsJoined: false}, nil
}

// OpenCreateForm opens the creation form and returns the draft.
func (s *groupServiceImpl) OpenCreateForm(_ context.Context, userID int64) stores.GroupDraft {
	return s.drafts.OpenGroupForm(userID)
}

// SaveDraft stores the typed-but-unsubmitted form state.
func (s *groupServiceImpl) SaveDraft(_ context.Context, userID int64, draft stores.GroupDraft) error {
	return s.drafts.UpdateGroupDraft(userID, draft)
}

// CloseCreateForm dismisses the form and discards the draft.
func (s *groupServiceImpl) CloseCreateForm(_ context.Context, userID int64) {
	s.drafts.CloseGroupForm(userID)
}

// OpenChat opens the group's chat panel for a member and returns the
// current log. Non-members are refused.
func (s *groupServiceImpl) OpenChat(ctx context.Context, userID, groupID int64) (*dto.ChatLogResponse, error) {
	if err := s.requireMembership(groupID, userID); err != nil {
		return nil, err
	}
	s.drafts.OpenChatPanel(userID, groupID)
	return s.Messages(ctx, userID, groupID)
}

// CloseChat closes the viewer's chat panel.
func (s *groupServiceImpl) CloseChat(_ context.Context, userID int64) {
	s.drafts.CloseChatPanel(userID)
}

// Messages returns the group's log for a member.
func (s *groupServiceImpl) Messages(_ context.Context, userID, groupID int64) (*dto.ChatLogResponse, error) {
	if err := s.requireMembership(groupID, userID); err != nil {
		return nil, err
	}
	return &dto.ChatLogResponse{
		GroupID:  groupID,
		Messages: s.chat.Messages(groupID),
	}, nil
}

// SendMessage appends a message to the group's log as the viewer. A
// blank message is a silent no-op returning nil. Delivery is
// synchronous; when this returns, the message is in the log.
func (s *groupServiceImpl) SendMessage(_ context.Context, userID, groupID int64, text string) (*models.ChatMessage, error) {
	if err := s.requireMembership(groupID, userID); err != nil {
		return nil, err
	}

	sender := "You"
	if user, err := s.sessions.UserByID(userID); err == nil {
		sender = user.Name
	}
	return s.chat.Send(groupID, sender, text), nil
}

func (s *groupServiceImpl) requireMembership(groupID, userID int64) error {
	if _, err := s.groups.Get(groupID); err != nil {
		return err
	}
	if !s.groups.IsJoined(groupID, userID) {
		return apperrors.ErrNotMember
	}
	return nil
}
