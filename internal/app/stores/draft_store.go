package stores

import (
	"sync"

	"github.com/skillswap/skillswap/internal/app/models"
	"github.com/skillswap/skillswap/internal/pkg/apperrors"
)

// CourseDraft is the working copy behind the course creation form.
type CourseDraft struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Duration    string `json:"duration"`
	Difficulty  string `json:"difficulty"`
	Price       string `json:"price"`
}

// GroupDraft is the working copy behind the group creation form.
type GroupDraft struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Subject     string `json:"subject"`
	MaxMembers  int    `json:"maxMembers"`
	NextSession string `json:"nextSession"`
	Location    string `json:"location"`
	Frequency   string `json:"frequency"`
	Difficulty  string `json:"difficulty"`
}

func defaultCourseDraft() CourseDraft {
	return CourseDraft{
		Category:   models.CategoryProgramming,
		Difficulty: models.DifficultyBeginner,
		Price:      "Free",
	}
}

func defaultGroupDraft() GroupDraft {
	return GroupDraft{
		MaxMembers: 10,
		Location:   models.LocationOnline,
		Frequency:  models.FrequencyWeekly,
		Difficulty: models.DifficultyBeginner,
	}
}

type dialog[T any] struct {
	open  bool
	draft T
}

// DraftStore tracks per-user transient UI state: the two creation
// forms with their typed-but-unsubmitted drafts, and which group chat
// panel is open. Closing a form resets its draft; a failed submit
// leaves the form open with the draft intact.
type DraftStore struct {
	mu          sync.Mutex
	courseForms map[int64]*dialog[CourseDraft]
	groupForms  map[int64]*dialog[GroupDraft]
	chatPanels  map[int64]int64
}

// NewDraftStore creates an empty draft store.
func NewDraftStore() *DraftStore {
	return &DraftStore{
		courseForms: make(map[int64]*dialog[CourseDraft]),
		groupForms:  make(map[int64]*dialog[GroupDraft]),
		chatPanels:  make(map[int64]int64),
	}
}

// OpenCourseForm opens the course creation form for a user and returns
// the draft, starting fresh when the form was closed.
func (s *DraftStore) OpenCourseForm(userID int64) CourseDraft {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.courseForms[userID]
	if d == nil {
		d = &dialog[CourseDraft]{draft: defaultCourseDraft()}
		s.courseForms[userID] = d
	}
	d.open = true
	return d.draft
}

// UpdateCourseDraft replaces the draft while the form is open.
func (s *DraftStore) UpdateCourseDraft(userID int64, draft CourseDraft) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.courseForms[userID]
	if d == nil || !d.open {
		return apperrors.NewBadRequestError("Course form is not open")
	}
	d.draft = draft
	return nil
}

// CourseForm returns the current draft and whether the form is open.
func (s *DraftStore) CourseForm(userID int64) (CourseDraft, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.courseForms[userID]
	if d == nil {
		return defaultCourseDraft(), false
	}
	return d.draft, d.open
}

// CloseCourseForm closes the form and resets its draft.
func (s *DraftStore) CloseCourseForm(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.courseForms, userID)
}

// OpenGroupForm opens the group creation form for a user and returns
// the draft, starting fresh when the form was closed.
func (s *DraftStore) OpenGroupForm(userID int64) GroupDraft {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.groupForms[userID]
	if d == nil {
		d = &dialog[GroupDraft]{draft: defaultGroupDraft()}
		s.groupForms[userID] = d
	}
	d.open = true
	return d.draft
}

// UpdateGroupDraft replaces the draft while the form is open.
func (s *DraftStore) UpdateGroupDraft(userID int64, draft GroupDraft) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.groupForms[userID]
	if d == nil || !d.open {
		return apperrors.NewBadRequestError("Group form is not open")
	}
	d.draft = draft
	return nil
}

// GroupForm returns the current draft and whether the form is open.
func (s *DraftStore) GroupForm(userID int64) (GroupDraft, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.groupForms[userID]
	if d == nil {
		return defaultGroupDraft(), false
	}
	return d.draft, d.open
}

// CloseGroupForm closes the form and resets its draft.
func (s *DraftStore) CloseGroupForm(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.groupForms, userID)
}

// OpenChatPanel records which group's chat panel a user has open.
func (s *DraftStore) OpenChatPanel(userID, groupID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chatPanels[userID] = groupID
}

// ChatPanel returns the open panel's group, or false when none is open.
func (s *DraftStore) ChatPanel(userID int64) (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	groupID, ok := s.chatPanels[userID]
	return groupID, ok
}

// CloseChatPanel closes the user's chat panel.
func (s *DraftStore) CloseChatPanel(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.chatPanels, userID)
}
