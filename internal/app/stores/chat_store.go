package stores

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/skillswap/skillswap/internal/app/models"
)

// ChatStore keeps one message log per study group. Delivery is
// synchronous: a sent message is in the log before Send returns.
// Logs survive members leaving and panels closing; they are dropped
// only with the process.
type ChatStore struct {
	mu   sync.RWMutex
	logs map[int64][]*models.ChatMessage

	logger zerolog.Logger
}

// NewChatStore creates an empty chat store.
func NewChatStore(logger zerolog.Logger) *ChatStore {
	return &ChatStore{
		logs:   make(map[int64][]*models.ChatMessage),
		logger: logger.With().Str("store", "chat").Logger(),
	}
}

// Register opens a log for a group, seeded with a single system
// welcome message. Registering an already known group does nothing.
func (s *ChatStore) Register(groupID int64, groupName string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.logs[groupID]; ok {
		return
	}
	s.logs[groupID] = []*models.ChatMessage{{
		Seq:       1,
		Sender:    models.SystemSender,
		Message:   fmt.Sprintf("Welcome to %s!", groupName),
		Timestamp: time.Now(),
	}}
}

// Send appends a message to a group's log and returns a copy of it.
// A blank message, or a group without a log, is a silent no-op
// returning nil.
func (s *ChatStore) Send(groupID int64, sender, text string) *models.ChatMessage {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	log, ok := s.logs[groupID]
	if !ok {
		return nil
	}
	msg := &models.ChatMessage{
		Seq:       len(log) + 1,
		Sender:    sender,
		Message:   text,
		Timestamp: time.Now(),
	}
	s.logs[groupID] = append(log, msg)
	s.logger.Debug().Int64("groupId", groupID).Int("seq", msg.Seq).Msg("Chat message appended")

	copied := *msg
	return &copied
}

// Messages returns a copy of a group's log in send order.
func (s *ChatStore) Messages(groupID int64) []*models.ChatMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	log := s.logs[groupID]
	out := make([]*models.ChatMessage, 0, len(log))
	for _, m := range log {
		copied := *m
		out = append(out, &copied)
	}
	return out
}
