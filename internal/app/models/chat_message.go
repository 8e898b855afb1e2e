package models

import "time"

// SystemSender is the sender name used for store-generated messages.
const SystemSender = "System"

// ChatMessage is a single entry in a group's chat log. Messages are
// append-only; Seq is 1-based and local to the group.
type ChatMessage struct {
	Seq       int       `json:"id" example:"1"`
	Sender    string    `json:"sender" example:"Alex"`
	Message   string    `json:"message" example:"Hello everyone!"`
	Timestamp time.Time `json:"timestamp"`
}

// IsSystem reports whether the message was generated by the store.
func (m *ChatMessage) IsSystem() bool { return m.Sender == SystemSender }
