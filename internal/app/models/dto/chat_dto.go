package dto

import "github.com/skillswap/skillswap/internal/app/models"

// SendMessageRequest is the chat input payload.
type SendMessageRequest struct {
	Message string `json:"message" example:"Anyone up for a session tonight?"`
}

// ChatLogResponse is a group's full message log.
type ChatLogResponse struct {
	GroupID  int64                 `json:"groupId"`
	Messages []*models.ChatMessage `json:"messages"`
}
