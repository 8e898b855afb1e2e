package dto

import (
	"github.com/skillswap/skillswap/internal/app/models"
	"github.com/skillswap/skillswap/internal/app/stores"
)

// CreateGroupRequest is the group creation form payload.
type CreateGroupRequest struct {
	Name        string `json:"name" binding:"required" example:"Advanced Algorithms Study Circle"`
	Description string `json:"description" binding:"required" example:"Weekly deep dives into algorithm design."`
	Subject     string `json:"subject" binding:"required" example:"Computer Science"`
	MaxMembers  int    `json:"maxMembers" binding:"required,min=2" example:"10"`
	NextSession string `json:"nextSession" binding:"required" example:"2025-06-30T18:00:00"`
	Location    string `json:"location" example:"Online"`
	Frequency   string `json:"frequency" example:"Weekly"`
	Difficulty  string `json:"difficulty" example:"Advanced"`
	Tags        string `json:"tags" example:"Algorithms,Data Structures"`
}

// GroupResponse is a study group decorated with the viewer's
// membership.
type GroupResponse struct {
	*models.StudyGroup
	IsJoined bool `json:"isJoined"`
}

// GroupListResponse is the groups page payload: the filtered list plus
// the filter-independent aggregates.
type GroupListResponse struct {
	Groups []GroupResponse   `json:"groups"`
	Stats  stores.GroupStats `json:"stats"`
}
