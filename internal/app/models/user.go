package models

import (
	"time"
)

// User defines a platform member. Sessions hold at most one user; every
// other component receives a read-only reference.
type User struct {
	ID         int64  `json:"id" example:"1"`
	Name       string `json:"name" example:"Alex"`              // Display name
	Email      string `json:"email" example:"alex@example.com"` // User's email address
	Password   string `json:"-"`                                // Hashed password (excluded from JSON)
	Avatar     string `json:"avatar" example:"👨‍💻"`             // Avatar glyph
	Role       string `json:"role" example:"student"`           // Platform role
	Bio        string `json:"bio"`
	Location   string `json:"location"`
	Website    string `json:"website"`
	University string `json:"university"`
	Major      string `json:"major"`

	// Skill exchange profile. Both lists are ordered and may contain
	// duplicate entries; removal drops every exact match.
	SkillsOffered []string `json:"skillsOffered"`
	SkillsWanted  []string `json:"skillsWanted"`

	Rating   float64 `json:"rating" example:"4.8"`  // Peer rating, 0 means unrated
	Sessions int     `json:"sessions" example:"23"` // Completed exchange sessions

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Clone returns a copy safe to hand to callers.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	copied := *u
	copied.SkillsOffered = append([]string(nil), u.SkillsOffered...)
	copied.SkillsWanted = append([]string(nil), u.SkillsWanted...)
	return &copied
}
