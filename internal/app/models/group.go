package models

import "time"

// LocationOnline is the sentinel location meaning the group has no
// physical venue.
const LocationOnline = "Online"

// Session frequencies.
const (
	FrequencyWeekly   = "Weekly"
	FrequencyBiweekly = "Bi-weekly"
	FrequencyMonthly  = "Monthly"
)

// StudyGroup defines a study group entity held by the group store.
// Members never exceeds MaxMembers as a result of a join.
type StudyGroup struct {
	ID           int64    `json:"id" example:"1"`
	Name         string   `json:"name" example:"React Mastery Group"`
	Description  string   `json:"description"`
	Subject      string   `json:"subject" example:"Programming"`
	Members      int      `json:"members" example:"12"`
	MaxMembers   int      `json:"maxMembers" example:"15"`
	NextSession  string   `json:"nextSession" example:"2025-06-30T18:00:00"`
	Location     string   `json:"location" example:"Online"`
	Frequency    string   `json:"frequency" example:"Weekly"`
	Difficulty   string   `json:"difficulty" example:"Intermediate"`
	Tags         []string `json:"tags"`
	Organizer    string   `json:"organizer" example:"Alex Chen"`
	Avatar       string   `json:"avatar"`
	LastActivity string   `json:"lastActivity" example:"2 hours ago"`

	CreatedAt time.Time `json:"createdAt"`
}

// EntityID implements the collection entity contract.
func (g *StudyGroup) EntityID() int64 { return g.ID }

// IsOnline reports whether the group meets virtually.
func (g *StudyGroup) IsOnline() bool { return g.Location == LocationOnline }

// HasCapacity reports whether the group can accept another member.
func (g *StudyGroup) HasCapacity() bool { return g.Members < g.MaxMembers }

// Clone returns a copy safe to hand to callers.
func (g *StudyGroup) Clone() *StudyGroup {
	copied := *g
	copied.Tags = append([]string(nil), g.Tags...)
	return &copied
}
