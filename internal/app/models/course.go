package models

import "time"

// Course categories. "all" is a filter value, not a category.
const (
	CategoryProgramming = "Programming"
	CategoryDataScience = "Data Science"
	CategoryDesign      = "Design"
	CategoryMarketing   = "Marketing"
	CategoryBusiness    = "Business"
)

// Difficulty levels shared by courses and study groups.
const (
	DifficultyBeginner     = "Beginner"
	DifficultyIntermediate = "Intermediate"
	DifficultyAdvanced     = "Advanced"
)

// Course defines a course entity held by the course store.
// Courses are never deleted; the only mutation after creation is the
// enrollment count moving with enroll/unenroll.
type Course struct {
	ID          int64    `json:"id" example:"1"`
	Title       string   `json:"title" example:"Advanced React Development"`
	Description string   `json:"description"`
	Category    string   `json:"category" example:"Programming"`
	Instructor  string   `json:"instructor" example:"Sarah Johnson"`
	Students    int      `json:"students" example:"156"` // Enrollment count, never negative
	Duration    string   `json:"duration" example:"8 weeks"`
	Rating      float64  `json:"rating" example:"4.8"` // 0–5, 0 means unrated
	Image       string   `json:"image"`
	Tags        []string `json:"tags"`
	Difficulty  string   `json:"difficulty" example:"Advanced"`
	Price       string   `json:"price" example:"Free"`
	VideoCount  int      `json:"videoCount,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// EntityID implements the collection entity contract.
func (c *Course) EntityID() int64 { return c.ID }

// Clone returns a copy safe to hand to callers.
func (c *Course) Clone() *Course {
	copied := *c
	copied.Tags = append([]string(nil), c.Tags...)
	return &copied
}
