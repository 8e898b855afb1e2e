package dto

// UpdateProfileRequest carries a partial profile edit. Absent fields
// keep their current values.
type UpdateProfileRequest struct {
	Name       *string `json:"name,omitempty" example:"Alex Johnson"`
	Avatar     *string `json:"avatar,omitempty" example:"👨‍💻"`
	Bio        *string `json:"bio,omitempty" example:"CS senior, happy to trade React lessons for Spanish."`
	Location   *string `json:"location,omitempty" example:"Berlin"`
	Website    *string `json:"website,omitempty" example:"https://alex.dev"`
	University *string `json:"university,omitempty" example:"TU Berlin"`
	Major      *string `json:"major,omitempty" example:"Computer Science"`
}

// SkillRequest adds or removes a skill on one of the two lists.
type SkillRequest struct {
	List  string `json:"list" binding:"required,oneof=offered wanted" example:"offered"`
	Skill string `json:"skill" binding:"required" example:"React"`
}

// DashboardSkills is the skills block on the dashboard.
type DashboardSkills struct {
	Offered []string `json:"offered"`
	Wanted  []string `json:"wanted"`
}

// DashboardStats are the headline numbers on the dashboard.
type DashboardStats struct {
	SessionsCompleted int     `json:"sessionsCompleted"`
	Rating            float64 `json:"rating"`
	SkillsOffered     int     `json:"skillsOffered"`
	SkillsWanted      int     `json:"skillsWanted"`
}

// UpcomingSession is a scheduled exchange shown on the dashboard.
type UpcomingSession struct {
	ID      int64  `json:"id"`
	Partner string `json:"partner"`
	Skill   string `json:"skill"`
	Time    string `json:"time"`
	Type    string `json:"type"`
}

// DashboardResponse is the aggregate dashboard payload.
type DashboardResponse struct {
	Stats            DashboardStats    `json:"stats"`
	Skills           DashboardSkills   `json:"skills"`
	UpcomingSessions []UpcomingSession `json:"upcomingSessions"`
}
