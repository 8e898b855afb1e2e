package seed

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/skillswap/skillswap/internal/app/models"
	"github.com/skillswap/skillswap/internal/app/stores"
	"github.com/skillswap/skillswap/internal/pkg/auth"
)

// DemoEmail is the account seeded for local development.
const DemoEmail = "alex@university.edu"

// Seeder loads the demo dataset into the in-memory stores.
type Seeder struct {
	sessions *stores.SessionStore
	courses  *stores.CourseStore
	groups   *stores.GroupStore
	logger   zerolog.Logger
}

// NewSeeder creates a new seeder.
func NewSeeder(sessions *stores.SessionStore, courses *stores.CourseStore, groups *stores.GroupStore, logger zerolog.Logger) *Seeder {
	return &Seeder{
		sessions: sessions,
		courses:  courses,
		groups:   groups,
		logger:   logger.With().Str("component", "seed").Logger(),
	}
}

// Run seeds the demo user, course catalog, and study groups.
func (s *Seeder) Run(ctx context.Context) error {
	s.seedUsers()
	if err := s.courses.Seed(ctx, Courses()); err != nil {
		return err
	}
	if err := s.groups.Seed(ctx, StudyGroups()); err != nil {
		return err
	}
	s.logger.Info().Msg("Demo data seeded")
	return nil
}

func (s *Seeder) seedUsers() {
	hash, err := auth.HashPassword("password123")
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to hash demo password")
		return
	}
	now := time.Now()
	s.sessions.SeedUser(&models.User{
		Name:          "Alex Johnson",
		Email:         DemoEmail,
		Password:      hash,
		Avatar:        "👨‍💻",
		Role:          "student",
		University:    "Tech University",
		Major:         "Computer Science",
		SkillsOffered: []string{"React", "Python", "UI Design"},
		SkillsWanted:  []string{"Machine Learning", "Spanish", "Photography"},
		Rating:        4.8,
		Sessions:      23,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
}

// Courses returns the seeded course catalog.
func Courses() []*models.Course {
	created := time.Now().Add(-30 * 24 * time.Hour)
	return []*models.Course{
		{
			ID:          1,
			Title:       "Complete React Development",
			Description: "Master React from basics to advanced concepts including hooks, context, and state management",
			Category:    models.CategoryProgramming,
			Instructor:  "Sarah Chen",
			Students:    1247,
			Duration:    "12 weeks",
			Rating:      4.8,
			Image:       "⚛️",
			Tags:        []string{"React", "JavaScript", "Frontend"},
			Difficulty:  models.DifficultyIntermediate,
			Price:       "Free",
			CreatedAt:   created,
		},
		{
			ID:          2,
			Title:       "Python for Data Science",
			Description: "Learn Python programming with focus on data analysis, visualization, and machine learning",
			Category:    models.CategoryDataScience,
			Instructor:  "Dr. Michael Rodriguez",
			Students:    2156,
			Duration:    "16 weeks",
			Rating:      4.9,
			Image:       "🐍",
			Tags:        []string{"Python", "Data Science", "ML"},
			Difficulty:  models.DifficultyBeginner,
			Price:       "Free",
			CreatedAt:   created,
		},
		{
			ID:          3,
			Title:       "UI/UX Design Fundamentals",
			Description: "Create beautiful and functional user interfaces with modern design principles",
			Category:    models.CategoryDesign,
			Instructor:  "Emma Thompson",
			Students:    892,
			Duration:    "8 weeks",
			Rating:      4.7,
			Image:       "🎨",
			Tags:        []string{"UI", "UX", "Figma"},
			Difficulty:  models.DifficultyBeginner,
			Price:       "Free",
			CreatedAt:   created,
		},
		{
			ID:          4,
			Title:       "Digital Marketing Mastery",
			Description: "Complete guide to digital marketing including SEO, social media, and content strategy",
			Category:    models.CategoryMarketing,
			Instructor:  "James Wilson",
			Students:    1634,
			Duration:    "10 weeks",
			Rating:      4.6,
			Image:       "📱",
			Tags:        []string{"Marketing", "SEO", "Social Media"},
			Difficulty:  models.DifficultyIntermediate,
			Price:       "Free",
			CreatedAt:   created,
		},
	}
}

// StudyGroups returns the seeded study group list.
func StudyGroups() []*models.StudyGroup {
	created := time.Now().Add(-14 * 24 * time.Hour)
	return []*models.StudyGroup{
		{
			ID:           1,
			Name:         "React Study Circle",
			Description:  "Weekly sessions covering React fundamentals, hooks, and advanced patterns",
			Subject:      "Programming",
			Members:      8,
			MaxMembers:   12,
			NextSession:  "2025-06-30T18:00:00",
			Location:     models.LocationOnline,
			Frequency:    models.FrequencyWeekly,
			Difficulty:   models.DifficultyIntermediate,
			Tags:         []string{"React", "JavaScript", "Frontend"},
			Organizer:    "Sarah Chen",
			Avatar:       "⚛️",
			LastActivity: "2 hours ago",
			CreatedAt:    created,
		},
		{
			ID:           2,
			Name:         "Machine Learning Enthusiasts",
			Description:  "Deep dive into ML algorithms, neural networks, and practical projects",
			Subject:      "Data Science",
			Members:      15,
			MaxMembers:   20,
			NextSession:  "2025-06-28T16:00:00",
			Location:     "Library Room 204",
			Frequency:    models.FrequencyBiweekly,
			Difficulty:   models.DifficultyAdvanced,
			Tags:         []string{"Python", "TensorFlow", "Neural Networks"},
			Organizer:    "Dr. Michael Rodriguez",
			Avatar:       "🤖",
			LastActivity: "1 day ago",
			CreatedAt:    created,
		},
		{
			ID:           3,
			Name:         "Spanish Conversation Club",
			Description:  "Practice Spanish speaking skills in a friendly, supportive environment",
			Subject:      "Languages",
			Members:      6,
			MaxMembers:   10,
			NextSession:  "2025-07-01T14:00:00",
			Location:     "Campus Cafe",
			Frequency:    models.FrequencyWeekly,
			Difficulty:   models.DifficultyBeginner,
			Tags:         []string{"Spanish", "Conversation", "Culture"},
			Organizer:    "Maria Garcia",
			Avatar:       "🇪🇸",
			LastActivity: "3 hours ago",
			CreatedAt:    created,
		},
		{
			ID:           4,
			Name:         "Design Thinking Workshop",
			Description:  "Collaborative sessions on UX/UI design principles and portfolio reviews",
			Subject:      "Design",
			Members:      10,
			MaxMembers:   15,
			NextSession:  "2025-06-29T19:00:00",
			Location:     models.LocationOnline,
			Frequency:    models.FrequencyWeekly,
			Difficulty:   models.DifficultyIntermediate,
			Tags:         []string{"UI/UX", "Figma", "Portfolio"},
			Organizer:    "Emma Thompson",
			Avatar:       "🎨",
			LastActivity: "5 hours ago",
			CreatedAt:    created,
		},
		{
			ID:           5,
			Name:         "Calculus Study Group",
			Description:  "Working through calculus problems together, exam preparation",
			Subject:      "Mathematics",
			Members:      12,
			MaxMembers:   12,
			NextSession:  "2025-07-02T17:00:00",
			Location:     "Math Building 101",
			Frequency:    models.FrequencyWeekly,
			Difficulty:   models.DifficultyIntermediate,
			Tags:         []string{"Calculus", "Math", "Exam Prep"},
			Organizer:    "David Kim",
			Avatar:       "📐",
			LastActivity: "1 hour ago",
			CreatedAt:    created,
		},
	}
}
