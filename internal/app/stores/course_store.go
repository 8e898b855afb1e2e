package stores

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/skillswap/skillswap/internal/app/models"
	"github.com/skillswap/skillswap/internal/pkg/apperrors"
)

// CourseStats are the aggregates shown above the catalog. Every value
// is zero when the catalog is empty.
type CourseStats struct {
	TotalCourses         int     `json:"totalCourses"`
	TotalStudents        int     `json:"totalStudents"`
	AverageRating        float64 `json:"averageRating"`
	AverageDurationWeeks float64 `json:"averageDurationWeeks"`
}

// CourseStore owns the course catalog and per-user enrollment.
// Enrollment is tracked as a set per course, so the enrolled counter
// and the membership flag cannot drift apart.
type CourseStore struct {
	collection Collection[*models.Course]

	mu          sync.RWMutex
	enrollments map[int64]map[int64]struct{}

	latency time.Duration
	logger  zerolog.Logger
}

// NewCourseStore creates an empty course store.
func NewCourseStore(latency time.Duration, logger zerolog.Logger) *CourseStore {
	return &CourseStore{
		enrollments: make(map[int64]map[int64]struct{}),
		latency:     latency,
		logger:      logger.With().Str("store", "courses").Logger(),
	}
}

// Seed installs the initial catalog after the simulated load delay.
// Runs once; later calls do nothing.
func (s *CourseStore) Seed(ctx context.Context, courses []*models.Course) error {
	if err := simulateLatency(ctx, s.latency); err != nil {
		return err
	}
	s.collection.Seed(courses)
	s.logger.Info().Int("count", len(courses)).Msg("Course catalog seeded")
	return nil
}

// List returns the courses matching the search term and category, in
// catalog order. The search term matches title or description,
// case-insensitively; category "all" passes everything.
func (s *CourseStore) List(search, category string) []*models.Course {
	return s.collection.Filter(func(c *models.Course) bool {
		return matchesSearch(search, c.Title, c.Description) &&
			matchesCategory(category, c.Category)
	})
}

// Get returns a copy of a single course.
func (s *CourseStore) Get(id int64) (*models.Course, error) {
	c, ok := s.collection.Get(id)
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	return c, nil
}

// Create adds a new course at the front of the catalog and returns it
// with its assigned identifier. Field validation happens before this
// call; the store only assigns identity and position.
func (s *CourseStore) Create(course *models.Course) *models.Course {
	course.ID = s.collection.NextID()
	course.CreatedAt = time.Now()
	if course.Students < 0 {
		course.Students = 0
	}
	// The collection keeps its own clone; the caller's instance never
	// aliases collection-owned memory.
	s.collection.Prepend(course.Clone())
	s.logger.Info().Int64("courseId", course.ID).Str("title", course.Title).Msg("Course created")
	return course
}

// Enroll adds the user to a course. Enrolling twice is refused, so a
// double-fired toggle cannot inflate the student counter.
func (s *CourseStore) Enroll(courseID, userID int64) (*models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.collection.Contains(courseID) {
		return nil, apperrors.ErrCourseNotFound
	}
	set := s.enrollments[courseID]
	if set == nil {
		set = make(map[int64]struct{})
		s.enrollments[courseID] = set
	}
	if _, enrolled := set[userID]; enrolled {
		return nil, apperrors.ErrAlreadyEnrolled
	}
	set[userID] = struct{}{}

	var updated *models.Course
	s.collection.Mutate(courseID, func(c *models.Course) {
		c.Students++
		updated = c.Clone()
	})
	s.logger.Info().Int64("courseId", courseID).Int64("userId", userID).Msg("User enrolled")
	return updated, nil
}

// Unenroll removes the user from a course and decrements the counter.
func (s *CourseStore) Unenroll(courseID, userID int64) (*models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.collection.Contains(courseID) {
		return nil, apperrors.ErrCourseNotFound
	}
	set := s.enrollments[courseID]
	if _, enrolled := set[userID]; !enrolled {
		return nil, apperrors.ErrNotEnrolled
	}
	delete(set, userID)

	var updated *models.Course
	s.collection.Mutate(courseID, func(c *models.Course) {
		if c.Students > 0 {
			c.Students--
		}
		updated = c.Clone()
	})
	s.logger.Info().Int64("courseId", courseID).Int64("userId", userID).Msg("User unenrolled")
	return updated, nil
}

// IsEnrolled reports whether the user is enrolled in the course.
func (s *CourseStore) IsEnrolled(courseID, userID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.enrollments[courseID][userID]
	return ok
}

// Stats computes the catalog aggregates over all courses, ignoring any
// active search or category selection.
func (s *CourseStore) Stats() CourseStats {
	var stats CourseStats
	var ratingSum, weekSum float64
	s.collection.Each(func(c *models.Course) {
		stats.TotalCourses++
		stats.TotalStudents += c.Students
		ratingSum += c.Rating
		weekSum += float64(leadingInt(c.Duration))
	})
	if stats.TotalCourses > 0 {
		n := float64(stats.TotalCourses)
		stats.AverageRating = ratingSum / n
		stats.AverageDurationWeeks = weekSum / n
	}
	return stats
}

// leadingInt parses the leading integer of a string like "8 weeks".
// Returns 0 when the string does not start with digits.
func leadingInt(s string) int {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0
	}
	n, err := strconv.Atoi(s[:i])
	if err != nil {
		return 0
	}
	return n
}
