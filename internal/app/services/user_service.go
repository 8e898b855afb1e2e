package services

import (
	"context"
	"net/url"
	"strings"

	"github.com/rs/zerolog"

	"github.com/skillswap/skillswap/internal/app/models"
	"github.com/skillswap/skillswap/internal/app/models/dto"
	"github.com/skillswap/skillswap/internal/app/stores"
	"github.com/skillswap/skillswap/internal/pkg/apperrors"
)

// UserService handles profiles, skill lists, and the dashboard.
type UserService interface {
	GetProfile(ctx context.Context, userID int64) (*models.User, error)
	UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*models.User, error)
	AddSkill(ctx context.Context, userID int64, req *dto.SkillRequest) (*models.User, error)
	RemoveSkill(ctx context.Context, userID int64, req *dto.SkillRequest) (*models.User, error)
	Dashboard(ctx context.Context, userID int64) (*dto.DashboardResponse, error)
}

type userServiceImpl struct {
	sessions *stores.SessionStore
	logger   zerolog.Logger
}

// NewUserService creates a new user service.
func NewUserService(sessions *stores.SessionStore, logger zerolog.Logger) UserService {
	return &userServiceImpl{
		sessions: sessions,
		logger:   logger.With().Str("service", "user").Logger(),
	}
}

// GetProfile returns the user's profile.
func (s *userServiceImpl) GetProfile(_ context.Context, userID int64) (*models.User, error) {
	return s.sessions.UserByID(userID)
}

// UpdateProfile validates and applies a partial profile edit. The
// whole update is rejected when any supplied field is invalid, so a
// failed save never half-applies.
func (s *userServiceImpl) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*models.User, error) {
	if req.Website != nil && strings.TrimSpace(*req.Website) != "" {
		u, err := url.Parse(*req.Website)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return nil, apperrors.NewValidationError("Website must be a valid URL")
		}
	}

	return s.sessions.UpdateProfile(ctx, userID, stores.ProfileUpdate{
		Name:       req.Name,
		Avatar:     req.Avatar,
		Bio:        req.Bio,
		Location:   req.Location,
		Website:    req.Website,
		University: req.University,
		Major:      req.Major,
	})
}

// AddSkill appends a skill to the chosen list.
func (s *userServiceImpl) AddSkill(_ context.Context, userID int64, req *dto.SkillRequest) (*models.User, error) {
	return s.sessions.AddSkill(userID, stores.SkillList(req.List), req.Skill)
}

// RemoveSkill drops every occurrence of the skill from the chosen
// list.
func (s *userServiceImpl) RemoveSkill(_ context.Context, userID int64, req *dto.SkillRequest) (*models.User, error) {
	return s.sessions.RemoveSkill(userID, stores.SkillList(req.List), req.Skill)
}

// Dashboard assembles the user's headline stats, skill lists, and
// upcoming sessions.
func (s *userServiceImpl) Dashboard(_ context.Context, userID int64) (*dto.DashboardResponse, error) {
	user, err := s.sessions.UserByID(userID)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardResponse{
		Stats: dto.DashboardStats{
			SessionsCompleted: user.Sessions,
			Rating:            user.Rating,
			SkillsOffered:     len(user.SkillsOffered),
			SkillsWanted:      len(user.SkillsWanted),
		},
		Skills: dto.DashboardSkills{
			Offered: user.SkillsOffered,
			Wanted:  user.SkillsWanted,
		},
		UpcomingSessions: upcomingSessionsFor(user),
	}, nil
}

// upcomingSessionsFor derives a small schedule from the user's skill
// lists. Scheduling is not a real subsystem yet; the dashboard shows a
// plausible next-session view built from what the user trades.
func upcomingSessionsFor(user *models.User) []dto.UpcomingSession {
	sessions := []dto.UpcomingSession{}
	if len(user.SkillsOffered) > 0 {
		sessions = append(sessions, dto.UpcomingSession{
			ID:      1,
			Partner: "Sarah Chen",
			Skill:   user.SkillsOffered[0],
			Time:    "Today, 3:00 PM",
			Type:    "teaching",
		})
	}
	if len(user.SkillsWanted) > 0 {
		sessions = append(sessions, dto.UpcomingSession{
			ID:      2,
			Partner: "Mike Rodriguez",
			Skill:   user.SkillsWanted[0],
			Time:    "Tomorrow, 10:00 AM",
			Type:    "learning",
		})
	}
	return sessions
}
