package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/skillswap/skillswap/internal/app/controllers"
	"github.com/skillswap/skillswap/internal/app/routes"
	"github.com/skillswap/skillswap/internal/app/services"
	"github.com/skillswap/skillswap/internal/app/stores"
	"github.com/skillswap/skillswap/internal/config"
	"github.com/skillswap/skillswap/internal/middleware"
	"github.com/skillswap/skillswap/internal/pkg/auth"
	"github.com/skillswap/skillswap/internal/pkg/filestorage"
	"github.com/skillswap/skillswap/internal/pkg/helpers"
	"github.com/skillswap/skillswap/internal/pkg/logger"
	"github.com/skillswap/skillswap/internal/seed"
)

// Application holds the wired-up application graph.
type Application struct {
	Config         *config.Config
	Controllers    routes.Controllers
	AuthMiddleware *middleware.AuthMiddleware
}

// InitializeApplication builds every store, service, and controller
// from the configuration. All domain state is in-memory and seeded
// here; nothing survives a restart.
func InitializeApplication(ctx context.Context, cfg *config.Config) (*Application, error) {
	setupLogger(cfg)

	latency := cfg.SimulatedLatency()

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 30*24*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	storage, err := filestorage.NewLocalStorage(cfg.Server.StoragePath, log.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	sessionStore := stores.NewSessionStore(latency, log.Logger)
	courseStore := stores.NewCourseStore(latency, log.Logger)
	groupStore := stores.NewGroupStore(latency, log.Logger)
	chatStore := stores.NewChatStore(log.Logger)
	draftStore := stores.NewDraftStore()

	if err := seed.NewSeeder(sessionStore, courseStore, groupStore, log.Logger).Run(ctx); err != nil {
		return nil, fmt.Errorf("failed to seed demo data: %w", err)
	}

	authService := services.NewAuthService(sessionStore, draftStore, jwtService, log.Logger)
	userService := services.NewUserService(sessionStore, log.Logger)
	courseService := services.NewCourseService(courseStore, draftStore, storage, log.Logger)
	groupService := services.NewGroupService(groupStore, chatStore, draftStore, sessionStore, log.Logger)

	return &Application{
		Config: cfg,
		Controllers: routes.Controllers{
			Auth:   controllers.NewAuthController(authService),
			User:   controllers.NewUserController(userService),
			Course: controllers.NewCourseController(courseService),
			Group:  controllers.NewGroupController(groupService),
		},
		AuthMiddleware: middleware.NewAuthMiddleware(jwtService),
	}, nil
}

func setupLogger(cfg *config.Config) {
	logger.Configure(logger.Config{
		Level:  logger.LogLevel(cfg.Logging.Level),
		Pretty: cfg.Logging.Format == "console",
	})
}
