package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillswap/skillswap/internal/app/controllers"
	"github.com/skillswap/skillswap/internal/app/services"
	"github.com/skillswap/skillswap/internal/app/stores"
	"github.com/skillswap/skillswap/internal/middleware"
	"github.com/skillswap/skillswap/internal/pkg/auth"
	"github.com/skillswap/skillswap/internal/pkg/filestorage"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := zerolog.Nop()
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "skillswap-test",
	})

	sessions := stores.NewSessionStore(0, logger)
	drafts := stores.NewDraftStore()
	courses := stores.NewCourseStore(0, logger)
	groups := stores.NewGroupStore(0, logger)
	chat := stores.NewChatStore(logger)
	storage, err := filestorage.NewLocalStorage(t.TempDir(), logger)
	require.NoError(t, err)

	ctrl := Controllers{
		Auth:   controllers.NewAuthController(services.NewAuthService(sessions, drafts, jwtService, logger)),
		User:   controllers.NewUserController(services.NewUserService(sessions, logger)),
		Course: controllers.NewCourseController(services.NewCourseService(courses, drafts, storage, logger)),
		Group:  controllers.NewGroupController(services.NewGroupService(groups, chat, drafts, sessions, logger)),
	}

	router := gin.New()
	SetupRoutes(router, ctrl, middleware.NewAuthMiddleware(jwtService))
	return router
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/courses", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
