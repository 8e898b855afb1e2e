package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/skillswap/skillswap/internal/app/controllers"
	"github.com/skillswap/skillswap/internal/app/models/dto"
	"github.com/skillswap/skillswap/internal/middleware"
)

// Controllers groups everything the router needs.
type Controllers struct {
	Auth   *controllers.AuthController
	User   *controllers.UserController
	Course *controllers.CourseController
	Group  *controllers.GroupController
}

// SetupRoutes registers all API routes.
func SetupRoutes(router *gin.Engine, ctrl Controllers, authMW *middleware.AuthMiddleware) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")

	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"status": "ok"}, ""))
	})

	auth := v1.Group("/auth")
	{
		auth.POST("/login", ctrl.Auth.Login)
		auth.POST("/signup", ctrl.Auth.Signup)
		auth.POST("/refresh", ctrl.Auth.Refresh)
		auth.POST("/logout", authMW.Authenticate(), ctrl.Auth.Logout)
	}

	protected := v1.Group("")
	protected.Use(authMW.Authenticate())

	users := protected.Group("/users")
	{
		users.GET("/me", ctrl.User.GetProfile)
		users.PUT("/me", ctrl.User.UpdateProfile)
		users.POST("/me/skills", ctrl.User.AddSkill)
		users.DELETE("/me/skills", ctrl.User.RemoveSkill)
		users.GET("/me/dashboard", ctrl.User.Dashboard)
	}

	courses := protected.Group("/courses")
	{
		courses.GET("", ctrl.Course.ListCourses)
		courses.POST("", ctrl.Course.CreateCourse)
		courses.POST("/form", ctrl.Course.OpenCreateForm)
		courses.PUT("/form", ctrl.Course.SaveDraft)
		courses.DELETE("/form", ctrl.Course.CloseCreateForm)
		courses.GET("/:id", ctrl.Course.GetCourse)
		courses.POST("/:id/enrollment", ctrl.Course.Enroll)
		courses.DELETE("/:id/enrollment", ctrl.Course.Unenroll)
	}

	groups := protected.Group("/groups")
	{
		groups.GET("", ctrl.Group.ListGroups)
		groups.POST("", ctrl.Group.CreateGroup)
		groups.POST("/form", ctrl.Group.OpenCreateForm)
		groups.PUT("/form", ctrl.Group.SaveDraft)
		groups.DELETE("/form", ctrl.Group.CloseCreateForm)
		groups.DELETE("/chat", ctrl.Group.CloseChat)
		groups.GET("/:id", ctrl.Group.GetGroup)
		groups.POST("/:id/membership", ctrl.Group.Join)
		groups.DELETE("/:id/membership", ctrl.Group.Leave)
		groups.POST("/:id/chat", ctrl.Group.OpenChat)
		groups.GET("/:id/messages", ctrl.Group.Messages)
		groups.POST("/:id/messages", ctrl.Group.SendMessage)
	}
}
