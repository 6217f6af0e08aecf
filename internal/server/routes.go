// Package server contain implementation of go-gin-server and route registration
package server

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/hamedazad/synurix/internal/auth"
	"github.com/hamedazad/synurix/internal/controller"
	"github.com/hamedazad/synurix/internal/middleware"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	// Init swagger doc
	_ "github.com/hamedazad/synurix/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes will register each http endpoint routes to bound Server instance
func (s *MyServer) RegisterRoutes() http.Handler {
	r := gin.Default()

	allowOriginsStr := os.Getenv("ALLOW_ORIGIN")
	allowOrigins := strings.Split(allowOriginsStr, ",")

	adminAuth := auth.NewAdminAuthHandler(s.Creds)
	controller := controller.NewSubmissionController(s.DB)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins, // Add your frontend URL
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Accept", "Content-Type"},
		AllowCredentials: true, // Enable cookies/auth
	}))

	r.GET("/", s.HelloHandler)
	r.GET("/health", s.healthHandler)

	api := r.Group("/api")
	{
		// Public form intake. The two legacy paths keep writing to the shadow
		// tables the old site used.
		api.POST("careers", controller.SubmitCareerApplication)
		api.POST("cooperation", controller.SubmitCooperation)
		api.POST("projects", controller.SubmitProject)
		api.POST("submit-project", controller.SubmitProjectLegacy)
		api.POST("cooperate", controller.CooperateLegacy)

		adminAPI := api.Group("/admin")
		{
			adminAPI.POST("login", adminAuth.LoginHandler)
			adminAPI.POST("logout", adminAuth.LogoutHandler)
		}

		// Read side of the same resources, admin session required.
		needSession := api.Group("")
		{
			needSession.Use(middleware.RequireAdminAPI())
			needSession.GET("careers", controller.ListCareerApplications)
			needSession.GET("cooperation", controller.ListCooperationApplications)
			needSession.GET("projects", controller.ListProjects)
		}
	}

	adminPages := r.Group("/admin")
	{
		adminPages.GET("login", s.loginPageHandler)

		needSession := adminPages.Group("")
		{
			needSession.Use(middleware.RequireAdminSession())
			needSession.GET("", controller.AdminSummary)
		}
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// HelloHandler handle request to root path by returning a service banner
func (s *MyServer) HelloHandler(c *gin.Context) {
	resp := make(map[string]string)
	resp["message"] = "Synurix intake service"

	c.JSON(http.StatusOK, resp)
}

func (s *MyServer) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, s.DB.Health())
}

// loginPageHandler is the target of the admin redirect. The admin UI is
// rendered by the frontend; this route only confirms where to log in when the
// backend is hit directly.
func (s *MyServer) loginPageHandler(c *gin.Context) {
	resp := make(map[string]string)
	resp["message"] = "POST credentials to /api/admin/login"

	c.JSON(http.StatusOK, resp)
}
