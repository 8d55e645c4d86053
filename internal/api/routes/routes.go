package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/yoockh/jobboard/internal/api/handlers"
	"github.com/yoockh/jobboard/internal/api/middleware"
	"github.com/yoockh/jobboard/internal/services"
)

type Deps struct {
	Sessions services.SessionService

	Auth         *handlers.AuthHandler
	Jobs         *handlers.JobHandler
	Applications *handlers.ApplicationHandler
	Employer     *handlers.EmployerHandler
	Resumes      *handlers.ResumeHandler
}

// NewRouter builds the engine with request logging, panic recovery and all
// routes registered.
func NewRouter(log logrus.FieldLogger, d Deps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger(log), middleware.Recovery(log))
	RegisterRoutes(r, d)
	return r
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Public
	r.POST("/auth/register", d.Auth.Register)
	r.POST("/auth/login", d.Auth.Login)
	r.GET("/auth/me", d.Auth.Me)
	r.GET("/jobs", d.Jobs.List)
	r.GET("/jobs/:job_id", d.Jobs.Get)
	r.GET("/uploads/*object", d.Resumes.Download)

	// Session required; role checks happen in the services
	auth := r.Group("/")
	auth.Use(middleware.SessionAuth(d.Sessions))

	auth.POST("/auth/logout", d.Auth.Logout)

	auth.POST("/jobs", d.Jobs.Create)
	auth.PATCH("/jobs/:job_id", d.Jobs.Update)
	auth.DELETE("/jobs/:job_id", d.Jobs.Delete)

	auth.POST("/jobs/:job_id/applications", d.Applications.Apply)
	auth.GET("/jobs/:job_id/applications", d.Applications.ListForJob)
	auth.GET("/applications/me", d.Applications.ListMine)
	auth.PATCH("/applications/:application_id/status", d.Applications.SetStatus)

	employer := auth.Group("/employer")
	employer.Use(middleware.RequireEmployer())
	employer.GET("/jobs", d.Employer.Jobs)
	employer.GET("/analytics", d.Employer.Analytics)

	resumes := auth.Group("/resumes")
	resumes.Use(middleware.RequireJobSeeker())
	resumes.POST("", d.Resumes.Upload)
	resumes.GET("/me", d.Resumes.Latest)
}
