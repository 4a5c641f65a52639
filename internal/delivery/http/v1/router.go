package v1

import (
	"net/http"

	"go-careerhub-backend/config"
	"go-careerhub-backend/internal/delivery/http/middleware"
	"go-careerhub-backend/internal/delivery/http/response"
	"go-careerhub-backend/internal/domain"
	"go-careerhub-backend/internal/render"

	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	SessionUC     domain.SessionUsecase
	JobUC         domain.JobUsecase
	CompanyUC     domain.CompanyUsecase
	EventUC       domain.EventUsecase
	CourseUC      domain.CourseUsecase
	SavedUC       domain.SavedUsecase
	ResumeUC      domain.ResumeUsecase
	ApplicationUC domain.ApplicationUsecase
	AdminUC       domain.AdminUsecase
	Renderer      *render.Renderer
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.Session(deps.SessionUC))

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	NewSessionHandler(v1, deps.SessionUC)
	NewJobHandler(v1, deps.JobUC)
	NewCompanyHandler(v1, deps.CompanyUC)
	NewEventHandler(v1, deps.EventUC)
	NewCourseHandler(v1, deps.CourseUC)
	NewSavedHandler(v1, deps.SavedUC)
	NewResumeHandler(v1, deps.ResumeUC, deps.SessionUC, deps.Renderer)
	NewApplicationHandler(v1, deps.ApplicationUC)
	NewAdminHandler(v1, deps.AdminUC)

	return r
}
