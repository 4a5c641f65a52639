package v1

import (
	"net/http"

	"go-careerhub-backend/internal/delivery/http/response"
	"go-careerhub-backend/internal/domain"
	"go-careerhub-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

func NewApplicationHandler(rg *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	applications := rg.Group("/applications")
	{
		applications.GET("", handler.List)
		applications.POST("", handler.Apply)
	}
}

type ApplyRequest struct {
	JobID    string `json:"jobId" binding:"required"`
	ResumeID string `json:"resumeId" binding:"required"`
}

func (h *ApplicationHandler) Apply(c *gin.Context) {
	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("jobId and resumeId are required"))
		return
	}

	app, err := h.applicationUC.Apply(c.Request.Context(), req.JobID, req.ResumeID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Application submitted", app)
}

func (h *ApplicationHandler) List(c *gin.Context) {
	apps, err := h.applicationUC.ListApplications(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Application list", gin.H{
		"applications": apps,
		"total":        len(apps),
	})
}
