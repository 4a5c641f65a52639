package v1

import (
	"net/http"
	"strconv"

	"go-careerhub-backend/internal/delivery/http/response"
	"go-careerhub-backend/internal/domain"
	"go-careerhub-backend/internal/render"
	"go-careerhub-backend/internal/usecase"
	"go-careerhub-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ResumeHandler struct {
	resumeUC  domain.ResumeUsecase
	sessionUC domain.SessionUsecase
	renderer  *render.Renderer
}

func NewResumeHandler(rg *gin.RouterGroup, resumeUC domain.ResumeUsecase,
	sessionUC domain.SessionUsecase, renderer *render.Renderer) {
	handler := &ResumeHandler{resumeUC: resumeUC, sessionUC: sessionUC, renderer: renderer}

	rg.GET("/resume-templates", handler.Templates)
	rg.GET("/resume-builder/flow", handler.BuilderFlow)
	rg.POST("/resume-builder/advance", handler.BuilderAdvance)

	resumes := rg.Group("/resumes")
	{
		resumes.GET("", handler.List)
		resumes.POST("", handler.Create)
		resumes.GET("/:id", handler.GetDetails)
		resumes.DELETE("/:id", handler.Delete)
		resumes.GET("/:id/score", handler.Score)
		resumes.GET("/:id/render", handler.Render)

		resumes.PUT("/:id/personal", handler.UpdatePersonal)
		resumes.PUT("/:id/summary", handler.UpdateSummary)
		resumes.PUT("/:id/template", handler.SelectTemplate)

		resumes.POST("/:id/sections/:section/entries", handler.AddEntry)
		resumes.PUT("/:id/sections/:section/entries/:index", handler.UpdateEntry)
		resumes.DELETE("/:id/sections/:section/entries/:index", handler.RemoveEntry)
	}
}

func (h *ResumeHandler) List(c *gin.Context) {
	resumes, err := h.resumeUC.ListResumes(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Resume list", gin.H{
		"resumes": resumes,
		"total":   len(resumes),
	})
}

type CreateResumeRequest struct {
	Title string `json:"title"`
}

func (h *ResumeHandler) Create(c *gin.Context) {
	var req CreateResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	resume, err := h.resumeUC.CreateResume(c.Request.Context(), req.Title)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Resume created", resume)
}

func (h *ResumeHandler) GetDetails(c *gin.Context) {
	resume, err := h.resumeUC.GetResume(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Resume details", resume)
}

func (h *ResumeHandler) Delete(c *gin.Context) {
	if err := h.resumeUC.DeleteResume(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Resume deleted successfully", nil)
}

func (h *ResumeHandler) Score(c *gin.Context) {
	score, err := h.resumeUC.Score(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Resume score", gin.H{"score": score})
}

// Render returns the resume as a standalone HTML document. mode=print adds
// the print trigger; the markup is otherwise identical to the preview.
func (h *ResumeHandler) Render(c *gin.Context) {
	resume, err := h.resumeUC.GetResume(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	mode := render.ModePreview
	if c.Query("mode") == "print" {
		mode = render.ModePrint
	}

	html, err := h.renderer.Render(resume, mode)
	if err != nil {
		c.Error(err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", html)
}

func (h *ResumeHandler) UpdatePersonal(c *gin.Context) {
	var patch domain.PersonalInfo
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	resume, err := h.resumeUC.UpdatePersonalInfo(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Personal info updated", resume)
}

type UpdateSummaryRequest struct {
	Summary string `json:"summary"`
}

func (h *ResumeHandler) UpdateSummary(c *gin.Context) {
	var req UpdateSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	resume, err := h.resumeUC.UpdateSummary(c.Request.Context(), c.Param("id"), req.Summary)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Summary updated", resume)
}

type SelectTemplateRequest struct {
	Template string `json:"template" binding:"required"`
}

func (h *ResumeHandler) SelectTemplate(c *gin.Context) {
	var req SelectTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("template is required"))
		return
	}

	resume, err := h.resumeUC.SelectTemplate(c.Request.Context(), c.Param("id"), req.Template)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Template selected", resume)
}

func (h *ResumeHandler) AddEntry(c *gin.Context) {
	var entry domain.SectionEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	section := domain.ResumeSection(c.Param("section"))
	resume, err := h.resumeUC.AddEntry(c.Request.Context(), c.Param("id"), section, entry)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Entry added", resume)
}

func (h *ResumeHandler) UpdateEntry(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.Error(apperror.BadRequest("Invalid entry index"))
		return
	}

	var entry domain.SectionEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	section := domain.ResumeSection(c.Param("section"))
	resume, err := h.resumeUC.UpdateEntry(c.Request.Context(), c.Param("id"), section, index, entry)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Entry updated", resume)
}

func (h *ResumeHandler) RemoveEntry(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.Error(apperror.BadRequest("Invalid entry index"))
		return
	}

	section := domain.ResumeSection(c.Param("section"))
	resume, err := h.resumeUC.RemoveEntry(c.Request.Context(), c.Param("id"), section, index)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Entry removed", resume)
}

func (h *ResumeHandler) Templates(c *gin.Context) {
	response.Success(c, http.StatusOK, "Resume templates", gin.H{
		"templates": render.PresetList(),
	})
}

// BuilderFlow returns the section sequence for the current actor's role.
func (h *ResumeHandler) BuilderFlow(c *gin.Context) {
	actor := h.sessionUC.Current(c.Request.Context())
	if actor == nil {
		c.Error(apperror.Unauthorized("Not logged in"))
		return
	}
	response.Success(c, http.StatusOK, "Builder flow", gin.H{
		"sections": usecase.SectionOrder(actor.Role),
	})
}

type BuilderAdvanceRequest struct {
	Current  string `json:"current" binding:"required"`
	Backward bool   `json:"backward"`
}

// BuilderAdvance steps through the builder. Advancing past the last
// section reports finished instead of a next section.
func (h *ResumeHandler) BuilderAdvance(c *gin.Context) {
	actor := h.sessionUC.Current(c.Request.Context())
	if actor == nil {
		c.Error(apperror.Unauthorized("Not logged in"))
		return
	}

	var req BuilderAdvanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("current section is required"))
		return
	}

	order := usecase.SectionOrder(actor.Role)
	next, finished := usecase.Advance(order, domain.ResumeSection(req.Current), !req.Backward)
	response.Success(c, http.StatusOK, "Builder step", gin.H{
		"next":     next,
		"finished": finished,
	})
}
