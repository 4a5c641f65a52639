package v1

import (
	"net/http"

	"go-careerhub-backend/internal/delivery/http/response"
	"go-careerhub-backend/internal/domain"
	"go-careerhub-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type SavedHandler struct {
	savedUC domain.SavedUsecase
}

func NewSavedHandler(rg *gin.RouterGroup, savedUC domain.SavedUsecase) {
	handler := &SavedHandler{savedUC: savedUC}

	saved := rg.Group("/saved")
	{
		saved.GET("/:kind", handler.List)
		saved.GET("/:kind/:id", handler.IsSaved)
		saved.POST("/:kind/:id", handler.Toggle)
	}
}

func savedKind(c *gin.Context) (domain.SavedKind, bool) {
	switch kind := domain.SavedKind(c.Param("kind")); kind {
	case domain.SavedJobs, domain.SavedEvents, domain.SavedCompanies:
		return kind, true
	default:
		return "", false
	}
}

func (h *SavedHandler) List(c *gin.Context) {
	kind, ok := savedKind(c)
	if !ok {
		c.Error(apperror.BadRequest("Unknown saved collection"))
		return
	}

	ids, err := h.savedUC.List(c.Request.Context(), kind)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Saved items", gin.H{"ids": ids})
}

func (h *SavedHandler) IsSaved(c *gin.Context) {
	kind, ok := savedKind(c)
	if !ok {
		c.Error(apperror.BadRequest("Unknown saved collection"))
		return
	}

	saved := h.savedUC.IsSaved(c.Request.Context(), kind, c.Param("id"))
	response.Success(c, http.StatusOK, "Saved state", gin.H{"saved": saved})
}

// Toggle flips membership and returns the new state so the client can
// update its badge without a second read.
func (h *SavedHandler) Toggle(c *gin.Context) {
	kind, ok := savedKind(c)
	if !ok {
		c.Error(apperror.BadRequest("Unknown saved collection"))
		return
	}

	saved, err := h.savedUC.Toggle(c.Request.Context(), kind, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Saved state updated", gin.H{"saved": saved})
}
