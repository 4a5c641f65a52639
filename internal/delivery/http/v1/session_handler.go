package v1

import (
	"net/http"

	"go-careerhub-backend/internal/delivery/http/response"
	"go-careerhub-backend/internal/domain"
	"go-careerhub-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	sessionUC domain.SessionUsecase
}

func NewSessionHandler(rg *gin.RouterGroup, sessionUC domain.SessionUsecase) {
	handler := &SessionHandler{sessionUC: sessionUC}

	auth := rg.Group("/auth")
	{
		auth.POST("/login", handler.Login)
		auth.POST("/logout", handler.Logout)
		auth.GET("/me", handler.Me)
		auth.PUT("/profile", handler.UpdateProfile)
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password"`
}

// Login signs in by email. The password is accepted but never checked;
// this is the demo login of the portal, not real authentication.
func (h *SessionHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("A valid email is required"))
		return
	}

	actor, err := h.sessionUC.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Logged in", actor)
}

func (h *SessionHandler) Logout(c *gin.Context) {
	if err := h.sessionUC.Logout(c.Request.Context()); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Logged out", nil)
}

func (h *SessionHandler) Me(c *gin.Context) {
	actor := h.sessionUC.Current(c.Request.Context())
	if actor == nil {
		c.Error(apperror.Unauthorized("Not logged in"))
		return
	}
	response.Success(c, http.StatusOK, "Current user", actor)
}

func (h *SessionHandler) UpdateProfile(c *gin.Context) {
	var patch domain.ProfilePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	actor, err := h.sessionUC.UpdateProfile(c.Request.Context(), patch)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile updated", actor)
}
