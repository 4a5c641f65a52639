package v1

import (
	"net/http"

	"go-careerhub-backend/internal/delivery/http/response"
	"go-careerhub-backend/internal/domain"
	"go-careerhub-backend/pkg/apperror"
	"go-careerhub-backend/pkg/export"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminUC domain.AdminUsecase
}

func NewAdminHandler(rg *gin.RouterGroup, adminUC domain.AdminUsecase) {
	handler := &AdminHandler{adminUC: adminUC}

	admin := rg.Group("/admin")
	{
		admin.GET("/stats", handler.Stats)

		admin.GET("/users", handler.ListUsers)
		admin.POST("/users", handler.CreateUser)
		admin.PUT("/users/:id", handler.UpdateUser)
		admin.DELETE("/users/:id", handler.DeleteUser)

		admin.POST("/bulk", handler.Bulk)
		admin.GET("/export/:kind", handler.Export)
	}
}

func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.adminUC.GetStats(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Dashboard statistics", stats)
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	var filter domain.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(apperror.BadRequest("Invalid filter parameters"))
		return
	}

	users, err := h.adminUC.ListUsers(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User list", gin.H{
		"users": users,
		"total": len(users),
	})
}

func (h *AdminHandler) CreateUser(c *gin.Context) {
	var req domain.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	user, err := h.adminUC.CreateUser(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "User created", user)
}

func (h *AdminHandler) UpdateUser(c *gin.Context) {
	var req domain.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	user, err := h.adminUC.UpdateUser(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User updated successfully", user)
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	if err := h.adminUC.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User deleted successfully", nil)
}

type BulkRequest struct {
	Kind      string   `json:"kind" binding:"required,oneof=user company job event course"`
	Operation string   `json:"operation" binding:"required,oneof=activate deactivate delete"`
	IDs       []string `json:"ids" binding:"required"`
}

func (h *AdminHandler) Bulk(c *gin.Context) {
	var req BulkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	result, err := h.adminUC.ApplyBulk(c.Request.Context(),
		domain.ResourceKind(req.Kind), domain.BulkOperation(req.Operation), req.IDs)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Bulk operation applied", result)
}

// Export streams the active tab as a CSV download. The filter query
// parameters apply, so the export matches what the console displays.
func (h *AdminHandler) Export(c *gin.Context) {
	var filter domain.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(apperror.BadRequest("Invalid filter parameters"))
		return
	}

	csvExport, err := h.adminUC.Export(c.Request.Context(), domain.ResourceKind(c.Param("kind")), filter)
	if err != nil {
		c.Error(err)
		return
	}

	data, err := export.Encode(csvExport.Header, csvExport.Rows)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+csvExport.Filename+`"`)
	c.Data(http.StatusOK, "text/csv", data)
}
