package v1

import (
	"net/http"

	"go-careerhub-backend/internal/delivery/http/response"
	"go-careerhub-backend/internal/domain"
	"go-careerhub-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	companyUC domain.CompanyUsecase
}

func NewCompanyHandler(rg *gin.RouterGroup, companyUC domain.CompanyUsecase) {
	handler := &CompanyHandler{companyUC: companyUC}

	companies := rg.Group("/companies")
	{
		companies.GET("", handler.List)
		companies.GET("/:id", handler.GetDetails)
		companies.POST("", handler.Create)
		companies.PUT("/:id", handler.Update)
		companies.DELETE("/:id", handler.Delete)
	}
}

func (h *CompanyHandler) List(c *gin.Context) {
	var filter domain.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(apperror.BadRequest("Invalid filter parameters"))
		return
	}

	companies, err := h.companyUC.ListCompanies(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Company list", gin.H{
		"companies": companies,
		"total":     len(companies),
	})
}

func (h *CompanyHandler) GetDetails(c *gin.Context) {
	company, err := h.companyUC.GetCompany(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Company details", company)
}

func (h *CompanyHandler) Create(c *gin.Context) {
	var draft domain.CompanyDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	company, err := h.companyUC.CreateCompany(c.Request.Context(), draft)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Company created", company)
}

func (h *CompanyHandler) Update(c *gin.Context) {
	var draft domain.CompanyDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	company, err := h.companyUC.UpdateCompany(c.Request.Context(), c.Param("id"), draft)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Company updated successfully", company)
}

func (h *CompanyHandler) Delete(c *gin.Context) {
	if err := h.companyUC.DeleteCompany(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Company deleted successfully", nil)
}
