package v1

import (
	"net/http"

	"go-careerhub-backend/internal/delivery/http/response"
	"go-careerhub-backend/internal/domain"
	"go-careerhub-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CourseHandler struct {
	courseUC domain.CourseUsecase
}

func NewCourseHandler(rg *gin.RouterGroup, courseUC domain.CourseUsecase) {
	handler := &CourseHandler{courseUC: courseUC}

	courses := rg.Group("/courses")
	{
		courses.GET("", handler.List)
		courses.GET("/:id", handler.GetDetails)
		courses.POST("", handler.Create)
		courses.PUT("/:id", handler.Update)
		courses.DELETE("/:id", handler.Delete)
	}
}

func (h *CourseHandler) List(c *gin.Context) {
	var filter domain.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(apperror.BadRequest("Invalid filter parameters"))
		return
	}

	courses, err := h.courseUC.ListCourses(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Course list", gin.H{
		"courses": courses,
		"total":   len(courses),
	})
}

func (h *CourseHandler) GetDetails(c *gin.Context) {
	course, err := h.courseUC.GetCourse(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Course details", course)
}

func (h *CourseHandler) Create(c *gin.Context) {
	var draft domain.CourseDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	course, err := h.courseUC.CreateCourse(c.Request.Context(), draft)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Course created", course)
}

func (h *CourseHandler) Update(c *gin.Context) {
	var draft domain.CourseDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	course, err := h.courseUC.UpdateCourse(c.Request.Context(), c.Param("id"), draft)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Course updated successfully", course)
}

func (h *CourseHandler) Delete(c *gin.Context) {
	if err := h.courseUC.DeleteCourse(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Course deleted successfully", nil)
}
