package v1

import (
	"net/http"

	"go-careerhub-backend/internal/delivery/http/response"
	"go-careerhub-backend/internal/domain"
	"go-careerhub-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	eventUC domain.EventUsecase
}

func NewEventHandler(rg *gin.RouterGroup, eventUC domain.EventUsecase) {
	handler := &EventHandler{eventUC: eventUC}

	events := rg.Group("/events")
	{
		events.GET("", handler.List)
		events.GET("/registered", handler.Registered)
		events.GET("/:id", handler.GetDetails)
		events.POST("", handler.Create)
		events.PUT("/:id", handler.Update)
		events.DELETE("/:id", handler.Delete)
		events.POST("/:id/register", handler.Register)
		events.DELETE("/:id/register", handler.Unregister)
	}
}

func (h *EventHandler) List(c *gin.Context) {
	var filter domain.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(apperror.BadRequest("Invalid filter parameters"))
		return
	}

	events, err := h.eventUC.ListEvents(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Event list", gin.H{
		"events": events,
		"total":  len(events),
	})
}

func (h *EventHandler) GetDetails(c *gin.Context) {
	event, err := h.eventUC.GetEvent(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Event details", event)
}

func (h *EventHandler) Create(c *gin.Context) {
	var draft domain.EventDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	event, err := h.eventUC.CreateEvent(c.Request.Context(), draft)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Event created", event)
}

func (h *EventHandler) Update(c *gin.Context) {
	var draft domain.EventDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	event, err := h.eventUC.UpdateEvent(c.Request.Context(), c.Param("id"), draft)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Event updated successfully", event)
}

func (h *EventHandler) Delete(c *gin.Context) {
	if err := h.eventUC.DeleteEvent(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Event deleted successfully", nil)
}

func (h *EventHandler) Register(c *gin.Context) {
	event, err := h.eventUC.Register(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Registered for event", event)
}

func (h *EventHandler) Unregister(c *gin.Context) {
	if err := h.eventUC.Unregister(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Registration cancelled", nil)
}

func (h *EventHandler) Registered(c *gin.Context) {
	events, err := h.eventUC.RegisteredEvents(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Registered events", gin.H{
		"events": events,
		"total":  len(events),
	})
}
