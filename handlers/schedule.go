package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"dayplanner/middleware"
	"dayplanner/models"
	"dayplanner/services/live"
	"dayplanner/services/schedule"
	"dayplanner/utils"
	"dayplanner/views"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ScheduleHandler serves the scheduler page, its JSON API and live updates.
type ScheduleHandler struct {
	Service schedule.ScheduleService
	Hub     *live.Hub
}

func NewScheduleHandler(service schedule.ScheduleService, hub *live.Hub) *ScheduleHandler {
	return &ScheduleHandler{Service: service, Hub: hub}
}

func render(c *gin.Context, status int, component templ.Component) {
	c.Status(status)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := component.Render(c.Request.Context(), c.Writer); err != nil {
		getLogger(c).Error("Failed to render page", zap.Error(err))
	}
}

// PageHandler renders the page for the caller's session.
func (h *ScheduleHandler) PageHandler(c *gin.Context) {
	view, err := h.Service.GetSchedule(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		getLogger(c).Error("Failed to load schedule", zap.Error(err))
		c.String(http.StatusInternalServerError, "Failed to load schedule")
		return
	}
	render(c, http.StatusOK, views.SchedulerPage(view, models.AddEventForm{}, ""))
}

// SubmitFormHandler adds the event posted by the page form. Success
// redirects back to the page; a rejection re-renders it with the message.
func (h *ScheduleHandler) SubmitFormHandler(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := middleware.SessionID(c)

	var form models.AddEventForm
	if err := c.ShouldBind(&form); err != nil {
		getLogger(c).Debug("Unreadable form", zap.Error(err))
	}

	candidate, err := schedule.ParseForm(form)
	if err == nil {
		_, err = h.Service.AddEvent(ctx, sessionID, candidate)
	}
	if err == nil {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	var schedErr *schedule.ScheduleError
	if !errors.As(err, &schedErr) {
		getLogger(c).Error("Failed to add event", zap.Error(err))
		c.String(http.StatusInternalServerError, "Failed to add event")
		return
	}

	view, loadErr := h.Service.GetSchedule(ctx, sessionID)
	if loadErr != nil {
		getLogger(c).Error("Failed to load schedule", zap.Error(loadErr))
		c.String(http.StatusInternalServerError, "Failed to load schedule")
		return
	}
	render(c, http.StatusUnprocessableEntity, views.SchedulerPage(view, form, schedErr.Message))
}

// GetEventsHandler returns the session's schedule as JSON.
func (h *ScheduleHandler) GetEventsHandler(c *gin.Context) {
	view, err := h.Service.GetSchedule(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "internal", "Failed to load schedule", err.Error())
		return
	}
	c.JSON(http.StatusOK, view)
}

// AddEventHandler adds the event in the JSON body.
func (h *ScheduleHandler) AddEventHandler(c *gin.Context) {
	var req models.AddEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, schedule.ErrInvalidInput.Code, schedule.ErrInvalidInput.Message, err.Error())
		return
	}

	candidate, err := schedule.FromRequest(req)
	if err == nil {
		var view *models.ScheduleView
		view, err = h.Service.AddEvent(c.Request.Context(), middleware.SessionID(c), candidate)
		if err == nil {
			c.JSON(http.StatusCreated, view)
			return
		}
	}

	var schedErr *schedule.ScheduleError
	if errors.As(err, &schedErr) {
		utils.JSONError(c, http.StatusUnprocessableEntity, schedErr.Code, schedErr.Message, "")
		return
	}
	utils.JSONError(c, http.StatusInternalServerError, "internal", "Failed to add event", err.Error())
}

// GetAttemptsHandler lists the session's recorded submissions. ?limit caps the result.
func (h *ScheduleHandler) GetAttemptsHandler(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			utils.JSONError(c, http.StatusBadRequest, "invalidLimit", "limit must be a positive integer", raw)
			return
		}
		limit = n
	}

	records, err := h.Service.GetAttempts(c.Request.Context(), middleware.SessionID(c), limit)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "internal", "Failed to load attempts", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"attempts": records})
}

// LiveHandler upgrades to a websocket that receives the session's schedule on every change.
func (h *ScheduleHandler) LiveHandler(c *gin.Context) {
	sessionID := middleware.SessionID(c)
	view, err := h.Service.GetSchedule(c.Request.Context(), sessionID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "internal", "Failed to load schedule", err.Error())
		return
	}
	if err := h.Hub.Serve(c.Writer, c.Request, sessionID, view); err != nil {
		// The upgrader has already answered the client.
		getLogger(c).Warn("Websocket upgrade failed", zap.Error(err))
	}
}
