package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Page endpoints.
	PageHandler       gin.HandlerFunc
	SubmitFormHandler gin.HandlerFunc
	LiveHandler       gin.HandlerFunc

	// API endpoints.
	GetEventsHandler   gin.HandlerFunc
	AddEventHandler    gin.HandlerFunc
	GetAttemptsHandler gin.HandlerFunc

	HealthHandler gin.HandlerFunc
}

// NewHandlerBundle assembles the bundle from a ScheduleHandler.
func NewHandlerBundle(h *ScheduleHandler) *HandlerBundle {
	return &HandlerBundle{
		PageHandler:        h.PageHandler,
		SubmitFormHandler:  h.SubmitFormHandler,
		LiveHandler:        h.LiveHandler,
		GetEventsHandler:   h.GetEventsHandler,
		AddEventHandler:    h.AddEventHandler,
		GetAttemptsHandler: h.GetAttemptsHandler,
		HealthHandler:      HealthHandler,
	}
}
