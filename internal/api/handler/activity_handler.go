package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"camping-fun/server/internal/service"
	"camping-fun/server/pkg/response"
)

const msgActivityNotFound = "Activity not found"

// ActivityHandler activity endpoints.
type ActivityHandler struct {
	activitySvc service.ActivityService
}

// NewActivityHandler creates an ActivityHandler.
func NewActivityHandler(activitySvc service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activitySvc: activitySvc}
}

// ListActivities
// GET /activities
func (h *ActivityHandler) ListActivities(c *gin.Context) {
	activities, err := h.activitySvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}

	response.OK(c, activities)
}

// GetActivity
// GET /activities/:id
func (h *ActivityHandler) GetActivity(c *gin.Context) {
	id, ok := MustGetID(c, msgActivityNotFound)
	if !ok {
		return
	}

	activity, err := h.activitySvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleActivityError(c, err)
		return
	}

	response.OK(c, activity)
}

// DeleteActivity removes the activity and its signups.
// DELETE /activities/:id
func (h *ActivityHandler) DeleteActivity(c *gin.Context) {
	id, ok := MustGetID(c, msgActivityNotFound)
	if !ok {
		return
	}

	if err := h.activitySvc.Delete(c.Request.Context(), id); err != nil {
		h.handleActivityError(c, err)
		return
	}

	response.NoContent(c)
}

func (h *ActivityHandler) handleActivityError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrActivityNotFound):
		response.NotFound(c, msgActivityNotFound)
	default:
		response.InternalError(c, err)
	}
}
