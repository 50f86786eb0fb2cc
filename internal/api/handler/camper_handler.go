package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"camping-fun/server/internal/dto"
	"camping-fun/server/internal/service"
	"camping-fun/server/pkg/response"
)

const msgCamperNotFound = "Camper not found"

// CamperHandler camper endpoints.
type CamperHandler struct {
	camperSvc service.CamperService
}

// NewCamperHandler creates a CamperHandler.
func NewCamperHandler(camperSvc service.CamperService) *CamperHandler {
	return &CamperHandler{camperSvc: camperSvc}
}

// ListCampers lists every camper without signups.
// GET /campers
func (h *CamperHandler) ListCampers(c *gin.Context) {
	campers, err := h.camperSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}

	response.OK(c, campers)
}

// CreateCamper
// POST /campers
func (h *CamperHandler) CreateCamper(c *gin.Context) {
	var req dto.CreateCamperRequest
	if !MustBindJSON(c, &req) {
		return
	}

	camper, err := h.camperSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleCamperError(c, err)
		return
	}

	response.Created(c, camper)
}

// GetCamper returns one camper with its signups.
// GET /campers/:id
func (h *CamperHandler) GetCamper(c *gin.Context) {
	id, ok := MustGetID(c, msgCamperNotFound)
	if !ok {
		return
	}

	camper, err := h.camperSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleCamperError(c, err)
		return
	}

	response.OK(c, camper)
}

// UpdateCamper partially updates name and/or age.
// PATCH /campers/:id
func (h *CamperHandler) UpdateCamper(c *gin.Context) {
	id, ok := MustGetID(c, msgCamperNotFound)
	if !ok {
		return
	}

	var req dto.UpdateCamperRequest
	if !MustBindJSON(c, &req) {
		return
	}

	camper, err := h.camperSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleCamperError(c, err)
		return
	}

	response.Accepted(c, camper)
}

func (h *CamperHandler) handleCamperError(c *gin.Context, err error) {
	if respondValidation(c, err) {
		return
	}
	switch {
	case errors.Is(err, service.ErrCamperNotFound):
		response.NotFound(c, msgCamperNotFound)
	default:
		response.InternalError(c, err)
	}
}
