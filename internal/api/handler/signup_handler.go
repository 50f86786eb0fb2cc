package handler

import (
	"github.com/gin-gonic/gin"

	"camping-fun/server/internal/dto"
	"camping-fun/server/internal/service"
	"camping-fun/server/pkg/response"
)

// SignupHandler signup endpoints.
type SignupHandler struct {
	signupSvc service.SignupService
}

// NewSignupHandler creates a SignupHandler.
func NewSignupHandler(signupSvc service.SignupService) *SignupHandler {
	return &SignupHandler{signupSvc: signupSvc}
}

// CreateSignup books a camper into an activity.
// POST /signups
func (h *SignupHandler) CreateSignup(c *gin.Context) {
	var req dto.CreateSignupRequest
	if !MustBindJSON(c, &req) {
		return
	}

	signup, err := h.signupSvc.Create(c.Request.Context(), &req)
	if err != nil {
		if respondValidation(c, err) {
			return
		}
		response.InternalError(c, err)
		return
	}

	response.Created(c, signup)
}
