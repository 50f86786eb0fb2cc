package handler

import "camping-fun/server/internal/service"

// Handler groups every HTTP handler.
type Handler struct {
	Camper   *CamperHandler
	Activity *ActivityHandler
	Signup   *SignupHandler
	Export   *ExportHandler
}

// NewHandler creates the handler aggregate.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Camper:   NewCamperHandler(svc.Camper),
		Activity: NewActivityHandler(svc.Activity),
		Signup:   NewSignupHandler(svc.Signup),
		Export:   NewExportHandler(svc.Export),
	}
}
