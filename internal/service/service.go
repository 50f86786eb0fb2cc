package service

import (
	"go.uber.org/zap"

	"camping-fun/server/internal/repository"
)

// Service groups every service behind one handle.
type Service struct {
	Camper   CamperService
	Activity ActivityService
	Signup   SignupService
	Export   ExportService
}

// NewService creates the service aggregate.
func NewService(repo *repository.Repository, logger *zap.Logger) *Service {
	return &Service{
		Camper:   NewCamperService(repo, logger),
		Activity: NewActivityService(repo, logger),
		Signup:   NewSignupService(repo, logger),
		Export:   NewExportService(repo, logger),
	}
}
