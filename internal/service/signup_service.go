package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"camping-fun/server/internal/dto"
	"camping-fun/server/internal/model"
	"camping-fun/server/internal/repository"
	apperrors "camping-fun/server/pkg/errors"
)

// SignupService signup use cases.
type SignupService interface {
	Create(ctx context.Context, req *dto.CreateSignupRequest) (*dto.SignupResponse, error)
}

type signupService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSignupService creates a SignupService.
func NewSignupService(repo *repository.Repository, logger *zap.Logger) SignupService {
	return &signupService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

// Create validates the hour and the presence of both ids, then inserts.
// Unknown camper or activity ids are rejected by the foreign keys and
// reported as validation errors.
func (s *signupService) Create(ctx context.Context, req *dto.CreateSignupRequest) (*dto.SignupResponse, error) {
	signup, err := newSignupFromRequest(req)
	if err != nil {
		return nil, err
	}

	var created *model.Signup
	err = s.repo.Transaction(ctx, func(txRepo *repository.Repository) error {
		if err := txRepo.Signup.Create(ctx, signup); err != nil {
			return err
		}
		var err error
		created, err = txRepo.Signup.GetByID(ctx, signup.ID)
		return err
	})
	if err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, apperrors.ValidationErrors{
				apperrors.Invalid("camper_id", "Signup must reference an existing camper and activity"),
			}
		}
		s.logger.Error("create signup failed",
			zap.Uint("camper_id", signup.CamperID),
			zap.Uint("activity_id", signup.ActivityID),
			zap.Error(err),
		)
		return nil, err
	}

	return toSignupResponse(created), nil
}

func newSignupFromRequest(req *dto.CreateSignupRequest) (*model.Signup, error) {
	var camperID, activityID uint
	if req.CamperID != nil {
		camperID = *req.CamperID
	}
	if req.ActivityID != nil {
		activityID = *req.ActivityID
	}
	if req.Time != nil {
		return model.NewSignup(*req.Time, camperID, activityID)
	}

	var errs apperrors.ValidationErrors
	errs = append(errs, apperrors.Required("time"))
	if _, err := model.NewSignup(model.FirstHour, camperID, activityID); err != nil {
		var rest apperrors.ValidationErrors
		if errors.As(err, &rest) {
			errs = append(errs, rest...)
		}
	}
	return nil, errs
}
