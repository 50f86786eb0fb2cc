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

// ── camper errors ──

var (
	ErrCamperNotFound = errors.New("camper not found")
)

// CamperService camper use cases.
type CamperService interface {
	List(ctx context.Context) ([]dto.CamperSummary, error)
	Create(ctx context.Context, req *dto.CreateCamperRequest) (*dto.CamperSummary, error)
	GetByID(ctx context.Context, id uint) (*dto.CamperDetail, error)
	Update(ctx context.Context, id uint, req *dto.UpdateCamperRequest) (*dto.CamperDetail, error)
}

type camperService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCamperService creates a CamperService.
func NewCamperService(repo *repository.Repository, logger *zap.Logger) CamperService {
	return &camperService{repo: repo, logger: logger}
}

// ────────────────────── List ──────────────────────

func (s *camperService) List(ctx context.Context) ([]dto.CamperSummary, error) {
	campers, err := s.repo.Camper.List(ctx)
	if err != nil {
		s.logger.Error("list campers failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.CamperSummary, 0, len(campers))
	for i := range campers {
		result = append(result, toCamperSummary(&campers[i]))
	}
	return result, nil
}

// ────────────────────── Create ──────────────────────

func (s *camperService) Create(ctx context.Context, req *dto.CreateCamperRequest) (*dto.CamperSummary, error) {
	camper, err := newCamperFromRequest(req)
	if err != nil {
		return nil, err
	}

	err = s.repo.Transaction(ctx, func(txRepo *repository.Repository) error {
		return txRepo.Camper.Create(ctx, camper)
	})
	if err != nil {
		s.logger.Error("create camper failed", zap.Error(err))
		return nil, err
	}

	summary := toCamperSummary(camper)
	return &summary, nil
}

func newCamperFromRequest(req *dto.CreateCamperRequest) (*model.Camper, error) {
	var name string
	if req.Name != nil {
		name = *req.Name
	}
	if req.Age != nil {
		return model.NewCamper(name, *req.Age)
	}

	// without an age there is no camper to build, but the name is still
	// checked so the caller sees every problem at once
	var errs apperrors.ValidationErrors
	errs = errs.Append((&model.Camper{}).SetName(name))
	errs = append(errs, apperrors.Required("age"))
	return nil, errs
}

// ────────────────────── GetByID ──────────────────────

func (s *camperService) GetByID(ctx context.Context, id uint) (*dto.CamperDetail, error) {
	camper, err := s.repo.Camper.GetWithSignups(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCamperNotFound
		}
		s.logger.Error("get camper failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	return toCamperDetail(camper), nil
}

// ────────────────────── Update ──────────────────────

// Update applies only the keys present in req. Any failed rule rolls the
// whole update back.
func (s *camperService) Update(ctx context.Context, id uint, req *dto.UpdateCamperRequest) (*dto.CamperDetail, error) {
	var updated *model.Camper

	err := s.repo.Transaction(ctx, func(txRepo *repository.Repository) error {
		camper, err := txRepo.Camper.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCamperNotFound
			}
			return err
		}

		var errs apperrors.ValidationErrors
		if req.Name.Set {
			errs = errs.Append(camper.SetName(req.Name.Value))
		}
		if req.Age.Set {
			if req.Age.Null {
				errs = append(errs, apperrors.Required("age"))
			} else {
				errs = errs.Append(camper.SetAge(req.Age.Value))
			}
		}
		if err := errs.OrNil(); err != nil {
			return err
		}

		if err := txRepo.Camper.Update(ctx, camper); err != nil {
			return err
		}

		updated, err = txRepo.Camper.GetWithSignups(ctx, id)
		return err
	})
	if err != nil {
		if _, invalid := apperrors.ValidationMessages(err); !invalid && !errors.Is(err, ErrCamperNotFound) {
			s.logger.Error("update camper failed", zap.Uint("id", id), zap.Error(err))
		}
		return nil, err
	}

	return toCamperDetail(updated), nil
}
