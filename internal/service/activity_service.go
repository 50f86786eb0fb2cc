package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"camping-fun/server/internal/dto"
	"camping-fun/server/internal/repository"
)

// ── activity errors ──

var (
	ErrActivityNotFound = errors.New("activity not found")
)

// ActivityService activity use cases.
type ActivityService interface {
	List(ctx context.Context) ([]dto.ActivityResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.ActivityResponse, error)
	// Delete removes the activity together with all of its signups.
	Delete(ctx context.Context, id uint) error
}

type activityService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewActivityService creates an ActivityService.
func NewActivityService(repo *repository.Repository, logger *zap.Logger) ActivityService {
	return &activityService{repo: repo, logger: logger}
}

// ────────────────────── List ──────────────────────

func (s *activityService) List(ctx context.Context) ([]dto.ActivityResponse, error) {
	activities, err := s.repo.Activity.List(ctx)
	if err != nil {
		s.logger.Error("list activities failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.ActivityResponse, 0, len(activities))
	for i := range activities {
		result = append(result, toActivityResponse(&activities[i]))
	}
	return result, nil
}

// ────────────────────── GetByID ──────────────────────

func (s *activityService) GetByID(ctx context.Context, id uint) (*dto.ActivityResponse, error) {
	activity, err := s.repo.Activity.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrActivityNotFound
		}
		s.logger.Error("get activity failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	resp := toActivityResponse(activity)
	return &resp, nil
}

// ────────────────────── Delete ──────────────────────

func (s *activityService) Delete(ctx context.Context, id uint) error {
	var removed int64

	err := s.repo.Transaction(ctx, func(txRepo *repository.Repository) error {
		activity, err := txRepo.Activity.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrActivityNotFound
			}
			return err
		}

		if removed, err = txRepo.Signup.CountByActivity(ctx, id); err != nil {
			return err
		}

		return txRepo.Activity.Delete(ctx, activity)
	})
	if err != nil {
		if !errors.Is(err, ErrActivityNotFound) {
			s.logger.Error("delete activity failed", zap.Uint("id", id), zap.Error(err))
		}
		return err
	}

	s.logger.Info("activity deleted", zap.Uint("id", id), zap.Int64("signups_removed", removed))
	return nil
}
