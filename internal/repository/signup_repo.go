package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"camping-fun/server/internal/model"
)

// SignupRepository data access for signups.
type SignupRepository interface {
	Create(ctx context.Context, signup *model.Signup) error
	// GetByID loads the signup with its camper and activity.
	GetByID(ctx context.Context, id uint) (*model.Signup, error)
	// ListDetailed returns every signup with both parents, ordered by hour.
	ListDetailed(ctx context.Context) ([]model.Signup, error)
	CountByActivity(ctx context.Context, activityID uint) (int64, error)
}

type signupRepo struct {
	db *gorm.DB
}

// NewSignupRepo creates a SignupRepository.
func NewSignupRepo(db *gorm.DB) SignupRepository {
	return &signupRepo{db: db}
}

func (r *signupRepo) Create(ctx context.Context, signup *model.Signup) error {
	// associations are never upserted from here; parents must already exist
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(signup).Error
}

func (r *signupRepo) GetByID(ctx context.Context, id uint) (*model.Signup, error) {
	var signup model.Signup
	err := r.db.WithContext(ctx).
		Preload("Camper").
		Preload("Activity").
		First(&signup, id).Error
	if err != nil {
		return nil, err
	}
	return &signup, nil
}

func (r *signupRepo) ListDetailed(ctx context.Context) ([]model.Signup, error) {
	var signups []model.Signup
	err := r.db.WithContext(ctx).
		Preload("Camper").
		Preload("Activity").
		Order("time ASC, activity_id ASC, id ASC").
		Find(&signups).Error
	return signups, err
}

func (r *signupRepo) CountByActivity(ctx context.Context, activityID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.Signup{}).
		Where("activity_id = ?", activityID).
		Count(&n).Error
	return n, err
}
