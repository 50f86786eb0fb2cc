package repository

import (
	"context"

	"gorm.io/gorm"

	"camping-fun/server/internal/model"
)

// ActivityRepository data access for activities.
type ActivityRepository interface {
	Create(ctx context.Context, activity *model.Activity) error
	GetByID(ctx context.Context, id uint) (*model.Activity, error)
	List(ctx context.Context) ([]model.Activity, error)
	Delete(ctx context.Context, activity *model.Activity) error
}

type activityRepo struct {
	db *gorm.DB
}

// NewActivityRepo creates an ActivityRepository.
func NewActivityRepo(db *gorm.DB) ActivityRepository {
	return &activityRepo{db: db}
}

func (r *activityRepo) Create(ctx context.Context, activity *model.Activity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

func (r *activityRepo) GetByID(ctx context.Context, id uint) (*model.Activity, error) {
	var activity model.Activity
	err := r.db.WithContext(ctx).First(&activity, id).Error
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

func (r *activityRepo) List(ctx context.Context) ([]model.Activity, error) {
	var activities []model.Activity
	err := r.db.WithContext(ctx).Order("id ASC").Find(&activities).Error
	return activities, err
}

// Delete removes the activity and its signups. The signups are deleted
// explicitly as well as by the ON DELETE CASCADE constraint, so the result
// does not depend on the driver enforcing foreign keys.
func (r *activityRepo) Delete(ctx context.Context, activity *model.Activity) error {
	return r.db.WithContext(ctx).Select("Signups").Delete(activity).Error
}
