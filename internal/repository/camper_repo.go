package repository

import (
	"context"

	"gorm.io/gorm"

	"camping-fun/server/internal/model"
)

// CamperRepository data access for campers.
type CamperRepository interface {
	Create(ctx context.Context, camper *model.Camper) error
	GetByID(ctx context.Context, id uint) (*model.Camper, error)
	// GetWithSignups loads the camper with its signups and each signup's activity.
	GetWithSignups(ctx context.Context, id uint) (*model.Camper, error)
	List(ctx context.Context) ([]model.Camper, error)
	Update(ctx context.Context, camper *model.Camper) error
	Delete(ctx context.Context, camper *model.Camper) error
}

type camperRepo struct {
	db *gorm.DB
}

// NewCamperRepo creates a CamperRepository.
func NewCamperRepo(db *gorm.DB) CamperRepository {
	return &camperRepo{db: db}
}

func (r *camperRepo) Create(ctx context.Context, camper *model.Camper) error {
	return r.db.WithContext(ctx).Create(camper).Error
}

func (r *camperRepo) GetByID(ctx context.Context, id uint) (*model.Camper, error) {
	var camper model.Camper
	err := r.db.WithContext(ctx).First(&camper, id).Error
	if err != nil {
		return nil, err
	}
	return &camper, nil
}

func (r *camperRepo) GetWithSignups(ctx context.Context, id uint) (*model.Camper, error) {
	var camper model.Camper
	err := r.db.WithContext(ctx).
		Preload("Signups", func(db *gorm.DB) *gorm.DB {
			return db.Order("time ASC, id ASC")
		}).
		Preload("Signups.Activity").
		First(&camper, id).Error
	if err != nil {
		return nil, err
	}
	return &camper, nil
}

func (r *camperRepo) List(ctx context.Context) ([]model.Camper, error) {
	var campers []model.Camper
	err := r.db.WithContext(ctx).Order("id ASC").Find(&campers).Error
	return campers, err
}

func (r *camperRepo) Update(ctx context.Context, camper *model.Camper) error {
	return r.db.WithContext(ctx).
		Model(camper).
		Select("name", "age", "updated_at").
		Updates(camper).Error
}

// Delete removes the camper and its signups.
func (r *camperRepo) Delete(ctx context.Context, camper *model.Camper) error {
	return r.db.WithContext(ctx).Select("Signups").Delete(camper).Error
}
