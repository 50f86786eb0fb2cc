package repository

import (
	"context"

	"gorm.io/gorm"

	"camping-fun/server/internal/model"
)

// Repository groups every table's repository behind one handle.
type Repository struct {
	db *gorm.DB

	Camper   CamperRepository
	Activity ActivityRepository
	Signup   SignupRepository
}

// NewRepository creates the repository aggregate.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db:       db,
		Camper:   NewCamperRepo(db),
		Activity: NewActivityRepo(db),
		Signup:   NewSignupRepo(db),
	}
}

// WithTx returns an aggregate whose repositories all run on tx.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return NewRepository(tx)
}

// Transaction runs fn inside one database transaction. The transaction is
// rolled back when fn returns an error or panics.
//
// An aggregate assembled by hand (no connection, as in unit tests with mock
// repositories) runs fn directly on itself.
func (r *Repository) Transaction(ctx context.Context, fn func(txRepo *Repository) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(r.WithTx(tx))
	})
}

// Ping checks that the database answers.
func (r *Repository) Ping(ctx context.Context) error {
	if r.db == nil {
		return nil
	}
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Reset deletes every row, children first. Used by the seeder.
func (r *Repository) Reset(ctx context.Context) error {
	return r.Transaction(ctx, func(txRepo *Repository) error {
		tx := txRepo.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true})
		for _, m := range []interface{}{&model.Signup{}, &model.Activity{}, &model.Camper{}} {
			if err := tx.Delete(m).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
