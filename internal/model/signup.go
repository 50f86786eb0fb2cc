package model

import (
	apperrors "camping-fun/server/pkg/errors"
)

// Hour slots a signup may occupy, inclusive.
const (
	FirstHour = 0
	LastHour  = 23
)

// Signup books a camper into an activity at an hour. Table: signups
type Signup struct {
	ID         uint `gorm:"primaryKey"       json:"id"`
	Time       int  `gorm:"not null"         json:"time"`
	CamperID   uint `gorm:"not null;index"   json:"camper_id"`
	ActivityID uint `gorm:"not null;index"   json:"activity_id"`
	BaseModel

	// associations
	Camper   *Camper   `gorm:"foreignKey:CamperID;references:ID;constraint:OnDelete:CASCADE"   json:"-"`
	Activity *Activity `gorm:"foreignKey:ActivityID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName maps the model to its table.
func (Signup) TableName() string { return "signups" }

// NewSignup validates the hour and that both parents were named.
// Whether the parents exist is left to the foreign keys.
func NewSignup(hour int, camperID, activityID uint) (*Signup, error) {
	s := &Signup{}
	var errs apperrors.ValidationErrors
	errs = errs.Append(s.SetTime(hour))
	if camperID == 0 {
		errs = append(errs, apperrors.Required("camper_id"))
	}
	if activityID == 0 {
		errs = append(errs, apperrors.Required("activity_id"))
	}
	if err := errs.OrNil(); err != nil {
		return nil, err
	}
	s.CamperID = camperID
	s.ActivityID = activityID
	return s, nil
}

// SetTime assigns the hour slot, leaving the signup untouched when it is
// outside 0-23.
func (s *Signup) SetTime(hour int) error {
	if hour < FirstHour || hour > LastHour {
		return apperrors.Invalid("time", "Signup time must be between 0 and 23")
	}
	s.Time = hour
	return nil
}
