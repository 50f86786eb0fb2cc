package model

import (
	"strings"

	apperrors "camping-fun/server/pkg/errors"
)

// Activity a camp activity. Table: activities
type Activity struct {
	ID         uint   `gorm:"primaryKey"                 json:"id"`
	Name       string `gorm:"type:varchar(100);not null" json:"name"`
	Difficulty int    `gorm:"not null;default:0"         json:"difficulty"`
	BaseModel

	Signups []Signup `gorm:"foreignKey:ActivityID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName maps the model to its table.
func (Activity) TableName() string { return "activities" }

// NewActivity builds an activity. Only the name is checked.
func NewActivity(name string, difficulty int) (*Activity, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.Invalid("name", "Activity must have a name")
	}
	return &Activity{Name: name, Difficulty: difficulty}, nil
}
