package model

import (
	"strings"

	apperrors "camping-fun/server/pkg/errors"
)

// Age bounds for campers, inclusive.
const (
	MinCamperAge = 8
	MaxCamperAge = 18
)

// Camper a participant. Table: campers
type Camper struct {
	ID   uint   `gorm:"primaryKey"                      json:"id"`
	Name string `gorm:"type:varchar(100);not null"      json:"name"`
	Age  int    `gorm:"not null"                        json:"age"`
	BaseModel

	Signups []Signup `gorm:"foreignKey:CamperID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName maps the model to its table.
func (Camper) TableName() string { return "campers" }

// NewCamper validates every field and reports all failures together.
func NewCamper(name string, age int) (*Camper, error) {
	c := &Camper{}
	var errs apperrors.ValidationErrors
	errs = errs.Append(c.SetName(name))
	errs = errs.Append(c.SetAge(age))
	if err := errs.OrNil(); err != nil {
		return nil, err
	}
	return c, nil
}

// SetName assigns name, leaving the camper untouched when it is blank.
func (c *Camper) SetName(name string) error {
	if strings.TrimSpace(name) == "" {
		return apperrors.Invalid("name", "Camper must have a name")
	}
	c.Name = name
	return nil
}

// SetAge assigns age, leaving the camper untouched when it is out of range.
func (c *Camper) SetAge(age int) error {
	if age < MinCamperAge || age > MaxCamperAge {
		return apperrors.Invalid("age", "Camper age must be between 8 and 18")
	}
	c.Age = age
	return nil
}
