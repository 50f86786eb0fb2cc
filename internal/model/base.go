package model

import "time"

// BaseModel audit timestamps embedded by every table.
type BaseModel struct {
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"-"`
}

// All lists every model, in dependency order, for schema auto-migration.
func All() []interface{} {
	return []interface{}{&Camper{}, &Activity{}, &Signup{}}
}
