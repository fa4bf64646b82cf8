package models

import "github.com/go-playground/validator/v10"

// Location is a tourist site in the catalog. StringID is the stable external
// identifier used in itinerary day entries and by the seed data.
type Location struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	StringID     string       `gorm:"uniqueIndex;type:varchar(100);not null" json:"string_id" validate:"required,max=100"`
	Name         string       `gorm:"type:varchar(255);not null" json:"name" validate:"required,max=255"`
	Category     string       `gorm:"type:varchar(50);index;not null" json:"category" validate:"required,max=50"`
	District     string       `gorm:"type:varchar(100);not null" json:"district" validate:"required,max=100"`
	TimeRequired int          `gorm:"not null" json:"time_required" validate:"gte=0"`
	EntranceFee  int          `gorm:"not null" json:"entrance_fee" validate:"gte=0"`
	Description  string       `gorm:"type:text;not null" json:"description" validate:"required"`
	Coordinates  *Coordinates `gorm:"type:json" json:"coordinates,omitempty"`
}

func (l *Location) Validate() error {
	v := validator.New()

	return v.Struct(l)
}
