package models

// StartLocation enumerates the legal trip starting points.
type StartLocation struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	Name        string       `gorm:"uniqueIndex;type:varchar(100);not null" json:"name"`
	Coordinates *Coordinates `gorm:"type:json" json:"coordinates,omitempty"`
}
