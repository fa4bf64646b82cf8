package models

// TravelStyle is a catalog tag (e.g. "Adventure", "Cultural", "Spiritual",
// "Nature/Wildlife") attached to combinations and user preferences.
type TravelStyle struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;type:varchar(50);not null" json:"name"`
}
