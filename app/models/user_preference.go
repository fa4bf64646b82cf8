package models

import "time"

// UserPreference holds the last travel preferences a user submitted or saved.
type UserPreference struct {
	ID                     uint       `gorm:"primaryKey" json:"id"`
	UserID                 uint       `gorm:"uniqueIndex;not null" json:"user_id"`
	PreferredTravelStyles  StringList `gorm:"type:json" json:"preferred_travel_styles"`
	PreferredBudgetRange   string     `gorm:"type:varchar(50);default:null" json:"preferred_budget_range"`
	PreferredStartLocation string     `gorm:"type:varchar(100);default:null" json:"preferred_start_location"`
	CreatedAt              time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt              time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}
