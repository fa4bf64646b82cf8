package models

import "time"

// SavedItinerary bookmarks a travel combination for a user.
// A user can save each combination at most once.
type SavedItinerary struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"index:idx_user_combination,unique;not null" json:"user_id"`
	CombinationID uint      `gorm:"index:idx_user_combination,unique;not null" json:"combination_id"`
	Title         string    `gorm:"type:varchar(255);default:null" json:"title"`
	Notes         string    `gorm:"type:text;default:null" json:"notes"`
	IsFavorite    bool      `gorm:"default:false" json:"is_favorite"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
