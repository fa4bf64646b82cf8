package repository

import (
	"gorm.io/gorm"

	"github.com/sahanperera/lankatrails/app/models"
)

// preferenceRepository implements the PreferenceRepository interface
type preferenceRepository struct {
	db *gorm.DB
}

// NewPreferenceRepository creates a new preference repository instance
func NewPreferenceRepository(db *gorm.DB) PreferenceRepository {
	return &preferenceRepository{db: db}
}

// GetByUserID retrieves the preferences of a user
func (r *preferenceRepository) GetByUserID(userID uint) (*models.UserPreference, error) {
	var pref models.UserPreference
	err := r.db.Where("user_id = ?", userID).First(&pref).Error
	if err != nil {
		return nil, err
	}
	return &pref, nil
}

// Save creates or updates a preference row
func (r *preferenceRepository) Save(pref *models.UserPreference) error {
	return r.db.Save(pref).Error
}
