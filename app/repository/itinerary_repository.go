package repository

import (
	"gorm.io/gorm"

	"github.com/sahanperera/lankatrails/app/models"
)

// itineraryRepository implements the ItineraryRepository interface
type itineraryRepository struct {
	db *gorm.DB
}

// NewItineraryRepository creates a new saved itinerary repository instance
func NewItineraryRepository(db *gorm.DB) ItineraryRepository {
	return &itineraryRepository{db: db}
}

// Create stores a new saved itinerary
func (r *itineraryRepository) Create(itinerary *models.SavedItinerary) error {
	return r.db.Create(itinerary).Error
}

// GetByID retrieves a saved itinerary by its ID
func (r *itineraryRepository) GetByID(id uint) (*models.SavedItinerary, error) {
	var itinerary models.SavedItinerary
	err := r.db.First(&itinerary, id).Error
	if err != nil {
		return nil, err
	}
	return &itinerary, nil
}

// GetByUserID retrieves all saved itineraries of a user, newest first
func (r *itineraryRepository) GetByUserID(userID uint) ([]models.SavedItinerary, error) {
	var itineraries []models.SavedItinerary
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&itineraries).Error
	return itineraries, err
}

// GetByUserAndCombination finds the saved entry for a user/combination pair
func (r *itineraryRepository) GetByUserAndCombination(userID, combinationID uint) (*models.SavedItinerary, error) {
	var itinerary models.SavedItinerary
	err := r.db.Where("user_id = ? AND combination_id = ?", userID, combinationID).First(&itinerary).Error
	if err != nil {
		return nil, err
	}
	return &itinerary, nil
}

// Update updates an existing saved itinerary
func (r *itineraryRepository) Update(itinerary *models.SavedItinerary) error {
	return r.db.Save(itinerary).Error
}

// Delete removes a saved itinerary owned by the given user.
// Returns false when no matching row existed.
func (r *itineraryRepository) Delete(userID, id uint) (bool, error) {
	result := r.db.Where("user_id = ? AND id = ?", userID, id).Delete(&models.SavedItinerary{})
	return result.RowsAffected > 0, result.Error
}
