package repository

import (
	"gorm.io/gorm"

	"github.com/sahanperera/lankatrails/app/models"
)

// catalogRepository implements the CatalogRepository interface
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository creates a new catalog repository instance
func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

// FindCombinations returns all combinations matching the start location and
// day count exactly, with their travel styles preloaded.
func (r *catalogRepository) FindCombinations(startLocation string, days int) ([]models.TravelCombination, error) {
	var combinations []models.TravelCombination
	err := r.db.Preload("TravelStyles").
		Where("start_location = ? AND days = ?", startLocation, days).
		Order("id").
		Find(&combinations).Error
	return combinations, err
}

// GetCombinationByID retrieves a single combination with its styles
func (r *catalogRepository) GetCombinationByID(id uint) (*models.TravelCombination, error) {
	var combination models.TravelCombination
	err := r.db.Preload("TravelStyles").First(&combination, id).Error
	if err != nil {
		return nil, err
	}
	return &combination, nil
}

// GetTravelStyles returns all travel styles
func (r *catalogRepository) GetTravelStyles() ([]models.TravelStyle, error) {
	var styles []models.TravelStyle
	err := r.db.Order("id").Find(&styles).Error
	return styles, err
}

// GetStartLocations returns all start locations
func (r *catalogRepository) GetStartLocations() ([]models.StartLocation, error) {
	var locations []models.StartLocation
	err := r.db.Order("id").Find(&locations).Error
	return locations, err
}

// GetBudgetRanges returns all budget range bands
func (r *catalogRepository) GetBudgetRanges() ([]models.BudgetRange, error) {
	var ranges []models.BudgetRange
	err := r.db.Order("min_value").Find(&ranges).Error
	return ranges, err
}
