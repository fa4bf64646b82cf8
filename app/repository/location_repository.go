package repository

import (
	"strings"

	"gorm.io/gorm"

	"github.com/sahanperera/lankatrails/app/models"
)

// locationRepository implements the LocationRepository interface
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository creates a new location repository instance
func NewLocationRepository(db *gorm.DB) LocationRepository {
	return &locationRepository{db: db}
}

// Create stores a new location
func (r *locationRepository) Create(location *models.Location) error {
	return r.db.Create(location).Error
}

// GetByID retrieves a location by its numeric ID
func (r *locationRepository) GetByID(id uint) (*models.Location, error) {
	var location models.Location
	err := r.db.First(&location, id).Error
	if err != nil {
		return nil, err
	}
	return &location, nil
}

// GetByStringID retrieves a location by its stable string identifier
func (r *locationRepository) GetByStringID(stringID string) (*models.Location, error) {
	var location models.Location
	err := r.db.Where("string_id = ?", stringID).First(&location).Error
	if err != nil {
		return nil, err
	}
	return &location, nil
}

// List retrieves locations matching the filter plus the unpaginated total
func (r *locationRepository) List(filter LocationFilter) ([]models.Location, int64, error) {
	query := r.db.Model(&models.Location{})

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.District != "" {
		query = query.Where("district = ?", filter.District)
	}
	if filter.Search != "" {
		pattern := "%" + strings.TrimSpace(filter.Search) + "%"
		query = query.Where("name LIKE ? OR description LIKE ? OR string_id LIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var locations []models.Location
	err := query.Order("name").Offset(filter.Offset).Limit(filter.Limit).Find(&locations).Error
	return locations, total, err
}

// ListByCategory retrieves all locations, optionally filtered by exact category key
func (r *locationRepository) ListByCategory(category string) ([]models.Location, error) {
	query := r.db.Order("id")
	if category != "" {
		query = query.Where("category = ?", category)
	}
	var locations []models.Location
	err := query.Find(&locations).Error
	return locations, err
}

// Update updates an existing location
func (r *locationRepository) Update(location *models.Location) error {
	return r.db.Save(location).Error
}

// Delete removes a location by its ID
func (r *locationRepository) Delete(id uint) error {
	return r.db.Delete(&models.Location{}, id).Error
}

// Categories returns the distinct category keys in the catalog
func (r *locationRepository) Categories() ([]string, error) {
	var categories []string
	err := r.db.Model(&models.Location{}).Distinct("category").Order("category").Pluck("category", &categories).Error
	return categories, err
}

// Districts returns the distinct districts in the catalog
func (r *locationRepository) Districts() ([]string, error) {
	var districts []string
	err := r.db.Model(&models.Location{}).Distinct("district").Order("district").Pluck("district", &districts).Error
	return districts, err
}
