package repository

import (
	"gorm.io/gorm"

	"github.com/sahanperera/lankatrails/app/models"
)

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	Update(user *models.User) error
	Delete(id uint) error
	List(offset, limit int, role string) ([]models.User, error)
	Count() (int64, error)
	LogActivity(entry *models.UserActivityLog) error
}

// TokenRepository defines the interface for refresh token persistence
type TokenRepository interface {
	Create(token *models.RefreshToken) error
	GetValid(userID uint, tokenHash string) (*models.RefreshToken, error)
	Revoke(id uint) error
	RevokeAllForUser(userID uint) (int64, error)
	DeleteExpired() (int64, error)
}

// PreferenceRepository defines the interface for user travel preferences
type PreferenceRepository interface {
	GetByUserID(userID uint) (*models.UserPreference, error)
	Save(pref *models.UserPreference) error
}

// ItineraryRepository defines the interface for saved itineraries
type ItineraryRepository interface {
	Create(itinerary *models.SavedItinerary) error
	GetByID(id uint) (*models.SavedItinerary, error)
	GetByUserID(userID uint) ([]models.SavedItinerary, error)
	GetByUserAndCombination(userID, combinationID uint) (*models.SavedItinerary, error)
	Update(itinerary *models.SavedItinerary) error
	Delete(userID, id uint) (bool, error)
}

// LocationFilter narrows and pages admin location listings
type LocationFilter struct {
	Offset   int
	Limit    int
	Category string
	District string
	Search   string
}

// LocationRepository defines the interface for the tourist location catalog
type LocationRepository interface {
	Create(location *models.Location) error
	GetByID(id uint) (*models.Location, error)
	GetByStringID(stringID string) (*models.Location, error)
	List(filter LocationFilter) ([]models.Location, int64, error)
	ListByCategory(category string) ([]models.Location, error)
	Update(location *models.Location) error
	Delete(id uint) error
	Categories() ([]string, error)
	Districts() ([]string, error)
}

// CatalogRepository defines the read-only reference data the recommendation
// engine consumes: styles, start locations, budget ranges and combinations.
type CatalogRepository interface {
	FindCombinations(startLocation string, days int) ([]models.TravelCombination, error)
	GetCombinationByID(id uint) (*models.TravelCombination, error)
	GetTravelStyles() ([]models.TravelStyle, error)
	GetStartLocations() ([]models.StartLocation, error)
	GetBudgetRanges() ([]models.BudgetRange, error)
}

// Repositories struct holds all repository instances
type Repositories struct {
	User       UserRepository
	Token      TokenRepository
	Preference PreferenceRepository
	Itinerary  ItineraryRepository
	Location   LocationRepository
	Catalog    CatalogRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:       NewUserRepository(db),
		Token:      NewTokenRepository(db),
		Preference: NewPreferenceRepository(db),
		Itinerary:  NewItineraryRepository(db),
		Location:   NewLocationRepository(db),
		Catalog:    NewCatalogRepository(db),
	}
}
