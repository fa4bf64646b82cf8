package models

import "database/sql/driver"

// DayItinerary describes one day inside a combination's itinerary.
type DayItinerary struct {
	Locations     []string `json:"locations"`
	Description   string   `json:"description"`
	Meals         string   `json:"meals"`
	Accommodation *string  `json:"accommodation,omitempty"`
	Transport     string   `json:"transport"`
}

// ItineraryMap is a JSON column mapping day identifiers ("day1", "day2", ...)
// to their itineraries.
type ItineraryMap map[string]DayItinerary

func (m ItineraryMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	return jsonValue(m)
}

func (m *ItineraryMap) Scan(value interface{}) error {
	return jsonScan(m, value)
}

// EstimatedCost is the authored cost breakdown of a combination. Total is
// opaque authored data and is not validated against the sum of its parts.
type EstimatedCost struct {
	EntranceFees  int  `json:"entranceFees"`
	Meals         int  `json:"meals"`
	Transport     int  `json:"transport"`
	Accommodation *int `json:"accommodation,omitempty"`
	Guide         *int `json:"guide,omitempty"`
	Total         int  `json:"total"`
}

func (c EstimatedCost) Value() (driver.Value, error) {
	return jsonValue(c)
}

func (c *EstimatedCost) Scan(value interface{}) error {
	return jsonScan(c, value)
}

// TravelCombination is a pre-built itinerary package. Ids are assigned by the
// seed data, never auto-generated, so they stay stable across reseeds.
type TravelCombination struct {
	ID             uint          `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Days           int           `gorm:"index;not null" json:"days"`
	StartLocation  string        `gorm:"type:varchar(100);index;not null" json:"start_location"`
	Budget         int           `gorm:"not null" json:"budget"`
	BudgetCategory string        `gorm:"type:varchar(50);not null" json:"budget_category"`
	Itinerary      ItineraryMap  `gorm:"type:json;not null" json:"itinerary"`
	EstimatedCost  EstimatedCost `gorm:"type:json;not null" json:"estimated_cost"`
	Highlights     StringList    `gorm:"type:json;not null" json:"highlights"`
	ViewCount      int64         `gorm:"default:0" json:"-"`
	TravelStyles   []TravelStyle `gorm:"many2many:combination_travel_styles" json:"travel_styles"`
}

// StyleNames returns the combination's style names in catalog order.
func (tc *TravelCombination) StyleNames() []string {
	names := make([]string, 0, len(tc.TravelStyles))
	for _, s := range tc.TravelStyles {
		names = append(names, s.Name)
	}
	return names
}
