package main

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	"github.com/sahanperera/lankatrails/app/models"
	"github.com/sahanperera/lankatrails/internal/pkg/database"
	"github.com/sahanperera/lankatrails/internal/pkg/env"
)

type seedBudgetRange struct {
	Min   int    `json:"min"`
	Max   int    `json:"max"`
	Label string `json:"label"`
}

type seedLocation struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	District     string              `json:"district"`
	TimeRequired int                 `json:"timeRequired"`
	EntranceFee  int                 `json:"entranceFee"`
	Description  string              `json:"description"`
	Coordinates  *models.Coordinates `json:"coordinates"`
}

type seedCombination struct {
	ID             uint                 `json:"id"`
	TravelStyles   []string             `json:"travelStyles"`
	Days           int                  `json:"days"`
	StartLocation  string               `json:"startLocation"`
	Budget         int                  `json:"budget"`
	BudgetCategory string               `json:"budgetCategory"`
	Itinerary      models.ItineraryMap  `json:"itinerary"`
	EstimatedCost  models.EstimatedCost `json:"estimatedCost"`
	Highlights     models.StringList    `json:"highlights"`
}

type seedFile struct {
	TravelStyles             []string                      `json:"travelStyles"`
	StartLocations           []string                      `json:"startLocations"`
	StartLocationCoordinates map[string]models.Coordinates `json:"startLocationCoordinates"`
	BudgetRanges             map[string]seedBudgetRange    `json:"budgetRanges"`
	Locations                map[string][]seedLocation     `json:"locations"`
	TravelCombinations       []seedCombination             `json:"travelCombinations"`
}

func main() {
	env.SetupEnvFile()
	database.SetupDatabase()

	dataPath := env.GetEnv("DATA_FILE_PATH", "data.json")
	raw, err := os.ReadFile(dataPath)
	if err != nil {
		log.Fatalf("Failed to read data file %s: %v", dataPath, err)
	}

	var data seedFile
	if err := json.Unmarshal(raw, &data); err != nil {
		log.Fatalf("Failed to parse %s: %v", dataPath, err)
	}

	log.Printf("Seeding database from %s...", dataPath)
	if err := seedDatabase(database.GetDB(), &data); err != nil {
		log.Fatalf("Error seeding database: %v", err)
	}
	log.Println("Database seeded successfully")
}

// seedDatabase replaces all catalog tables inside one transaction. User
// tables are never touched, so re-running the seed is safe.
func seedDatabase(db *gorm.DB, data *seedFile) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, stmt := range []string{
			"DELETE FROM combination_travel_styles",
			"DELETE FROM travel_combinations",
			"DELETE FROM locations",
			"DELETE FROM budget_ranges",
			"DELETE FROM start_locations",
			"DELETE FROM travel_styles",
		} {
			if err := tx.Exec(stmt).Error; err != nil {
				return err
			}
		}

		styleMap := make(map[string]models.TravelStyle, len(data.TravelStyles))
		for _, name := range data.TravelStyles {
			style := models.TravelStyle{Name: name}
			if err := tx.Create(&style).Error; err != nil {
				return err
			}
			styleMap[name] = style
		}
		log.Printf("  Seeded %d travel styles", len(styleMap))

		for _, name := range data.StartLocations {
			start := models.StartLocation{Name: name}
			if coords, ok := data.StartLocationCoordinates[name]; ok {
				c := coords
				start.Coordinates = &c
			}
			if err := tx.Create(&start).Error; err != nil {
				return err
			}
		}
		log.Printf("  Seeded %d start locations", len(data.StartLocations))

		for key, value := range data.BudgetRanges {
			rng := models.BudgetRange{
				Key:      key,
				MinValue: value.Min,
				MaxValue: value.Max,
				Label:    value.Label,
			}
			if err := tx.Create(&rng).Error; err != nil {
				return err
			}
		}
		log.Printf("  Seeded %d budget ranges", len(data.BudgetRanges))

		locationCount := 0
		for category, locations := range data.Locations {
			for _, loc := range locations {
				record := models.Location{
					StringID:     loc.ID,
					Name:         loc.Name,
					Category:     category,
					District:     loc.District,
					TimeRequired: loc.TimeRequired,
					EntranceFee:  loc.EntranceFee,
					Description:  loc.Description,
					Coordinates:  loc.Coordinates,
				}
				if err := tx.Create(&record).Error; err != nil {
					return err
				}
				locationCount++
			}
		}
		log.Printf("  Seeded %d locations", locationCount)

		for _, combo := range data.TravelCombinations {
			tc := models.TravelCombination{
				ID:             combo.ID,
				Days:           combo.Days,
				StartLocation:  combo.StartLocation,
				Budget:         combo.Budget,
				BudgetCategory: combo.BudgetCategory,
				Itinerary:      combo.Itinerary,
				EstimatedCost:  combo.EstimatedCost,
				Highlights:     combo.Highlights,
			}
			for _, styleName := range combo.TravelStyles {
				if style, ok := styleMap[styleName]; ok {
					tc.TravelStyles = append(tc.TravelStyles, style)
				}
			}
			if err := tx.Create(&tc).Error; err != nil {
				return err
			}
		}
		log.Printf("  Seeded %d travel combinations", len(data.TravelCombinations))

		return nil
	})
}
