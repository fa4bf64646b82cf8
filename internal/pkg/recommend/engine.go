// Package recommend ranks pre-built travel combinations against user
// preferences. Filtering is exact on start location and day count, hard on
// style subsets; ranking weights style coverage (70) over budget fit (30)
// and sorts by (styleScore, totalScore) descending.
package recommend

import (
	"math"
	"sort"
	"strings"

	"github.com/sahanperera/lankatrails/app/models"
	"github.com/sahanperera/lankatrails/app/repository"
)

const (
	// DefaultLimit caps recommendation results when the caller gives no limit.
	DefaultLimit = 10

	styleWeight     = 70.0
	budgetFullScore = 30.0
	budgetNearScore = 15.0
	budgetTolerance = 1.2
)

// Recommendation is the materialized payload for one ranked combination.
type Recommendation struct {
	ID             uint                           `json:"id"`
	TravelStyles   []string                       `json:"travelStyles"`
	Days           int                            `json:"days"`
	StartLocation  string                         `json:"startLocation"`
	Budget         int                            `json:"budget"`
	BudgetCategory string                         `json:"budgetCategory"`
	Itinerary      map[string]models.DayItinerary `json:"itinerary"`
	EstimatedCost  models.EstimatedCost           `json:"estimatedCost"`
	Highlights     []string                       `json:"highlights"`
	Score          float64                        `json:"score"`
}

// LocationInfo is the public projection of a catalog location, keyed by its
// stable string identifier.
type LocationInfo struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	District     string              `json:"district"`
	TimeRequired int                 `json:"timeRequired"`
	EntranceFee  int                 `json:"entranceFee"`
	Description  string              `json:"description"`
	Coordinates  *models.Coordinates `json:"coordinates,omitempty"`
}

// BudgetRangeInfo describes one budget band for preference forms.
type BudgetRangeInfo struct {
	Min   int    `json:"min"`
	Max   int    `json:"max"`
	Label string `json:"label"`
}

// Engine computes recommendations from the catalog store. It is stateless;
// every method is a pure function of its arguments and the store contents.
type Engine struct {
	catalog   repository.CatalogRepository
	locations repository.LocationRepository
}

// NewEngine creates an engine over the given catalog and location stores.
func NewEngine(catalog repository.CatalogRepository, locations repository.LocationRepository) *Engine {
	return &Engine{catalog: catalog, locations: locations}
}

// GetRecommendations returns the ranked, capped list of combinations matching
// the user's preferences. Unmatched filters yield an empty result, never an
// error.
func (e *Engine) GetRecommendations(travelStyles []string, days int, startLocation string, budget int, limit int) ([]Recommendation, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	combinations, err := e.catalog.FindCombinations(startLocation, days)
	if err != nil {
		return nil, err
	}

	userStyles := make(map[string]struct{}, len(travelStyles))
	for _, s := range travelStyles {
		userStyles[s] = struct{}{}
	}

	type scoredCombination struct {
		styleScore float64
		totalScore float64
		combo      *models.TravelCombination
	}

	scored := make([]scoredCombination, 0, len(combinations))
	for i := range combinations {
		combo := &combinations[i]

		// Required: combo styles must be a subset of the user's styles. A
		// combination demanding a style the user did not ask for is rejected
		// outright, not merely scored down.
		comboStyles := combo.StyleNames()
		subset := true
		for _, name := range comboStyles {
			if _, ok := userStyles[name]; !ok {
				subset = false
				break
			}
		}
		if !subset {
			continue
		}

		// Style coverage, 70 points. With the subset filter passed the
		// intersection is exactly the combo's own style set.
		styleScore := 0.0
		if len(userStyles) > 0 {
			styleScore = styleWeight * float64(len(comboStyles)) / float64(len(userStyles))
		}

		// Budget fit, 30 points. Raw budget values only; the tolerance
		// boundary at budget*1.2 is inclusive.
		budgetScore := 0.0
		if combo.Budget <= budget {
			budgetScore = budgetFullScore
		} else if float64(combo.Budget) <= float64(budget)*budgetTolerance {
			budgetScore = budgetNearScore
		}

		scored = append(scored, scoredCombination{
			styleScore: styleScore,
			totalScore: styleScore + budgetScore,
			combo:      combo,
		})
	}

	// Style coverage is the primary key; total score only breaks ties among
	// equal style scores. Stable so equal pairs keep store order.
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].styleScore != scored[j].styleScore {
			return scored[i].styleScore > scored[j].styleScore
		}
		return scored[i].totalScore > scored[j].totalScore
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}

	results := make([]Recommendation, 0, len(scored))
	for _, s := range scored {
		results = append(results, convertCombination(s.combo, s.totalScore))
	}
	return results, nil
}

// GetCombinationByID looks up a single combination. The score is a neutral
// placeholder since there is no user context to score against. A missing id
// surfaces the store's not-found error.
func (e *Engine) GetCombinationByID(id uint) (*Recommendation, error) {
	combo, err := e.catalog.GetCombinationByID(id)
	if err != nil {
		return nil, err
	}
	rec := convertCombination(combo, 0)
	return &rec, nil
}

// GetTravelStyles returns all style names.
func (e *Engine) GetTravelStyles() ([]string, error) {
	styles, err := e.catalog.GetTravelStyles()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(styles))
	for _, s := range styles {
		names = append(names, s.Name)
	}
	return names, nil
}

// GetStartLocations returns all start locations with coordinates.
func (e *Engine) GetStartLocations() ([]models.StartLocation, error) {
	return e.catalog.GetStartLocations()
}

// GetBudgetRanges returns the budget bands keyed by range key.
func (e *Engine) GetBudgetRanges() (map[string]BudgetRangeInfo, error) {
	ranges, err := e.catalog.GetBudgetRanges()
	if err != nil {
		return nil, err
	}
	result := make(map[string]BudgetRangeInfo, len(ranges))
	for _, r := range ranges {
		result[r.Key] = BudgetRangeInfo{Min: r.MinValue, Max: r.MaxValue, Label: r.Label}
	}
	return result, nil
}

// GetAllLocations returns location summaries, optionally filtered by a
// normalized category key.
func (e *Engine) GetAllLocations(category string) ([]LocationInfo, error) {
	locations, err := e.locations.ListByCategory(NormalizeCategoryKey(category))
	if err != nil {
		return nil, err
	}
	infos := make([]LocationInfo, 0, len(locations))
	for _, loc := range locations {
		infos = append(infos, LocationInfo{
			ID:           loc.StringID,
			Name:         loc.Name,
			District:     loc.District,
			TimeRequired: loc.TimeRequired,
			EntranceFee:  loc.EntranceFee,
			Description:  loc.Description,
			Coordinates:  loc.Coordinates,
		})
	}
	return infos, nil
}

// NormalizeCategoryKey folds a caller-supplied category into the catalog key
// form: "Nature/Wildlife" and "nature-wildlife" both become "nature_wildlife".
func NormalizeCategoryKey(category string) string {
	key := strings.ToLower(category)
	key = strings.ReplaceAll(key, "/", "_")
	key = strings.ReplaceAll(key, "-", "_")
	return key
}

func convertCombination(combo *models.TravelCombination, score float64) Recommendation {
	itinerary := combo.Itinerary
	if itinerary == nil {
		itinerary = map[string]models.DayItinerary{}
	}
	highlights := combo.Highlights
	if highlights == nil {
		highlights = []string{}
	}
	return Recommendation{
		ID:             combo.ID,
		TravelStyles:   combo.StyleNames(),
		Days:           combo.Days,
		StartLocation:  combo.StartLocation,
		Budget:         combo.Budget,
		BudgetCategory: combo.BudgetCategory,
		Itinerary:      itinerary,
		EstimatedCost:  combo.EstimatedCost,
		Highlights:     highlights,
		Score:          math.Round(score*100) / 100,
	}
}
