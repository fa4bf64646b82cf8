package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/sahanperera/lankatrails/app/repository"
	"github.com/sahanperera/lankatrails/internal/pkg/cache"
	"github.com/sahanperera/lankatrails/internal/pkg/metrics/counter"
	"github.com/sahanperera/lankatrails/internal/pkg/recommend"
	"github.com/sahanperera/lankatrails/internal/pkg/usercontext"
)

// Reference lookups change only on reseed, so a short cache TTL is plenty.
const lookupCacheTTL = 5 * time.Minute

// PreferenceRequest is the body of POST /recommendations. Constraint checks
// live here; the engine itself never validates inputs.
type PreferenceRequest struct {
	TravelStyles  []string `json:"travelStyles" validate:"required,min=1"`
	Days          int      `json:"days" validate:"required,gte=1,lte=14"`
	StartLocation string   `json:"startLocation" validate:"required"`
	Budget        int      `json:"budget" validate:"gte=0"`
}

// RecommendationController serves the public recommendation API
type RecommendationController struct {
	engine *recommend.Engine
}

var recommendationController *RecommendationController

// NewRecommendationController creates a controller over the given engine
func NewRecommendationController(engine *recommend.Engine) *RecommendationController {
	return &RecommendationController{engine: engine}
}

// InitializeRecommendationController wires the controller to the global
// repositories. Called by the router during startup.
func InitializeRecommendationController() {
	factory := repository.GetGlobalFactory()
	engine := recommend.NewEngine(factory.GetCatalogRepository(), factory.GetLocationRepository())
	recommendationController = NewRecommendationController(engine)
}

// GetRecommendationController returns the shared controller instance
func GetRecommendationController() *RecommendationController {
	if recommendationController == nil {
		InitializeRecommendationController()
	}
	return recommendationController
}

// HandlePostRecommendations ranks combinations against the submitted
// preferences. Authentication is optional; authenticated callers get their
// preferences saved as a side effect.
func (rc *RecommendationController) HandlePostRecommendations(c *fiber.Ctx) error {
	var req PreferenceRequest
	if !parseBody(c, &req) {
		return nil
	}

	limit := c.QueryInt("limit", recommend.DefaultLimit)

	recommendations, err := rc.engine.GetRecommendations(req.TravelStyles, req.Days, req.StartLocation, req.Budget, limit)
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to compute recommendations")
	}

	// Best-effort: remember what an authenticated user asked for
	if userCtx := usercontext.GetUserContext(c); userCtx.IsLoggedIn {
		budgetRange := budgetCategoryFor(req.Budget)
		if _, err := upsertPreferences(userCtx.UserID, req.TravelStyles, &budgetRange, &req.StartLocation); err != nil {
			log.Printf("recommendations: failed to save preferences for user %d: %v", userCtx.UserID, err)
		}
	}

	return c.JSON(fiber.Map{
		"success":         true,
		"total_results":   len(recommendations),
		"recommendations": recommendations,
		"filters_applied": fiber.Map{
			"travel_styles":  req.TravelStyles,
			"days":           req.Days,
			"start_location": req.StartLocation,
			"budget":         req.Budget,
		},
	})
}

// HandleGetTravelStyles returns all travel style names.
func (rc *RecommendationController) HandleGetTravelStyles(c *fiber.Ctx) error {
	return rc.cachedLookup(c, "catalog:travel_styles", func() (interface{}, error) {
		return rc.engine.GetTravelStyles()
	})
}

// HandleGetStartLocations returns all start locations with coordinates.
func (rc *RecommendationController) HandleGetStartLocations(c *fiber.Ctx) error {
	return rc.cachedLookup(c, "catalog:start_locations", func() (interface{}, error) {
		return rc.engine.GetStartLocations()
	})
}

// HandleGetBudgetRanges returns the budget bands keyed by range key.
func (rc *RecommendationController) HandleGetBudgetRanges(c *fiber.Ctx) error {
	return rc.cachedLookup(c, "catalog:budget_ranges", func() (interface{}, error) {
		return rc.engine.GetBudgetRanges()
	})
}

// HandleGetLocations returns location summaries, optionally filtered by
// category ("Nature/Wildlife" and "nature-wildlife" match the same key).
func (rc *RecommendationController) HandleGetLocations(c *fiber.Ctx) error {
	locations, err := rc.engine.GetAllLocations(c.Query("category"))
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load locations")
	}
	return c.JSON(locations)
}

// HandleGetCombinationByID returns a single combination with a zero score.
func (rc *RecommendationController) HandleGetCombinationByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return errorJSON(c, fiber.StatusBadRequest, "bad_request", "Invalid combination id")
	}

	combination, err := rc.engine.GetCombinationByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorJSON(c, fiber.StatusNotFound, "not_found", fmt.Sprintf("Combination with ID %d not found", id))
		}
		return errorJSON(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load combination")
	}

	// Popularity tracking is best effort; a dead cache never fails the lookup.
	if err := counter.AddCombinationView(uint(id)); err != nil {
		log.Printf("counter: failed to record view for combination %d: %v", id, err)
	}

	return c.JSON(combination)
}

// cachedLookup serves a reference lookup from the cache, falling back to the
// loader and caching its serialized result.
func (rc *RecommendationController) cachedLookup(c *fiber.Ctx, key string, load func() (interface{}, error)) error {
	if cached, err := cache.Get(key); err == nil && cached != "" {
		return c.Type("json").SendString(cached)
	}

	value, err := load()
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load reference data")
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to encode reference data")
	}
	if err := cache.Set(key, string(payload), lookupCacheTTL); err != nil {
		log.Printf("cache: failed to store %s: %v", key, err)
	}

	return c.Type("json").Send(payload)
}

// budgetCategoryFor maps a raw budget to its preference range key.
func budgetCategoryFor(budget int) string {
	switch {
	case budget < 100000:
		return "budget"
	case budget < 250000:
		return "moderate"
	case budget < 400000:
		return "luxury"
	default:
		return "premium"
	}
}
