package controllers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/sahanperera/lankatrails/app/models"
	"github.com/sahanperera/lankatrails/app/repository"
)

// AdminLocationController handles admin CRUD over the location catalog
type AdminLocationController struct {
	locationRepo repository.LocationRepository
}

var adminLocationController *AdminLocationController

// NewAdminLocationController creates a new admin location controller with repository
func NewAdminLocationController(locationRepo repository.LocationRepository) *AdminLocationController {
	return &AdminLocationController{locationRepo: locationRepo}
}

// InitializeAdminLocationController wires the controller to the global repositories
func InitializeAdminLocationController() {
	adminLocationController = NewAdminLocationController(repository.GetGlobalFactory().GetLocationRepository())
}

// GetAdminLocationController returns the shared controller instance
func GetAdminLocationController() *AdminLocationController {
	if adminLocationController == nil {
		InitializeAdminLocationController()
	}
	return adminLocationController
}

type LocationCreateRequest struct {
	StringID     string              `json:"stringId" validate:"required,max=100"`
	Name         string              `json:"name" validate:"required,max=255"`
	Category     string              `json:"category" validate:"required,max=50"`
	District     string              `json:"district" validate:"required,max=100"`
	TimeRequired int                 `json:"timeRequired" validate:"gte=0"`
	EntranceFee  int                 `json:"entranceFee" validate:"gte=0"`
	Description  string              `json:"description" validate:"required"`
	Coordinates  *models.Coordinates `json:"coordinates"`
}

type LocationUpdateRequest struct {
	Name         *string             `json:"name" validate:"omitempty,max=255"`
	Category     *string             `json:"category" validate:"omitempty,max=50"`
	District     *string             `json:"district" validate:"omitempty,max=100"`
	TimeRequired *int                `json:"timeRequired" validate:"omitempty,gte=0"`
	EntranceFee  *int                `json:"entranceFee" validate:"omitempty,gte=0"`
	Description  *string             `json:"description"`
	Coordinates  *models.Coordinates `json:"coordinates"`
}

// HandleListLocations lists locations with filters and pagination.
func (alc *AdminLocationController) HandleListLocations(c *fiber.Ctx) error {
	filter := repository.LocationFilter{
		Offset:   c.QueryInt("skip", 0),
		Limit:    c.QueryInt("limit", 100),
		Category: c.Query("category"),
		District: c.Query("district"),
		Search:   c.Query("search"),
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	if filter.Limit < 1 || filter.Limit > 500 {
		filter.Limit = 100
	}

	locations, total, err := alc.locationRepo.List(filter)
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load locations")
	}
	return c.JSON(fiber.Map{
		"total":     total,
		"locations": locations,
	})
}

// HandleGetCategories returns the distinct category keys.
func (alc *AdminLocationController) HandleGetCategories(c *fiber.Ctx) error {
	categories, err := alc.locationRepo.Categories()
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load categories")
	}
	return c.JSON(categories)
}

// HandleGetDistricts returns the distinct districts.
func (alc *AdminLocationController) HandleGetDistricts(c *fiber.Ctx) error {
	districts, err := alc.locationRepo.Districts()
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load districts")
	}
	return c.JSON(districts)
}

// HandleGetLocation returns one location by numeric id.
func (alc *AdminLocationController) HandleGetLocation(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return errorJSON(c, fiber.StatusBadRequest, "bad_request", "Invalid location id")
	}

	location, err := alc.locationRepo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorJSON(c, fiber.StatusNotFound, "not_found", fmt.Sprintf("Location with ID %d not found", id))
		}
		return errorJSON(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load location")
	}
	return c.JSON(location)
}

// HandleCreateLocation adds a new location to the catalog.
func (alc *AdminLocationController) HandleCreateLocation(c *fiber.Ctx) error {
	var req LocationCreateRequest
	if !parseBody(c, &req) {
		return nil
	}

	if _, err := alc.locationRepo.GetByStringID(req.StringID); err == nil {
		return errorJSON(c, fiber.StatusConflict, "conflict",
			fmt.Sprintf("Location with string_id '%s' already exists", req.StringID))
	}

	location := &models.Location{
		StringID:     req.StringID,
		Name:         req.Name,
		Category:     req.Category,
		District:     req.District,
		TimeRequired: req.TimeRequired,
		EntranceFee:  req.EntranceFee,
		Description:  req.Description,
		Coordinates:  req.Coordinates,
	}
	if err := alc.locationRepo.Create(location); err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to create location")
	}
	return c.Status(fiber.StatusCreated).JSON(location)
}

// HandleUpdateLocation patches the provided fields of a location.
func (alc *AdminLocationController) HandleUpdateLocation(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return errorJSON(c, fiber.StatusBadRequest, "bad_request", "Invalid location id")
	}

	var req LocationUpdateRequest
	if !parseBody(c, &req) {
		return nil
	}

	location, err := alc.locationRepo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorJSON(c, fiber.StatusNotFound, "not_found", fmt.Sprintf("Location with ID %d not found", id))
		}
		return errorJSON(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load location")
	}

	if req.Name != nil {
		location.Name = *req.Name
	}
	if req.Category != nil {
		location.Category = *req.Category
	}
	if req.District != nil {
		location.District = *req.District
	}
	if req.TimeRequired != nil {
		location.TimeRequired = *req.TimeRequired
	}
	if req.EntranceFee != nil {
		location.EntranceFee = *req.EntranceFee
	}
	if req.Description != nil {
		location.Description = *req.Description
	}
	if req.Coordinates != nil {
		location.Coordinates = req.Coordinates
	}

	if err := alc.locationRepo.Update(location); err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to update location")
	}
	return c.JSON(location)
}

// HandleDeleteLocation removes a location from the catalog.
func (alc *AdminLocationController) HandleDeleteLocation(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return errorJSON(c, fiber.StatusBadRequest, "bad_request", "Invalid location id")
	}

	if _, err := alc.locationRepo.GetByID(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorJSON(c, fiber.StatusNotFound, "not_found", fmt.Sprintf("Location with ID %d not found", id))
		}
		return errorJSON(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load location")
	}

	if err := alc.locationRepo.Delete(uint(id)); err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to delete location")
	}
	return c.JSON(fiber.Map{"message": fmt.Sprintf("Location %d deleted successfully", id)})
}
