package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/sahanperera/lankatrails/app/models"
	"github.com/sahanperera/lankatrails/app/repository"
	"github.com/sahanperera/lankatrails/internal/pkg/usercontext"
)

type UserUpdateRequest struct {
	Email    *string `json:"email" validate:"omitempty,email"`
	Username *string `json:"username" validate:"omitempty,min=3,max=50"`
	FullName *string `json:"fullName" validate:"omitempty,max=255"`
}

type PreferenceUpdateRequest struct {
	PreferredTravelStyles  []string `json:"preferredTravelStyles"`
	PreferredBudgetRange   *string  `json:"preferredBudgetRange" validate:"omitempty,max=50"`
	PreferredStartLocation *string  `json:"preferredStartLocation" validate:"omitempty,max=100"`
}

type SavedItineraryCreateRequest struct {
	CombinationID uint   `json:"combinationId" validate:"required,gt=0"`
	Title         string `json:"title" validate:"max=255"`
	Notes         string `json:"notes"`
	IsFavorite    bool   `json:"isFavorite"`
}

type SavedItineraryUpdateRequest struct {
	Title      *string `json:"title" validate:"omitempty,max=255"`
	Notes      *string `json:"notes"`
	IsFavorite *bool   `json:"isFavorite"`
}

// HandleGetProfile returns the current user's profile.
func HandleGetProfile(c *fiber.Ctx) error {
	return HandleAuthMe(c)
}

// HandleUpdateProfile updates email, username or full name.
func HandleUpdateProfile(c *fiber.Ctx) error {
	var req UserUpdateRequest
	if !parseBody(c, &req) {
		return nil
	}

	userCtx := usercontext.GetUserContext(c)
	repos := repository.GetGlobalRepositories()

	user, err := repos.User.GetByID(userCtx.UserID)
	if err != nil {
		return errorJSON(c, fiber.StatusNotFound, "not_found", "User not found")
	}

	if req.Email != nil && *req.Email != user.Email {
		if _, err := repos.User.GetByEmail(*req.Email); err == nil {
			return errorJSON(c, fiber.StatusConflict, "conflict", "Email already registered")
		}
		user.Email = *req.Email
	}
	if req.Username != nil && *req.Username != user.Username {
		if _, err := repos.User.GetByUsername(*req.Username); err == nil {
			return errorJSON(c, fiber.StatusConflict, "conflict", "Username already taken")
		}
		user.Username = *req.Username
	}
	if req.FullName != nil {
		user.FullName = *req.FullName
	}

	if err := repos.User.Update(user); err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to update user")
	}
	return c.JSON(user)
}

// HandleDeleteAccount permanently removes the current user's account.
func HandleDeleteAccount(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	if err := repository.GetGlobalFactory().GetUserRepository().Delete(userCtx.UserID); err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to delete account")
	}
	clearRefreshCookie(c)
	return c.JSON(fiber.Map{"message": "Account deleted successfully"})
}

// HandleGetPreferences returns the user's travel preferences, or null when
// none are set yet.
func HandleGetPreferences(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	pref, err := repository.GetGlobalFactory().GetPreferenceRepository().GetByUserID(userCtx.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(nil)
		}
		return errorJSON(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load preferences")
	}
	return c.JSON(pref)
}

// HandleUpdatePreferences creates or updates the user's travel preferences.
func HandleUpdatePreferences(c *fiber.Ctx) error {
	var req PreferenceUpdateRequest
	if !parseBody(c, &req) {
		return nil
	}

	userCtx := usercontext.GetUserContext(c)

	pref, err := upsertPreferences(userCtx.UserID, req.PreferredTravelStyles, req.PreferredBudgetRange, req.PreferredStartLocation)
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to save preferences")
	}
	return c.JSON(pref)
}

// HandleGetSavedItineraries lists the user's saved itineraries, newest first.
func HandleGetSavedItineraries(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	itineraries, err := repository.GetGlobalFactory().GetItineraryRepository().GetByUserID(userCtx.UserID)
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load itineraries")
	}
	return c.JSON(itineraries)
}

// HandleSaveItinerary bookmarks a travel combination for the user.
func HandleSaveItinerary(c *fiber.Ctx) error {
	var req SavedItineraryCreateRequest
	if !parseBody(c, &req) {
		return nil
	}

	userCtx := usercontext.GetUserContext(c)
	repo := repository.GetGlobalFactory().GetItineraryRepository()

	if _, err := repo.GetByUserAndCombination(userCtx.UserID, req.CombinationID); err == nil {
		return errorJSON(c, fiber.StatusConflict, "conflict", "Itinerary already saved")
	}

	itinerary := &models.SavedItinerary{
		UserID:        userCtx.UserID,
		CombinationID: req.CombinationID,
		Title:         req.Title,
		Notes:         req.Notes,
		IsFavorite:    req.IsFavorite,
	}
	if err := repo.Create(itinerary); err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to save itinerary")
	}
	return c.Status(fiber.StatusCreated).JSON(itinerary)
}

// HandleUpdateSavedItinerary edits title, notes or the favorite flag.
func HandleUpdateSavedItinerary(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return errorJSON(c, fiber.StatusBadRequest, "bad_request", "Invalid itinerary id")
	}

	var req SavedItineraryUpdateRequest
	if !parseBody(c, &req) {
		return nil
	}

	userCtx := usercontext.GetUserContext(c)
	repo := repository.GetGlobalFactory().GetItineraryRepository()

	itinerary, err := repo.GetByID(uint(id))
	if err != nil || itinerary.UserID != userCtx.UserID {
		return errorJSON(c, fiber.StatusNotFound, "not_found", "Itinerary not found")
	}

	if req.Title != nil {
		itinerary.Title = *req.Title
	}
	if req.Notes != nil {
		itinerary.Notes = *req.Notes
	}
	if req.IsFavorite != nil {
		itinerary.IsFavorite = *req.IsFavorite
	}

	if err := repo.Update(itinerary); err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to update itinerary")
	}
	return c.JSON(itinerary)
}

// HandleDeleteSavedItinerary removes a bookmark owned by the user.
func HandleDeleteSavedItinerary(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return errorJSON(c, fiber.StatusBadRequest, "bad_request", "Invalid itinerary id")
	}

	userCtx := usercontext.GetUserContext(c)

	deleted, err := repository.GetGlobalFactory().GetItineraryRepository().Delete(userCtx.UserID, uint(id))
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to delete itinerary")
	}
	if !deleted {
		return errorJSON(c, fiber.StatusNotFound, "not_found", "Itinerary not found")
	}
	return c.JSON(fiber.Map{"message": "Itinerary deleted successfully"})
}

// upsertPreferences merges the given fields into the user's preference row.
func upsertPreferences(userID uint, styles []string, budgetRange, startLocation *string) (*models.UserPreference, error) {
	repo := repository.GetGlobalFactory().GetPreferenceRepository()

	pref, err := repo.GetByUserID(userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		pref = &models.UserPreference{UserID: userID}
	}

	if styles != nil {
		pref.PreferredTravelStyles = styles
	}
	if budgetRange != nil {
		pref.PreferredBudgetRange = *budgetRange
	}
	if startLocation != nil {
		pref.PreferredStartLocation = *startLocation
	}

	if err := repo.Save(pref); err != nil {
		return nil, err
	}
	return pref, nil
}
