package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sahanperera/lankatrails/app/repository"
	"github.com/sahanperera/lankatrails/internal/pkg/statistics"
)

// AdminUserController handles the admin user listing
type AdminUserController struct {
	userRepo repository.UserRepository
}

var adminUserController *AdminUserController

// NewAdminUserController creates a new admin user controller with repository
func NewAdminUserController(userRepo repository.UserRepository) *AdminUserController {
	return &AdminUserController{userRepo: userRepo}
}

// InitializeAdminUserController wires the controller to the global repositories
func InitializeAdminUserController() {
	adminUserController = NewAdminUserController(repository.GetGlobalFactory().GetUserRepository())
}

// GetAdminUserController returns the shared controller instance
func GetAdminUserController() *AdminUserController {
	if adminUserController == nil {
		InitializeAdminUserController()
	}
	return adminUserController
}

// HandleListUsers lists users with pagination and an optional role filter.
func (auc *AdminUserController) HandleListUsers(c *fiber.Ctx) error {
	skip := c.QueryInt("skip", 0)
	limit := c.QueryInt("limit", 100)
	if skip < 0 {
		skip = 0
	}
	if limit < 1 || limit > 500 {
		limit = 100
	}

	users, err := auc.userRepo.List(skip, limit, c.Query("role"))
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load users")
	}

	total, err := auc.userRepo.Count()
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to count users")
	}

	return c.JSON(fiber.Map{
		"total": total,
		"users": users,
	})
}

// HandleGetStats returns the aggregate dashboard numbers.
func (auc *AdminUserController) HandleGetStats(c *fiber.Ctx) error {
	return c.JSON(statistics.GetStatistics())
}
