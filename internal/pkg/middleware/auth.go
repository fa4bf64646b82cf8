package middleware

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/sahanperera/lankatrails/app/repository"
	"github.com/sahanperera/lankatrails/internal/pkg/security"
	"github.com/sahanperera/lankatrails/internal/pkg/usercontext"
)

// OptionalAuth resolves a bearer token into the user context when one is
// present. Invalid or missing tokens leave the request anonymous.
func OptionalAuth(c *fiber.Ctx) error {
	if user := resolveBearerUser(c); user != nil {
		usercontext.SetUserContext(c, *user)
	}
	return c.Next()
}

// RequireAuth ensures a valid bearer token for API routes, returning JSON 401
// otherwise.
func RequireAuth(c *fiber.Ctx) error {
	user := resolveBearerUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":   "unauthorized",
			"message": "Missing or invalid authentication",
		})
	}
	usercontext.SetUserContext(c, *user)
	return c.Next()
}

// RequireAdmin ensures a valid bearer token belonging to an admin.
func RequireAdmin(c *fiber.Ctx) error {
	user := resolveBearerUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":   "unauthorized",
			"message": "Missing or invalid authentication",
		})
	}
	if !user.IsAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error":   "forbidden",
			"message": "Admin access required",
		})
	}
	usercontext.SetUserContext(c, *user)
	return c.Next()
}

// resolveBearerUser verifies the Authorization header and loads the user it
// refers to. Returns nil for anonymous, invalid or inactive callers.
func resolveBearerUser(c *fiber.Ctx) *usercontext.UserContext {
	token := extractBearerToken(c)
	if token == "" {
		return nil
	}

	claims, err := security.GetTokenManager().VerifyAccessToken(token)
	if err != nil {
		return nil
	}
	userID, err := claims.UserID()
	if err != nil {
		return nil
	}

	repo := repository.GetGlobalFactory().GetUserRepository()
	user, err := repo.GetByID(userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("auth middleware: user lookup failed: %v", err)
		}
		return nil
	}
	if !user.IsActive {
		return nil
	}

	return &usercontext.UserContext{
		UserID:     user.ID,
		Username:   user.Username,
		Role:       user.Role,
		IsLoggedIn: true,
		IsAdmin:    user.IsAdmin(),
	}
}

func extractBearerToken(c *fiber.Ctx) string {
	auth := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if strings.HasPrefix(strings.ToLower(auth), "bearer ") {
		return strings.TrimSpace(auth[7:])
	}
	return ""
}
