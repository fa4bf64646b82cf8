package controllers

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/sahanperera/lankatrails/app/models"
	"github.com/sahanperera/lankatrails/app/repository"
	"github.com/sahanperera/lankatrails/internal/pkg/env"
	"github.com/sahanperera/lankatrails/internal/pkg/security"
	"github.com/sahanperera/lankatrails/internal/pkg/usercontext"
)

// RefreshTokenCookie is only sent back to /auth endpoints.
const RefreshTokenCookie = "refreshToken"

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"fullName" validate:"max=255"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
}

// HandleAuthRegister creates a new account and signs the user in.
func HandleAuthRegister(c *fiber.Ctx) error {
	var req RegisterRequest
	if !parseBody(c, &req) {
		return nil
	}

	repos := repository.GetGlobalRepositories()

	if _, err := repos.User.GetByEmail(req.Email); err == nil {
		return errorJSON(c, fiber.StatusConflict, "conflict", "Email already registered")
	}
	if _, err := repos.User.GetByUsername(req.Username); err == nil {
		return errorJSON(c, fiber.StatusConflict, "conflict", "Username already taken")
	}

	user, err := models.CreateUser(req.Email, req.Username, req.Password, req.FullName)
	if err != nil {
		return errorJSON(c, fiber.StatusUnprocessableEntity, "validation_error", err.Error())
	}
	if err := repos.User.Create(user); err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to create user")
	}

	logActivity(user.ID, models.ACTION_REGISTER, c)

	accessToken, err := issueTokens(c, user)
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to issue tokens")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"user":        user,
		"accessToken": accessToken,
		"tokenType":   "bearer",
	})
}

// HandleAuthLogin authenticates with email and password.
func HandleAuthLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if !parseBody(c, &req) {
		return nil
	}

	repos := repository.GetGlobalRepositories()

	// Same message for unknown email and wrong password
	user, err := repos.User.GetByEmail(req.Email)
	if err != nil {
		return errorJSON(c, fiber.StatusUnauthorized, "unauthorized", "Invalid email or password")
	}
	if !user.CheckPassword(req.Password) {
		return errorJSON(c, fiber.StatusUnauthorized, "unauthorized", "Invalid email or password")
	}
	if !user.IsActive {
		return errorJSON(c, fiber.StatusUnauthorized, "unauthorized", "Account is disabled")
	}

	now := time.Now()
	user.LastLoginAt = &now
	if err := repos.User.Update(user); err != nil {
		log.Printf("auth: failed to update last login for user %d: %v", user.ID, err)
	}

	logActivity(user.ID, models.ACTION_LOGIN, c)

	accessToken, err := issueTokens(c, user)
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to issue tokens")
	}

	return c.JSON(fiber.Map{
		"user":        user,
		"accessToken": accessToken,
		"tokenType":   "bearer",
	})
}

// HandleAuthRefresh exchanges the refresh token cookie for a new access token.
func HandleAuthRefresh(c *fiber.Ctx) error {
	refreshToken := c.Cookies(RefreshTokenCookie)
	if refreshToken == "" {
		return errorJSON(c, fiber.StatusUnauthorized, "unauthorized", "Refresh token not found in cookie")
	}

	claims, err := security.GetTokenManager().VerifyRefreshToken(refreshToken)
	if err != nil {
		return errorJSON(c, fiber.StatusUnauthorized, "unauthorized", "Invalid refresh token")
	}
	userID, err := claims.UserID()
	if err != nil {
		return errorJSON(c, fiber.StatusUnauthorized, "unauthorized", "Invalid refresh token")
	}

	repos := repository.GetGlobalRepositories()

	// The token must still be live in the database (not rotated out or revoked)
	if _, err := repos.Token.GetValid(userID, models.HashRefreshToken(refreshToken)); err != nil {
		return errorJSON(c, fiber.StatusUnauthorized, "unauthorized", "Refresh token expired or revoked")
	}

	user, err := repos.User.GetByID(userID)
	if err != nil || !user.IsActive {
		return errorJSON(c, fiber.StatusUnauthorized, "unauthorized", "User not found or inactive")
	}

	accessToken, err := security.GetTokenManager().CreateAccessToken(user.ID, user.Role)
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to issue token")
	}

	return c.JSON(fiber.Map{
		"accessToken": accessToken,
		"tokenType":   "bearer",
	})
}

// HandleAuthLogout revokes the refresh token from the cookie.
func HandleAuthLogout(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)
	repos := repository.GetGlobalRepositories()

	if refreshToken := c.Cookies(RefreshTokenCookie); refreshToken != "" {
		token, err := repos.Token.GetValid(userCtx.UserID, models.HashRefreshToken(refreshToken))
		if err == nil {
			if err := repos.Token.Revoke(token.ID); err != nil {
				log.Printf("auth: failed to revoke token for user %d: %v", userCtx.UserID, err)
			}
			logActivity(userCtx.UserID, models.ACTION_LOGOUT, c)
		}
	}

	clearRefreshCookie(c)
	return c.JSON(fiber.Map{"message": "Logged out successfully"})
}

// HandleAuthLogoutAll revokes every refresh token of the user.
func HandleAuthLogoutAll(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)
	repos := repository.GetGlobalRepositories()

	count, err := repos.Token.RevokeAllForUser(userCtx.UserID)
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to revoke tokens")
	}
	logActivity(userCtx.UserID, models.ACTION_LOGOUT_ALL, c)

	clearRefreshCookie(c)
	return c.JSON(fiber.Map{"message": fmt.Sprintf("Logged out from %d device(s)", count)})
}

// HandleAuthChangePassword updates the password and revokes all sessions.
func HandleAuthChangePassword(c *fiber.Ctx) error {
	var req ChangePasswordRequest
	if !parseBody(c, &req) {
		return nil
	}

	userCtx := usercontext.GetUserContext(c)
	repos := repository.GetGlobalRepositories()

	user, err := repos.User.GetByID(userCtx.UserID)
	if err != nil {
		return errorJSON(c, fiber.StatusNotFound, "not_found", "User not found")
	}
	if !user.CheckPassword(req.CurrentPassword) {
		return errorJSON(c, fiber.StatusUnauthorized, "unauthorized", "Current password is incorrect")
	}

	if err := user.SetPassword(req.NewPassword); err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to update password")
	}
	if err := repos.User.Update(user); err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to update password")
	}

	// Force a fresh login everywhere after a password change
	if _, err := repos.Token.RevokeAllForUser(user.ID); err != nil {
		log.Printf("auth: failed to revoke tokens after password change for user %d: %v", user.ID, err)
	}

	clearRefreshCookie(c)
	return c.JSON(fiber.Map{"message": "Password changed successfully. Please login again."})
}

// HandleAuthMe returns the authenticated user's account.
func HandleAuthMe(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	user, err := repository.GetGlobalFactory().GetUserRepository().GetByID(userCtx.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorJSON(c, fiber.StatusNotFound, "not_found", "User not found")
		}
		return errorJSON(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load user")
	}
	return c.JSON(user)
}

// issueTokens creates the access/refresh pair, persists the refresh token
// hash and sets the refresh cookie.
func issueTokens(c *fiber.Ctx, user *models.User) (string, error) {
	manager := security.GetTokenManager()

	accessToken, err := manager.CreateAccessToken(user.ID, user.Role)
	if err != nil {
		return "", err
	}
	refreshToken, err := manager.CreateRefreshToken(user.ID)
	if err != nil {
		return "", err
	}

	record := &models.RefreshToken{
		UserID:    user.ID,
		TokenHash: models.HashRefreshToken(refreshToken),
		ExpiresAt: time.Now().Add(manager.RefreshTTL()),
		UserAgent: GetUserAgent(c),
		IPAddress: GetClientIP(c),
	}
	if err := repository.GetGlobalFactory().GetTokenRepository().Create(record); err != nil {
		return "", err
	}

	c.Cookie(&fiber.Cookie{
		Name:     RefreshTokenCookie,
		Value:    refreshToken,
		Path:     "/auth",
		MaxAge:   int(manager.RefreshTTL().Seconds()),
		HTTPOnly: true,
		Secure:   !env.IsDev(),
		SameSite: fiber.CookieSameSiteStrictMode,
	})

	return accessToken, nil
}

func clearRefreshCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     RefreshTokenCookie,
		Value:    "",
		Path:     "/auth",
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   !env.IsDev(),
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}

// logActivity appends to the audit trail best-effort.
func logActivity(userID uint, action string, c *fiber.Ctx) {
	entry := &models.UserActivityLog{
		UserID:    userID,
		Action:    action,
		IPAddress: GetClientIP(c),
		UserAgent: GetUserAgent(c),
	}
	if err := repository.GetGlobalFactory().GetUserRepository().LogActivity(entry); err != nil {
		log.Printf("auth: failed to log %s for user %d: %v", action, userID, err)
	}
}
