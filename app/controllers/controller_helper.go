package controllers

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// GetClientIP determines the actual client IP address considering proxies
func GetClientIP(c *fiber.Ctx) string {
	if forwarded := c.Get("X-Forwarded-For"); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		if len(parts) > 0 {
			return strings.TrimSpace(parts[0])
		}
	}
	if realIP := c.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	return c.IP()
}

// GetUserAgent returns the caller's user agent header
func GetUserAgent(c *fiber.Ctx) string {
	return c.Get(fiber.HeaderUserAgent)
}

// parseBody parses the JSON body into dst and validates its struct tags.
// It writes the error response itself and returns false on failure.
func parseBody(c *fiber.Ctx, dst interface{}) bool {
	if err := c.BodyParser(dst); err != nil {
		c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "bad_request",
			"message": "Invalid request body",
		})
		return false
	}
	if err := validate.Struct(dst); err != nil {
		c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":   "validation_error",
			"message": err.Error(),
		})
		return false
	}
	return true
}

func errorJSON(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error":   code,
		"message": message,
	})
}
