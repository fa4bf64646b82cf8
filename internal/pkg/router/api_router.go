package router

import (
	"net"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/storage/redis"

	"github.com/sahanperera/lankatrails/app/controllers"
	"github.com/sahanperera/lankatrails/internal/pkg/cache"
	"github.com/sahanperera/lankatrails/internal/pkg/env"
	"github.com/sahanperera/lankatrails/internal/pkg/middleware"
)

type ApiRouter struct {
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group("/api", limiter.New(limiter.Config{
		Max:        120,
		Expiration: 1 * time.Minute,
		Storage:    newLimiterStorage(),
	}))
	api.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "LankaTrails API",
		})
	})

	// API v1 routes
	v1 := api.Group("/v1")
	rc := controllers.GetRecommendationController()
	v1.Post("/recommendations", middleware.OptionalAuth, rc.HandlePostRecommendations)
	v1.Get("/travel-styles", rc.HandleGetTravelStyles)
	v1.Get("/start-locations", rc.HandleGetStartLocations)
	v1.Get("/budget-ranges", rc.HandleGetBudgetRanges)
	v1.Get("/locations", rc.HandleGetLocations)
	v1.Get("/combinations/:id", rc.HandleGetCombinationByID)
}

// newLimiterStorage backs the rate limiter with Redis so counters survive
// restarts and are shared between replicas. Database 1 keeps limiter keys
// apart from the lookup cache in database 0.
func newLimiterStorage() *redis.Storage {
	host := "localhost"
	port := 6379
	password := env.GetEnv("CACHE_PASSWORD", "")
	if client := cache.GetClient(); client != nil {
		if h, p, err := net.SplitHostPort(client.Options().Addr); err == nil {
			host = h
			if v, err := strconv.Atoi(p); err == nil {
				port = v
			}
		}
		if p := client.Options().Password; p != "" {
			password = p
		}
	}

	return redis.New(redis.Config{
		Host:     host,
		Port:     port,
		Password: password,
		Database: 1,
		Reset:    false,
	})
}
