package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/sahanperera/lankatrails/app/repository"
	"github.com/sahanperera/lankatrails/internal/pkg/cache"
	"github.com/sahanperera/lankatrails/internal/pkg/database"
	"github.com/sahanperera/lankatrails/internal/pkg/env"
	"github.com/sahanperera/lankatrails/internal/pkg/metrics/counter"
	"github.com/sahanperera/lankatrails/internal/pkg/router"
	"github.com/sahanperera/lankatrails/internal/pkg/security"
)

func main() {
	app := NewApplication()
	err := app.Listen(fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "localhost"), env.GetEnv("APP_PORT", "8000")))
	log.Fatal(err)
}

func NewApplication() *fiber.App {
	env.SetupEnvFile()
	database.SetupDatabase()
	cache.SetupCache()
	security.SetupTokenManager()
	repository.InitializeFactory(database.GetDB())

	// Define possible base paths
	basePaths := []string{
		"./",        // Current directory
		"../../",    // From cmd/lankatrails to project root
		"../../../", // Fallback
	}

	// Find the correct base path
	basePath := ""
	for _, path := range basePaths {
		if _, err := os.Stat(path + "public"); !os.IsNotExist(err) {
			basePath = path
			break
		}
	}

	if basePath == "" {
		panic("Could not find project root directory")
	}

	// init fiber app
	app := fiber.New(fiber.Config{
		AppName: "LankaTrails",
	})

	// recovery and logging
	app.Use(recover.New(), logger.New())

	// browser clients send the refresh cookie cross-origin
	app.Use(cors.New(cors.Config{
		AllowOrigins:     env.GetEnv("ALLOWED_ORIGINS", "http://localhost:3000"),
		AllowCredentials: true,
	}))

	// fiber metrics
	app.Get("/metrics", basicauth.New(basicauth.Config{
		Users: map[string]string{
			env.GetEnv("METRICS_USER", "admin"): env.GetEnv("METRICS_PASSWORD", "admin"),
		},
	}), monitor.New())

	// SWAGGER / OPENAPI
	openAPICfg := swagger.Config{
		BasePath: "/docs/api/",
		FilePath: basePath + "public/docs/v1/openapi.yml",
		Path:     "v1",
	}
	app.Use(swagger.New(openAPICfg))

	// health check
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "lankatrails",
		})
	})

	// ROUTER
	router.InstallRouter(app)

	// periodically persist pending combination view counters
	go flushCountersLoop()

	return app
}

func flushCountersLoop() {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		if err := counter.FlushAll(); err != nil {
			log.Printf("counter: flush failed: %v", err)
		}
	}
}
