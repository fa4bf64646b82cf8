package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sahanperera/lankatrails/app/controllers"
	"github.com/sahanperera/lankatrails/internal/pkg/middleware"
)

type HttpRouter struct {
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	controllers.InitializeRecommendationController()
	controllers.InitializeAdminLocationController()
	controllers.InitializeAdminUserController()

	h.registerAuthRoutes(app)
	h.registerUserRoutes(app)
	h.registerAdminRoutes(app)
}

func (h HttpRouter) registerAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")
	auth.Post("/register", controllers.HandleAuthRegister)
	auth.Post("/login", controllers.HandleAuthLogin)
	auth.Post("/refresh", controllers.HandleAuthRefresh)
	auth.Post("/logout", middleware.RequireAuth, controllers.HandleAuthLogout)
	auth.Post("/logout-all", middleware.RequireAuth, controllers.HandleAuthLogoutAll)
	auth.Post("/change-password", middleware.RequireAuth, controllers.HandleAuthChangePassword)
	auth.Get("/me", middleware.RequireAuth, controllers.HandleAuthMe)
}

func (h HttpRouter) registerUserRoutes(app *fiber.App) {
	users := app.Group("/users", middleware.RequireAuth)
	users.Get("/me", controllers.HandleGetProfile)
	users.Put("/me", controllers.HandleUpdateProfile)
	users.Delete("/me", controllers.HandleDeleteAccount)
	users.Get("/me/preferences", controllers.HandleGetPreferences)
	users.Put("/me/preferences", controllers.HandleUpdatePreferences)
	users.Get("/me/saved-itineraries", controllers.HandleGetSavedItineraries)
	users.Post("/me/saved-itineraries", controllers.HandleSaveItinerary)
	users.Patch("/me/saved-itineraries/:id", controllers.HandleUpdateSavedItinerary)
	users.Delete("/me/saved-itineraries/:id", controllers.HandleDeleteSavedItinerary)
}

func (h HttpRouter) registerAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.RequireAdmin)

	userController := controllers.GetAdminUserController()
	adminGroup.Get("/users", userController.HandleListUsers)
	adminGroup.Get("/stats", userController.HandleGetStats)

	locationController := controllers.GetAdminLocationController()
	locations := adminGroup.Group("/locations")
	locations.Get("/", locationController.HandleListLocations)
	locations.Post("/", locationController.HandleCreateLocation)
	// Static segments before the :id wildcard.
	locations.Get("/categories", locationController.HandleGetCategories)
	locations.Get("/districts", locationController.HandleGetDistricts)
	locations.Get("/:id", locationController.HandleGetLocation)
	locations.Patch("/:id", locationController.HandleUpdateLocation)
	locations.Delete("/:id", locationController.HandleDeleteLocation)
}
