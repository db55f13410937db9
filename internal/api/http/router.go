package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/workout-service/internal/api/http/handlers"
	"github.com/spec-kit/workout-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Workouts       *handlers.WorkoutsHandler
	Activity       *handlers.ActivityHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes. Admin routes live inside the
// authenticated group so RequireAdmin can never be registered without
// Authenticate running first.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	users := app.Group("/users")
	users.Post("/register", cfg.Users.Register)
	users.Post("/login", cfg.Users.Login)

	usersAuthed := users.Group("", cfg.AuthMiddleware.Authenticate)
	usersAuthed.Get("/details", cfg.Users.Profile)
	usersAuthed.Patch("/update-password", cfg.Users.UpdatePassword)
	usersAuthed.Patch("/:id/set-as-admin", auth.RequireAdmin(), cfg.Users.SetAsAdmin)

	if cfg.Activity != nil {
		activity := app.Group("/activity", cfg.AuthMiddleware.Authenticate, auth.RequireAdmin())
		activity.Get("/recent", cfg.Activity.Recent)
	}

	workouts := app.Group("/workouts")
	workouts.Get("/active", cfg.Workouts.ListActive)
	workouts.Post("/search-by-name", cfg.Workouts.SearchByName)
	workouts.Post("/search-by-price", cfg.Workouts.SearchByPrice)

	// Authenticate is attached per route here: a prefix-wide group
	// would also run it for the public /:id below.
	workouts.Post("/addWorkout", cfg.AuthMiddleware.Authenticate, cfg.Workouts.Add)
	workouts.Get("/getMyWorkouts", cfg.AuthMiddleware.Authenticate, cfg.Workouts.ListMine)
	workouts.Patch("/updateWorkout/:id", cfg.AuthMiddleware.Authenticate, cfg.Workouts.Update)
	workouts.Delete("/deleteWorkout/:id", cfg.AuthMiddleware.Authenticate, cfg.Workouts.Delete)
	workouts.Patch("/completeWorkoutStatus/:id", cfg.AuthMiddleware.Authenticate, cfg.Workouts.CompleteStatus)

	// Registered last and token-free: a bare :id must not shadow the
	// fixed paths above.
	workouts.Get("/:id", cfg.Workouts.Get)
}
