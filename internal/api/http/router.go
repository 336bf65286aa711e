package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kolnlaviste/HireLink/internal/api/http/handlers"
	"github.com/kolnlaviste/HireLink/internal/auth"
	"github.com/kolnlaviste/HireLink/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Companies      *handlers.CompaniesHandler
	Jobs           *handlers.JobsHandler
	Applications   *handlers.ApplicationsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes. Every mutating route passes through
// the auth middleware; role sets are declared here, ownership checks run
// in the services.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	users := api.Group("/users")
	users.Post("/register", cfg.Users.Register)
	users.Post("/login", cfg.Users.Login)
	users.Get("/me", cfg.AuthMiddleware.Handle, auth.RequireRole(), cfg.Users.Me)
	users.Get("/", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleAdmin), cfg.Users.List)
	users.Get("/:id", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleAdmin), cfg.Users.Get)

	companies := api.Group("/companies")
	companies.Get("/", cfg.Companies.List)
	companies.Get("/:id", cfg.Companies.Get)
	companies.Post("/", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleEmployer, domain.RoleAdmin), cfg.Companies.Create)
	companies.Put("/:id", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleEmployer, domain.RoleAdmin), cfg.Companies.Update)
	companies.Delete("/:id", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleEmployer, domain.RoleAdmin), cfg.Companies.Delete)

	jobs := api.Group("/jobs")
	jobs.Get("/", cfg.Jobs.List)
	jobs.Get("/:id", cfg.Jobs.Get)
	jobs.Post("/", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleEmployer, domain.RoleAdmin), cfg.Jobs.Create)
	jobs.Put("/:id", cfg.AuthMiddleware.Handle, auth.RequireRole(), cfg.Jobs.Update)
	jobs.Delete("/:id", cfg.AuthMiddleware.Handle, auth.RequireRole(), cfg.Jobs.Delete)

	applications := api.Group("/applications", cfg.AuthMiddleware.Handle)
	applications.Get("/", auth.RequireRole(), cfg.Applications.List)
	applications.Get("/:id", auth.RequireRole(), cfg.Applications.Get)
	applications.Post("/", auth.RequireRole(domain.RoleJobseeker), cfg.Applications.Create)
	applications.Put("/:id", auth.RequireRole(domain.RoleEmployer, domain.RoleAdmin), cfg.Applications.UpdateStatus)
	applications.Delete("/:id", auth.RequireRole(), cfg.Applications.Delete)
}
