package routes

import (
	"github.com/gofiber/fiber/v2"

	"placehub-backend/internal/handlers"
	"placehub-backend/internal/middleware"
	"placehub-backend/internal/repository"
)

func SetupOpportunityRoutes(app *fiber.App, opps repository.OpportunityRepository, identities repository.IdentityRepository) {
	group := app.Group("/api/opportunities")

	// /filters must register before /:id or it gets captured as an id.
	group.Get("/filters", handlers.OpportunityFiltersHandler(opps))
	group.Get("/", handlers.ListOpportunitiesHandler(opps, identities))
	group.Get("/:id", handlers.GetOpportunityHandler(opps, identities))
	group.Post("/", middleware.RequireAuth(), handlers.CreateOpportunityHandler(opps, identities))
}
