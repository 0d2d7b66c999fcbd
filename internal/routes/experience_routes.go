package routes

import (
	"github.com/gofiber/fiber/v2"

	"placehub-backend/internal/handlers"
	"placehub-backend/internal/middleware"
	"placehub-backend/internal/repository"
)

func SetupExperienceRoutes(app *fiber.App, exps repository.ExperienceRepository) {
	group := app.Group("/api/experiences")

	// Fixed paths before /:id.
	group.Get("/options", handlers.ExperienceOptionsHandler(exps))
	group.Get("/draft", middleware.RequireAuth(), handlers.GetDraftHandler(exps))

	group.Get("/", handlers.BrowseExperiencesHandler(exps))
	group.Get("/:id", handlers.GetExperienceHandler(exps))

	group.Post("/", middleware.RequireAuth(), handlers.CreateExperienceHandler(exps))
	group.Put("/:id/rounds", middleware.RequireAuth(), handlers.SaveRoundsHandler(exps))
	group.Put("/:id/materials", middleware.RequireAuth(), handlers.SaveMaterialsHandler(exps))
	group.Post("/:id/submit", middleware.RequireAuth(), handlers.SubmitExperienceHandler(exps))
}
