package routes

import (
	"github.com/gofiber/fiber/v2"

	"placehub-backend/internal/handlers"
	"placehub-backend/internal/middleware"
	"placehub-backend/internal/repository"
	"placehub-backend/internal/services"
)

func SetupAuthRoutes(app *fiber.App, auth *services.AuthService) {
	group := app.Group("/api/auth")

	group.Post("/signup", handlers.SignupHandler(auth))
	group.Post("/login", handlers.LoginHandler(auth))
	group.Post("/forgot-password", handlers.ForgotPasswordHandler(auth))
	group.Get("/reset-password/:token", handlers.VerifyResetTokenHandler(auth))
	group.Post("/reset-password", handlers.ResetPasswordHandler(auth))
}

func SetupProfileRoutes(app *fiber.App, users repository.UserRepository) {
	group := app.Group("/api/profile", middleware.RequireAuth())

	group.Get("/me", handlers.GetMyProfileHandler(users))
	group.Put("/me", handlers.UpdateMyProfileHandler(users))
}
