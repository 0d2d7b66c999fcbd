// @title PlaceHub API
// @version 1.0
// @description Campus placement portal: crowd-sourced opportunities and interview experiences.
// @host localhost:8000
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"

	"placehub-backend/bootstrap"
	"placehub-backend/config"
	"placehub-backend/database"
	_ "placehub-backend/docs"
	"placehub-backend/dto"
	"placehub-backend/internal/middleware"
	"placehub-backend/internal/repository"
	"placehub-backend/internal/routes"
	"placehub-backend/internal/services"
)

func main() {
	cfg := config.LoadConfig()
	if cfg.JWTSecret == "" {
		panic("JWT_SECRET is required")
	}

	client := database.ConnectMongo(cfg.MongoURI)
	defer database.DisconnectMongo(client)

	db := client.Database(cfg.MongoDB)
	log.Printf("connected to MongoDB database %q", cfg.MongoDB)

	// Text indexes back the search query params; listing breaks without them.
	if err := bootstrap.EnsureIndexes(db); err != nil {
		log.Fatalf("ensure indexes failed: %v", err)
	}

	app := fiber.New(fiber.Config{
		// Keep the {success, message} envelope on fiber.NewError paths too.
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			msg := "Something went wrong."
			var fe *fiber.Error
			if errors.As(err, &fe) {
				code = fe.Code
				msg = fe.Message
			} else {
				log.Printf("unhandled error: %v", err)
			}
			return c.Status(code).JSON(dto.Error(msg))
		},
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	app.Get("/docs/*", swagger.HandlerDefault)
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })

	app.Use(middleware.JWTUidOnly(cfg.JWTSecret))

	opps := repository.NewMongoOpportunityRepo(db)
	identities := repository.NewMongoIdentityRepo(db)
	exps := repository.NewMongoExperienceRepo(db)
	users := repository.NewMongoUserRepo(db)
	auth := services.NewAuthService(users, cfg.JWTSecret)

	routes.SetupAuthRoutes(app, auth)
	routes.SetupProfileRoutes(app, users)
	routes.SetupOpportunityRoutes(app, opps, identities)
	routes.SetupExperienceRoutes(app, exps)

	log.Printf("listening at http://localhost:%s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
