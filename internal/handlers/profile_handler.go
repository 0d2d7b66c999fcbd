package handlers

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"placehub-backend/dto"
	"placehub-backend/internal/middleware"
	"placehub-backend/internal/models"
	"placehub-backend/internal/repository"
)

// GET /api/profile/me

// GetMyProfileHandler godoc
// @Summary      Get the caller's profile
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.ProfileResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/profile/me [get]
func GetMyProfileHandler(users repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := middleware.UIDObjectID(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Error("Unauthorized"))
		}

		profile, err := users.GetProfile(c.Context(), userID)
		if err != nil {
			log.Printf("get profile: %v", err)
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.Error("Unable to load profile."))
		}
		return c.JSON(dto.ProfileResponse{Success: true, Profile: profile})
	}
}

// PUT /api/profile/me

// UpdateMyProfileHandler godoc
// @Summary      Create or update the caller's profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        data  body  dto.UpdateProfileDTO  true  "Profile fields"
// @Success      200  {object}  dto.ProfileResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/profile/me [put]
func UpdateMyProfileHandler(users repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := middleware.UIDObjectID(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Error("Unauthorized"))
		}

		var body dto.UpdateProfileDTO
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Error("invalid body"))
		}

		saved, err := users.UpsertProfile(c.Context(), &models.Profile{
			UserID:   userID,
			FullName: strings.TrimSpace(body.FullName),
			Branch:   body.Branch,
			Batch:    body.Batch,
		})
		if err != nil {
			log.Printf("upsert profile: %v", err)
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.Error("Unable to save profile."))
		}

		if saved.FullName != "" {
			if err := users.SetProfileCompleted(c.Context(), userID, true); err != nil {
				log.Printf("mark profile completed: %v", err)
			}
		}

		return c.JSON(dto.ProfileResponse{Success: true, Profile: saved})
	}
}
