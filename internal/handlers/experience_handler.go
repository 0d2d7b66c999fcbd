package handlers

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"placehub-backend/dto"
	"placehub-backend/internal/middleware"
	"placehub-backend/internal/models"
	"placehub-backend/internal/repository"
	"placehub-backend/internal/services"
)

// POST /api/experiences

// CreateExperienceHandler godoc
// @Summary      Start an experience draft (metadata phase)
// @Tags         experiences
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        data  body  dto.CreateExperienceDTO  true  "Metadata payload"
// @Success      201  {object}  dto.ExperienceResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/experiences [post]
func CreateExperienceHandler(exps repository.ExperienceRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := middleware.UIDObjectID(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Error("Unauthorized"))
		}

		var body dto.CreateExperienceDTO
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Error("invalid body"))
		}

		exp := &models.Experience{
			UserID:                  userID,
			CompanyName:             body.CompanyName,
			RoleAppliedFor:          body.RoleAppliedFor,
			Batch:                   body.Batch,
			Outcome:                 body.Outcome,
			DifficultyRating:        body.DifficultyRating,
			OverallExperienceRating: body.OverallExperienceRating,
			Package:                 body.Package,
			PlacementSeason:         body.PlacementSeason,
			InterviewMonth:          body.InterviewMonth,
			InterviewYear:           body.InterviewYear,
			PreparationTime:         body.PreparationTime,
			Status:                  "draft",
		}
		if exp.Outcome == "" {
			exp.Outcome = "in-process"
		}
		if msg := services.ValidateCreateExperience(exp); msg != "" {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Error(msg))
		}

		created, err := exps.Insert(c.Context(), exp)
		if err != nil {
			log.Printf("create experience: %v", err)
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.Error("Unable to save experience."))
		}

		return c.Status(fiber.StatusCreated).
			JSON(dto.ExperienceResponse{Success: true, Experience: *created})
	}
}

// PUT /api/experiences/:id/rounds

// SaveRoundsHandler godoc
// @Summary      Save the rounds phase
// @Description  Idempotent overwrite; serves both autosave and manual save
// @Tags         experiences
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string             true  "Experience ID (hex)"
// @Param        data  body  dto.SaveRoundsDTO  true  "Rounds payload"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/experiences/{id}/rounds [put]
func SaveRoundsHandler(exps repository.ExperienceRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := middleware.UIDObjectID(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Error("Unauthorized"))
		}
		id, err := bson.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Error("invalid experience id"))
		}

		var body dto.SaveRoundsDTO
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Error("invalid body"))
		}
		if msg := services.ValidateRounds(body.Rounds); msg != "" {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Error(msg))
		}

		if err := exps.ReplaceRounds(c.Context(), id, userID, body.Rounds); err != nil {
			return phaseWriteError(c, err, "rounds")
		}
		return c.JSON(dto.MessageResponse{Success: true, Message: "Rounds saved"})
	}
}

// PUT /api/experiences/:id/materials

// SaveMaterialsHandler godoc
// @Summary      Save the materials phase
// @Tags         experiences
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                true  "Experience ID (hex)"
// @Param        data  body  dto.SaveMaterialsDTO  true  "Materials payload"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/experiences/{id}/materials [put]
func SaveMaterialsHandler(exps repository.ExperienceRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := middleware.UIDObjectID(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Error("Unauthorized"))
		}
		id, err := bson.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Error("invalid experience id"))
		}

		var body dto.SaveMaterialsDTO
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Error("invalid body"))
		}

		if err := exps.ReplaceMaterials(c.Context(), id, userID, body.Materials); err != nil {
			return phaseWriteError(c, err, "materials")
		}
		return c.JSON(dto.MessageResponse{Success: true, Message: "Materials saved"})
	}
}

// POST /api/experiences/:id/submit

// SubmitExperienceHandler godoc
// @Summary      Submit a draft for moderation
// @Description  One-way transition draft -> pending; there is no unsubmit
// @Tags         experiences
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Experience ID (hex)"
// @Success      200  {object}  dto.MessageResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/experiences/{id}/submit [post]
func SubmitExperienceHandler(exps repository.ExperienceRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := middleware.UIDObjectID(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Error("Unauthorized"))
		}
		id, err := bson.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Error("invalid experience id"))
		}

		err = exps.Submit(c.Context(), id, userID)
		switch {
		case errors.Is(err, repository.ErrNotDraft):
			return c.Status(fiber.StatusConflict).
				JSON(dto.Error("Experience has already been submitted."))
		case errors.Is(err, repository.ErrNotOwner):
			return c.Status(fiber.StatusNotFound).
				JSON(dto.Error("Experience not found"))
		case err != nil:
			log.Printf("submit experience: %v", err)
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.Error("Unable to submit experience."))
		}

		return c.JSON(dto.MessageResponse{Success: true, Message: "Experience submitted for review"})
	}
}

// GET /api/experiences/draft

// GetDraftHandler godoc
// @Summary      Recover the caller's most recent unfinished draft
// @Tags         experiences
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.DraftResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/experiences/draft [get]
func GetDraftHandler(exps repository.ExperienceRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := middleware.UIDObjectID(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Error("Unauthorized"))
		}

		draft, err := exps.LatestDraft(c.Context(), userID)
		if err != nil {
			log.Printf("latest draft: %v", err)
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.Error("Unable to load draft."))
		}
		return c.JSON(dto.DraftResponse{Success: true, Draft: draft})
	}
}

// GET /api/experiences

// BrowseExperiencesHandler godoc
// @Summary      Browse approved experiences
// @Tags         experiences
// @Produce      json
// @Param        page        query  int     false  "Page (default 1)"
// @Param        limit       query  int     false  "Page size (default 9, max 24)"
// @Param        batch       query  string  false  "CSV of batches"
// @Param        company     query  string  false  "CSV of company names"
// @Param        outcome     query  string  false  "CSV of outcomes"
// @Param        difficulty  query  int     false  "Exact difficulty rating 1-5"
// @Param        search      query  string  false  "Full-text search"
// @Success      200  {object}  dto.ExperienceListResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/experiences [get]
func BrowseExperiencesHandler(exps repository.ExperienceRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := services.ParseExperienceQuery(c.Queries())
		filter := services.BuildExperienceFilter(q)

		items, err := exps.Browse(c.Context(), filter, (q.Page-1)*q.Limit, q.Limit)
		if err != nil {
			log.Printf("browse experiences: %v", err)
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.Error("Unable to load experiences right now."))
		}
		total, err := exps.Count(c.Context(), filter)
		if err != nil {
			log.Printf("count experiences: %v", err)
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.Error("Unable to load experiences right now."))
		}

		cards := make([]dto.ExperienceCard, 0, len(items))
		for _, exp := range items {
			cards = append(cards, dto.ExperienceCard{
				ID:                      exp.ID.Hex(),
				CompanyName:             exp.CompanyName,
				RoleAppliedFor:          exp.RoleAppliedFor,
				Batch:                   exp.Batch,
				Outcome:                 exp.Outcome,
				DifficultyRating:        exp.DifficultyRating,
				OverallExperienceRating: exp.OverallExperienceRating,
				RoundsCount:             len(exp.Rounds),
				MaterialsCount:          len(exp.Materials),
				CreatedAt:               exp.CreatedAt.UTC().Format(time.RFC3339),
			})
		}

		return c.JSON(dto.ExperienceListResponse{
			Success:     true,
			Experiences: cards,
			Pagination: dto.Pagination{
				Page:  q.Page,
				Limit: q.Limit,
				Total: total,
				Pages: services.Pages(total, q.Limit),
			},
		})
	}
}

// GET /api/experiences/options

// ExperienceOptionsHandler godoc
// @Summary      Distinct companies and roles across approved experiences
// @Tags         experiences
// @Produce      json
// @Success      200  {object}  dto.ExperienceOptionsResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/experiences/options [get]
func ExperienceOptionsHandler(exps repository.ExperienceRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		approved := bson.M{"status": "approved"}

		companies, err := exps.Distinct(c.Context(), "companyName", approved)
		if err != nil {
			log.Printf("experience options: %v", err)
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.Error("Unable to load options."))
		}
		roles, err := exps.Distinct(c.Context(), "roleAppliedFor", approved)
		if err != nil {
			log.Printf("experience options: %v", err)
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.Error("Unable to load options."))
		}

		return c.JSON(dto.ExperienceOptionsResponse{
			Success:   true,
			Companies: companies,
			Roles:     roles,
		})
	}
}

// GET /api/experiences/:id

// GetExperienceHandler godoc
// @Summary      Get one experience
// @Tags         experiences
// @Produce      json
// @Param        id  path  string  true  "Experience ID (hex)"
// @Success      200  {object}  dto.ExperienceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/experiences/{id} [get]
func GetExperienceHandler(exps repository.ExperienceRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := bson.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(dto.Error("Experience not found"))
		}

		exp, err := exps.FindByID(c.Context(), id)
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Error("Experience not found"))
		}
		if err != nil {
			log.Printf("get experience: %v", err)
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.Error("Unable to load experience."))
		}

		return c.JSON(dto.ExperienceResponse{Success: true, Experience: *exp})
	}
}

func phaseWriteError(c *fiber.Ctx, err error, phase string) error {
	if errors.Is(err, repository.ErrNotOwner) {
		return c.Status(fiber.StatusNotFound).JSON(dto.Error("Experience not found"))
	}
	log.Printf("save %s: %v", phase, err)
	return c.Status(fiber.StatusInternalServerError).
		JSON(dto.Error("Failed to save " + phase))
}
