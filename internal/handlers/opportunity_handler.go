package handlers

import (
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

// GET /api/opportunities

// ListOpportunitiesHandler godoc
// @Summary      List opportunities
// @Description  Filtered, sorted, paginated listing plus a stats facet over all active records
// @Tags         opportunities
// @Produce      json
// @Param        page          query  int     false  "Page (default 1)"
// @Param        limit         query  int     false  "Page size (default 9, max 24)"
// @Param        sortBy        query  string  false  "recent or closingSoon"
// @Param        category      query  string  false  "Category ('All' = no filter)"
// @Param        type          query  string  false  "Opportunity type ('all' = no filter)"
// @Param        locationType  query  string  false  "Location type ('all' = no filter)"
// @Param        experience    query  string  false  "Experience level ('all' = no filter)"
// @Param        company       query  string  false  "Exact company name"
// @Param        status        query  string  false  "Overrides the default active-only filter"
// @Param        search        query  string  false  "Full-text search"
// @Success      200  {object}  dto.OpportunityListResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/opportunities [get]
func ListOpportunitiesHandler(opps repository.OpportunityRepository, identities repository.IdentityRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := services.ParseOpportunityQuery(c.Queries())
		filter := services.BuildOpportunityFilter(q)
		sort := services.SortFor(q.SortBy)

		ctx := c.Context()

		items, err := opps.List(ctx, filter, sort, (q.Page-1)*q.Limit, q.Limit)
		if err != nil {
			log.Printf("list opportunities: %v", err)
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.Error("Unable to load opportunities right now."))
		}

		total, err := opps.Count(ctx, filter)
		if err != nil {
			log.Printf("count opportunities: %v", err)
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.Error("Unable to load opportunities right now."))
		}

		stats, err := opps.Stats(ctx)
		if err != nil {
			log.Printf("opportunity stats: %v", err)
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.Error("Unable to load opportunities right now."))
		}

		services.ResolvePostedByNames(ctx, identities, items)

		return c.JSON(dto.OpportunityListResponse{
			Success:       true,
			Opportunities: items,
			Pagination: dto.Pagination{
				Page:  q.Page,
				Limit: q.Limit,
				Total: total,
				Pages: services.Pages(total, q.Limit),
			},
			Stats: stats,
		})
	}
}

// GET /api/opportunities/filters

// OpportunityFiltersHandler godoc
// @Summary      Distinct filter option values
// @Tags         opportunities
// @Produce      json
// @Success      200  {object}  dto.OpportunityFiltersResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/opportunities/filters [get]
func OpportunityFiltersHandler(opps repository.OpportunityRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.Context()

		// Categories and companies come from active records only; the other
		// dimensions from any record carrying a status field. The asymmetry
		// mirrors what the filter chips have always shown.
		activeOnly := bson.M{"status": "active"}
		hasStatus := bson.M{"status": bson.M{"$exists": true}}

		filters := dto.OpportunityFilters{}
		dims := []struct {
			dest   *[]string
			field  string
			filter bson.M
		}{
			{&filters.Categories, "category", activeOnly},
			{&filters.Companies, "companyName", activeOnly},
			{&filters.Types, "opportunityType", hasStatus},
			{&filters.LocationTypes, "locationType", hasStatus},
			{&filters.ExperienceLevels, "experienceLevel", hasStatus},
		}
		for _, d := range dims {
			values, err := opps.Distinct(ctx, d.field, d.filter)
			if err != nil {
				log.Printf("opportunity filters (%s): %v", d.field, err)
				return c.Status(fiber.StatusInternalServerError).
					JSON(dto.Error("Unable to load filters."))
			}
			*d.dest = values
		}

		return c.JSON(dto.OpportunityFiltersResponse{Success: true, Filters: filters})
	}
}

// GET /api/opportunities/:id

// GetOpportunityHandler godoc
// @Summary      Get one opportunity
// @Description  No status gate: draft and closed records stay fetchable by id
// @Tags         opportunities
// @Produce      json
// @Param        id  path  string  true  "Opportunity ID (hex)"
// @Success      200  {object}  dto.OpportunityResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/opportunities/{id} [get]
func GetOpportunityHandler(opps repository.OpportunityRepository, identities repository.IdentityRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := bson.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusNotFound).
				JSON(dto.Error("Opportunity not found"))
		}

		opp, err := opps.FindByID(c.Context(), id)
		if err == repository.ErrNotFound {
			return c.Status(fiber.StatusNotFound).
				JSON(dto.Error("Opportunity not found"))
		}
		if err != nil {
			log.Printf("get opportunity: %v", err)
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.Error("Unable to load opportunity."))
		}

		if opp.PostedByName == "" && !opp.PostedBy.IsZero() {
			opp.PostedByName = services.ResolveSingleName(c.Context(), identities, opp.PostedBy)
		}

		return c.JSON(dto.OpportunityResponse{Success: true, Opportunity: *opp})
	}
}

// POST /api/opportunities

// CreateOpportunityHandler godoc
// @Summary      Create an opportunity
// @Tags         opportunities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        data  body  dto.CreateOpportunityDTO  true  "Opportunity payload"
// @Success      201  {object}  dto.OpportunityResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/opportunities [post]
func CreateOpportunityHandler(opps repository.OpportunityRepository, identities repository.IdentityRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := middleware.UIDObjectID(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).
				JSON(dto.Error("Unauthorized"))
		}

		var body dto.CreateOpportunityDTO
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.Error("invalid body"))
		}

		opp := opportunityFromDTO(body)
		if msg := services.ValidateCreateOpportunity(opp); msg != "" {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Error(msg))
		}

		// Stamp the display name eagerly so reads never pay the lookup.
		opp.PostedBy = userID
		opp.PostedByName = services.ResolveSingleName(c.Context(), identities, userID)

		created, err := opps.Insert(c.Context(), opp)
		if err != nil {
			log.Printf("create opportunity: %v", err)
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.Error("Unable to create opportunity."))
		}

		return c.Status(fiber.StatusCreated).
			JSON(dto.OpportunityResponse{Success: true, Opportunity: *created})
	}
}

func opportunityFromDTO(body dto.CreateOpportunityDTO) *models.Opportunity {
	opp := &models.Opportunity{
		Title:            body.Title,
		CompanyName:      body.CompanyName,
		Category:         body.Category,
		OpportunityType:  body.OpportunityType,
		ExperienceLevel:  body.ExperienceLevel,
		Location:         body.Location,
		LocationType:     body.LocationType,
		ApplicationURL:   body.ApplicationURL,
		Skills:           body.Skills,
		Responsibilities: body.Responsibilities,
		Perks:            body.Perks,
		Status:           body.Status,
		Source:           body.Source,
	}
	if opp.Category == "" {
		opp.Category = "Others"
	}
	if opp.OpportunityType == "" {
		opp.OpportunityType = "internship"
	}
	if opp.ExperienceLevel == "" {
		opp.ExperienceLevel = "fresher"
	}
	if opp.LocationType == "" {
		opp.LocationType = "hybrid"
	}
	if opp.Status == "" {
		opp.Status = "active"
	}
	if opp.Skills == nil {
		opp.Skills = []string{}
	}
	if opp.Perks == nil {
		opp.Perks = []string{}
	}
	if body.Deadline != "" {
		for _, layout := range []string{time.RFC3339, "2006-01-02"} {
			if t, err := time.Parse(layout, body.Deadline); err == nil {
				opp.Deadline = &t
				break
			}
		}
	}
	return opp
}
