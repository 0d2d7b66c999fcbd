package dto

import "placehub-backend/internal/models"

// ===== Requests =====

// CreateExperienceDTO is the metadata phase of the wizard. Rounds and
// materials arrive later through their own save endpoints.
type CreateExperienceDTO struct {
	CompanyName             string `json:"companyName" validate:"required"`
	RoleAppliedFor          string `json:"roleAppliedFor" validate:"required"`
	Batch                   string `json:"batch,omitempty" example:"2026"`
	Outcome                 string `json:"outcome" example:"selected"`
	DifficultyRating        int    `json:"difficultyRating,omitempty" example:"3"`
	OverallExperienceRating int    `json:"overallExperienceRating,omitempty" example:"4"`
	Package                 string `json:"package,omitempty" example:"12 LPA"`
	PlacementSeason         string `json:"placementSeason,omitempty" example:"on-campus"`
	InterviewMonth          string `json:"interviewMonth,omitempty" example:"January"`
	InterviewYear           int    `json:"interviewYear,omitempty" example:"2026"`
	PreparationTime         int    `json:"preparationTime,omitempty" example:"6"`
}

type SaveRoundsDTO struct {
	Rounds []models.Round `json:"rounds"`
}

type SaveMaterialsDTO struct {
	Materials []models.Material `json:"materials"`
}

// ===== Responses =====

type ExperienceResponse struct {
	Success    bool              `json:"success" example:"true"`
	Experience models.Experience `json:"experience"`
}

type DraftResponse struct {
	Success bool               `json:"success" example:"true"`
	Draft   *models.Experience `json:"draft"`
}

// ExperienceCard is the browse-list projection: full record minus the heavy
// arrays, plus their counts.
type ExperienceCard struct {
	ID                      string `json:"_id"`
	CompanyName             string `json:"companyName"`
	RoleAppliedFor          string `json:"roleAppliedFor"`
	Batch                   string `json:"batch,omitempty"`
	Outcome                 string `json:"outcome"`
	DifficultyRating        int    `json:"difficultyRating,omitempty"`
	OverallExperienceRating int    `json:"overallExperienceRating,omitempty"`
	RoundsCount             int    `json:"roundsCount"`
	MaterialsCount          int    `json:"materialsCount"`
	CreatedAt               string `json:"createdAt"`
}

type ExperienceListResponse struct {
	Success     bool             `json:"success" example:"true"`
	Experiences []ExperienceCard `json:"experiences"`
	Pagination  Pagination       `json:"pagination"`
}

type ExperienceOptionsResponse struct {
	Success   bool     `json:"success" example:"true"`
	Companies []string `json:"companies"`
	Roles     []string `json:"roles"`
}
