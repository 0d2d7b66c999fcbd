package dto

import "placehub-backend/internal/models"

// ===== Request =====
type CreateOpportunityDTO struct {
	Title            string   `json:"title" validate:"required"`
	CompanyName      string   `json:"companyName" validate:"required"`
	Category         string   `json:"category" example:"Software"`
	OpportunityType  string   `json:"opportunityType" example:"internship"`
	ExperienceLevel  string   `json:"experienceLevel" example:"fresher"`
	Location         string   `json:"location,omitempty"`
	LocationType     string   `json:"locationType" example:"hybrid"`
	ApplicationURL   string   `json:"applicationUrl,omitempty"`
	Deadline         string   `json:"deadline,omitempty" example:"2026-10-15"`
	Skills           []string `json:"skills,omitempty"`
	Responsibilities string   `json:"responsibilities,omitempty"`
	Perks            []string `json:"perks,omitempty"`
	Status           string   `json:"status,omitempty" example:"active"`
	Source           string   `json:"source,omitempty"`
}

// ===== Responses =====
type OpportunityListResponse struct {
	Success       bool                    `json:"success" example:"true"`
	Opportunities []models.Opportunity    `json:"opportunities"`
	Pagination    Pagination              `json:"pagination"`
	Stats         models.OpportunityStats `json:"stats"`
}

type OpportunityResponse struct {
	Success     bool               `json:"success" example:"true"`
	Opportunity models.Opportunity `json:"opportunity"`
}

type OpportunityFilters struct {
	Categories       []string `json:"categories"`
	Companies        []string `json:"companies"`
	Types            []string `json:"types"`
	LocationTypes    []string `json:"locationTypes"`
	ExperienceLevels []string `json:"experienceLevels"`
}

type OpportunityFiltersResponse struct {
	Success bool               `json:"success" example:"true"`
	Filters OpportunityFilters `json:"filters"`
}
