package dto

import "placehub-backend/internal/models"

type UpdateProfileDTO struct {
	FullName string `json:"fullName"`
	Branch   string `json:"branch,omitempty"`
	Batch    string `json:"batch,omitempty"`
}

type ProfileResponse struct {
	Success bool            `json:"success" example:"true"`
	Profile *models.Profile `json:"profile"`
}
