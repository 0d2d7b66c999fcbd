package dto

// ===== Requests =====
type SignupDTO struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginDTO struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type ForgotPasswordDTO struct {
	Email string `json:"email" validate:"required"`
}

type ResetPasswordDTO struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ===== Responses =====
type AuthUser struct {
	ID               string `json:"_id"`
	Email            string `json:"email"`
	ProfileCompleted bool   `json:"profileCompleted"`
}

type AuthResponse struct {
	Success bool     `json:"success" example:"true"`
	Token   string   `json:"token"`
	User    AuthUser `json:"user"`
}

type MessageResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message"`
}
