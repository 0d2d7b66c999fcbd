package dto

// ===== Error Response =====
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message" example:"invalid body"`
}

func Error(msg string) ErrorResponse {
	return ErrorResponse{Success: false, Message: msg}
}

// ===== Pagination block =====
type Pagination struct {
	Page  int64 `json:"page" example:"1"`
	Limit int64 `json:"limit" example:"9"`
	Total int64 `json:"total" example:"42"`
	Pages int64 `json:"pages" example:"5"`
}
