package dto

// ===== Error Response =====
type ErrorResponse struct {
	Error   bool   `json:"error,omitempty" example:"true"`
	Message string `json:"message" example:"invalid body"`
}

type MessageResponse struct {
	Message string `json:"message" example:"ok"`
}
