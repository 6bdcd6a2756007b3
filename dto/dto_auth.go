package dto

import "github.com/rutamk/dsr-final/internal/models"

// ===== Request =====
type LoginRequest struct {
	Email    string `json:"email" example:"ananya.k@vit.edu.in"`
	Password string `json:"password"`
}

type CreateAccountRequest struct {
	FullName    string                   `json:"fullName"`
	Email       string                   `json:"email"`
	Password    string                   `json:"password"`
	Role        string                   `json:"role" example:"Admin"`
	Departments []models.ScopeDepartment `json:"departments"`
}

// ===== Success Response =====
type LoginResponse struct {
	Error       bool   `json:"error"`
	Message     string `json:"message" example:"Login Successfull"`
	Email       string `json:"email"`
	AccessToken string `json:"accessToken"`
}

type CreateAccountResponse struct {
	Error       bool        `json:"error"`
	User        models.User `json:"user"`
	AccessToken string      `json:"accessToken"`
	Message     string      `json:"message" example:"Registration Successful"`
}

type UserResponse struct {
	User models.User `json:"user"`
}
