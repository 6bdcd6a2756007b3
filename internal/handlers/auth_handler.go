package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/rutamk/dsr-final/dto"
	"github.com/rutamk/dsr-final/internal/middleware"
	"github.com/rutamk/dsr-final/internal/models"
	"github.com/rutamk/dsr-final/internal/repository"
	"github.com/rutamk/dsr-final/internal/services"
)

// CreateAccountHandler godoc
// @Summary      Create an account
// @Description  Register a user and return an access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        data  body      dto.CreateAccountRequest  true  "Account payload"
// @Success      200   {object}  dto.CreateAccountResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /create-account [post]
func CreateAccountHandler(db *mongo.Database, secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.CreateAccountRequest
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Error: true, Message: "invalid body"})
		}

		// field checks in the order the form presents them
		if body.FullName == "" {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Error: true, Message: "Full Name is required"})
		}
		if body.Email == "" {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Error: true, Message: "Email is required"})
		}
		if body.Password == "" {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Error: true, Message: "Password is required"})
		}
		if body.Role == "" {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Error: true, Message: "Role is required"})
		}
		if !models.ValidRole(body.Role) {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Error: true, Message: "Invalid role"})
		}
		if len(body.Departments) == 0 {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Error: true, Message: "Department is required"})
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		hash, err := services.HashPassword(body.Password)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Error: true, Message: "Internal Server Error"})
		}
		user := models.User{
			FullName:     body.FullName,
			Email:        body.Email,
			PasswordHash: hash,
			Role:         body.Role,
			Departments:  body.Departments,
		}

		id, err := repository.InsertUser(ctx, db, user)
		if err != nil {
			if repository.IsDuplicateKey(err) {
				return c.JSON(dto.ErrorResponse{Error: true, Message: "User already exists"})
			}
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Error: true, Message: "Internal Server Error"})
		}
		user.ID = id

		token, err := services.IssueToken(user, secret)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Error: true, Message: "Internal Server Error"})
		}

		return c.JSON(dto.CreateAccountResponse{
			User:        user,
			AccessToken: token,
			Message:     "Registration Successful",
		})
	}
}

// LoginHandler godoc
// @Summary      Log in
// @Description  Exchange email and password for an access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        data  body      dto.LoginRequest  true  "Credentials"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /login [post]
func LoginHandler(db *mongo.Database, secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Error: true, Message: "invalid body"})
		}
		if body.Email == "" {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Message: "Email is required"})
		}
		if body.Password == "" {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Message: "Password is required"})
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		user, err := services.Authenticate(ctx, db, body.Email, body.Password)
		if err != nil {
			// same message for unknown email and wrong password
			if errors.Is(err, services.ErrInvalidCredentials) {
				return c.Status(fiber.StatusBadRequest).
					JSON(dto.ErrorResponse{Error: true, Message: "Invalid Credentials"})
			}
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Error: true, Message: "Internal Server Error"})
		}

		token, err := services.IssueToken(user, secret)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Error: true, Message: "Could not sign token"})
		}

		return c.JSON(dto.LoginResponse{
			Message:     "Login Successfull",
			Email:       user.Email,
			AccessToken: token,
		})
	}
}

// GetUserHandler godoc
// @Summary      Get the current user
// @Description  Return the viewer resolved from the store for this request
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.UserResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /get-user [get]
func GetUserHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		viewer, ok := middleware.ViewerFromLocals(c)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
		}
		viewer.PasswordHash = ""
		return c.JSON(dto.UserResponse{User: viewer})
	}
}
