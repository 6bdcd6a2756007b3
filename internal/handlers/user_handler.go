package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/rutamk/dsr-final/dto"
	"github.com/rutamk/dsr-final/internal/models"
	"github.com/rutamk/dsr-final/internal/repository"
	"github.com/rutamk/dsr-final/internal/services"
)

// GetAllUsersHandler godoc
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   models.User
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /get-all-users [get]
func GetAllUsersHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		users, err := repository.FetchUsers(ctx, db)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Message: "Server Error"})
		}
		if users == nil {
			users = []models.User{}
		}
		return c.JSON(users)
	}
}

// AddUserHandler godoc
// @Summary      Add a user
// @Description  Create a scoped user and mail the credentials; the mail is awaited in-request
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        data  body      dto.AddUserRequest  true  "User payload"
// @Success      201   {object}  models.User
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /add-user [post]
func AddUserHandler(db *mongo.Database, mailer *services.Mailer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.AddUserRequest
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Error: true, Message: "invalid body"})
		}

		ctx, cancel := context.WithTimeout(c.Context(), 15*time.Second)
		defer cancel()

		user, err := services.CreateUser(ctx, db, mailer, body)
		if err != nil {
			var ve *services.ValidationError
			switch {
			case errors.As(err, &ve):
				return c.Status(fiber.StatusBadRequest).
					JSON(dto.ErrorResponse{Error: true, Message: ve.Message})
			case errors.Is(err, services.ErrUserExists):
				return c.Status(fiber.StatusBadRequest).
					JSON(dto.ErrorResponse{Error: true, Message: "User already exists"})
			default:
				// the user may already be committed when the mail failed;
				// the caller only gets the generic message either way
				return c.Status(fiber.StatusInternalServerError).
					JSON(dto.ErrorResponse{Message: "Error adding user"})
			}
		}
		return c.Status(fiber.StatusCreated).JSON(user)
	}
}

// EditUserHandler godoc
// @Summary      Edit a user
// @Description  Whole-record replace of the user including the scope snapshot
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "User ID (hex)"
// @Param        data  body      dto.AddUserRequest  true  "User payload"
// @Success      200   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /edit-user/{id} [put]
func EditUserHandler(db *mongo.Database, mailer *services.Mailer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := bson.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Error: true, Message: "invalid user id"})
		}

		var body dto.AddUserRequest
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Error: true, Message: "invalid body"})
		}

		ctx, cancel := context.WithTimeout(c.Context(), 15*time.Second)
		defer cancel()

		user, err := services.EditUser(ctx, db, mailer, id, body)
		if err != nil {
			var ve *services.ValidationError
			switch {
			case errors.As(err, &ve):
				return c.Status(fiber.StatusBadRequest).
					JSON(dto.ErrorResponse{Error: true, Message: ve.Message})
			case errors.Is(err, services.ErrUserNotFound):
				return c.Status(fiber.StatusNotFound).
					JSON(dto.ErrorResponse{Message: "User not found"})
			default:
				return c.Status(fiber.StatusInternalServerError).
					JSON(dto.ErrorResponse{Message: "Error updating user"})
			}
		}
		return c.JSON(fiber.Map{"message": "User updated successfully", "user": user})
	}
}

// DeleteUserHandler godoc
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "User ID (hex)"
// @Success      200  {object}  dto.MessageResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /delete-user/{id} [delete]
func DeleteUserHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := bson.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Error: true, Message: "invalid user id"})
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		if err := repository.DeleteUser(ctx, db, id); err != nil {
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Message: "Server Error"})
		}
		return c.JSON(dto.MessageResponse{Message: "User deleted"})
	}
}
