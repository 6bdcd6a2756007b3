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

// hierarchyStatus maps service errors onto the error taxonomy: validation
// failures are 400 with the field message, missing nodes are 404 naming the
// level, everything else is a generic 500.
func hierarchyStatus(c *fiber.Ctx, err error) error {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: ve.Message})
	case errors.Is(err, services.ErrDepartmentNotFound),
		errors.Is(err, services.ErrLabNotFound),
		errors.Is(err, services.ErrSectionNotFound),
		errors.Is(err, services.ErrEntryNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Internal server error"})
	}
}

// GetAllDepartmentsHandler godoc
// @Summary      List departments
// @Description  Return every department aggregate with nested labs and sections
// @Tags         departments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   models.Department
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /get-all-departments [get]
func GetAllDepartmentsHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		departments, err := repository.FetchDepartments(ctx, db)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Error: true, Message: "Internal Server Error"})
		}
		if departments == nil {
			departments = []models.Department{}
		}
		return c.JSON(departments)
	}
}

// CreateDepartmentHandler godoc
// @Summary      Create a department structure
// @Description  Persist a department with its labs and sections after validation
// @Tags         departments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        data  body      models.Department  true  "Department payload"
// @Success      201   {object}  models.Department
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /create-department-structure [post]
func CreateDepartmentHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var dept models.Department
		if err := c.BodyParser(&dept); err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Error: true, Message: "invalid body"})
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		created, err := services.CreateDepartment(ctx, db, dept)
		if err != nil {
			return hierarchyStatus(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(created)
	}
}

// EditDepartmentHandler godoc
// @Summary      Edit a department
// @Description  Whole-document replace of a department aggregate
// @Tags         departments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        department_id  path      string             true  "Department ID (hex)"
// @Param        data           body      models.Department  true  "Replacement payload"
// @Success      200  {object}  models.Department
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /edit-department/{department_id} [put]
func EditDepartmentHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := bson.ObjectIDFromHex(c.Params("department_id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Error: true, Message: "invalid department id"})
		}

		var dept models.Department
		if err := c.BodyParser(&dept); err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Error: true, Message: "invalid body"})
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		updated, err := services.EditDepartment(ctx, db, id, dept)
		if err != nil {
			return hierarchyStatus(c, err)
		}
		return c.JSON(fiber.Map{
			"error":      false,
			"message":    "Department updated successfully",
			"department": updated,
		})
	}
}

// DeleteDepartmentHandler godoc
// @Summary      Delete a department
// @Tags         departments
// @Produce      json
// @Security     BearerAuth
// @Param        department_id  path  string  true  "Department ID (hex)"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /delete-department/{department_id} [delete]
func DeleteDepartmentHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := bson.ObjectIDFromHex(c.Params("department_id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Error: true, Message: "invalid department id"})
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		if err := services.DeleteDepartment(ctx, db, id); err != nil {
			return hierarchyStatus(c, err)
		}
		return c.JSON(dto.MessageResponse{Message: "Department deleted successfully"})
	}
}

// AddLabHandler godoc
// @Summary      Add a lab to a department
// @Tags         departments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        department_id  path      string             true  "Department ID (hex)"
// @Param        data           body      dto.AddLabRequest  true  "Lab payload"
// @Success      201  {object}  models.Department
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /add-lab/{department_id} [post]
func AddLabHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := bson.ObjectIDFromHex(c.Params("department_id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Error: true, Message: "invalid department id"})
		}

		var body dto.AddLabRequest
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Error: true, Message: "invalid body"})
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		dept, err := services.AddLab(ctx, db, id, body.LabName)
		if err != nil {
			return hierarchyStatus(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(dept)
	}
}

// DeleteLabHandler godoc
// @Summary      Delete a lab from a department
// @Tags         departments
// @Produce      json
// @Security     BearerAuth
// @Param        department_id  path  string  true  "Department ID (hex)"
// @Param        lab_id         path  string  true  "Lab ID (hex)"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /delete-lab/{department_id}/{lab_id} [delete]
func DeleteLabHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		deptID, err := bson.ObjectIDFromHex(c.Params("department_id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Error: true, Message: "invalid department id"})
		}
		labID, err := bson.ObjectIDFromHex(c.Params("lab_id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Error: true, Message: "invalid lab id"})
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		if err := services.DeleteLab(ctx, db, deptID, labID); err != nil {
			return hierarchyStatus(c, err)
		}
		return c.JSON(dto.MessageResponse{Message: "Lab deleted successfully"})
	}
}

// AddSectionHandler godoc
// @Summary      Add a section to a lab
// @Tags         departments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        department_id  path      string                 true  "Department ID (hex)"
// @Param        lab_id         path      string                 true  "Lab ID (hex)"
// @Param        data           body      dto.AddSectionRequest  true  "Section payload"
// @Success      201  {object}  models.Department
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /add-section/{department_id}/{lab_id} [post]
func AddSectionHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		deptID, err := bson.ObjectIDFromHex(c.Params("department_id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Error: true, Message: "invalid department id"})
		}
		labID, err := bson.ObjectIDFromHex(c.Params("lab_id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Error: true, Message: "invalid lab id"})
		}

		var body dto.AddSectionRequest
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Error: true, Message: "invalid body"})
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		dept, err := services.AddSection(ctx, db, deptID, labID, body.SectionName)
		if err != nil {
			return hierarchyStatus(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(dept)
	}
}

// DeleteSectionHandler godoc
// @Summary      Delete a section from a lab
// @Tags         departments
// @Produce      json
// @Security     BearerAuth
// @Param        department_id  path  string  true  "Department ID (hex)"
// @Param        lab_id         path  string  true  "Lab ID (hex)"
// @Param        section_id     path  string  true  "Section ID (hex)"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /delete-section/{department_id}/{lab_id}/{section_id} [delete]
func DeleteSectionHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		deptID, err := bson.ObjectIDFromHex(c.Params("department_id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Error: true, Message: "invalid department id"})
		}
		labID, err := bson.ObjectIDFromHex(c.Params("lab_id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Error: true, Message: "invalid lab id"})
		}
		sectionID, err := bson.ObjectIDFromHex(c.Params("section_id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Error: true, Message: "invalid section id"})
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		if err := services.DeleteSection(ctx, db, deptID, labID, sectionID); err != nil {
			return hierarchyStatus(c, err)
		}
		return c.JSON(dto.MessageResponse{Message: "Section deleted successfully"})
	}
}
