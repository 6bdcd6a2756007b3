package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/rutamk/dsr-final/dto"
	"github.com/rutamk/dsr-final/internal/services"
)

// GetAllEntriesHandler godoc
// @Summary      List entries of a section
// @Description  Entries addressed by department, lab and section name; an unmatched name yields an empty list
// @Tags         entries
// @Produce      json
// @Security     BearerAuth
// @Param        department  query  string  true  "Department name"
// @Param        lab         query  string  true  "Lab name"
// @Param        section     query  string  true  "Section name"
// @Success      200  {object}  dto.EntriesResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /get-all-entries [get]
func GetAllEntriesHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		deptName := c.Query("department")
		labName := c.Query("lab")
		sectionName := c.Query("section")

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		entries, err := services.GetAllEntries(ctx, db, deptName, labName, sectionName)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Message: "An error occurred while fetching entries."})
		}
		return c.JSON(dto.EntriesResponse{Entries: entries})
	}
}

// AddEntryHandler godoc
// @Summary      Add a DSR entry
// @Description  Append an entry to the section addressed by the selected names
// @Tags         entries
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        data  body      dto.AddEntryRequest  true  "Entry payload with selectors"
// @Success      201   {object}  models.DSREntry
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /add-dsr-entry [post]
func AddEntryHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.AddEntryRequest
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Error: true, Message: "invalid body"})
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		entry, err := services.AddEntry(ctx, db, body.SelectedDept, body.SelectedLab, body.SelectedSection, body.Entry())
		if err != nil {
			return hierarchyStatus(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(entry)
	}
}

// UpdateEntryHandler godoc
// @Summary      Update a DSR entry
// @Description  Shallow merge of the patch over the stored entry; omitted fields are preserved
// @Tags         entries
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        entry_id  path      string                  true  "Entry ID (hex)"
// @Param        data      body      dto.UpdateEntryRequest  true  "Entry patch with selectors"
// @Success      200  {object}  models.DSREntry
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /update-dsr-entry/{entry_id} [put]
func UpdateEntryHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		entryID, err := bson.ObjectIDFromHex(c.Params("entry_id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Error: true, Message: "invalid entry id"})
		}

		var body dto.UpdateEntryRequest
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Error: true, Message: "invalid body"})
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		entry, err := services.UpdateEntry(ctx, db, entryID, body)
		if err != nil {
			return hierarchyStatus(c, err)
		}
		return c.JSON(entry)
	}
}

// DeleteEntryHandler godoc
// @Summary      Delete a DSR entry
// @Tags         entries
// @Produce      json
// @Security     BearerAuth
// @Param        entry_id        path   string  true  "Entry ID (hex)"
// @Param        selectedDept    query  string  true  "Department name"
// @Param        selectedLab     query  string  true  "Lab name"
// @Param        selectedSection query  string  true  "Section name"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /delete-dsr-entry/{entry_id} [delete]
func DeleteEntryHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		entryID, err := bson.ObjectIDFromHex(c.Params("entry_id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Error: true, Message: "invalid entry id"})
		}

		deptName := c.Query("selectedDept")
		labName := c.Query("selectedLab")
		sectionName := c.Query("selectedSection")

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		if err := services.DeleteEntry(ctx, db, entryID, deptName, labName, sectionName); err != nil {
			return hierarchyStatus(c, err)
		}
		return c.JSON(dto.MessageResponse{Message: "DSR entry deleted successfully"})
	}
}
