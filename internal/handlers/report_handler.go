package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/rutamk/dsr-final/dto"
	"github.com/rutamk/dsr-final/internal/services"
)

// ExportReportHandler godoc
// @Summary      Export a section report
// @Description  Render the addressed section's entries as a downloadable PDF or XLSX
// @Tags         entries
// @Produce      application/octet-stream
// @Security     BearerAuth
// @Param        department  query  string  true   "Department name"
// @Param        lab         query  string  true   "Lab name"
// @Param        section     query  string  true   "Section name"
// @Param        format      query  string  false  "pdf (default) or xlsx"
// @Success      200  {file}    file
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /export-report [get]
func ExportReportHandler(db *mongo.Database, fontPath string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		deptName := c.Query("department")
		labName := c.Query("lab")
		sectionName := c.Query("section")
		format := c.Query("format", "pdf")

		ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
		defer cancel()

		entries, err := services.GetAllEntries(ctx, db, deptName, labName, sectionName)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Error: true, Message: "Internal server error"})
		}

		switch format {
		case "pdf":
			content, err := services.BuildPDFReport(deptName, labName, sectionName, entries, fontPath)
			if err != nil {
				return c.Status(fiber.StatusInternalServerError).
					JSON(dto.ErrorResponse{Error: true, Message: "could not build report"})
			}
			c.Set(fiber.HeaderContentType, "application/pdf")
			c.Set(fiber.HeaderContentDisposition, `attachment; filename="dsr-report.pdf"`)
			return c.Send(content)
		case "xlsx":
			content, err := services.BuildXLSXReport(deptName, labName, sectionName, entries)
			if err != nil {
				return c.Status(fiber.StatusInternalServerError).
					JSON(dto.ErrorResponse{Error: true, Message: "could not build report"})
			}
			c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
			c.Set(fiber.HeaderContentDisposition, `attachment; filename="dsr-report.xlsx"`)
			return c.Send(content)
		default:
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Error: true, Message: "format must be pdf or xlsx"})
		}
	}
}
