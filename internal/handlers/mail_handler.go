package handlers

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/rutamk/dsr-final/dto"
	"github.com/rutamk/dsr-final/internal/repository"
	"github.com/rutamk/dsr-final/internal/services"
)

// SendEmailHandler godoc
// @Summary      Mail a DSR report
// @Description  Send the report to the requesting user with the department HOD in CC. The attachment is taken from the form; without one the report is generated server-side from the selected section.
// @Tags         notification
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        email           formData  string  true   "Recipient (registered user) email"
// @Param        body            formData  string  true   "Mail body text"
// @Param        selectedDept    formData  string  true   "Department name, used to resolve the HOD"
// @Param        selectedLab     formData  string  false  "Lab name for server-side report generation"
// @Param        selectedSection formData  string  false  "Section name for server-side report generation"
// @Param        attachment      formData  file    false  "Report PDF"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /send-email [post]
func SendEmailHandler(db *mongo.Database, mailer *services.Mailer, fontPath string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email := c.FormValue("email")
		body := c.FormValue("body")
		selectedDept := c.FormValue("selectedDept")

		ctx, cancel := context.WithTimeout(c.Context(), 15*time.Second)
		defer cancel()

		user, err := repository.FindUserByEmail(ctx, db, email)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return c.Status(fiber.StatusNotFound).
					JSON(dto.ErrorResponse{Error: true, Message: "User not found"})
			}
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Error: true, Message: "Internal server error"})
		}

		hod, err := repository.FindHODForDepartment(ctx, db, selectedDept)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return c.Status(fiber.StatusNotFound).
					JSON(dto.ErrorResponse{Error: true, Message: "HOD not found"})
			}
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Error: true, Message: "Internal server error"})
		}

		att, err := reportAttachment(c, ctx, db, selectedDept, fontPath)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		}

		// the mutation (if any) is already committed; only the mail outcome
		// is reported here
		if err := mailer.Send(user.Email, []string{hod.Email}, "DSR Report", body, att); err != nil {
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Error: true, Message: "Error sending email"})
		}
		return c.JSON(dto.MessageResponse{Message: "Email sent"})
	}
}

// reportAttachment takes the uploaded file when the form has one and
// otherwise renders the selected section as a PDF.
func reportAttachment(c *fiber.Ctx, ctx context.Context, db *mongo.Database, deptName, fontPath string) (*services.Attachment, error) {
	if fileHeader, err := c.FormFile("attachment"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			return nil, errors.New("could not read attachment")
		}
		defer file.Close()
		content, err := io.ReadAll(file)
		if err != nil {
			return nil, errors.New("could not read attachment")
		}
		return &services.Attachment{Filename: fileHeader.Filename, Content: content}, nil
	}

	labName := c.FormValue("selectedLab")
	sectionName := c.FormValue("selectedSection")
	if labName == "" || sectionName == "" {
		return nil, errors.New("attachment or selectedLab and selectedSection are required")
	}
	entries, err := services.GetAllEntries(ctx, db, deptName, labName, sectionName)
	if err != nil {
		return nil, errors.New("could not build report")
	}
	content, err := services.BuildPDFReport(deptName, labName, sectionName, entries, fontPath)
	if err != nil {
		return nil, errors.New("could not build report")
	}
	return &services.Attachment{Filename: "dsr-report.pdf", Content: content}, nil
}
