package routes

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/rutamk/dsr-final/internal/handlers"
)

func SetupRoutesEntry(app *fiber.App, db *mongo.Database, fontPath string) {
	app.Get("/get-all-entries", handlers.GetAllEntriesHandler(db))
	app.Post("/add-dsr-entry", handlers.AddEntryHandler(db))
	app.Put("/update-dsr-entry/:entry_id", handlers.UpdateEntryHandler(db))
	app.Delete("/delete-dsr-entry/:entry_id", handlers.DeleteEntryHandler(db))

	app.Get("/export-report", handlers.ExportReportHandler(db, fontPath))
}
