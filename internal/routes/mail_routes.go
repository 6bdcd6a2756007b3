package routes

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/rutamk/dsr-final/internal/handlers"
	"github.com/rutamk/dsr-final/internal/services"
)

func SetupRoutesMail(app *fiber.App, db *mongo.Database, mailer *services.Mailer, fontPath string) {
	app.Post("/send-email", handlers.SendEmailHandler(db, mailer, fontPath))
}
