package routes

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/rutamk/dsr-final/internal/handlers"
	"github.com/rutamk/dsr-final/internal/services"
)

func SetupRoutesUser(app *fiber.App, db *mongo.Database, mailer *services.Mailer) {
	app.Get("/get-all-users", handlers.GetAllUsersHandler(db))
	app.Post("/add-user", handlers.AddUserHandler(db, mailer))
	app.Put("/edit-user/:id", handlers.EditUserHandler(db, mailer))
	app.Delete("/delete-user/:id", handlers.DeleteUserHandler(db))
}
