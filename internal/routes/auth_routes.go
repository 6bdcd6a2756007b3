package routes

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/rutamk/dsr-final/internal/handlers"
)

// SetupAuth registers the routes that work without a bearer token.
func SetupAuth(app *fiber.App, db *mongo.Database, secret string) {
	app.Post("/create-account", handlers.CreateAccountHandler(db, secret))
	app.Post("/login", handlers.LoginHandler(db, secret))
}

// SetupAuthProtected registers the viewer lookup behind the JWT middleware.
func SetupAuthProtected(app *fiber.App) {
	app.Get("/get-user", handlers.GetUserHandler())
}
