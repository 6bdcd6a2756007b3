package routes

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/rutamk/dsr-final/internal/handlers"
)

func SetupRoutesDepartment(app *fiber.App, db *mongo.Database) {
	app.Get("/get-all-departments", handlers.GetAllDepartmentsHandler(db))
	// same data, kept as a separate path for the selection dropdowns
	app.Get("/get-departments", handlers.GetAllDepartmentsHandler(db))

	app.Post("/create-department-structure", handlers.CreateDepartmentHandler(db))
	app.Put("/edit-department/:department_id", handlers.EditDepartmentHandler(db))
	app.Delete("/delete-department/:department_id", handlers.DeleteDepartmentHandler(db))

	app.Post("/add-lab/:department_id", handlers.AddLabHandler(db))
	app.Delete("/delete-lab/:department_id/:lab_id", handlers.DeleteLabHandler(db))

	app.Post("/add-section/:department_id/:lab_id", handlers.AddSectionHandler(db))
	app.Delete("/delete-section/:department_id/:lab_id/:section_id", handlers.DeleteSectionHandler(db))
}
