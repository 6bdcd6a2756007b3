// @title DSR Backend API
// @version 1.0
// @description Dead Stock Register backend: departments, labs, sections and inventory entries.
// @host localhost:5000
// @BasePath /

package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/joho/godotenv"

	_ "github.com/rutamk/dsr-final/docs"

	"github.com/rutamk/dsr-final/bootstrap"
	"github.com/rutamk/dsr-final/config"
	"github.com/rutamk/dsr-final/database"
	"github.com/rutamk/dsr-final/internal/middleware"
	"github.com/rutamk/dsr-final/internal/routes"
	"github.com/rutamk/dsr-final/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	cfg := config.LoadConfig()
	if cfg.JWTSecret == "" {
		panic("ACCESS_TOKEN_SECRET is required")
	}
	if err := cfg.CheckReportFont(); err != nil {
		log.Fatalf("report font not found, set REPORT_FONT_PATH to a TTF file: %v", err)
	}

	client := database.ConnectMongo(cfg.MongoURI)
	defer database.DisconnectMongo(client)

	db := client.Database(cfg.MongoDB)

	if err := bootstrap.EnsureUserIndexes(db); err != nil {
		log.Fatalf("ensure indexes failed: %v", err)
	}

	mailer := services.NewMailer(cfg)

	// Fiber app
	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.FrontendOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Swagger docs
	app.Get("/docs/*", swagger.HandlerDefault)

	// Health
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })

	// Routes that issue the token
	routes.SetupAuth(app, db, cfg.JWTSecret)

	// Everything past here needs a valid bearer token; the viewer is
	// re-read from the store per request.
	app.Use(middleware.JWTAuth(cfg.JWTSecret))
	app.Use(middleware.RequireAuth())
	app.Use(middleware.InjectViewer(db))

	routes.SetupAuthProtected(app)
	routes.SetupRoutesDepartment(app, db)
	routes.SetupRoutesEntry(app, db, cfg.ReportFontPath)
	routes.SetupRoutesUser(app, db, mailer)
	routes.SetupRoutesMail(app, db, mailer, cfg.ReportFontPath)

	log.Printf("listening at http://localhost:%s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
