package main

import (
	"edusphere/auth"
	"edusphere/config"
	"edusphere/database"
	"edusphere/routers/adminRoutes"
	"edusphere/routers/authRoutes"
	"edusphere/routers/contactRoutes"
	"edusphere/routers/contentRoutes"
	"edusphere/routers/courseRoutes"
	"edusphere/utils"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	if err := database.InitPageContent(config.AppConfig.ContentFile); err != nil {
		log.Fatalf("Failed to initialize page content store: %v", err)
	}

	auth.Use(auth.NewConfigCredentials(map[string]string{
		config.AppConfig.AdminEmail: config.AppConfig.AdminPassword,
	}))

	app := fiber.New(fiber.Config{
		// Uploads are capped at 5MB each; leave headroom for form fields.
		BodyLimit: 8 * 1024 * 1024,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve uploaded files
	app.Static("/uploads", config.AppConfig.UploadDir)

	authRoutes.SetupAuthRoutes(app)
	contentRoutes.SetupContentRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	contactRoutes.SetupContactRoutes(app)
	adminRoutes.SetupAdminRoutes(app)

	utils.InitializeCleanupScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
