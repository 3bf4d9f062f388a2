package main

import (
	"codemaster/config"
	"codemaster/database"
	adminRoutes "codemaster/routers/adminRoutes"
	authRoutes "codemaster/routers/authRoutes"
	cartRoutes "codemaster/routers/cartRoutes"
	courseRoutes "codemaster/routers/courseRoutes"
	dailyClassRoutes "codemaster/routers/dailyClassRoutes"
	instructorRoutes "codemaster/routers/instructorRoutes"
	orderRoutes "codemaster/routers/orderRoutes"
	paymentRoutes "codemaster/routers/paymentRoutes"
	reviewRoutes "codemaster/routers/reviewRoutes"
	userRoutes "codemaster/routers/userRoutes"
	wishlistRoutes "codemaster/routers/wishlistRoutes"
	"codemaster/utils"

	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	// Background sweeper that closes out finished live classes
	scheduler := utils.InitializeClassScheduler()
	defer scheduler.Stop()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve uploaded assets (payment proofs, avatars, thumbnails)
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	instructorRoutes.SetupInstructorRoutes(app)
	cartRoutes.SetupCartRoutes(app)
	wishlistRoutes.SetupWishlistRoutes(app)
	orderRoutes.SetupOrderRoutes(app)
	paymentRoutes.SetupPaymentRoutes(app)
	reviewRoutes.SetupReviewRoutes(app)
	dailyClassRoutes.SetupDailyClassRoutes(app)
	adminRoutes.SetupAdminRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
