package reviewRoutes

import (
	controllers "codemaster/controllers/review"
	"codemaster/middleware"
	validators "codemaster/validators/review"

	"github.com/gofiber/fiber/v2"
)

func SetupReviewRoutes(app *fiber.App) {
	reviewGroup := app.Group("/reviews")

	reviewGroup.Get("/", controllers.ListReviews)
	reviewGroup.Get("/:id", controllers.GetReview)

	reviewGroup.Post("/", middleware.JWTMiddleware, validators.CreateReview(), controllers.CreateReview)
	reviewGroup.Put("/:id", middleware.JWTMiddleware, validators.UpdateReview(), controllers.UpdateReview)
	reviewGroup.Delete("/:id", middleware.JWTMiddleware, controllers.DeleteReview)
}
