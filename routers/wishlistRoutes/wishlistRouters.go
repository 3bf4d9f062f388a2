package wishlistRoutes

import (
	controllers "codemaster/controllers/wishlist"
	"codemaster/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupWishlistRoutes(app *fiber.App) {
	wishlistGroup := app.Group("/wishlist", middleware.JWTMiddleware)

	wishlistGroup.Get("/", controllers.GetWishlist)
	wishlistGroup.Get("/check/:course_id", controllers.CheckWishlist)
	wishlistGroup.Post("/:course_id", controllers.AddToWishlist)
	wishlistGroup.Delete("/:course_id", controllers.RemoveFromWishlist)
}
