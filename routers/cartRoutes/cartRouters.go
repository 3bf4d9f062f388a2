package cartRoutes

import (
	controllers "codemaster/controllers/cart"
	"codemaster/middleware"
	validators "codemaster/validators/cart"

	"github.com/gofiber/fiber/v2"
)

func SetupCartRoutes(app *fiber.App) {
	cartGroup := app.Group("/cart", middleware.JWTMiddleware)

	cartGroup.Get("/", controllers.GetCart)
	cartGroup.Get("/count", controllers.GetCartCount)
	cartGroup.Post("/", validators.AddCartItem(), controllers.AddToCart)
	cartGroup.Delete("/clear", controllers.ClearCart)
	cartGroup.Delete("/:id", controllers.RemoveFromCart)
}
