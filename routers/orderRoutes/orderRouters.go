package orderRoutes

import (
	controllers "codemaster/controllers/order"
	"codemaster/middleware"
	validators "codemaster/validators/order"

	"github.com/gofiber/fiber/v2"
)

func SetupOrderRoutes(app *fiber.App) {
	orderGroup := app.Group("/orders", middleware.JWTMiddleware)

	orderGroup.Post("/checkout", controllers.Checkout)
	orderGroup.Post("/", validators.CreateOrder(), controllers.CreateOrder)
	orderGroup.Get("/", controllers.ListOrders)
	orderGroup.Get("/latest/details", controllers.GetLatestOrder)
	orderGroup.Get("/:id", controllers.GetOrder)
	orderGroup.Post("/refund/:id", controllers.RequestRefund)
}
