package paymentRoutes

import (
	controllers "codemaster/controllers/payment"
	"codemaster/middleware"
	validators "codemaster/validators/payment"

	"github.com/gofiber/fiber/v2"
)

func SetupPaymentRoutes(app *fiber.App) {
	paymentGroup := app.Group("/payments")

	paymentGroup.Get("/methods", controllers.GetPaymentMethods)

	paymentGroup.Post("/manual-upi", middleware.JWTMiddleware, controllers.ManualUpiPayment)
	paymentGroup.Post("/create-order", middleware.JWTMiddleware, validators.CreatePaymentOrder(), controllers.CreatePaymentOrder)
	paymentGroup.Post("/verify", middleware.JWTMiddleware, validators.VerifyPayment(), controllers.VerifyPayment)

	paymentGroup.Put("/upi", middleware.JWTMiddleware, middleware.AdminOnly, validators.UpsertUpi(), controllers.UpsertUpiMethod)
}
