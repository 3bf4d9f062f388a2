package authRoutes

import (
	controllers "codemaster/controllers/auth"
	"codemaster/middleware"
	validators "codemaster/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/register", validators.Register(), controllers.Register)
	authGroup.Post("/login", validators.Login(), controllers.Login)
	authGroup.Get("/me", middleware.JWTMiddleware, controllers.Me)
	authGroup.Post("/refresh", middleware.JWTMiddleware, controllers.Refresh)
	authGroup.Post("/logout", middleware.JWTMiddleware, controllers.Logout)
}
