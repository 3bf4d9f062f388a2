package userRoutes

import (
	controllers "codemaster/controllers/user"
	"codemaster/middleware"
	validators "codemaster/validators/user"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/user", middleware.JWTMiddleware)

	userGroup.Get("/profile", controllers.GetProfile)
	userGroup.Put("/profile", validators.UpdateProfile(), controllers.UpdateProfile)
	userGroup.Post("/avatar", controllers.UploadAvatar)
	userGroup.Put("/password", validators.ChangePassword(), controllers.ChangePassword)
}
