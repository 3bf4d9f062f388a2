package adminRoutes

import (
	controllers "codemaster/controllers/admin"
	"codemaster/middleware"
	adminValidators "codemaster/validators/admin"
	authValidators "codemaster/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminRoutes(app *fiber.App) {
	app.Post("/admin/login", authValidators.Login(), controllers.Login)

	adminGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.AdminOnly)

	adminGroup.Get("/users", controllers.GetAllUsers)
	adminGroup.Get("/stats", controllers.GetDashboardStats)

	adminGroup.Get("/orders", controllers.GetAllOrders)
	adminGroup.Post("/orders/:id/verify", adminValidators.OrderVerification(), controllers.VerifyOrder)

	adminGroup.Put("/courses/:id", controllers.UpdateCourse)
	adminGroup.Delete("/courses/:id", controllers.DeleteCourse)

	adminGroup.Post("/daily-classes", adminValidators.CreateDailyClass(), controllers.CreateDailyClass)
	adminGroup.Get("/daily-classes", controllers.ListDailyClasses)
	adminGroup.Put("/daily-classes/:id", adminValidators.UpdateDailyClass(), controllers.UpdateDailyClass)
	adminGroup.Delete("/daily-classes/:id", controllers.DeleteDailyClass)
}
