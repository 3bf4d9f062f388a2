package dailyClassRoutes

import (
	controllers "codemaster/controllers/dailyclass"
	"codemaster/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupDailyClassRoutes(app *fiber.App) {
	classGroup := app.Group("/daily-classes", middleware.JWTMiddleware)

	classGroup.Get("/upcoming", controllers.GetUpcomingClasses)
}
