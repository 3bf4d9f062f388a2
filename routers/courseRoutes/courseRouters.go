package courseRoutes

import (
	controllers "codemaster/controllers/course"
	"codemaster/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/courses")

	courseGroup.Get("/", controllers.GetAllCourses)
	courseGroup.Get("/search", controllers.SearchCourses)
	courseGroup.Get("/category/:category", controllers.GetCoursesByCategory)
	courseGroup.Get("/slug/:slug", controllers.GetCourseBySlug)
	courseGroup.Get("/:id", controllers.GetCourse)
	courseGroup.Get("/:id/daily-classes", controllers.GetCourseDailyClasses)

	app.Get("/enrollments", middleware.JWTMiddleware, controllers.GetEnrollments)
}
