package instructorRoutes

import (
	controllers "codemaster/controllers/instructor"
	"codemaster/middleware"
	validators "codemaster/validators/course"

	"github.com/gofiber/fiber/v2"
)

func SetupInstructorRoutes(app *fiber.App) {
	instructorGroup := app.Group("/instructor", middleware.JWTMiddleware, middleware.InstructorOnly)

	instructorGroup.Post("/courses", validators.CreateCourse(), controllers.CreateCourse)
	instructorGroup.Get("/courses", controllers.ListCourses)
	instructorGroup.Get("/courses/:id", controllers.GetCourse)
	instructorGroup.Put("/courses/:id", validators.UpdateCourse(), controllers.UpdateCourse)
	instructorGroup.Delete("/courses/:id", controllers.DeleteCourse)

	instructorGroup.Post("/courses/:id/sections", validators.CreateSection(), controllers.CreateSection)
	instructorGroup.Delete("/sections/:section_id", controllers.DeleteSection)
	instructorGroup.Post("/sections/:section_id/lectures", validators.CreateLecture(), controllers.CreateLecture)
	instructorGroup.Delete("/lectures/:lecture_id", controllers.DeleteLecture)
}
