package adminValidator

import (
	"codemaster/middleware"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func OrderVerification() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Action string `json:"action"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Action) == "" {
			errors["action"] = "Action is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedVerification", reqData)
		return c.Next()
	}
}

func CreateDailyClass() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CourseID        uint      `json:"course_id"`
			Title           string    `json:"title"`
			Topic           string    `json:"topic"`
			Description     string    `json:"description"`
			MeetLink        string    `json:"meet_link"`
			ScheduledDate   time.Time `json:"scheduled_date"`
			DurationMinutes int       `json:"duration_minutes"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.CourseID < 1 {
			errors["course_id"] = "Course ID is required!"
		}
		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if strings.TrimSpace(reqData.MeetLink) == "" {
			errors["meet_link"] = "Meet link is required!"
		} else if err := validate.Var(reqData.MeetLink, "url"); err != nil {
			errors["meet_link"] = "Meet link must be a valid URL!"
		}
		if reqData.ScheduledDate.IsZero() {
			errors["scheduled_date"] = "Scheduled date is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedDailyClass", reqData)
		return c.Next()
	}
}

func UpdateDailyClass() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title           *string    `json:"title"`
			Topic           *string    `json:"topic"`
			Description     *string    `json:"description"`
			MeetLink        *string    `json:"meet_link"`
			ScheduledDate   *time.Time `json:"scheduled_date"`
			DurationMinutes *int       `json:"duration_minutes"`
			IsActive        *bool      `json:"is_active"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.MeetLink != nil {
			if err := validate.Var(*reqData.MeetLink, "url"); err != nil {
				errors["meet_link"] = "Meet link must be a valid URL!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedDailyClassUpdate", reqData)
		return c.Next()
	}
}
