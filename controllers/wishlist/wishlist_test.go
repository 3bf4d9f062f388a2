package wishlistController

import (
	"codemaster/database"
	"codemaster/models"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// fakeAuth injects the user id the way the auth middleware would
func fakeAuth(userID uint) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("userId", userID)
		return c.Next()
	}
}

func newWishlistApp(t *testing.T, userID uint) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	wishlistGroup := app.Group("/wishlist", fakeAuth(userID))
	wishlistGroup.Get("/", GetWishlist)
	wishlistGroup.Get("/check/:course_id", CheckWishlist)
	wishlistGroup.Post("/:course_id", AddToWishlist)
	wishlistGroup.Delete("/:course_id", RemoveFromWishlist)

	return app
}

func seedWishlistCourse(t *testing.T, slug string) models.Course {
	t.Helper()
	course := models.Course{Title: "Course", Slug: slug, Price: 10}
	require.NoError(t, database.Database.Db.Create(&course).Error)
	return course
}

func TestAddToWishlist(t *testing.T) {
	app := newWishlistApp(t, 1)
	course := seedWishlistCourse(t, "wl-add")

	resp, err := app.Test(httptest.NewRequest("POST", fmt.Sprintf("/wishlist/%d", course.ID), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Duplicate add is rejected
	resp, err = app.Test(httptest.NewRequest("POST", fmt.Sprintf("/wishlist/%d", course.ID), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestAddToWishlistUnknownCourse(t *testing.T) {
	app := newWishlistApp(t, 1)

	resp, err := app.Test(httptest.NewRequest("POST", "/wishlist/9999", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestRemoveFromWishlist(t *testing.T) {
	app := newWishlistApp(t, 1)
	course := seedWishlistCourse(t, "wl-remove")

	resp, err := app.Test(httptest.NewRequest("POST", fmt.Sprintf("/wishlist/%d", course.ID), nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("DELETE", fmt.Sprintf("/wishlist/%d", course.ID), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Already removed
	resp, err = app.Test(httptest.NewRequest("DELETE", fmt.Sprintf("/wishlist/%d", course.ID), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestReAddAfterRemove(t *testing.T) {
	app := newWishlistApp(t, 1)
	course := seedWishlistCourse(t, "wl-readd")

	resp, err := app.Test(httptest.NewRequest("POST", fmt.Sprintf("/wishlist/%d", course.ID), nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("DELETE", fmt.Sprintf("/wishlist/%d", course.ID), nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// The slot is free again after removal
	resp, err = app.Test(httptest.NewRequest("POST", fmt.Sprintf("/wishlist/%d", course.ID), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
