package cartController

import (
	"bytes"
	"codemaster/database"
	"codemaster/models"
	validators "codemaster/validators/cart"
	"encoding/json"
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

func newCartApp(t *testing.T, userID uint) *fiber.App {
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
	cartGroup := app.Group("/cart", fakeAuth(userID))
	cartGroup.Get("/", GetCart)
	cartGroup.Get("/count", GetCartCount)
	cartGroup.Post("/", validators.AddCartItem(), AddToCart)
	cartGroup.Delete("/clear", ClearCart)
	cartGroup.Delete("/:id", RemoveFromCart)

	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) int {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestAddToCart(t *testing.T) {
	app := newCartApp(t, 1)

	course := models.Course{Title: "Go", Slug: "go", Price: 10}
	require.NoError(t, database.Database.Db.Create(&course).Error)

	status := postJSON(t, app, "/cart/", fiber.Map{"course_id": course.ID})
	assert.Equal(t, fiber.StatusCreated, status)

	// Duplicate add is rejected
	status = postJSON(t, app, "/cart/", fiber.Map{"course_id": course.ID})
	assert.Equal(t, fiber.StatusConflict, status)
}

func TestAddToCartUnknownCourse(t *testing.T) {
	app := newCartApp(t, 1)

	status := postJSON(t, app, "/cart/", fiber.Map{"course_id": 9999})
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestAddToCartValidation(t *testing.T) {
	app := newCartApp(t, 1)

	status := postJSON(t, app, "/cart/", fiber.Map{})
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
}

func TestRemoveFromCart(t *testing.T) {
	app := newCartApp(t, 1)

	course := models.Course{Title: "Go", Slug: "go", Price: 10}
	require.NoError(t, database.Database.Db.Create(&course).Error)
	item := models.CartItem{UserID: 1, CourseID: course.ID}
	require.NoError(t, database.Database.Db.Create(&item).Error)

	req := httptest.NewRequest("DELETE", fmt.Sprintf("/cart/%d", item.ID), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Already removed
	resp, err = app.Test(httptest.NewRequest("DELETE", fmt.Sprintf("/cart/%d", item.ID), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestRemoveFromCartOtherUser(t *testing.T) {
	app := newCartApp(t, 2)

	course := models.Course{Title: "Go", Slug: "go", Price: 10}
	require.NoError(t, database.Database.Db.Create(&course).Error)
	item := models.CartItem{UserID: 1, CourseID: course.ID}
	require.NoError(t, database.Database.Db.Create(&item).Error)

	// User 2 cannot remove user 1's row
	resp, err := app.Test(httptest.NewRequest("DELETE", fmt.Sprintf("/cart/%d", item.ID), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestCartCount(t *testing.T) {
	app := newCartApp(t, 1)

	for i := 0; i < 3; i++ {
		course := models.Course{Title: "C", Slug: fmt.Sprintf("c-%d", i), Price: 10}
		require.NoError(t, database.Database.Db.Create(&course).Error)
		require.NoError(t, database.Database.Db.Create(&models.CartItem{UserID: 1, CourseID: course.ID}).Error)
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/cart/count", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data struct {
			Count int64 `json:"count"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.EqualValues(t, 3, body.Data.Count)
}

func TestReAddAfterRemove(t *testing.T) {
	app := newCartApp(t, 1)

	course := models.Course{Title: "Go", Slug: "go", Price: 10}
	require.NoError(t, database.Database.Db.Create(&course).Error)

	status := postJSON(t, app, "/cart/", fiber.Map{"course_id": course.ID})
	require.Equal(t, fiber.StatusCreated, status)

	var item models.CartItem
	require.NoError(t, database.Database.Db.Where("user_id = ? AND course_id = ?", 1, course.ID).First(&item).Error)

	resp, err := app.Test(httptest.NewRequest("DELETE", fmt.Sprintf("/cart/%d", item.ID), nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// The slot is free again, not a phantom duplicate
	status = postJSON(t, app, "/cart/", fiber.Map{"course_id": course.ID})
	assert.Equal(t, fiber.StatusCreated, status)
}

func TestReAddAfterClear(t *testing.T) {
	app := newCartApp(t, 1)

	course := models.Course{Title: "Go", Slug: "go", Price: 10}
	require.NoError(t, database.Database.Db.Create(&course).Error)

	status := postJSON(t, app, "/cart/", fiber.Map{"course_id": course.ID})
	require.Equal(t, fiber.StatusCreated, status)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/cart/clear", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	status = postJSON(t, app, "/cart/", fiber.Map{"course_id": course.ID})
	assert.Equal(t, fiber.StatusCreated, status)
}
