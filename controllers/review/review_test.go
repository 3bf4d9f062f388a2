package reviewController

import (
	"codemaster/database"
	"codemaster/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	database.RunMigrations(db)
	return db
}

func seedReview(t *testing.T, db *gorm.DB, userID, courseID uint, rating int) models.Review {
	t.Helper()
	review := models.Review{UserID: userID, CourseID: courseID, Rating: rating, Comment: "fine"}
	require.NoError(t, db.Create(&review).Error)
	return review
}

func TestRefreshCourseRating(t *testing.T) {
	db := newTestDB(t)

	course := models.Course{Title: "Rated", Slug: "rated", Price: 10}
	require.NoError(t, db.Create(&course).Error)

	seedReview(t, db, 1, course.ID, 5)
	seedReview(t, db, 2, course.ID, 4)
	seedReview(t, db, 3, course.ID, 3)

	require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
		return refreshCourseRating(tx, course.ID)
	}))

	var got models.Course
	require.NoError(t, db.First(&got, course.ID).Error)
	assert.InDelta(t, 4.0, got.Rating, 0.001)
	assert.Equal(t, 3, got.ReviewCount)
}

func TestRefreshCourseRatingNoReviews(t *testing.T) {
	db := newTestDB(t)

	course := models.Course{Title: "Unrated", Slug: "unrated", Price: 10, Rating: 4.5, ReviewCount: 9}
	require.NoError(t, db.Create(&course).Error)

	require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
		return refreshCourseRating(tx, course.ID)
	}))

	var got models.Course
	require.NoError(t, db.First(&got, course.ID).Error)
	assert.Zero(t, got.Rating)
	assert.Zero(t, got.ReviewCount)
}
