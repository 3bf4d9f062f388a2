package utils

import (
	"codemaster/database"
	"codemaster/models"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[CLASS-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// deactivateFinishedClasses marks daily classes inactive once their
// scheduled slot (start + duration) has passed.
func deactivateFinishedClasses() {
	db := database.Database.Db
	now := time.Now()

	var classes []models.DailyClass
	if err := db.Where("is_active = ? AND scheduled_date < ?", true, now).Find(&classes).Error; err != nil {
		logScheduler("Error fetching active classes: " + err.Error())
		return
	}

	expired := 0
	for _, dc := range classes {
		endsAt := dc.ScheduledDate.Add(time.Duration(dc.DurationMinutes) * time.Minute)
		if endsAt.After(now) {
			continue
		}

		dc.IsActive = false
		if err := db.Save(&dc).Error; err != nil {
			logScheduler("Error deactivating class: " + err.Error())
			continue
		}
		expired++
	}

	if expired > 0 {
		logScheduler(fmt.Sprintf("Deactivated %d finished daily classes", expired))
	}
}

// InitializeClassScheduler starts the cron that sweeps finished daily classes
func InitializeClassScheduler() *cron.Cron {
	ist, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		ist = time.Local
	}

	c := cron.New(cron.WithLocation(ist))

	// Every 15 minutes
	if _, err := c.AddFunc("*/15 * * * *", deactivateFinishedClasses); err != nil {
		logScheduler("Error registering class sweeper: " + err.Error())
	}

	c.Start()
	logScheduler("Daily class scheduler started")
	return c
}
