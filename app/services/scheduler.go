package services

import (
	"database/sql"
	"log"
	"time"

	"tuition-center/app/database"
	"tuition-center/app/schedule"
)

// StartScheduler starts the background task scheduler.
func StartScheduler(db *sql.DB) {
	go func() {
		log.Println("Scheduler started...")
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()

			// Trigger at 6:05 AM, before the first classes of the day
			if now.Hour() == 6 && now.Minute() == 5 {
				log.Println("Triggering scheduled tasks [06:05]...")
				runDailyTasks(db, now)
			}
		}
	}()
}

func runDailyTasks(db *sql.DB, now time.Time) {
	// Flag payments whose billing cycle has run out
	updated, err := database.MarkExpiredPaymentsOverdue(db, now)
	if err != nil {
		log.Printf("Error marking expired payments overdue: %v", err)
	} else if updated > 0 {
		log.Printf("Marked %d payments as overdue", updated)
	}

	// Log today's scheduled classes for the morning report
	classes, err := database.GetAllClasses(db)
	if err != nil {
		log.Printf("Error fetching classes for daily report: %v", err)
		return
	}
	scheduled := 0
	for _, class := range classes {
		if schedule.IsScheduledOn(class.Schedule, now) {
			scheduled++
		}
	}
	log.Printf("%d of %d classes meet today (%s)", scheduled, len(classes), now.Weekday())
}
