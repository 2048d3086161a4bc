package utils

import (
	"elearn/database"
	courseModels "elearn/models/course"
	"elearn/services/content"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// logSweep logs reconciliation events with timestamp
func logSweep(message string) {
	log.Printf("[AGGREGATE-SWEEP %s] %s", time.Now().Format(time.RFC3339), message)
}

// ReconcileAggregates re-derives every live course's section durations,
// total duration and average rating from current rows. The recomputation is
// idempotent, so the sweep is safe to run at any time; it exists to repair
// drift left by interrupted cascades or failed post-write recomputes.
func ReconcileAggregates() {
	db := database.Database.Db

	var courses []courseModels.Course
	if err := db.Where("is_deleted = ?", false).Find(&courses).Error; err != nil {
		logSweep("Error listing courses: " + err.Error())
		return
	}

	repaired := 0
	for _, c := range courses {
		var sections []courseModels.Section
		if err := db.Where("course_id = ? AND is_deleted = ?", c.ID, false).Find(&sections).Error; err != nil {
			logSweep(fmt.Sprintf("Error listing sections of course %d: %v", c.ID, err))
			continue
		}

		for _, s := range sections {
			if _, err := content.RecomputeSectionDuration(db, s.ID); err != nil {
				logSweep(fmt.Sprintf("Error recomputing section %d: %v", s.ID, err))
			}
		}
		if _, err := content.RecomputeCourseDuration(db, c.ID); err != nil {
			logSweep(fmt.Sprintf("Error recomputing course %d duration: %v", c.ID, err))
			continue
		}
		if _, err := content.RecomputeCourseRating(db, c.ID); err != nil {
			logSweep(fmt.Sprintf("Error recomputing course %d rating: %v", c.ID, err))
			continue
		}
		repaired++
	}

	logSweep(fmt.Sprintf("Reconciled aggregates for %d courses", repaired))
}

// StartAggregateScheduler runs the reconciliation sweep nightly at 03:00
func StartAggregateScheduler() {
	c := cron.New()

	if _, err := c.AddFunc("0 3 * * *", ReconcileAggregates); err != nil {
		logSweep("Failed to register sweep job: " + err.Error())
		return
	}

	c.Start()
	logSweep("Scheduler started (nightly at 03:00)")
}
