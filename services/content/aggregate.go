package content

import (
	courseModels "elearn/models/course"

	"gorm.io/gorm"
)

// RecomputeSectionDuration re-derives a section's duration as the sum over
// its live lectures and persists it. Idempotent: with no underlying change a
// rerun writes the same value.
func RecomputeSectionDuration(db *gorm.DB, sectionID uint) (int64, error) {
	var total int64
	if err := db.Model(&courseModels.Lecture{}).
		Where("section_id = ? AND is_deleted = ?", sectionID, false).
		Select("COALESCE(SUM(duration), 0)").
		Scan(&total).Error; err != nil {
		return 0, Store("sum lecture durations", err)
	}

	if err := db.Model(&courseModels.Section{}).
		Where("id = ?", sectionID).
		Update("duration", total).Error; err != nil {
		return 0, Store("write section duration", err)
	}

	return total, nil
}

// RecomputeCourseDuration re-derives a course's total duration as the sum of
// its live sections' already-current durations and persists it.
func RecomputeCourseDuration(db *gorm.DB, courseID uint) (int64, error) {
	var total int64
	if err := db.Model(&courseModels.Section{}).
		Where("course_id = ? AND is_deleted = ?", courseID, false).
		Select("COALESCE(SUM(duration), 0)").
		Scan(&total).Error; err != nil {
		return 0, Store("sum section durations", err)
	}

	if err := db.Model(&courseModels.Course{}).
		Where("id = ?", courseID).
		Update("total_duration", total).Error; err != nil {
		return 0, Store("write course total duration", err)
	}

	return total, nil
}

// RecomputeDurations runs the section recompute, then the course recompute.
// Course duration depends on section duration, so the order is fixed.
func RecomputeDurations(db *gorm.DB, sectionID, courseID uint) error {
	if _, err := RecomputeSectionDuration(db, sectionID); err != nil {
		return err
	}
	if _, err := RecomputeCourseDuration(db, courseID); err != nil {
		return err
	}
	return nil
}

// RecomputeCourseRating re-derives a course's average rating as the mean of
// its live reviews, 0 when there are none.
func RecomputeCourseRating(db *gorm.DB, courseID uint) (float64, error) {
	var avg float64
	if err := db.Model(&courseModels.Review{}).
		Where("course_id = ? AND is_deleted = ?", courseID, false).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&avg).Error; err != nil {
		return 0, Store("average review ratings", err)
	}

	if err := db.Model(&courseModels.Course{}).
		Where("id = ?", courseID).
		Update("average_rating", avg).Error; err != nil {
		return 0, Store("write course average rating", err)
	}

	return avg, nil
}
