package content

import (
	courseModels "elearn/models/course"

	"gorm.io/gorm"
)

// Cascade deletion coordinator. Children are removed before their parent so
// an interrupted run leaves at worst a dangling empty parent, which a repeat
// invocation cleans up. Deleting an already-deleted entity succeeds quietly.

// DeleteLecture removes a single lecture and recomputes its former section's
// and course's durations.
func DeleteLecture(db *gorm.DB, lectureID uint) error {
	var lecture courseModels.Lecture
	err := db.Where("id = ? AND is_deleted = ?", lectureID, false).First(&lecture).Error
	if err == gorm.ErrRecordNotFound {
		return nil
	}
	if err != nil {
		return Store("look up lecture", err)
	}

	// Capture parents before the row is gone
	sectionID, courseID := lecture.SectionID, lecture.CourseID

	lecture.IsDeleted = true
	if err := db.Save(&lecture).Error; err != nil {
		return Store("delete lecture", err)
	}

	return RecomputeDurations(db, sectionID, courseID)
}

// DeleteSection removes a section together with all its lectures, then
// updates the owning course's total duration to exclude it.
func DeleteSection(db *gorm.DB, sectionID uint) error {
	var section courseModels.Section
	err := db.Where("id = ? AND is_deleted = ?", sectionID, false).First(&section).Error
	if err == gorm.ErrRecordNotFound {
		return nil
	}
	if err != nil {
		return Store("look up section", err)
	}

	if err := removeSectionSubtree(db, &section); err != nil {
		return err
	}

	_, err = RecomputeCourseDuration(db, section.CourseID)
	return err
}

// DeleteCourse removes a course and every descendant section and lecture.
// A course with no sections deletes trivially. If a step fails the error
// names it; already-removed children stay removed and a retry finishes the
// job.
func DeleteCourse(db *gorm.DB, courseID uint) error {
	var course courseModels.Course
	err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error
	if err == gorm.ErrRecordNotFound {
		return nil
	}
	if err != nil {
		return Store("look up course", err)
	}

	var sections []courseModels.Section
	if err := db.Where("course_id = ? AND is_deleted = ?", courseID, false).
		Find(&sections).Error; err != nil {
		return Store("list course sections", err)
	}

	// The subtree is doomed, so no per-section recompute here
	for i := range sections {
		if err := removeSectionSubtree(db, &sections[i]); err != nil {
			return err
		}
	}

	// Reviews are value-owned by the course and go with it
	if err := db.Model(&courseModels.Review{}).
		Where("course_id = ? AND is_deleted = ?", courseID, false).
		Update("is_deleted", true).Error; err != nil {
		return Store("delete course reviews", err)
	}

	course.IsDeleted = true
	if err := db.Save(&course).Error; err != nil {
		return Store("delete course", err)
	}
	return nil
}

// removeSectionSubtree deletes a section's lectures, then the section itself
func removeSectionSubtree(db *gorm.DB, section *courseModels.Section) error {
	if err := db.Model(&courseModels.Lecture{}).
		Where("section_id = ? AND is_deleted = ?", section.ID, false).
		Update("is_deleted", true).Error; err != nil {
		return Store("delete section lectures", err)
	}

	section.IsDeleted = true
	if err := db.Save(section).Error; err != nil {
		return Store("delete section", err)
	}
	return nil
}
