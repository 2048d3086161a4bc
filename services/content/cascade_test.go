package content

import (
	"sync"
	"testing"

	courseModels "elearn/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteLectureRecomputesDurations(t *testing.T) {
	db := newTestDB(t)
	instructor := mkInstructor(t, db, "asha")
	course := mkCourse(t, db, instructor.ID, "Go Basics")
	section := mkSection(t, db, course.ID, "Intro")

	mkLecture(t, db, section.ID, "Welcome", 90)
	doomed := mkLecture(t, db, section.ID, "Setup", 30)
	require.Equal(t, int64(120), reloadSection(t, db, section.ID).Duration)

	require.NoError(t, DeleteLecture(db, doomed.ID))

	assert.Equal(t, int64(90), reloadSection(t, db, section.ID).Duration)
	assert.Equal(t, int64(90), reloadCourse(t, db, course.ID).TotalDuration)
}

func TestDeleteLectureTwiceIsQuiet(t *testing.T) {
	db := newTestDB(t)
	instructor := mkInstructor(t, db, "asha")
	course := mkCourse(t, db, instructor.ID, "Go Basics")
	section := mkSection(t, db, course.ID, "Intro")
	lecture := mkLecture(t, db, section.ID, "Welcome", 60)

	require.NoError(t, DeleteLecture(db, lecture.ID))
	assert.NoError(t, DeleteLecture(db, lecture.ID))
}

func TestDeleteSectionCascadesAndUpdatesCourse(t *testing.T) {
	db := newTestDB(t)
	instructor := mkInstructor(t, db, "asha")
	course := mkCourse(t, db, instructor.ID, "Go Basics")

	keep := mkSection(t, db, course.ID, "Keep")
	doomed := mkSection(t, db, course.ID, "Doomed")
	mkLecture(t, db, keep.ID, "Stays", 100)
	mkLecture(t, db, doomed.ID, "Goes A", 50)
	mkLecture(t, db, doomed.ID, "Goes B", 70)
	require.Equal(t, int64(220), reloadCourse(t, db, course.ID).TotalDuration)

	require.NoError(t, DeleteSection(db, doomed.ID))

	// No live lecture survives under the deleted section
	var orphanLectures int64
	db.Model(&courseModels.Lecture{}).
		Where("section_id = ? AND is_deleted = ?", doomed.ID, false).
		Count(&orphanLectures)
	assert.Equal(t, int64(0), orphanLectures)

	// The course total now excludes the removed section
	assert.Equal(t, int64(100), reloadCourse(t, db, course.ID).TotalDuration)
}

func TestDeleteAbsentSectionIsQuiet(t *testing.T) {
	db := newTestDB(t)
	assert.NoError(t, DeleteSection(db, 9999))
}

func TestDeleteCourseLeavesNoOrphans(t *testing.T) {
	db := newTestDB(t)
	instructor := mkInstructor(t, db, "asha")
	course := mkCourse(t, db, instructor.ID, "Go Basics")

	s1 := mkSection(t, db, course.ID, "One")
	s2 := mkSection(t, db, course.ID, "Two")
	mkLecture(t, db, s1.ID, "A", 10)
	mkLecture(t, db, s1.ID, "B", 20)
	mkLecture(t, db, s2.ID, "C", 30)
	_, err := AddReview(db, course.ID, 7, 5, "nice")
	require.NoError(t, err)

	require.NoError(t, DeleteCourse(db, course.ID))

	var sections, lectures, reviews int64
	db.Model(&courseModels.Section{}).
		Where("course_id = ? AND is_deleted = ?", course.ID, false).Count(&sections)
	db.Model(&courseModels.Lecture{}).
		Where("course_id = ? AND is_deleted = ?", course.ID, false).Count(&lectures)
	db.Model(&courseModels.Review{}).
		Where("course_id = ? AND is_deleted = ?", course.ID, false).Count(&reviews)

	assert.Equal(t, int64(0), sections)
	assert.Equal(t, int64(0), lectures)
	assert.Equal(t, int64(0), reviews)
	assert.True(t, reloadCourse(t, db, course.ID).IsDeleted)
}

func TestDeleteEmptyCourse(t *testing.T) {
	db := newTestDB(t)
	instructor := mkInstructor(t, db, "asha")
	course := mkCourse(t, db, instructor.ID, "Empty Course")

	assert.NoError(t, DeleteCourse(db, course.ID))
	assert.True(t, reloadCourse(t, db, course.ID).IsDeleted)
}

func TestDeleteCourseTwiceSequentially(t *testing.T) {
	db := newTestDB(t)
	instructor := mkInstructor(t, db, "asha")
	course := mkCourse(t, db, instructor.ID, "Go Basics")
	section := mkSection(t, db, course.ID, "Intro")
	mkLecture(t, db, section.ID, "Welcome", 60)

	require.NoError(t, DeleteCourse(db, course.ID))
	// Second delete finds nothing further to do
	assert.NoError(t, DeleteCourse(db, course.ID))
}

func TestConcurrentDeleteCourseConverges(t *testing.T) {
	db := newTestDB(t)
	instructor := mkInstructor(t, db, "asha")
	course := mkCourse(t, db, instructor.ID, "Go Basics")
	for _, title := range []string{"One", "Two", "Three"} {
		s := mkSection(t, db, course.ID, title)
		mkLecture(t, db, s.ID, title+" lecture", 60)
	}

	// Overlapping deletes may surface store errors under contention; the
	// contract is at-least-once convergence, so a retry must finish the job
	// and the tree must never end up half-alive.
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = DeleteCourse(db, course.ID)
		}()
	}
	wg.Wait()

	require.NoError(t, DeleteCourse(db, course.ID))

	var sections, lectures int64
	db.Model(&courseModels.Section{}).
		Where("course_id = ? AND is_deleted = ?", course.ID, false).Count(&sections)
	db.Model(&courseModels.Lecture{}).
		Where("course_id = ? AND is_deleted = ?", course.ID, false).Count(&lectures)

	assert.Equal(t, int64(0), sections)
	assert.Equal(t, int64(0), lectures)
	assert.True(t, reloadCourse(t, db, course.ID).IsDeleted)
}
