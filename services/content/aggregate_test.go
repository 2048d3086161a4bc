package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionDurationSumsLectures(t *testing.T) {
	db := newTestDB(t)
	instructor := mkInstructor(t, db, "asha")
	course := mkCourse(t, db, instructor.ID, "Go Basics")
	section := mkSection(t, db, course.ID, "Intro")

	mkLecture(t, db, section.ID, "Welcome", 90)
	mkLecture(t, db, section.ID, "Setup", 30)

	assert.Equal(t, int64(120), reloadSection(t, db, section.ID).Duration)
	assert.Equal(t, int64(120), reloadCourse(t, db, course.ID).TotalDuration)
}

func TestCourseDurationSumsSections(t *testing.T) {
	db := newTestDB(t)
	instructor := mkInstructor(t, db, "asha")
	course := mkCourse(t, db, instructor.ID, "Go Basics")

	intro := mkSection(t, db, course.ID, "Intro")
	deep := mkSection(t, db, course.ID, "Deep Dive")
	mkLecture(t, db, intro.ID, "Welcome", 60)
	mkLecture(t, db, deep.ID, "Channels", 300)
	mkLecture(t, db, deep.ID, "Goroutines", 240)

	assert.Equal(t, int64(60), reloadSection(t, db, intro.ID).Duration)
	assert.Equal(t, int64(540), reloadSection(t, db, deep.ID).Duration)
	assert.Equal(t, int64(600), reloadCourse(t, db, course.ID).TotalDuration)
}

func TestRecomputeIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	instructor := mkInstructor(t, db, "asha")
	course := mkCourse(t, db, instructor.ID, "Go Basics")
	section := mkSection(t, db, course.ID, "Intro")
	mkLecture(t, db, section.ID, "Welcome", 45)
	mkLecture(t, db, section.ID, "Setup", 75)

	first, err := RecomputeSectionDuration(db, section.ID)
	require.NoError(t, err)
	second, err := RecomputeSectionDuration(db, section.ID)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, int64(120), second)

	firstCourse, err := RecomputeCourseDuration(db, course.ID)
	require.NoError(t, err)
	secondCourse, err := RecomputeCourseDuration(db, course.ID)
	require.NoError(t, err)
	assert.Equal(t, firstCourse, secondCourse)
	assert.Equal(t, int64(120), secondCourse)
}

func TestRecomputeEmptySectionIsZero(t *testing.T) {
	db := newTestDB(t)
	instructor := mkInstructor(t, db, "asha")
	course := mkCourse(t, db, instructor.ID, "Go Basics")
	section := mkSection(t, db, course.ID, "Intro")

	total, err := RecomputeSectionDuration(db, section.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}

func TestRatingAveragesReviews(t *testing.T) {
	db := newTestDB(t)
	instructor := mkInstructor(t, db, "asha")
	course := mkCourse(t, db, instructor.ID, "Go Basics")

	_, err := AddReview(db, course.ID, 101, 4, "good")
	require.NoError(t, err)
	_, err = AddReview(db, course.ID, 102, 5, "great")
	require.NoError(t, err)

	assert.InDelta(t, 4.5, reloadCourse(t, db, course.ID).AverageRating, 0.001)

	require.NoError(t, RemoveReview(db, course.ID, 102))
	assert.InDelta(t, 4.0, reloadCourse(t, db, course.ID).AverageRating, 0.001)

	require.NoError(t, RemoveReview(db, course.ID, 101))
	assert.InDelta(t, 0.0, reloadCourse(t, db, course.ID).AverageRating, 0.001)
}
