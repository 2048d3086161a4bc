package content

import (
	"testing"
	"time"

	courseModels "elearn/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string   { return &s }
func i64Ptr(n int64) *int64     { return &n }
func f64Ptr(n float64) *float64 { return &n }
func boolPtr(b bool) *bool      { return &b }

func TestFreeCourseForcesZeroPrice(t *testing.T) {
	db := newTestDB(t)
	instructor := mkInstructor(t, db, "asha")

	course, err := CreateCourse(db, instructor.ID, CourseInput{
		Title:        "Free Go Course",
		Description:  "learn go for free",
		Category:     []string{"go"},
		ThumbnailURL: "https://cdn.example.com/t.png",
		Price:        500,
		IsFree:       true,
	})
	require.NoError(t, err)
	assert.Equal(t, float64(0), course.Price)

	// Flipping a paid course to free on update zeroes the price too
	paid := mkCourse(t, db, instructor.ID, "Paid Course")
	updated, err := UpdateCourse(db, paid.ID, CourseUpdate{IsFree: boolPtr(true)})
	require.NoError(t, err)
	assert.Equal(t, float64(0), updated.Price)
}

func TestSlugDerivedAndUnique(t *testing.T) {
	db := newTestDB(t)
	instructor := mkInstructor(t, db, "asha")

	course := mkCourse(t, db, instructor.ID, "Advanced Go: Concurrency!")
	assert.Equal(t, "advanced-go-concurrency", course.Slug)

	_, err := CreateCourse(db, instructor.ID, CourseInput{
		Title:        "Advanced Go: Concurrency!",
		Description:  "same title again",
		Category:     []string{"go"},
		ThumbnailURL: "https://cdn.example.com/t.png",
	})
	require.Error(t, err)
	assert.Equal(t, KindConflict, KindOf(err))
}

func TestSlugRederivedOnTitleChange(t *testing.T) {
	db := newTestDB(t)
	instructor := mkInstructor(t, db, "asha")
	course := mkCourse(t, db, instructor.ID, "Old Title")

	updated, err := UpdateCourse(db, course.ID, CourseUpdate{Title: strPtr("Brand New Title")})
	require.NoError(t, err)
	assert.Equal(t, "brand-new-title", updated.Slug)

	// Renaming onto another course's slug conflicts
	mkCourse(t, db, instructor.ID, "Taken Title")
	_, err = UpdateCourse(db, course.ID, CourseUpdate{Title: strPtr("Taken Title")})
	require.Error(t, err)
	assert.Equal(t, KindConflict, KindOf(err))
}

func TestPublishedAtSetExactlyOnce(t *testing.T) {
	db := newTestDB(t)
	instructor := mkInstructor(t, db, "asha")
	course := mkCourse(t, db, instructor.ID, "Go Basics")
	require.Nil(t, course.PublishedAt)

	published, err := UpdateCourse(db, course.ID, CourseUpdate{Status: strPtr(courseModels.StatusPublished)})
	require.NoError(t, err)
	require.NotNil(t, published.PublishedAt)
	stamp := *published.PublishedAt

	// Archive, then publish again: the original stamp survives
	_, err = UpdateCourse(db, course.ID, CourseUpdate{Status: strPtr(courseModels.StatusArchived)})
	require.NoError(t, err)
	republished, err := UpdateCourse(db, course.ID, CourseUpdate{Status: strPtr(courseModels.StatusPublished)})
	require.NoError(t, err)
	require.NotNil(t, republished.PublishedAt)
	assert.True(t, stamp.Equal(*republished.PublishedAt))
}

func TestLastUpdatedRefreshes(t *testing.T) {
	db := newTestDB(t)
	instructor := mkInstructor(t, db, "asha")
	course := mkCourse(t, db, instructor.ID, "Go Basics")
	before := course.LastUpdated

	time.Sleep(10 * time.Millisecond)
	updated, err := UpdateCourse(db, course.ID, CourseUpdate{Description: strPtr("fresh description")})
	require.NoError(t, err)
	assert.True(t, updated.LastUpdated.After(before))
}

func TestCourseValidation(t *testing.T) {
	db := newTestDB(t)
	instructor := mkInstructor(t, db, "asha")

	tests := []struct {
		name string
		in   CourseInput
	}{
		{"missing title", CourseInput{Description: "d", Category: []string{"x"}, ThumbnailURL: "u"}},
		{"missing description", CourseInput{Title: "t", Category: []string{"x"}, ThumbnailURL: "u"}},
		{"empty category", CourseInput{Title: "t", Description: "d", ThumbnailURL: "u"}},
		{"missing thumbnail", CourseInput{Title: "t", Description: "d", Category: []string{"x"}}},
		{"negative price", CourseInput{Title: "t", Description: "d", Category: []string{"x"}, ThumbnailURL: "u", Price: -1}},
		{"bad level", CourseInput{Title: "t", Description: "d", Category: []string{"x"}, ThumbnailURL: "u", Level: "Expert"}},
		{"bad language", CourseInput{Title: "t", Description: "d", Category: []string{"x"}, ThumbnailURL: "u", Language: "French"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CreateCourse(db, instructor.ID, tt.in)
			require.Error(t, err)
			assert.Equal(t, KindValidation, KindOf(err))
		})
	}
}

func TestCourseDefaults(t *testing.T) {
	db := newTestDB(t)
	instructor := mkInstructor(t, db, "asha")
	course := mkCourse(t, db, instructor.ID, "Go Basics")

	assert.Equal(t, courseModels.LevelBeginner, course.Level)
	assert.Equal(t, courseModels.LanguageHinglish, course.Language)
	assert.Equal(t, courseModels.StatusDraft, course.Status)
}

func TestSectionTitleUniquePerCourse(t *testing.T) {
	db := newTestDB(t)
	instructor := mkInstructor(t, db, "asha")
	course := mkCourse(t, db, instructor.ID, "Go Basics")
	other := mkCourse(t, db, instructor.ID, "Another Course")

	mkSection(t, db, course.ID, "Intro")

	_, err := CreateSection(db, course.ID, SectionInput{Title: "Intro"})
	require.Error(t, err)
	assert.Equal(t, KindConflict, KindOf(err))

	// Same title in a different course is fine
	_, err = CreateSection(db, other.ID, SectionInput{Title: "Intro"})
	assert.NoError(t, err)
}

func TestSectionOrderDefaultsToNextSlot(t *testing.T) {
	db := newTestDB(t)
	instructor := mkInstructor(t, db, "asha")
	course := mkCourse(t, db, instructor.ID, "Go Basics")

	first := mkSection(t, db, course.ID, "Intro")
	second := mkSection(t, db, course.ID, "Basics")

	assert.Equal(t, 1, first.OrderIndex)
	assert.Equal(t, 2, second.OrderIndex)
}

func TestCreateLectureUnderMissingSection(t *testing.T) {
	db := newTestDB(t)

	_, err := CreateLecture(db, 9999, LectureInput{Title: "Orphan", Duration: 60})
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestLectureValidationBlocksAllSideEffects(t *testing.T) {
	db := newTestDB(t)
	instructor := mkInstructor(t, db, "asha")
	course := mkCourse(t, db, instructor.ID, "Go Basics")
	section := mkSection(t, db, course.ID, "Intro")
	mkLecture(t, db, section.ID, "Welcome", 100)

	_, err := CreateLecture(db, section.ID, LectureInput{Title: "Broken", Duration: 0})
	require.Error(t, err)
	assert.Equal(t, KindValidation, KindOf(err))

	// Totals untouched by the rejected mutation
	assert.Equal(t, int64(100), reloadSection(t, db, section.ID).Duration)
	assert.Equal(t, int64(100), reloadCourse(t, db, course.ID).TotalDuration)
}

func TestDurationFormattedDerived(t *testing.T) {
	db := newTestDB(t)
	instructor := mkInstructor(t, db, "asha")
	course := mkCourse(t, db, instructor.ID, "Go Basics")
	section := mkSection(t, db, course.ID, "Intro")

	short := mkLecture(t, db, section.ID, "Short", 90)
	assert.Equal(t, "01:30", short.DurationFormatted)

	long := mkLecture(t, db, section.ID, "Long", 3700)
	assert.Equal(t, "1:01:40", long.DurationFormatted)

	// A caller-supplied formatted duration wins
	custom, err := CreateLecture(db, section.ID, LectureInput{
		Title: "Custom", Duration: 60, DurationFormatted: "exactly one minute",
	})
	require.NoError(t, err)
	assert.Equal(t, "exactly one minute", custom.DurationFormatted)
}

func TestLectureDurationUpdateRecomputes(t *testing.T) {
	db := newTestDB(t)
	instructor := mkInstructor(t, db, "asha")
	course := mkCourse(t, db, instructor.ID, "Go Basics")
	section := mkSection(t, db, course.ID, "Intro")
	lecture := mkLecture(t, db, section.ID, "Welcome", 100)

	updated, err := UpdateLecture(db, lecture.ID, LectureUpdate{Duration: i64Ptr(250)})
	require.NoError(t, err)
	assert.Equal(t, "04:10", updated.DurationFormatted)

	assert.Equal(t, int64(250), reloadSection(t, db, section.ID).Duration)
	assert.Equal(t, int64(250), reloadCourse(t, db, course.ID).TotalDuration)
}

func TestLectureViewsOnlyGrow(t *testing.T) {
	db := newTestDB(t)
	instructor := mkInstructor(t, db, "asha")
	course := mkCourse(t, db, instructor.ID, "Go Basics")
	section := mkSection(t, db, course.ID, "Intro")
	lecture := mkLecture(t, db, section.ID, "Welcome", 100)

	require.NoError(t, RecordLectureView(db, lecture.ID))
	require.NoError(t, RecordLectureView(db, lecture.ID))

	var got courseModels.Lecture
	require.NoError(t, db.First(&got, lecture.ID).Error)
	assert.Equal(t, int64(2), got.Views)

	err := RecordLectureView(db, 9999)
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestDuplicateReviewConflicts(t *testing.T) {
	db := newTestDB(t)
	instructor := mkInstructor(t, db, "asha")
	course := mkCourse(t, db, instructor.ID, "Go Basics")

	_, err := AddReview(db, course.ID, 42, 5, "first")
	require.NoError(t, err)

	_, err = AddReview(db, course.ID, 42, 3, "second")
	require.Error(t, err)
	assert.Equal(t, KindConflict, KindOf(err))
}

func TestReviewRatingBounds(t *testing.T) {
	db := newTestDB(t)
	instructor := mkInstructor(t, db, "asha")
	course := mkCourse(t, db, instructor.ID, "Go Basics")

	for _, rating := range []int{0, 6, -1} {
		_, err := AddReview(db, course.ID, 42, rating, "")
		require.Error(t, err)
		assert.Equal(t, KindValidation, KindOf(err))
	}
}

func TestRemoveAbsentReviewIsQuiet(t *testing.T) {
	db := newTestDB(t)
	instructor := mkInstructor(t, db, "asha")
	course := mkCourse(t, db, instructor.ID, "Go Basics")

	assert.NoError(t, RemoveReview(db, course.ID, 42))
}

func TestUpdatePriceKeptNonNegative(t *testing.T) {
	db := newTestDB(t)
	instructor := mkInstructor(t, db, "asha")
	course := mkCourse(t, db, instructor.ID, "Go Basics")

	_, err := UpdateCourse(db, course.ID, CourseUpdate{Price: f64Ptr(-10)})
	require.Error(t, err)
	assert.Equal(t, KindValidation, KindOf(err))
}
