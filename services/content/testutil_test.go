package content

import (
	"fmt"
	"testing"

	"elearn/models"
	courseModels "elearn/models/course"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a per-test in-memory database with the full schema
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&courseModels.Course{},
		&courseModels.Section{},
		&courseModels.Lecture{},
		&courseModels.Review{},
		&courseModels.Enrollment{},
	))
	return db
}

func mkInstructor(t *testing.T, db *gorm.DB, name string) *models.User {
	t.Helper()

	user := models.User{
		Name:     name,
		Email:    fmt.Sprintf("%s@example.com", name),
		Role:     models.RoleInstructor,
		Password: "x",
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func mkCourse(t *testing.T, db *gorm.DB, instructorID uint, title string) *courseModels.Course {
	t.Helper()

	course, err := CreateCourse(db, instructorID, CourseInput{
		Title:        title,
		Description:  "a course about " + title,
		Category:     []string{"general"},
		ThumbnailURL: "https://cdn.example.com/thumb.png",
		Price:        100,
	})
	require.NoError(t, err)
	return course
}

func mkSection(t *testing.T, db *gorm.DB, courseID uint, title string) *courseModels.Section {
	t.Helper()

	section, err := CreateSection(db, courseID, SectionInput{Title: title})
	require.NoError(t, err)
	return section
}

func mkLecture(t *testing.T, db *gorm.DB, sectionID uint, title string, duration int64) *courseModels.Lecture {
	t.Helper()

	lecture, err := CreateLecture(db, sectionID, LectureInput{
		Title:    title,
		VideoURL: "https://cdn.example.com/video.mp4",
		Duration: duration,
	})
	require.NoError(t, err)
	return lecture
}

func reloadCourse(t *testing.T, db *gorm.DB, id uint) *courseModels.Course {
	t.Helper()

	var course courseModels.Course
	require.NoError(t, db.First(&course, id).Error)
	return &course
}

func reloadSection(t *testing.T, db *gorm.DB, id uint) *courseModels.Section {
	t.Helper()

	var section courseModels.Section
	require.NoError(t, db.First(&section, id).Error)
	return &section
}
