package content

import (
	"encoding/json"
	"strings"
	"time"

	courseModels "elearn/models/course"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Mutation pipelines for the content hierarchy. Each exported function runs
// the same ordered steps: validate, derive, persist, recompute. Validation
// and conflict checks complete before the first write, so a rejected
// mutation leaves no side effects.

// CourseInput carries the caller-supplied fields for a new course
type CourseInput struct {
	Title        string
	Description  string
	Category     []string
	Level        string
	Language     string
	ThumbnailURL string
	ThumbnailID  string
	Price        float64
	IsFree       bool
	Status       string
	Contributors []uint
}

// CourseUpdate carries a partial course patch; nil pointers leave fields untouched
type CourseUpdate struct {
	Title        *string
	Description  *string
	Category     []string
	Level        *string
	Language     *string
	ThumbnailURL *string
	ThumbnailID  *string
	Price        *float64
	IsFree       *bool
	Status       *string
	Contributors []uint
}

// CreateCourse validates and persists a new course with derived fields:
// unique slug from the title, zero price when free, publishedAt stamped if
// created directly in Published status.
func CreateCourse(db *gorm.DB, instructorID uint, in CourseInput) (*courseModels.Course, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, Validation("title is required")
	}
	if strings.TrimSpace(in.Description) == "" {
		return nil, Validation("description is required")
	}
	if len(in.Category) == 0 {
		return nil, Validation("at least one category is required")
	}
	if strings.TrimSpace(in.ThumbnailURL) == "" {
		return nil, Validation("thumbnail is required")
	}
	if in.Price < 0 {
		return nil, Validation("price must not be negative")
	}

	level := in.Level
	if level == "" {
		level = courseModels.LevelBeginner
	}
	if !courseModels.ValidLevel(level) {
		return nil, Validation("unknown level %q", in.Level)
	}

	language := in.Language
	if language == "" {
		language = courseModels.LanguageHinglish
	}
	if !courseModels.ValidLanguage(language) {
		return nil, Validation("unknown language %q", in.Language)
	}

	status := in.Status
	if status == "" {
		status = courseModels.StatusDraft
	}
	if !courseModels.ValidStatus(status) {
		return nil, Validation("unknown status %q", in.Status)
	}

	slug := Slugify(in.Title)
	if slug == "" {
		return nil, Validation("title produces an empty slug")
	}
	taken, err := slugTaken(db, slug, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, Conflict("a course with slug %q already exists", slug)
	}

	price := in.Price
	if in.IsFree {
		price = 0
	}

	now := time.Now()
	course := courseModels.Course{
		Title:        strings.TrimSpace(in.Title),
		Slug:         slug,
		Description:  in.Description,
		Category:     mustJSON(in.Category),
		Level:        level,
		Language:     language,
		ThumbnailURL: in.ThumbnailURL,
		ThumbnailID:  in.ThumbnailID,
		InstructorID: instructorID,
		Contributors: mustJSON(in.Contributors),
		Price:        price,
		IsFree:       in.IsFree,
		Status:       status,
		LastUpdated:  now,
	}
	if status == courseModels.StatusPublished {
		course.PublishedAt = &now
	}

	if err := db.Create(&course).Error; err != nil {
		return nil, Store("create course", err)
	}
	return &course, nil
}

// UpdateCourse applies a partial patch to a course, re-deriving the slug on
// title change, forcing price to 0 for free courses and stamping publishedAt
// exactly once on the first transition into Published.
func UpdateCourse(db *gorm.DB, courseID uint, patch CourseUpdate) (*courseModels.Course, error) {
	course, err := findCourse(db, courseID)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return nil, Validation("title must not be empty")
		}
		if title != course.Title {
			slug := Slugify(title)
			taken, err := slugTaken(db, slug, course.ID)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, Conflict("a course with slug %q already exists", slug)
			}
			course.Title = title
			course.Slug = slug
		}
	}
	if patch.Description != nil {
		if strings.TrimSpace(*patch.Description) == "" {
			return nil, Validation("description must not be empty")
		}
		course.Description = *patch.Description
	}
	if patch.Category != nil {
		if len(patch.Category) == 0 {
			return nil, Validation("at least one category is required")
		}
		course.Category = mustJSON(patch.Category)
	}
	if patch.Level != nil {
		if !courseModels.ValidLevel(*patch.Level) {
			return nil, Validation("unknown level %q", *patch.Level)
		}
		course.Level = *patch.Level
	}
	if patch.Language != nil {
		if !courseModels.ValidLanguage(*patch.Language) {
			return nil, Validation("unknown language %q", *patch.Language)
		}
		course.Language = *patch.Language
	}
	if patch.ThumbnailURL != nil {
		course.ThumbnailURL = *patch.ThumbnailURL
	}
	if patch.ThumbnailID != nil {
		course.ThumbnailID = *patch.ThumbnailID
	}
	if patch.Contributors != nil {
		course.Contributors = mustJSON(patch.Contributors)
	}
	if patch.Price != nil {
		if *patch.Price < 0 {
			return nil, Validation("price must not be negative")
		}
		course.Price = *patch.Price
	}
	if patch.IsFree != nil {
		course.IsFree = *patch.IsFree
	}
	if course.IsFree {
		course.Price = 0
	}
	if patch.Status != nil {
		if !courseModels.ValidStatus(*patch.Status) {
			return nil, Validation("unknown status %q", *patch.Status)
		}
		// publishedAt is stamped on the first transition into Published
		// and never overwritten afterwards
		if *patch.Status == courseModels.StatusPublished && course.PublishedAt == nil {
			now := time.Now()
			course.PublishedAt = &now
		}
		course.Status = *patch.Status
	}

	course.LastUpdated = time.Now()

	if err := db.Save(course).Error; err != nil {
		return nil, Store("update course", err)
	}
	return course, nil
}

// SectionInput carries the caller-supplied fields for a new section
type SectionInput struct {
	Title       string
	Description string
	OrderIndex  int
}

// CreateSection validates and persists a new section under a course. The
// title must be unique within the course; order defaults to the next slot.
func CreateSection(db *gorm.DB, courseID uint, in SectionInput) (*courseModels.Section, error) {
	if _, err := findCourse(db, courseID); err != nil {
		return nil, err
	}
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, Validation("title is required")
	}
	taken, err := sectionTitleTaken(db, courseID, title, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, Conflict("section %q already exists in this course", title)
	}

	orderIndex := in.OrderIndex
	if orderIndex == 0 {
		var maxOrder int
		db.Model(&courseModels.Section{}).
			Where("course_id = ? AND is_deleted = ?", courseID, false).
			Select("COALESCE(MAX(order_index), 0)").Scan(&maxOrder)
		orderIndex = maxOrder + 1
	}

	section := courseModels.Section{
		CourseID:    courseID,
		Title:       title,
		Description: in.Description,
		OrderIndex:  orderIndex,
	}
	if err := db.Create(&section).Error; err != nil {
		return nil, Store("create section", err)
	}
	return &section, nil
}

// SectionUpdate carries a partial section patch
type SectionUpdate struct {
	Title       *string
	Description *string
	OrderIndex  *int
}

// UpdateSection applies a partial patch to a section, keeping the title
// unique within its course.
func UpdateSection(db *gorm.DB, sectionID uint, patch SectionUpdate) (*courseModels.Section, error) {
	section, err := findSection(db, sectionID)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return nil, Validation("title must not be empty")
		}
		if title != section.Title {
			taken, err := sectionTitleTaken(db, section.CourseID, title, section.ID)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, Conflict("section %q already exists in this course", title)
			}
			section.Title = title
		}
	}
	if patch.Description != nil {
		section.Description = *patch.Description
	}
	if patch.OrderIndex != nil {
		section.OrderIndex = *patch.OrderIndex
	}

	if err := db.Save(section).Error; err != nil {
		return nil, Store("update section", err)
	}
	return section, nil
}

// LectureInput carries the caller-supplied fields for a new lecture
type LectureInput struct {
	Title             string
	Description       string
	VideoURL          string
	VideoID           string
	Duration          int64
	DurationFormatted string
	ThumbnailURL      string
	ThumbnailID       string
	Resources         []string
	OrderIndex        int
}

// CreateLecture validates and persists a new lecture under a section, then
// recomputes the owning section's and course's durations. A recompute
// failure is returned alongside the persisted lecture: the write stands and
// a stale total is correctable by re-running the recompute.
func CreateLecture(db *gorm.DB, sectionID uint, in LectureInput) (*courseModels.Lecture, error) {
	section, err := findSection(db, sectionID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Title) == "" {
		return nil, Validation("title is required")
	}
	if in.Duration <= 0 {
		return nil, Validation("duration must be a positive number of seconds")
	}

	formatted := in.DurationFormatted
	if formatted == "" {
		formatted = FormatDuration(in.Duration)
	}

	orderIndex := in.OrderIndex
	if orderIndex == 0 {
		var maxOrder int
		db.Model(&courseModels.Lecture{}).
			Where("section_id = ? AND is_deleted = ?", sectionID, false).
			Select("COALESCE(MAX(order_index), 0)").Scan(&maxOrder)
		orderIndex = maxOrder + 1
	}

	lecture := courseModels.Lecture{
		CourseID:          section.CourseID,
		SectionID:         section.ID,
		Title:             strings.TrimSpace(in.Title),
		Description:       in.Description,
		VideoURL:          in.VideoURL,
		VideoID:           in.VideoID,
		Duration:          in.Duration,
		DurationFormatted: formatted,
		ThumbnailURL:      in.ThumbnailURL,
		ThumbnailID:       in.ThumbnailID,
		Resources:         mustJSON(in.Resources),
		OrderIndex:        orderIndex,
	}
	if err := db.Create(&lecture).Error; err != nil {
		return nil, Store("create lecture", err)
	}

	if err := RecomputeDurations(db, lecture.SectionID, lecture.CourseID); err != nil {
		return &lecture, err
	}
	return &lecture, nil
}

// LectureUpdate carries a partial lecture patch
type LectureUpdate struct {
	Title             *string
	Description       *string
	VideoURL          *string
	VideoID           *string
	Duration          *int64
	DurationFormatted *string
	ThumbnailURL      *string
	ThumbnailID       *string
	Resources         []string
	OrderIndex        *int
}

// UpdateLecture applies a partial patch to a lecture. A duration change
// re-derives the formatted duration and triggers the section-then-course
// recompute.
func UpdateLecture(db *gorm.DB, lectureID uint, patch LectureUpdate) (*courseModels.Lecture, error) {
	lecture, err := findLecture(db, lectureID)
	if err != nil {
		return nil, err
	}

	durationChanged := false
	if patch.Title != nil {
		if strings.TrimSpace(*patch.Title) == "" {
			return nil, Validation("title must not be empty")
		}
		lecture.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Description != nil {
		lecture.Description = *patch.Description
	}
	if patch.VideoURL != nil {
		lecture.VideoURL = *patch.VideoURL
	}
	if patch.VideoID != nil {
		lecture.VideoID = *patch.VideoID
	}
	if patch.Duration != nil {
		if *patch.Duration <= 0 {
			return nil, Validation("duration must be a positive number of seconds")
		}
		if *patch.Duration != lecture.Duration {
			lecture.Duration = *patch.Duration
			durationChanged = true
			lecture.DurationFormatted = FormatDuration(lecture.Duration)
		}
	}
	if patch.DurationFormatted != nil && *patch.DurationFormatted != "" {
		lecture.DurationFormatted = *patch.DurationFormatted
	}
	if patch.ThumbnailURL != nil {
		lecture.ThumbnailURL = *patch.ThumbnailURL
	}
	if patch.ThumbnailID != nil {
		lecture.ThumbnailID = *patch.ThumbnailID
	}
	if patch.Resources != nil {
		lecture.Resources = mustJSON(patch.Resources)
	}
	if patch.OrderIndex != nil {
		lecture.OrderIndex = *patch.OrderIndex
	}

	if err := db.Save(lecture).Error; err != nil {
		return nil, Store("update lecture", err)
	}

	if durationChanged {
		if err := RecomputeDurations(db, lecture.SectionID, lecture.CourseID); err != nil {
			return lecture, err
		}
	}
	return lecture, nil
}

// RecordLectureView bumps a lecture's view counter. Views only ever grow.
func RecordLectureView(db *gorm.DB, lectureID uint) error {
	res := db.Model(&courseModels.Lecture{}).
		Where("id = ? AND is_deleted = ?", lectureID, false).
		Update("views", gorm.Expr("views + 1"))
	if res.Error != nil {
		return Store("increment lecture views", res.Error)
	}
	if res.RowsAffected == 0 {
		return NotFound("lecture %d not found", lectureID)
	}
	return nil
}

// AddReview attaches a student review to a course and recomputes the average
// rating. A student reviews a course at most once.
func AddReview(db *gorm.DB, courseID, userID uint, rating int, comment string) (*courseModels.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, Validation("rating must be between 1 and 5")
	}
	if _, err := findCourse(db, courseID); err != nil {
		return nil, err
	}

	var existing courseModels.Review
	err := db.Where("course_id = ? AND user_id = ? AND is_deleted = ?", courseID, userID, false).
		First(&existing).Error
	if err == nil {
		return nil, Conflict("you have already reviewed this course")
	}
	if err != gorm.ErrRecordNotFound {
		return nil, Store("look up existing review", err)
	}

	review := courseModels.Review{
		CourseID: courseID,
		UserID:   userID,
		Rating:   rating,
		Comment:  comment,
	}
	if err := db.Create(&review).Error; err != nil {
		return nil, Store("create review", err)
	}

	if _, err := RecomputeCourseRating(db, courseID); err != nil {
		return &review, err
	}
	return &review, nil
}

// RemoveReview detaches a student's review from a course and recomputes the
// average rating. Removing an absent review succeeds quietly.
func RemoveReview(db *gorm.DB, courseID, userID uint) error {
	var review courseModels.Review
	err := db.Where("course_id = ? AND user_id = ? AND is_deleted = ?", courseID, userID, false).
		First(&review).Error
	if err == gorm.ErrRecordNotFound {
		return nil
	}
	if err != nil {
		return Store("look up review", err)
	}

	review.IsDeleted = true
	if err := db.Save(&review).Error; err != nil {
		return Store("remove review", err)
	}

	_, err = RecomputeCourseRating(db, courseID)
	return err
}

// findCourse loads a live course or reports NotFound
func findCourse(db *gorm.DB, courseID uint) (*courseModels.Course, error) {
	var course courseModels.Course
	err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error
	if err == gorm.ErrRecordNotFound {
		return nil, NotFound("course %d not found", courseID)
	}
	if err != nil {
		return nil, Store("look up course", err)
	}
	return &course, nil
}

// findSection loads a live section or reports NotFound
func findSection(db *gorm.DB, sectionID uint) (*courseModels.Section, error) {
	var section courseModels.Section
	err := db.Where("id = ? AND is_deleted = ?", sectionID, false).First(&section).Error
	if err == gorm.ErrRecordNotFound {
		return nil, NotFound("section %d not found", sectionID)
	}
	if err != nil {
		return nil, Store("look up section", err)
	}
	return &section, nil
}

// findLecture loads a live lecture or reports NotFound
func findLecture(db *gorm.DB, lectureID uint) (*courseModels.Lecture, error) {
	var lecture courseModels.Lecture
	err := db.Where("id = ? AND is_deleted = ?", lectureID, false).First(&lecture).Error
	if err == gorm.ErrRecordNotFound {
		return nil, NotFound("lecture %d not found", lectureID)
	}
	if err != nil {
		return nil, Store("look up lecture", err)
	}
	return &lecture, nil
}

// slugTaken reports whether another live course already uses slug
func slugTaken(db *gorm.DB, slug string, excludeID uint) (bool, error) {
	var count int64
	q := db.Model(&courseModels.Course{}).Where("slug = ? AND is_deleted = ?", slug, false)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, Store("check slug uniqueness", err)
	}
	return count > 0, nil
}

// sectionTitleTaken reports whether another live section in the course uses title
func sectionTitleTaken(db *gorm.DB, courseID uint, title string, excludeID uint) (bool, error) {
	var count int64
	q := db.Model(&courseModels.Section{}).
		Where("course_id = ? AND title = ? AND is_deleted = ?", courseID, title, false)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, Store("check section title uniqueness", err)
	}
	return count > 0, nil
}

// mustJSON marshals a value that cannot fail (slices of strings/ints)
func mustJSON(v interface{}) datatypes.JSON {
	b, _ := json.Marshal(v)
	return datatypes.JSON(b)
}
