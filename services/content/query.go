package content

import (
	"strconv"
	"strings"

	"elearn/models"
	courseModels "elearn/models/course"

	"gorm.io/gorm"
)

// CourseFilter carries the optional catalog filters. MinPrice/MaxPrice are
// the raw query strings: non-numeric input is treated as absent, not an error.
type CourseFilter struct {
	Search   string
	Category string
	Level    string
	Language string
	MinPrice string
	MaxPrice string
	Status   string // honored on the admin path only
	SortBy   string // newest (default), price_low_high, price_high_low, rating
	Page     int    // 1-based
	Limit    int
}

// Pagination is the listing metadata returned alongside a course page
type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

// CourseListing is a course row with its instructor's public fields joined in
type CourseListing struct {
	courseModels.Course
	Instructor models.PublicUser `json:"instructor"`
}

// ListPublishedCourses is the student-facing catalog. Any caller-supplied
// status is ignored; results are always constrained to Published.
func ListPublishedCourses(db *gorm.DB, f CourseFilter) ([]CourseListing, Pagination, error) {
	f.Status = courseModels.StatusPublished
	return listCourses(db, f, true)
}

// ListAllCourses is the admin catalog: an explicit status filter is honored,
// and all statuses are returned when it is omitted.
func ListAllCourses(db *gorm.DB, f CourseFilter) ([]CourseListing, Pagination, error) {
	return listCourses(db, f, f.Status != "")
}

func listCourses(db *gorm.DB, f CourseFilter, filterStatus bool) ([]CourseListing, Pagination, error) {
	page := f.Page
	if page < 1 {
		page = 1
	}
	limit := f.Limit
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	q := db.Model(&courseModels.Course{}).Where("is_deleted = ?", false)

	if search := strings.TrimSpace(f.Search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}
	if f.Category != "" {
		// Category is a JSON array of tags; match the quoted tag in its text form
		q = q.Where("CAST(category AS TEXT) LIKE ?", "%\""+f.Category+"\"%")
	}
	if f.Level != "" {
		q = q.Where("level = ?", f.Level)
	}
	if f.Language != "" {
		q = q.Where("language = ?", f.Language)
	}
	if filterStatus {
		q = q.Where("status = ?", f.Status)
	}
	if min, err := strconv.ParseFloat(f.MinPrice, 64); err == nil {
		q = q.Where("price >= ?", min)
	}
	if max, err := strconv.ParseFloat(f.MaxPrice, 64); err == nil {
		q = q.Where("price <= ?", max)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, Pagination{}, Store("count courses", err)
	}

	switch f.SortBy {
	case "price_low_high":
		q = q.Order("price asc")
	case "price_high_low":
		q = q.Order("price desc")
	case "rating":
		q = q.Order("average_rating desc")
	default:
		q = q.Order("created_at desc")
	}

	var courses []courseModels.Course
	if err := q.Offset(offset).Limit(limit).Find(&courses).Error; err != nil {
		return nil, Pagination{}, Store("list courses", err)
	}

	// Join instructor public fields
	result := make([]CourseListing, len(courses))
	for i, c := range courses {
		var instructor models.User
		db.Where("id = ?", c.InstructorID).First(&instructor)
		result[i] = CourseListing{Course: c, Instructor: instructor.Public()}
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return result, Pagination{Total: total, Page: page, Limit: limit, TotalPages: totalPages}, nil
}
