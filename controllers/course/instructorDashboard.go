package controllers

import (
	"elearn/database"
	"elearn/middleware"
	"elearn/models"
	courseModels "elearn/models/course"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
)

// InstructorDashboardStats summarises the calling instructor's content and
// audience: entity counts, ratings and a 7-day enrollment window.
func InstructorDashboardStats(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var courseIDs []uint
	db.Model(&courseModels.Course{}).
		Where("instructor_id = ? AND is_deleted = ?", user.ID, false).
		Pluck("id", &courseIDs)

	totalCourses := int64(len(courseIDs))
	var publishedCourses, totalSections, totalLectures, totalEnrollments, totalReviews int64

	if totalCourses > 0 {
		db.Model(&courseModels.Course{}).
			Where("id IN ? AND status = ?", courseIDs, courseModels.StatusPublished).
			Count(&publishedCourses)
		db.Model(&courseModels.Section{}).
			Where("course_id IN ? AND is_deleted = ?", courseIDs, false).
			Count(&totalSections)
		db.Model(&courseModels.Lecture{}).
			Where("course_id IN ? AND is_deleted = ?", courseIDs, false).
			Count(&totalLectures)
		db.Model(&courseModels.Enrollment{}).
			Where("course_id IN ? AND is_deleted = ?", courseIDs, false).
			Count(&totalEnrollments)
		db.Model(&courseModels.Review{}).
			Where("course_id IN ? AND is_deleted = ?", courseIDs, false).
			Count(&totalReviews)
	}

	// Enrollment trend over the last 7 days
	type DayCount struct {
		Day   string `json:"day"`
		Count int64  `json:"count"`
	}
	trend := make([]DayCount, 0, 7)
	if totalCourses > 0 {
		for i := 6; i >= 0; i-- {
			day := now.With(time.Now().AddDate(0, 0, -i))
			var count int64
			db.Model(&courseModels.Enrollment{}).
				Where("course_id IN ? AND is_deleted = ? AND created_at BETWEEN ? AND ?",
					courseIDs, false, day.BeginningOfDay(), day.EndOfDay()).
				Count(&count)
			trend = append(trend, DayCount{Day: day.BeginningOfDay().Format("2006-01-02"), Count: count})
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard stats fetched successfully!", fiber.Map{
		"total_courses":     totalCourses,
		"published_courses": publishedCourses,
		"total_sections":    totalSections,
		"total_lectures":    totalLectures,
		"total_enrollments": totalEnrollments,
		"total_reviews":     totalReviews,
		"enrollment_trend":  trend,
	})
}
