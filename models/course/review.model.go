package course

import "gorm.io/gorm"

// Review is owned by its course: it is created and removed only through the
// course update pipeline and cascades away with the course.
type Review struct {
	gorm.Model
	CourseID  uint   `json:"course_id" gorm:"index;not null"`
	UserID    uint   `json:"user_id" gorm:"index;not null"`
	Rating    int    `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"` // 1–5 rating
	Comment   string `json:"comment" gorm:"type:text;default:''"`                      // Optional comment
	IsDeleted bool   `gorm:"default:false"`
}
