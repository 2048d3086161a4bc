package course

import "gorm.io/gorm"

// Section represents an ordered grouping of lectures within a course
type Section struct {
	gorm.Model
	CourseID    uint   `json:"course_id" gorm:"index;not null"`
	Title       string `json:"title" gorm:"not null"` // unique within its course
	Description string `json:"description" gorm:"type:text"`
	OrderIndex  int    `json:"order_index" gorm:"default:0"` // Section order in course
	Duration    int64  `json:"duration" gorm:"default:0"`    // derived, seconds
	IsDeleted   bool   `gorm:"default:false"`
}
