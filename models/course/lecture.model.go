package course

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Lecture represents a leaf content unit with a video, duration and resources
type Lecture struct {
	gorm.Model
	CourseID    uint   `json:"course_id" gorm:"index;not null"` // denormalized for cascade queries
	SectionID   uint   `json:"section_id" gorm:"index;not null"`
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description" gorm:"type:text"`

	VideoURL string `json:"video_url"`
	VideoID  string `json:"video_id"` // provider-assigned public id

	Duration          int64  `json:"duration" gorm:"not null"` // seconds, positive
	DurationFormatted string `json:"duration_formatted"`       // derived "H:MM:SS" or "MM:SS"

	ThumbnailURL string         `json:"thumbnail_url"`
	ThumbnailID  string         `json:"thumbnail_id"`
	Resources    datatypes.JSON `json:"resources"` // array of resource file URLs

	OrderIndex int   `json:"order_index" gorm:"default:0"` // Order within section
	Views      int64 `json:"views" gorm:"default:0"`       // monotonically non-decreasing
	IsDeleted  bool  `gorm:"default:false"`
}
