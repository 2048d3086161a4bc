package course

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Course status values
const (
	StatusDraft     = "Draft"
	StatusPublished = "Published"
	StatusArchived  = "Archived"
)

// Course levels
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
)

// Course languages
const (
	LanguageHindi    = "Hindi"
	LanguageEnglish  = "English"
	LanguageHinglish = "Hinglish"
)

// Course represents a top-level content unit owned by an instructor
type Course struct {
	gorm.Model
	Title        string         `json:"title" gorm:"not null"`
	Slug         string         `json:"slug" gorm:"uniqueIndex;not null"`
	Description  string         `json:"description" gorm:"type:text"`
	Category     datatypes.JSON `json:"category"`                         // array of tag strings, non-empty
	Level        string         `json:"level" gorm:"default:'Beginner'"`  // Beginner, Intermediate, Advanced
	Language     string         `json:"language" gorm:"default:'Hinglish'"`
	ThumbnailURL string         `json:"thumbnail_url"`
	ThumbnailID  string         `json:"thumbnail_id"` // provider-assigned public id
	InstructorID uint           `json:"instructor_id" gorm:"index;not null"`
	Contributors datatypes.JSON `json:"contributors"` // array of user ids

	Price  float64 `json:"price" gorm:"default:0"`
	IsFree bool    `json:"is_free" gorm:"default:false"`

	AverageRating float64 `json:"average_rating" gorm:"default:0"` // derived, 0-5
	TotalDuration int64   `json:"total_duration" gorm:"default:0"` // derived, seconds

	Status      string     `json:"status" gorm:"default:'Draft'"` // Draft, Published, Archived
	PublishedAt *time.Time `json:"published_at"`                  // set once, never cleared
	LastUpdated time.Time  `json:"last_updated"`
	IsDeleted   bool       `gorm:"default:false"`
}

// ValidLevel reports whether s is a recognised course level
func ValidLevel(s string) bool {
	return s == LevelBeginner || s == LevelIntermediate || s == LevelAdvanced
}

// ValidLanguage reports whether s is a recognised course language
func ValidLanguage(s string) bool {
	return s == LanguageHindi || s == LanguageEnglish || s == LanguageHinglish
}

// ValidStatus reports whether s is a recognised course status
func ValidStatus(s string) bool {
	return s == StatusDraft || s == StatusPublished || s == StatusArchived
}
