package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Content is one editable page section. The four fixed fields cover the
// common case; Extra carries any further keys a section accumulates
// (feature lists, category arrays, hero settings).
type Content struct {
	gorm.Model
	Section     string         `json:"section" gorm:"uniqueIndex;not null"`
	Title       string         `json:"title"`
	Subtitle    string         `json:"subtitle"`
	Description string         `json:"description"`
	ImageURL    string         `json:"imageUrl"`
	Extra       datatypes.JSON `json:"extra,omitempty"`
}
