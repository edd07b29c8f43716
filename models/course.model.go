package models

import "gorm.io/gorm"

type Course struct {
	gorm.Model
	Title        string `json:"title"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	Price        int    `json:"price"` // smallest currency unit
	Duration     string `json:"duration"`
	StudentCount int    `json:"studentCount" gorm:"default:0"`
	Rating       string `json:"rating" gorm:"default:'4.8'"`
	ImageURL     string `json:"imageUrl"`
	IsActive     bool   `json:"isActive" gorm:"default:true"`
}
