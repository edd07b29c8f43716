package models

import "gorm.io/gorm"

type ContactMessage struct {
	gorm.Model
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	Reply     string `json:"reply"` // single admin reply, overwritten if set again
}
