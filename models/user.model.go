package models

import "gorm.io/gorm"

// User statuses: PENDING until an admin accepts or rejects the registration.
const (
	StatusPending  = "pending"
	StatusActive   = "active"
	StatusRejected = "rejected"
)

const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
	RoleParent  = "parent"
)

type User struct {
	gorm.Model
	FullName string `json:"fullName"`
	Email    string `json:"email" gorm:"uniqueIndex;not null"`
	Password string `json:"-" gorm:"not null"`
	Role     string `json:"role" gorm:"default:'student'"`
	Status   string `json:"status" gorm:"default:'pending'"`

	// Student fields
	StudentID           string `json:"studentId"`
	IsTransferStudent   bool   `json:"isTransferStudent" gorm:"default:false"`
	PreviousInstitution string `json:"previousInstitution"`
	IDDocumentPath      string `json:"idDocumentPath"`
	TransferLetterPath  string `json:"transferLetterPath"`

	// Teacher fields
	Specialization string `json:"specialization"`
	Experience     string `json:"experience"`
	Qualifications string `json:"qualifications"`
	ResumePath     string `json:"resumePath"`
}
