package models

import "gorm.io/gorm"

// Enrollment links a user to a course. The composite unique index is what
// actually guarantees at most one enrollment per (user, course) pair; the
// handler-level existence check alone is not safe under concurrent enrolls.
type Enrollment struct {
	gorm.Model
	UserID   uint   `json:"user_id" gorm:"uniqueIndex:idx_enrollment_user_course;not null"`
	CourseID uint   `json:"course_id" gorm:"uniqueIndex:idx_enrollment_user_course;not null"`
	User     User   `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Course   Course `json:"course" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}
