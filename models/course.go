package models

import "gorm.io/gorm"

// CourseLevel is the closed set of difficulty levels a course can have.
type CourseLevel string

const (
	LevelBeginner     CourseLevel = "beginner"
	LevelIntermediate CourseLevel = "intermediate"
	LevelAdvanced     CourseLevel = "advanced"
)

func (l CourseLevel) Valid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

type Course struct {
	gorm.Model
	Title       string      `json:"title" gorm:"not null"`
	Description string      `json:"description" gorm:"not null"`
	Category    string      `json:"category" gorm:"not null"`
	Level       CourseLevel `json:"level" gorm:"not null"`
	Popularity  int         `json:"popularity" gorm:"default:0"`
}
