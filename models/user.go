package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Name         string `json:"name"`
	Email        string `json:"email" gorm:"unique;not null"`
	Password     string `json:"-" gorm:"not null"`
	Avatar       string `json:"avatar"`
	IsSuperadmin bool   `json:"isSuperadmin" gorm:"default:false"`
}
