package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Email    string `gorm:"unique;not null" json:"email" example:"fathan@mail.com"`
	Password string `json:"-"`

	Profile    UserProfile `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Activities []Activity  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Goals      []Goal      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
