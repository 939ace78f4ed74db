package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type UserProfile struct {
	ID          uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt   time.Time      `json:"created_at" example:"2024-01-01T00:00:00Z"`
	UpdatedAt   time.Time      `json:"updated_at" example:"2024-01-01T00:00:00Z"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID      uint           `gorm:"index;not null" json:"user_id" example:"1"`
	Name        string         `gorm:"not null" json:"name" binding:"required,min=3" example:"Fathan"`
	DateOfBirth time.Time      `json:"date_of_birth" example:"1999-11-27T00:00:00Z"`
	Avatar      string         `json:"avatar" example:"https://api.dicebear.com/6.x/adventurer-neutral/svg?seed=Fathan"`
}

// BeforeCreate fills a default generated avatar when none was provided.
func (p *UserProfile) BeforeCreate(tx *gorm.DB) error {
	if p.Avatar == "" {
		p.Avatar = fmt.Sprintf("https://api.dicebear.com/6.x/adventurer-neutral/svg?seed=%s", p.Name)
	}
	return nil
}
