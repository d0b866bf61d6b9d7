package models

import "time"

type TeamMember struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name     string  `gorm:"size:255;not null" json:"name"`
	Role     string  `gorm:"size:255;not null" json:"role"`
	Bio      *string `gorm:"type:text" json:"bio"`
	ImageURL *string `gorm:"size:500" json:"imageUrl"`

	DisplayOrder int  `gorm:"not null;default:0;index" json:"displayOrder"`
	IsActive     bool `gorm:"not null" json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
