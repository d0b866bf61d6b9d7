package models

import "time"

type Project struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title       string     `gorm:"size:255;not null" json:"title"`
	Location    string     `gorm:"size:255;not null" json:"location"`
	Description string     `gorm:"type:text;not null" json:"description"`
	ImageURL    *string    `gorm:"size:500" json:"imageUrl"`
	Date        *time.Time `json:"date"`

	DisplayOrder int  `gorm:"not null;default:0;index" json:"displayOrder"`
	IsActive     bool `gorm:"not null" json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
