package models

import "time"

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title          string  `gorm:"size:255;not null" json:"title"`
	Description    string  `gorm:"type:text;not null" json:"description"`
	Flower         string  `gorm:"size:255;not null" json:"flower"`
	FlowerMeaning  string  `gorm:"type:text;not null" json:"flowerMeaning"`
	TargetAudience string  `gorm:"size:255;not null" json:"targetAudience"`
	Duration       string  `gorm:"size:100;not null" json:"duration"`
	Price          string  `gorm:"size:100;not null" json:"price"`
	Details        *string `gorm:"type:text" json:"details"`
	ImageURL       *string `gorm:"size:500" json:"imageUrl"`

	DisplayOrder int  `gorm:"not null;default:0;index" json:"displayOrder"`
	IsActive     bool `gorm:"not null" json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
