package models

import "time"

// Submitted through the public contact form. Only IsRead ever changes.
type ContactMessage struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name    string  `gorm:"size:255;not null" json:"name"`
	Email   string  `gorm:"size:320;not null" json:"email"`
	Subject *string `gorm:"size:255" json:"subject"`
	Message string  `gorm:"type:text;not null" json:"message"`
	IsRead  bool    `gorm:"not null;default:false" json:"isRead"`

	CreatedAt time.Time `gorm:"index" json:"createdAt"`
}
