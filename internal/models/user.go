package models

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	OpenID string `gorm:"column:open_id;size:64;uniqueIndex;not null" json:"openId"`

	Name        *string `gorm:"type:text" json:"name"`
	Email       *string `gorm:"size:320" json:"email"`
	LoginMethod *string `gorm:"size:64" json:"loginMethod"`
	Role        string  `gorm:"size:20;not null;default:'user'" json:"role"`

	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	LastSignedIn time.Time `json:"lastSignedIn"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
