package models

import "time"

// Admin is a CMS account. The designated super admin (config) is the only
// one allowed to delete other admins.
type Admin struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Email           string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Name            string    `gorm:"size:100;not null" json:"name"`
	PasswordHash    string    `gorm:"size:255;not null" json:"-"`
	ProfileImageURL string    `gorm:"size:512" json:"profile_image_url"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (Admin) TableName() string { return "admins" }
