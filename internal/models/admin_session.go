package models

import "time"

// AdminSession is a server-side session row keyed by an opaque token stored
// in the browser cookie. Destroyed on logout; expired rows are deleted
// lazily on lookup.
type AdminSession struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Token      string    `gorm:"uniqueIndex;size:64;not null" json:"-"`
	AdminID    uint      `gorm:"not null;index" json:"admin_id"`
	AdminEmail string    `gorm:"size:255;not null" json:"admin_email"`
	ExpiresAt  time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt  time.Time `json:"created_at"`
}

func (AdminSession) TableName() string { return "admin_sessions" }

func (s *AdminSession) Expired(now time.Time) bool { return now.After(s.ExpiresAt) }
