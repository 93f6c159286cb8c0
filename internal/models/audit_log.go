package models

import "time"

// AuditLog records admin logins and destructive operations.
type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	AdminID   *uint     `gorm:"index" json:"admin_id"`
	Action    string    `gorm:"size:50;not null;index" json:"action"`
	Detail    string    `gorm:"size:500" json:"detail"`
	IP        string    `gorm:"size:45" json:"ip"`
	CreatedAt time.Time `json:"created_at"`
}

func (AuditLog) TableName() string { return "audit_logs" }
