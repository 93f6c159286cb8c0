package models

import "time"

// Inquiry is a contact-form submission from the landing page. Stored first;
// the sheet/webhook notification is fired best-effort afterwards.
type Inquiry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Phone     string    `gorm:"size:30;not null" json:"phone"`
	Email     string    `gorm:"size:255" json:"email"`
	Message   string    `gorm:"size:2000" json:"message"`
	Handled   bool      `gorm:"default:false;index" json:"handled"`
	CreatedAt time.Time `json:"created_at"`
}

func (Inquiry) TableName() string { return "inquiries" }
