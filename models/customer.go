package models

import "time"

type Customer struct {
	ID            uint      `gorm:"primaryKey" json:"-"`
	UUID          string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"id"`
	FirstName     string    `gorm:"type:varchar(30);not null" json:"first_name"`
	LastName      string    `gorm:"type:varchar(30)" json:"last_name"`
	Email         string    `gorm:"type:varchar(50);not null" json:"email_address"`
	ContactNumber string    `gorm:"type:varchar(30);uniqueIndex;not null" json:"contact_number"`
	Password      string    `gorm:"type:varchar(255);not null" json:"-"`
	Salt          string    `gorm:"type:varchar(255);not null" json:"-"`
	CreatedAt     time.Time `gorm:"not null" json:"-"`
	UpdatedAt     time.Time `gorm:"not null" json:"-"`
}
