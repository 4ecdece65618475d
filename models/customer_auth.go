package models

import "time"

// CustomerAuth adalah satu sesi login. Satu baris per login, tidak pernah
// dipakai ulang; logout hanya mengisi LogoutAt.
type CustomerAuth struct {
	ID          uint       `gorm:"primaryKey" json:"-"`
	UUID        string     `gorm:"type:varchar(64);uniqueIndex;not null" json:"id"`
	CustomerID  uint       `gorm:"index;not null" json:"-"`
	Customer    Customer   `gorm:"foreignKey:CustomerID;references:ID" json:"-"`
	AccessToken string     `gorm:"type:varchar(500);uniqueIndex;not null" json:"-"`
	LoginAt     time.Time  `gorm:"not null" json:"login_at"`
	ExpiresAt   time.Time  `gorm:"not null" json:"expires_at"`
	LogoutAt    *time.Time `json:"logout_at,omitempty"`
}
