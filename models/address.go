package models

import "time"

type Address struct {
	ID          uint      `gorm:"primaryKey" json:"-"`
	UUID        string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"id"`
	FlatBuildNo string    `gorm:"type:varchar(255);not null" json:"flat_building_name"`
	Locality    string    `gorm:"type:varchar(255);not null" json:"locality"`
	City        string    `gorm:"type:varchar(30);not null" json:"city"`
	Pincode     string    `gorm:"type:varchar(30);not null" json:"pincode"`
	Active      int       `gorm:"not null;default:1" json:"-"`
	CustomerID  uint      `gorm:"index;not null" json:"-"`
	StateID     uint      `gorm:"index;not null" json:"-"`
	State       State     `gorm:"foreignKey:StateID;references:ID" json:"state"`
	CreatedAt   time.Time `gorm:"not null" json:"-"`
	UpdatedAt   time.Time `gorm:"not null" json:"-"`
}
