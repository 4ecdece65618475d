package models

type Category struct {
	ID           uint   `gorm:"primaryKey" json:"-"`
	UUID         string `gorm:"type:varchar(64);uniqueIndex;not null" json:"id"`
	CategoryName string `gorm:"type:varchar(30);not null" json:"category_name"`
}
