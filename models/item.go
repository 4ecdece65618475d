package models

const (
	ItemTypeVeg    = "VEG"
	ItemTypeNonVeg = "NON_VEG"
)

type Item struct {
	ID           uint    `gorm:"primaryKey" json:"-"`
	UUID         string  `gorm:"type:varchar(64);uniqueIndex;not null" json:"id"`
	ItemName     string  `gorm:"type:varchar(30);not null" json:"item_name"`
	Price        float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	Type         string  `gorm:"type:varchar(10);not null" json:"item_type"`
	RestaurantID uint    `gorm:"index;not null" json:"-"`
	CategoryID   uint    `gorm:"index;not null" json:"-"`
}
