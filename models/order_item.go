package models

type OrderItem struct {
	ID       uint    `gorm:"primaryKey" json:"-"`
	OrderID  uint    `gorm:"index;not null" json:"-"`
	ItemID   uint    `gorm:"index;not null" json:"-"`
	Item     Item    `gorm:"foreignKey:ItemID;references:ID" json:"item"`
	Quantity int     `gorm:"not null" json:"quantity"`
	Price    float64 `gorm:"type:decimal(10,2);not null" json:"price"`
}
