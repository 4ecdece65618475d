package models

import "time"

// Order dibuat sekali saat checkout dan tidak pernah diubah lagi.
type Order struct {
	ID           uint        `gorm:"primaryKey" json:"-"`
	UUID         string      `gorm:"type:varchar(64);uniqueIndex;not null" json:"id"`
	Bill         float64     `gorm:"type:decimal(10,2);not null" json:"bill"`
	Discount     float64     `gorm:"type:decimal(10,2);not null;default:0" json:"discount"`
	Date         time.Time   `gorm:"not null" json:"date"`
	CustomerID   uint        `gorm:"index;not null" json:"-"`
	Customer     Customer    `gorm:"foreignKey:CustomerID;references:ID" json:"customer"`
	AddressID    uint        `gorm:"index;not null" json:"-"`
	Address      Address     `gorm:"foreignKey:AddressID;references:ID" json:"address"`
	RestaurantID uint        `gorm:"index;not null" json:"-"`
	Restaurant   Restaurant  `gorm:"foreignKey:RestaurantID;references:ID" json:"-"`
	CouponID     *uint       `gorm:"index" json:"-"`
	Coupon       *Coupon     `gorm:"foreignKey:CouponID;references:ID" json:"coupon,omitempty"`
	PaymentID    *uint       `gorm:"index" json:"-"`
	Payment      *Payment    `gorm:"foreignKey:PaymentID;references:ID" json:"payment,omitempty"`
	Items        []OrderItem `gorm:"foreignKey:OrderID" json:"item_quantities"`
}
