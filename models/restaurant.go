package models

type Restaurant struct {
	ID                   uint     `gorm:"primaryKey" json:"-"`
	UUID                 string   `gorm:"type:varchar(64);uniqueIndex;not null" json:"id"`
	RestaurantName       string   `gorm:"type:varchar(50);not null" json:"restaurant_name"`
	PhotoURL             string   `gorm:"type:varchar(255)" json:"photo_url"`
	CustomerRating       float64  `gorm:"type:decimal(4,2);not null;default:0" json:"customer_rating"`
	AveragePriceForTwo   int      `gorm:"not null;default:0" json:"average_price"`
	NumberCustomersRated int      `gorm:"not null;default:0" json:"number_customers_rated"`
	AddressID            *uint    `gorm:"index" json:"-"`
	Address              *Address `gorm:"foreignKey:AddressID;references:ID" json:"address,omitempty"`
}
