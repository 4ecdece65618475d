package models

type Payment struct {
	ID          uint   `gorm:"primaryKey" json:"-"`
	UUID        string `gorm:"type:varchar(64);uniqueIndex;not null" json:"id"`
	PaymentName string `gorm:"type:varchar(255);not null" json:"payment_name"`
}
