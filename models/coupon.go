package models

type Coupon struct {
	ID         uint   `gorm:"primaryKey" json:"-"`
	UUID       string `gorm:"type:varchar(64);uniqueIndex;not null" json:"id"`
	CouponName string `gorm:"type:varchar(255);not null" json:"coupon_name"`
	Percent    int    `gorm:"not null" json:"percent"`
}
