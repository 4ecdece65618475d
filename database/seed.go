package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yeremiapane/food-ordering-app/models"
	"github.com/yeremiapane/food-ordering-app/utils"
)

// Seed mengisi data referensi awal (states, payment methods, coupons,
// plus contoh restoran beserta menunya). Idempotent: baris yang sudah
// ada tidak dibuat ulang.
func Seed(db *gorm.DB) error {
	if err := seedStates(db); err != nil {
		return err
	}
	if err := seedPayments(db); err != nil {
		return err
	}
	if err := seedCoupons(db); err != nil {
		return err
	}
	if err := seedRestaurants(db); err != nil {
		return err
	}

	if utils.InfoLogger != nil {
		utils.InfoLogger.Info("Database seeding completed")
	}
	return nil
}

func seedStates(db *gorm.DB) error {
	names := []string{
		"Karnataka", "Maharashtra", "Delhi", "Tamil Nadu",
		"West Bengal", "Telangana", "Goa", "Punjab",
	}

	for _, name := range names {
		var count int64
		if err := db.Model(&models.State{}).Where("state_name = ?", name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&models.State{UUID: uuid.NewString(), StateName: name}).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedPayments(db *gorm.DB) error {
	names := []string{"Cash on Delivery", "Wallet", "Net Banking", "Debit Card", "Credit Card"}

	for _, name := range names {
		var count int64
		if err := db.Model(&models.Payment{}).Where("payment_name = ?", name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&models.Payment{UUID: uuid.NewString(), PaymentName: name}).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedCoupons(db *gorm.DB) error {
	coupons := []models.Coupon{
		{CouponName: "FLAT30", Percent: 30},
		{CouponName: "MYFIRSTORDER", Percent: 20},
		{CouponName: "WEEKEND10", Percent: 10},
	}

	for _, coupon := range coupons {
		var count int64
		if err := db.Model(&models.Coupon{}).Where("coupon_name = ?", coupon.CouponName).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		coupon.UUID = uuid.NewString()
		if err := db.Create(&coupon).Error; err != nil {
			return err
		}
	}
	return nil
}

// seedRestaurants membuat contoh restoran, kategori, dan item supaya
// endpoint browsing langsung ada isinya pada instalasi baru.
func seedRestaurants(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Restaurant{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	categories := map[string]*models.Category{}
	for _, name := range []string{"Chinese", "Italian", "Desserts", "Snacks", "Drinks"} {
		category := &models.Category{UUID: uuid.NewString(), CategoryName: name}
		if err := db.Create(category).Error; err != nil {
			return err
		}
		categories[name] = category
	}

	type seedItem struct {
		name     string
		price    float64
		itemType string
		category string
	}

	restaurants := []struct {
		name          string
		photoURL      string
		rating        float64
		avgPrice      int
		numberOfRates int
		items         []seedItem
	}{
		{
			name:          "Spice Garden",
			photoURL:      "https://images.food-ordering.dev/spice-garden.png",
			rating:        4.5,
			avgPrice:      450,
			numberOfRates: 120,
			items: []seedItem{
				{"Hakka Noodles", 160, models.ItemTypeVeg, "Chinese"},
				{"Chilli Chicken", 220, models.ItemTypeNonVeg, "Chinese"},
				{"Spring Rolls", 120, models.ItemTypeVeg, "Snacks"},
				{"Iced Tea", 80, models.ItemTypeVeg, "Drinks"},
			},
		},
		{
			name:          "Casa Pasta",
			photoURL:      "https://images.food-ordering.dev/casa-pasta.png",
			rating:        4.2,
			avgPrice:      600,
			numberOfRates: 85,
			items: []seedItem{
				{"Margherita Pizza", 280, models.ItemTypeVeg, "Italian"},
				{"Chicken Lasagna", 340, models.ItemTypeNonVeg, "Italian"},
				{"Tiramisu", 190, models.ItemTypeVeg, "Desserts"},
			},
		},
		{
			name:          "Snack Shack",
			photoURL:      "https://images.food-ordering.dev/snack-shack.png",
			rating:        3.8,
			avgPrice:      250,
			numberOfRates: 210,
			items: []seedItem{
				{"Samosa", 40, models.ItemTypeVeg, "Snacks"},
				{"Gulab Jamun", 90, models.ItemTypeVeg, "Desserts"},
				{"Cold Coffee", 110, models.ItemTypeVeg, "Drinks"},
			},
		},
	}

	for _, entry := range restaurants {
		restaurant := models.Restaurant{
			UUID:                 uuid.NewString(),
			RestaurantName:       entry.name,
			PhotoURL:             entry.photoURL,
			CustomerRating:       entry.rating,
			AveragePriceForTwo:   entry.avgPrice,
			NumberCustomersRated: entry.numberOfRates,
		}
		if err := db.Create(&restaurant).Error; err != nil {
			return err
		}

		for _, item := range entry.items {
			record := models.Item{
				UUID:         uuid.NewString(),
				ItemName:     item.name,
				Price:        item.price,
				Type:         item.itemType,
				RestaurantID: restaurant.ID,
				CategoryID:   categories[item.category].ID,
			}
			if err := db.Create(&record).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
