package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/yeremiapane/food-ordering-app/config"
	"github.com/yeremiapane/food-ordering-app/controllers"
	"github.com/yeremiapane/food-ordering-app/database"
	"github.com/yeremiapane/food-ordering-app/models"
	"github.com/yeremiapane/food-ordering-app/repositories"
	"github.com/yeremiapane/food-ordering-app/router"
	"github.com/yeremiapane/food-ordering-app/services"
	"github.com/yeremiapane/food-ordering-app/utils"
)

func main() {
	// Load .env di awal sebelum apapun
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	utils.InitLogger()

	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	db, err := config.InitDB(cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.State{},
		&models.Customer{},
		&models.CustomerAuth{},
		&models.Address{},
		&models.Restaurant{},
		&models.Category{},
		&models.Item{},
		&models.Coupon{},
		&models.Payment{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")

	if err := database.Seed(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to seed database: %v", err)
	}

	customerRepo := repositories.NewCustomerRepository(db)
	addressRepo := repositories.NewAddressRepository(db)
	stateRepo := repositories.NewStateRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	couponRepo := repositories.NewCouponRepository(db)
	paymentRepo := repositories.NewPaymentRepository(db)
	restaurantRepo := repositories.NewRestaurantRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	itemRepo := repositories.NewItemRepository(db)

	customerService := services.NewCustomerService(db, customerRepo)
	addressService := services.NewAddressService(db, addressRepo, stateRepo, orderRepo)
	orderService := services.NewOrderService(db, orderRepo, couponRepo, paymentRepo, restaurantRepo, itemRepo, addressRepo)
	paymentService := services.NewPaymentService(paymentRepo)
	restaurantService := services.NewRestaurantService(db, restaurantRepo, categoryRepo)
	categoryService := services.NewCategoryService(categoryRepo, itemRepo)
	itemService := services.NewItemService(itemRepo, restaurantRepo)

	r := router.SetupRouter(cfg, customerService, router.Controllers{
		Customer:   controllers.NewCustomerController(customerService),
		Address:    controllers.NewAddressController(addressService),
		Order:      controllers.NewOrderController(orderService),
		Payment:    controllers.NewPaymentController(paymentService),
		Restaurant: controllers.NewRestaurantController(restaurantService),
		Category:   controllers.NewCategoryController(categoryService),
		Item:       controllers.NewItemController(itemService),
	})

	utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
