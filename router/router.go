package router

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/yeremiapane/food-ordering-app/config"
	"github.com/yeremiapane/food-ordering-app/controllers"
	"github.com/yeremiapane/food-ordering-app/middlewares"
	"github.com/yeremiapane/food-ordering-app/services"
)

// Controllers memegang semua controller yang dirakit di main.
type Controllers struct {
	Customer   *controllers.CustomerController
	Address    *controllers.AddressController
	Order      *controllers.OrderController
	Payment    *controllers.PaymentController
	Restaurant *controllers.RestaurantController
	Category   *controllers.CategoryController
	Item       *controllers.ItemController
}

func SetupRouter(cfg *config.Config, customerService *services.CustomerService, ctrl Controllers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares(cfg.CORSOrigin))
	r.Use(middlewares.LoggerMiddleware())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	authRequired := middlewares.AuthMiddleware(customerService)

	// Rate limiter khusus endpoint signup/login
	authLimiter := middlewares.NewAuthRateLimiter(rate.Limit(1), 5)

	// ----------------------------------------------------------------
	//                      CUSTOMER
	// ----------------------------------------------------------------
	customer := r.Group("/customer")
	{
		customer.POST("/signup", authLimiter.Middleware(), ctrl.Customer.Signup)
		customer.POST("/login", authLimiter.Middleware(), ctrl.Customer.Login)
		customer.POST("/logout", authRequired, ctrl.Customer.Logout)
		customer.PUT("", authRequired, ctrl.Customer.Update)
		customer.PUT("/password", authRequired, ctrl.Customer.UpdatePassword)
	}

	// ----------------------------------------------------------------
	//                      ADDRESS & STATES
	// ----------------------------------------------------------------
	r.POST("/address", authRequired, ctrl.Address.Save)
	r.GET("/address/customer", authRequired, ctrl.Address.List)
	r.DELETE("/address/:address_id", authRequired, ctrl.Address.Delete)
	r.GET("/states", ctrl.Address.States)

	// ----------------------------------------------------------------
	//                      ORDER & COUPON
	// ----------------------------------------------------------------
	r.GET("/order", authRequired, ctrl.Order.GetOrders)
	r.POST("/order", authRequired, ctrl.Order.PlaceOrder)
	r.GET("/order/coupon/:coupon_name", authRequired, ctrl.Order.GetCoupon)

	// ----------------------------------------------------------------
	//                      REFERENCE & BROWSING (tanpa auth)
	// ----------------------------------------------------------------
	r.GET("/payment", ctrl.Payment.GetAll)

	r.GET("/restaurant", ctrl.Restaurant.GetAll)
	r.GET("/restaurant/:restaurant_id", ctrl.Restaurant.GetByID)
	r.GET("/restaurant/name/:restaurant_name", ctrl.Restaurant.GetByName)
	r.GET("/restaurant/category/:category_id", ctrl.Restaurant.GetByCategory)
	r.PUT("/restaurant/:restaurant_id", authRequired, ctrl.Restaurant.Rate)

	r.GET("/category", ctrl.Category.GetAll)
	r.GET("/category/:category_id", ctrl.Category.GetByID)

	r.GET("/item/restaurant/:restaurant_id", ctrl.Item.GetPopularByRestaurant)

	return r
}
