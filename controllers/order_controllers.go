package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/food-ordering-app/apperrors"
	"github.com/yeremiapane/food-ordering-app/middlewares"
	"github.com/yeremiapane/food-ordering-app/services"
	"github.com/yeremiapane/food-ordering-app/utils"
)

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(service *services.OrderService) *OrderController {
	return &OrderController{Service: service}
}

// GetCoupon -> detail kupon berdasarkan nama
func (oc *OrderController) GetCoupon(c *gin.Context) {
	coupon, err := oc.Service.CouponByName(c.Param("coupon_name"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":          coupon.UUID,
		"coupon_name": coupon.CouponName,
		"percent":     coupon.Percent,
	})
}

// GetOrders -> riwayat order customer, terbaru dahulu
func (oc *OrderController) GetOrders(c *gin.Context) {
	customer, ok := middlewares.CustomerFromContext(c)
	if !ok {
		utils.RespondError(c, apperrors.ErrNotLoggedIn)
		return
	}

	orders, err := oc.Service.OrdersForCustomer(customer)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// PlaceOrder -> checkout; semua referensi harus valid sebelum ada yang
// tersimpan
func (oc *OrderController) PlaceOrder(c *gin.Context) {
	type itemQuantity struct {
		ItemID   string  `json:"item_id"`
		Quantity int     `json:"quantity"`
		Price    float64 `json:"price"`
	}
	type request struct {
		Bill           float64        `json:"bill"`
		Discount       float64        `json:"discount"`
		CouponID       string         `json:"coupon_id"`
		PaymentID      string         `json:"payment_id"`
		AddressID      string         `json:"address_id"`
		RestaurantID   string         `json:"restaurant_id"`
		ItemQuantities []itemQuantity `json:"item_quantities"`
	}

	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, apperrors.ErrUnexpected)
		return
	}

	customer, ok := middlewares.CustomerFromContext(c)
	if !ok {
		utils.RespondError(c, apperrors.ErrNotLoggedIn)
		return
	}

	input := services.PlaceOrderInput{
		Bill:         req.Bill,
		Discount:     req.Discount,
		CouponUUID:   req.CouponID,
		PaymentUUID:  req.PaymentID,
		AddressUUID:  req.AddressID,
		RestaurantID: req.RestaurantID,
	}
	for _, line := range req.ItemQuantities {
		input.Items = append(input.Items, services.ItemQuantity{
			ItemUUID: line.ItemID,
			Quantity: line.Quantity,
			Price:    line.Price,
		})
	}

	order, err := oc.Service.PlaceOrder(customer, input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.InfoLogger.Printf("Order placed: %s by customer %s", order.UUID, customer.UUID)

	c.JSON(http.StatusCreated, gin.H{
		"id":     order.UUID,
		"status": "ORDER SUCCESSFULLY PLACED",
	})
}
