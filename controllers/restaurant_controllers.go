package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/food-ordering-app/services"
	"github.com/yeremiapane/food-ordering-app/utils"
)

type RestaurantController struct {
	Service *services.RestaurantService
}

func NewRestaurantController(service *services.RestaurantService) *RestaurantController {
	return &RestaurantController{Service: service}
}

// GetAll -> semua restoran, rating tertinggi dahulu
func (rc *RestaurantController) GetAll(c *gin.Context) {
	restaurants, err := rc.Service.All()
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"restaurants": restaurants})
}

// GetByID -> detail satu restoran
func (rc *RestaurantController) GetByID(c *gin.Context) {
	restaurant, err := rc.Service.ByUUID(c.Param("restaurant_id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, restaurant)
}

// GetByName -> cari restoran berdasarkan potongan nama
func (rc *RestaurantController) GetByName(c *gin.Context) {
	restaurants, err := rc.Service.ByName(c.Param("restaurant_name"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"restaurants": restaurants})
}

// GetByCategory -> restoran yang punya item pada kategori tersebut
func (rc *RestaurantController) GetByCategory(c *gin.Context) {
	restaurants, err := rc.Service.ByCategory(c.Param("category_id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"restaurants": restaurants})
}

// Rate -> customer memberi rating 1..5, rata-rata dihitung ulang
func (rc *RestaurantController) Rate(c *gin.Context) {
	type request struct {
		Rating float64 `json:"customer_rating"`
	}

	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, err)
		return
	}

	restaurant, err := rc.Service.Rate(c.Param("restaurant_id"), req.Rating)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":     restaurant.UUID,
		"status": "RESTAURANT RATING UPDATED SUCCESSFULLY",
	})
}
