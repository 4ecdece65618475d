package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/food-ordering-app/services"
	"github.com/yeremiapane/food-ordering-app/utils"
)

type ItemController struct {
	Service *services.ItemService
}

func NewItemController(service *services.ItemService) *ItemController {
	return &ItemController{Service: service}
}

// GetPopularByRestaurant -> 5 item terlaris sebuah restoran
func (ic *ItemController) GetPopularByRestaurant(c *gin.Context) {
	items, err := ic.Service.PopularByRestaurant(c.Param("restaurant_id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}
