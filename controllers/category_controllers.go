package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/food-ordering-app/services"
	"github.com/yeremiapane/food-ordering-app/utils"
)

type CategoryController struct {
	Service *services.CategoryService
}

func NewCategoryController(service *services.CategoryService) *CategoryController {
	return &CategoryController{Service: service}
}

// GetAll -> semua kategori, alfabetis
func (cc *CategoryController) GetAll(c *gin.Context) {
	categories, err := cc.Service.All()
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// GetByID -> detail kategori beserta itemnya
func (cc *CategoryController) GetByID(c *gin.Context) {
	category, items, err := cc.Service.ByUUID(c.Param("category_id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":            category.UUID,
		"category_name": category.CategoryName,
		"item_list":     items,
	})
}
