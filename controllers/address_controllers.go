package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/food-ordering-app/apperrors"
	"github.com/yeremiapane/food-ordering-app/middlewares"
	"github.com/yeremiapane/food-ordering-app/models"
	"github.com/yeremiapane/food-ordering-app/services"
	"github.com/yeremiapane/food-ordering-app/utils"
)

type AddressController struct {
	Service *services.AddressService
}

func NewAddressController(service *services.AddressService) *AddressController {
	return &AddressController{Service: service}
}

// Save -> simpan alamat baru untuk customer yang sedang login
func (ac *AddressController) Save(c *gin.Context) {
	type request struct {
		FlatBuildingName string `json:"flat_building_name"`
		Locality         string `json:"locality"`
		City             string `json:"city"`
		Pincode          string `json:"pincode"`
		StateUUID        string `json:"state_uuid"`
	}

	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, apperrors.ErrAddressFieldsEmpty)
		return
	}

	customer, ok := middlewares.CustomerFromContext(c)
	if !ok {
		utils.RespondError(c, apperrors.ErrNotLoggedIn)
		return
	}

	address := &models.Address{
		FlatBuildNo: req.FlatBuildingName,
		Locality:    req.Locality,
		City:        req.City,
		Pincode:     req.Pincode,
	}

	saved, err := ac.Service.Save(address, req.StateUUID, customer)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":     saved.UUID,
		"status": "ADDRESS SUCCESSFULLY REGISTERED",
	})
}

// List -> semua alamat aktif milik customer, terbaru dahulu
func (ac *AddressController) List(c *gin.Context) {
	customer, ok := middlewares.CustomerFromContext(c)
	if !ok {
		utils.RespondError(c, apperrors.ErrNotLoggedIn)
		return
	}

	addresses, err := ac.Service.ActiveForCustomer(customer)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"addresses": addresses})
}

// Delete -> hard delete jika alamat belum pernah dipakai order, selain itu
// soft delete (active=0)
func (ac *AddressController) Delete(c *gin.Context) {
	customer, ok := middlewares.CustomerFromContext(c)
	if !ok {
		utils.RespondError(c, apperrors.ErrNotLoggedIn)
		return
	}

	address, err := ac.Service.ByUUID(c.Param("address_id"), customer)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	if err := ac.Service.Delete(address); err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":     address.UUID,
		"status": "ADDRESS DELETED SUCCESSFULLY",
	})
}

// States -> data referensi, tanpa auth
func (ac *AddressController) States(c *gin.Context) {
	states, err := ac.Service.States()
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"states": states})
}
