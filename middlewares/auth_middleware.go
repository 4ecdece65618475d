package middlewares

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/food-ordering-app/apperrors"
	"github.com/yeremiapane/food-ordering-app/models"
	"github.com/yeremiapane/food-ordering-app/services"
	"github.com/yeremiapane/food-ordering-app/utils"
)

const (
	ContextCustomer    = "customer"
	ContextAccessToken = "accessToken"
)

// AuthMiddleware mengambil bearer token dari header Authorization dan
// memvalidasinya terhadap baris customer_auth (bukan parsing klaim token).
// Customer pemilik token disimpan di context untuk handler berikutnya.
func AuthMiddleware(customerService *services.CustomerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, apperrors.ErrBearerPrefixMissing)
			c.Abort()
			return
		}

		accessToken := strings.TrimPrefix(authHeader, "Bearer ")
		if accessToken == "" {
			utils.RespondError(c, apperrors.ErrNotLoggedIn)
			c.Abort()
			return
		}

		customer, err := customerService.CustomerByAccessToken(accessToken)
		if err != nil {
			utils.RespondError(c, err)
			c.Abort()
			return
		}

		c.Set(ContextCustomer, customer)
		c.Set(ContextAccessToken, accessToken)
		c.Next()
	}
}

// CustomerFromContext mengambil customer yang sudah diset AuthMiddleware.
func CustomerFromContext(c *gin.Context) (*models.Customer, bool) {
	value, exists := c.Get(ContextCustomer)
	if !exists {
		return nil, false
	}
	customer, ok := value.(*models.Customer)
	return customer, ok
}
