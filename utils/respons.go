package utils

import (
	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/food-ordering-app/apperrors"
)

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondError menulis body {code, message} dengan status HTTP sesuai jenis
// error domain. Error di luar taksonomi jatuh ke GEN-001 / 500.
func RespondError(c *gin.Context, err error) {
	appErr := apperrors.From(err)
	if appErr == apperrors.ErrUnexpected && ErrorLogger != nil {
		ErrorLogger.Printf("unexpected error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(appErr.Status, ErrorResponse{
		Code:    appErr.Code,
		Message: appErr.Message,
	})
}
