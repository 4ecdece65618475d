package utils

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var jwtSecret []byte

func init() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		// Default untuk development, sama seperti di .env.example
		secret = "FoodOrderingSecretKey1945"
	}
	jwtSecret = []byte(secret)
}

// GenerateAccessToken membuat string access-token bertanda tangan untuk satu
// sesi login. Validasi per request tetap lewat baris customer_auth di
// database, bukan lewat parsing klaim.
func GenerateAccessToken(customerUUID string, loginAt, expiresAt time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   customerUUID,
		IssuedAt:  jwt.NewNumericDate(loginAt),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		Issuer:    "food-ordering-app",
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}
