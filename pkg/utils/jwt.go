package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

func CreateJWTToken(username string, role string, jwtSecretKey string, expiry time.Duration) (string, error) {
	claims := jwt.MapClaims{}
	claims["sub"] = username
	claims["role"] = role
	claims["exp"] = time.Now().Add(expiry).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecretKey))
}

// ExtractTokenRole reads the subject and role claims placed on the context
// by the JWT middleware. Returns empty strings when no valid token is present.
func ExtractTokenRole(c echo.Context) (string, string) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok || !token.Valid {
		return "", ""
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ""
	}

	username, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	return username, role
}
