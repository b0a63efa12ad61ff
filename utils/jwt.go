package utils

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleCustomer = "customer"
	RoleStaff    = "staff"
	RoleAdmin    = "admin"
)

var JWTSecret []byte

func init() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		// Default secret for development only
		secret = "SeamlessDiningDevSecret"
	}
	JWTSecret = []byte(secret)
}

type CustomClaims struct {
	Role    string `json:"role"`
	Name    string `json:"name,omitempty"`
	TableID string `json:"table_id,omitempty"`
	UserID  uint   `json:"user_id,omitempty"`
	jwt.RegisteredClaims
}

// GenerateCustomerToken issues a session token for a table-side customer.
func GenerateCustomerToken(name, phone, tableID string) (string, error) {
	claims := &CustomClaims{
		Role:    RoleCustomer,
		Name:    name,
		TableID: tableID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   phone,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * 12)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "SeamlessQRDining",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(JWTSecret)
}

// GenerateStaffToken issues a token for a staff or admin account.
func GenerateStaffToken(userID uint, role string) (string, error) {
	claims := &CustomClaims{
		Role:   role,
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * 24)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "SeamlessQRDining",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(JWTSecret)
}

func ParseToken(tokenString string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		return JWTSecret, nil
	})

	if err != nil || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
