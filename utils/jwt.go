package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/mouizahmed/ratethatclass-sub000/config"
)

// TokenClaims are the identity claims carried in the id_token header.
type TokenClaims struct {
	UserID        string `json:"user_id"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	AccountType   string `json:"account_type"`
	Admin         bool   `json:"admin"`
	Owner         bool   `json:"owner"`
	jwt.RegisteredClaims
}

func GenerateToken(userID, email, accountType string, emailVerified, admin, owner bool, cfg *config.Config) (string, error) {
	claims := TokenClaims{
		UserID:        userID,
		Email:         email,
		EmailVerified: emailVerified,
		AccountType:   accountType,
		Admin:         admin,
		Owner:         owner,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * 72)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   userID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

// VerifyToken parses and validates an id_token and returns its claims.
func VerifyToken(tokenString string, cfg *config.Config) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, NewUnauthorizedError("invalid signing method")
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, NewUnauthorizedError("Unauthorized. Invalid or expired token.")
	}
	if claims.UserID == "" {
		return nil, NewUnauthorizedError("Invalid user ID in token")
	}
	return claims, nil
}
