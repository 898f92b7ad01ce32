package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"aamer/config"

	"github.com/golang-jwt/jwt"
)

func secretKey() []byte {
	secret := config.AppConfig.JWTSecret
	if secret == "" {
		secret = "aamer-dev-secret"
	}
	return []byte(secret)
}

// GenerateToken creates a signed JWT carrying the user's ID and type.
// The token expires after the specified duration.
func GenerateToken(userID, userType string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"userId":   userID,
		"userType": userType,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// HashToken computes a SHA-256 hash of the token string.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// ExtractIDsFromToken validates a token string and returns the userId and
// userType claims.
func ExtractIDsFromToken(tokenString string) (string, string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
	if err != nil {
		return "", "", err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", "", errors.New("invalid token")
	}
	userID, _ := claims["userId"].(string)
	userType, _ := claims["userType"].(string)
	if userID == "" {
		return "", "", errors.New("token missing userId claim")
	}
	return userID, userType, nil
}
