package utils

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/JLemieux66/PE/internal/config"
)

var ErrInvalidToken = errors.New("invalid token")

// HashPassword returns the hex SHA-256 digest of the password. The stored
// admin hash in ADMIN_PASSWORD_HASH uses the same encoding.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

func VerifyPassword(plain, storedHash string) bool {
	if storedHash == "" {
		return false
	}
	computed := HashPassword(plain)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(storedHash)) == 1
}

// CreateAdminToken issues an HS256 session token for the admin user.
func CreateAdminToken(email string) (string, time.Time, error) {
	expiresAt := time.Now().UTC().Add(config.JWTExpiration)

	claims := jwt.MapClaims{
		"sub":  email,
		"role": "admin",
		"jti":  uuid.NewString(),
		"exp":  expiresAt.Unix(),
		"iat":  time.Now().UTC().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(config.JWTSecret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// VerifyAdminToken parses and validates a session token, returning the
// subject email.
func VerifyAdminToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return config.JWTSecret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}

	if role, _ := claims["role"].(string); role != "admin" {
		return "", ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	return sub, nil
}
