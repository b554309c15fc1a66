// utils/auth.go
package utils

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt"
	"golang.org/x/crypto/bcrypt"

	"github.com/autonest/autonest_backend/middleware"
	"github.com/autonest/autonest_backend/models"
)

// ErrTooManyLoginAttempts is returned when an account exceeds the hourly attempt limit
var ErrTooManyLoginAttempts = errors.New("too many login attempts")

// HashPassword hashes a plaintext password with bcrypt
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword compares a plaintext password against a bcrypt hash
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// GenerateJWT issues a signed token for the given user
func GenerateJWT(user *models.User) (string, error) {
	claims := &middleware.JwtCustomClaims{
		UserID: user.ID.Hex(),
		Email:  user.Email,
		Role:   user.Role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(72 * time.Hour).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(middleware.GetJWTSecret()))
}

// ValidateLoginAttempts limits login attempts per email to 10 per hour
func ValidateLoginAttempts(email string, rdb *redis.Client) error {
	if rdb == nil {
		return nil
	}

	key := "login_attempts:" + strings.ToLower(email)
	attempts, err := rdb.Incr(context.Background(), key).Result()
	if err != nil {
		// Redis being down must not lock users out
		return nil
	}

	if attempts == 1 {
		rdb.Expire(context.Background(), key, 1*time.Hour)
	}

	if attempts > 10 {
		return ErrTooManyLoginAttempts
	}

	return nil
}

// ClearLoginAttempts resets the attempt counter after a successful login
func ClearLoginAttempts(email string, rdb *redis.Client) {
	if rdb == nil {
		return
	}
	rdb.Del(context.Background(), "login_attempts:"+strings.ToLower(email))
}

// SplitFullName splits a full name into first and last parts. The first token
// becomes the first name; the remainder joined with spaces becomes the last
// name, empty when only one token is present.
func SplitFullName(fullName string) (string, string) {
	parts := strings.Fields(strings.TrimSpace(fullName))
	if len(parts) == 0 {
		return "", ""
	}
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}
