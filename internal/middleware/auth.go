package middleware

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"ripple/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
)

var (
	cfg *config.Config
	rdb *redis.Client
)

const revokedKeyPrefix = "revoked:"

// InitMiddleware initializes authentication middleware with the given config
// and an optional Redis client used for token revocation checks.
func InitMiddleware(c *config.Config, client *redis.Client) {
	cfg = c
	rdb = client
}

// RevokeToken marks a token id (jti) as revoked until its expiry.
// Best-effort: without Redis, logout only discards the client-side token.
func RevokeToken(ctx context.Context, jti string, until time.Time) error {
	if rdb == nil || jti == "" {
		return nil
	}
	ttl := time.Until(until)
	if ttl <= 0 {
		return nil
	}
	return rdb.Set(ctx, revokedKeyPrefix+jti, "1", ttl).Err()
}

func isRevoked(ctx context.Context, jti string) bool {
	if rdb == nil || jti == "" {
		return false
	}
	n, err := rdb.Exists(ctx, revokedKeyPrefix+jti).Result()
	return err == nil && n > 0
}

// parseUserID validates the bearer token and returns the authenticated user ID.
func parseUserID(ctx context.Context, tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("invalid signing method")
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return 0, fmt.Errorf("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, fmt.Errorf("invalid token claims")
	}

	if jti, _ := claims["jti"].(string); isRevoked(ctx, jti) {
		return 0, fmt.Errorf("token has been revoked")
	}

	// User ID lives in the "sub" claim (subject claim per RFC 7519).
	subStr, ok := claims["sub"].(string)
	if !ok {
		return 0, fmt.Errorf("invalid token subject")
	}

	userID, err := strconv.ParseUint(subStr, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid user ID in token")
	}

	return uint(userID), nil
}

func bearerToken(c *fiber.Ctx) (string, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return "", fmt.Errorf("authorization header required")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", fmt.Errorf("invalid authorization header format")
	}

	return parts[1], nil
}

// AuthRequired is a middleware that enforces authentication for protected routes.
func AuthRequired(c *fiber.Ctx) error {
	tokenString, err := bearerToken(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	userID, err := parseUserID(c.UserContext(), tokenString)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	c.Locals("userID", userID)
	c.SetUserContext(context.WithValue(c.UserContext(), UserIDKey, userID))

	return c.Next()
}

// OptionalAuth resolves the user ID from a bearer token when one is present
// but never rejects the request. Public reads use it to enrich responses
// (e.g. whether the viewer liked a post).
func OptionalAuth(c *fiber.Ctx) error {
	tokenString, err := bearerToken(c)
	if err != nil {
		return c.Next()
	}

	if userID, err := parseUserID(c.UserContext(), tokenString); err == nil {
		c.Locals("userID", userID)
		c.SetUserContext(context.WithValue(c.UserContext(), UserIDKey, userID))
	}

	return c.Next()
}
