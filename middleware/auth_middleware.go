package middleware

import (
	"fmt"
	"strings"

	"github.com/anjiri1684/trivia_api/services"
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"
)

const msgInvalidJWT = "Invalid or expired JWT"

// Protected verifies an HS256 bearer token signed with secret. Requests for
// which skip returns true pass through untouched; skip may be nil.
func Protected(secret string, skip func(*fiber.Ctx) bool) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:    []byte(secret),
		SigningMethod: "HS256",
		ErrorHandler:  jwtError,
		Filter:        skip,
	})
}

func jwtError(c *fiber.Ctx, err error) error {
	if strings.EqualFold(err.Error(), "Missing or malformed JWT") {
		return fmt.Errorf("%w: %v", services.ErrBadRequest, err)
	}
	return c.Status(fiber.StatusUnauthorized).
		JSON(fiber.Map{"success": false, "message": msgInvalidJWT})
}

// AdminRequired rejects verified tokens whose role claim is not "admin".
// It must run after Protected with the same skip func.
func AdminRequired(skip func(*fiber.Ctx) bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if skip != nil && skip(c) {
			return c.Next()
		}

		token, ok := c.Locals("user").(*jwt.Token)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).
				JSON(fiber.Map{"success": false, "message": msgInvalidJWT})
		}
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).
				JSON(fiber.Map{"success": false, "message": msgInvalidJWT})
		}
		if role, _ := claims["role"].(string); role != "admin" {
			return c.Status(fiber.StatusUnauthorized).
				JSON(fiber.Map{"success": false, "message": msgInvalidJWT})
		}
		return c.Next()
	}
}

// AdminOnly returns the guard chain for write routes, or nothing when no
// secret is configured.
func AdminOnly(secret string, skip func(*fiber.Ctx) bool) []fiber.Handler {
	if secret == "" {
		return nil
	}
	return []fiber.Handler{Protected(secret, skip), AdminRequired(skip)}
}
