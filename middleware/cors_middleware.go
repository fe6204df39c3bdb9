package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

const (
	allowHeaders = "Content-Type, Authorization, true"
	allowMethods = "GET, PUT, POST, DELETE, OPTIONS"
)

func CORS() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: allowHeaders,
		AllowMethods: allowMethods,
	})
}

// AccessControl stamps the allow headers on every response, errors included.
// The cors middleware only sets them on preflight requests.
func AccessControl() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		c.Set(fiber.HeaderAccessControlAllowHeaders, allowHeaders)
		c.Set(fiber.HeaderAccessControlAllowMethods, allowMethods)
		return err
	}
}
