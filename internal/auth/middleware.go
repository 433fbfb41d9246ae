package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const localsKey = "identity"

// Require rejects requests without a valid bearer token and stores the
// resolved identity in locals.
func Require(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, err := svc.VerifyToken(bearerFromHeader(c.Get("Authorization")))
		if err != nil {
			return err
		}
		c.Locals(localsKey, identity)
		return c.Next()
	}
}

// Optional attaches the identity when a valid token is present but never
// rejects the request.
func Optional(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token := bearerFromHeader(c.Get("Authorization")); token != "" {
			if identity, err := svc.VerifyToken(token); err == nil {
				c.Locals(localsKey, identity)
			}
		}
		return c.Next()
	}
}

// CallerFrom returns the authenticated identity attached by Require/Optional.
func CallerFrom(c *fiber.Ctx) (Identity, bool) {
	identity, ok := c.Locals(localsKey).(Identity)
	return identity, ok
}

func bearerFromHeader(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}
