package auth

import (
	"backend-parkhub/internal/shared/apperr"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service) {
	r.Post("/login", func(c *fiber.Ctx) error {
		var req LoginRequest
		if err := c.BodyParser(&req); err != nil {
			return apperr.Validation(err.Error())
		}
		if req.Email == "" {
			return apperr.Validation("an email is required")
		}
		session, err := svc.LoginOrRegister(req.Email)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{
			"message": "authentication successful",
			"user":    session,
		})
	})

	r.Get("/verify", func(c *fiber.Ctx) error {
		identity, err := svc.VerifyToken(bearerFromHeader(c.Get("Authorization")))
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{
			"valid": true,
			"user":  identity,
		})
	})
}
