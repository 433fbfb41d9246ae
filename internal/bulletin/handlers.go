package bulletin

import (
	"backend-parkhub/internal/auth"
	"backend-parkhub/internal/shared/apperr"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service, requireAuth fiber.Handler) {
	r.Get("/:parkId", func(c *fiber.Ctx) error {
		active, err := svc.List(c.Params("parkId"))
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{
			"parkId":    c.Params("parkId"),
			"bulletins": active,
		})
	})

	r.Post("/:parkId", requireAuth, func(c *fiber.Ctx) error {
		var req CreateRequest
		if err := c.BodyParser(&req); err != nil {
			return apperr.Validation(err.Error())
		}
		identity, _ := auth.CallerFrom(c)
		created, err := svc.Create(c.Params("parkId"), req, identity.Email)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message":  "bulletin created",
			"bulletin": created,
		})
	})

	r.Put("/:parkId/:bulletinId", requireAuth, func(c *fiber.Ctx) error {
		var req UpdateRequest
		if err := c.BodyParser(&req); err != nil {
			return apperr.Validation(err.Error())
		}
		identity, _ := auth.CallerFrom(c)
		updated, err := svc.Update(c.Params("parkId"), c.Params("bulletinId"), identity.Email, req)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{
			"message":  "bulletin updated",
			"bulletin": updated,
		})
	})

	r.Delete("/:parkId/:bulletinId", requireAuth, func(c *fiber.Ctx) error {
		identity, _ := auth.CallerFrom(c)
		if err := svc.Delete(c.Params("parkId"), c.Params("bulletinId"), identity.Email); err != nil {
			return err
		}
		return c.JSON(fiber.Map{"message": "bulletin deleted"})
	})
}
