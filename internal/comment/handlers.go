package comment

import (
	"backend-parkhub/internal/shared/apperr"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service, requireAuth fiber.Handler) {
	r.Get("/:parkId", func(c *fiber.Ctx) error {
		listing, err := svc.List(c.Params("parkId"))
		if err != nil {
			return err
		}
		return c.JSON(listing)
	})

	r.Post("/:parkId", requireAuth, func(c *fiber.Ctx) error {
		var req CreateRequest
		if err := c.BodyParser(&req); err != nil {
			return apperr.Validation(err.Error())
		}
		created, err := svc.Create(c.Params("parkId"), req)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(created)
	})

	r.Put("/:parkId/:commentId", requireAuth, func(c *fiber.Ctx) error {
		var req UpdateRequest
		if err := c.BodyParser(&req); err != nil {
			return apperr.Validation(err.Error())
		}
		updated, err := svc.Update(c.Params("parkId"), c.Params("commentId"), req)
		if err != nil {
			return err
		}
		return c.JSON(updated)
	})

	r.Delete("/:parkId/:commentId", requireAuth, func(c *fiber.Ctx) error {
		if err := svc.Delete(c.Params("parkId"), c.Params("commentId")); err != nil {
			return err
		}
		return c.JSON(fiber.Map{"message": "comment deleted"})
	})

	r.Post("/:parkId/:commentId/like", requireAuth, func(c *fiber.Ctx) error {
		liked, err := svc.Like(c.Params("parkId"), c.Params("commentId"))
		if err != nil {
			return err
		}
		return c.JSON(liked)
	})

	r.Post("/:parkId/:commentId/unlike", requireAuth, func(c *fiber.Ctx) error {
		unliked, err := svc.Unlike(c.Params("parkId"), c.Params("commentId"))
		if err != nil {
			return err
		}
		return c.JSON(unliked)
	})
}
