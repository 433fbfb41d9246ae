package photo

import (
	"backend-parkhub/internal/shared/apperr"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service, requireAuth fiber.Handler) {
	r.Post("/:parkId/main", requireAuth, func(c *fiber.Ctx) error {
		file, err := c.FormFile("photo")
		if err != nil {
			return apperr.Validation("no photo uploaded")
		}
		upload, err := svc.SaveMain(c.Params("parkId"), file)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{
			"message":  "main photo uploaded",
			"filename": upload.Filename,
			"url":      upload.URL,
		})
	})

	r.Post("/:parkId/gallery", requireAuth, func(c *fiber.Ctx) error {
		file, err := c.FormFile("photo")
		if err != nil {
			return apperr.Validation("no photo uploaded")
		}
		upload, err := svc.SaveGallery(c.Params("parkId"), file)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{
			"message":  "photo added to gallery",
			"filename": upload.Filename,
			"url":      upload.URL,
		})
	})

	r.Delete("/:parkId/gallery/:filename", requireAuth, func(c *fiber.Ctx) error {
		if err := svc.DeleteGallery(c.Params("parkId"), c.Params("filename")); err != nil {
			return err
		}
		return c.JSON(fiber.Map{"message": "photo removed from gallery"})
	})

	r.Get("/:parkId", func(c *fiber.Ctx) error {
		gallery, err := svc.List(c.Params("parkId"))
		if err != nil {
			return err
		}
		return c.JSON(gallery)
	})
}
