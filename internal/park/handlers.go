package park

import (
	"math"
	"strconv"
	"strings"

	"backend-parkhub/internal/auth"
	"backend-parkhub/internal/shared/apperr"
	"backend-parkhub/internal/shared/geo"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func RegisterRoutes(r fiber.Router, svc *Service, requireAuth fiber.Handler) {
	r.Get("/", func(c *fiber.Ctx) error {
		result, err := svc.List(paramsFromQuery(c))
		if err != nil {
			return err
		}
		return c.JSON(result)
	})

	r.Get("/:id", func(c *fiber.Ctx) error {
		p, err := svc.Get(c.Params("id"))
		if err != nil {
			return err
		}
		return c.JSON(p)
	})

	r.Post("/", requireAuth, func(c *fiber.Ctx) error {
		var req CreateRequest
		if err := c.BodyParser(&req); err != nil {
			return apperr.Validation(err.Error())
		}
		if err := validate.Struct(req); err != nil {
			return apperr.Validation("name is required")
		}
		caller := callerEmail(c)
		p, err := svc.Create(req, caller)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(p)
	})

	r.Put("/:id", requireAuth, func(c *fiber.Ctx) error {
		patch := map[string]any{}
		if err := c.BodyParser(&patch); err != nil {
			return apperr.Validation(err.Error())
		}
		p, err := svc.Update(c.Params("id"), patch)
		if err != nil {
			return err
		}
		return c.JSON(p)
	})

	r.Delete("/:id", requireAuth, func(c *fiber.Ctx) error {
		if err := svc.Delete(c.Params("id")); err != nil {
			return err
		}
		return c.JSON(fiber.Map{"message": "park deleted"})
	})

	r.Post("/:id/rate", requireAuth, func(c *fiber.Ctx) error {
		var req RateRequest
		if err := c.BodyParser(&req); err != nil {
			return apperr.Validation(err.Error())
		}
		p, err := svc.Rate(c.Params("id"), req.Rating)
		if err != nil {
			return err
		}
		return c.JSON(p)
	})
}

// paramsFromQuery translates the raw query string into pipeline knobs,
// preserving the loose parsing of the HTTP surface: a non-numeric minRating
// becomes NaN (matches nothing), page/limit fall back to defaults.
func paramsFromQuery(c *fiber.Ctx) QueryParams {
	p := QueryParams{
		Search: c.Query("search"),
		SortBy: c.Query("sortBy"),
	}

	if v := c.Query("elements"); v != "" {
		p.Elements = strings.Split(v, ",")
	}
	if v := c.Query("amenities"); v != "" {
		p.Amenities = strings.Split(v, ",")
	}
	if v := c.Query("minRating"); v != "" {
		min, err := strconv.ParseFloat(v, 64)
		if err != nil {
			min = math.NaN()
		}
		p.MinRating = &min
	}
	if v := c.Query("dogsAllowed"); v != "" {
		dogs := v == "true"
		p.DogsAllowed = &dogs
	}
	p.WheelchairAccessible = c.Query("wheelchairAccessible") == "true"

	latStr, lngStr := c.Query("lat"), c.Query("lng")
	if latStr != "" && lngStr != "" {
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lng, lngErr := strconv.ParseFloat(lngStr, 64)
		if latErr == nil && lngErr == nil {
			p.Center = &geo.Coordinates{Lat: lat, Lng: lng}
			if r := c.Query("radius"); r != "" {
				if radius, err := strconv.ParseFloat(r, 64); err == nil {
					p.RadiusKm = &radius
				}
			}
		}
	}

	if v, err := strconv.Atoi(c.Query("page")); err == nil {
		p.Page = v
	}
	if v, err := strconv.Atoi(c.Query("limit")); err == nil {
		p.Limit = v
	}
	return p
}

func callerEmail(c *fiber.Ctx) string {
	identity, _ := auth.CallerFrom(c)
	return identity.Email
}
