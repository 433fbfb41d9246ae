package server

import (
	"backend-parkhub/internal/auth"
	"backend-parkhub/internal/bulletin"
	"backend-parkhub/internal/comment"
	"backend-parkhub/internal/config"
	"backend-parkhub/internal/park"
	"backend-parkhub/internal/photo"
	"backend-parkhub/internal/shared/apperr"
	"backend-parkhub/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

type Server struct {
	App   *fiber.App
	Cfg   config.Config
	Store *store.Store
	Log   *zap.Logger
}

func NewServer(cfg config.Config, st *store.Store, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: apperr.ErrorHandler,
		// uploads are capped at 5MB in the photo handlers; leave headroom
		// for the multipart envelope
		BodyLimit: 10 * 1024 * 1024,
	})
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CorsOrigins,
	}))

	s := &Server{
		App:   app,
		Cfg:   cfg,
		Store: st,
		Log:   log,
	}

	registerRoutes(s)
	return s
}

func registerRoutes(s *Server) {
	s.App.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "message": "Parks Social Network API is running"})
	})

	authSvc := auth.NewService(s.Store, s.Log)
	requireAuth := auth.Require(authSvc)

	api := s.App.Group("/api")
	auth.RegisterRoutes(api.Group("/auth"), authSvc)
	park.RegisterRoutes(api.Group("/parks"), park.NewService(s.Store, s.Log), requireAuth)
	comment.RegisterRoutes(api.Group("/comments"), comment.NewService(s.Store, s.Log), requireAuth)
	bulletin.RegisterRoutes(api.Group("/bulletins"), bulletin.NewService(s.Store, s.Log), requireAuth)
	photo.RegisterRoutes(api.Group("/photos"), photo.NewService(s.Store, s.Log), requireAuth)

	// uploaded photos are served publicly
	s.App.Use("/photos", filesystem.New(filesystem.Config{
		Root: s.Store.PhotoFS(),
	}))
}
