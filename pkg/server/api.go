package server

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/artfolio/artfolio/pkg/config"
	handlers "github.com/artfolio/artfolio/pkg/handlers/http"
	"github.com/artfolio/artfolio/pkg/middleware"
)

type (
	APIServerDI struct {
		MiddlewareTransport middleware.Transport
		HandlerTransport    handlers.HandlerTransport
		Config              *config.Config
		Logger              *logrus.Logger
	}
	APIServer struct {
		*BaseServer
		middlewareTransport middleware.Transport
		handlerTransport    handlers.HandlerTransport
	}
)

func NewAPIServer(di APIServerDI) *APIServer {
	return &APIServer{
		BaseServer:          NewBaseServer(di.Config, di.Logger),
		middlewareTransport: di.MiddlewareTransport,
		handlerTransport:    di.HandlerTransport,
	}
}

func (s *APIServer) Run() error {
	s.setupRoutes()
	s.setupHealthCheck()
	s.setupMetricsEndpoint()

	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	s.logger.WithField("addr", addr).Info("starting api server")
	return s.router.Listen(addr)
}

func (s *APIServer) setupRoutes() {
	s.router.Use(s.middlewareTransport.MetricsMiddleware.Middleware())

	v1 := s.router.Group("/api/v1")
	auth := s.middlewareTransport.AuthMiddleware.Middleware()
	{
		v1.Get("/version", s.handlerTransport.GetVersionHandler.Handle)

		detection := v1.Group("/detection", auth)
		{
			detection.Post("/text", s.handlerTransport.DetectTextHandler.Handle)
			detection.Post("/image", s.handlerTransport.DetectImageHandler.Handle)
		}

		works := v1.Group("/works")
		{
			works.Post("", auth, s.handlerTransport.PublishWorkHandler.Handle)
			works.Get("/:work_id", s.handlerTransport.GetWorkHandler.Handle)
			works.Delete("/:work_id", auth, s.handlerTransport.DeleteWorkHandler.Handle)
			works.Post("/:work_id/comments", auth, s.handlerTransport.CreateCommentHandler.Handle)
			works.Get("/:work_id/comments", s.handlerTransport.ListCommentsHandler.Handle)
			works.Post("/:work_id/bookmark", auth, s.handlerTransport.ToggleBookmarkHandler.Handle)
		}

		users := v1.Group("/users")
		{
			users.Patch("/me", auth, s.handlerTransport.UpdateUserHandler.Handle)
			users.Get("/:user_id/works", s.handlerTransport.ListWorksHandler.Handle)
			users.Post("/:user_id/follow", auth, s.handlerTransport.ToggleFollowHandler.Handle)
			users.Get("/:username", s.handlerTransport.GetUserHandler.Handle)
		}

		v1.Get("/bookmarks", auth, s.handlerTransport.ListBookmarksHandler.Handle)
		v1.Get("/feed", auth, s.handlerTransport.FeedHandler.Handle)
		v1.Get("/explore", s.handlerTransport.ExploreHandler.Handle)
		v1.Get("/threads", s.handlerTransport.ListThreadsHandler.Handle)
		v1.Post("/uploads/presign", auth, s.handlerTransport.PresignUploadHandler.Handle)
	}

	s.router.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	})
}

func (s *APIServer) Shutdown() error {
	return s.router.Shutdown()
}
