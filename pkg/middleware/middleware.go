package middleware

import "github.com/gofiber/fiber/v2"

type Middleware interface {
	Middleware() fiber.Handler
}

// Transport groups the middlewares handed to the server.
type Transport struct {
	AuthMiddleware    Middleware
	MetricsMiddleware Middleware
}
