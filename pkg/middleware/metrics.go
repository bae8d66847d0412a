package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/artfolio/artfolio/pkg/config"
	"github.com/artfolio/artfolio/pkg/infra/metrics"
)

type metricsMiddleware struct {
	logger *logrus.Logger
	cfg    config.MetricsConfig
}

func NewMetricsMiddleware(logger *logrus.Logger, cfg config.MetricsConfig) Middleware {
	return &metricsMiddleware{
		logger: logger,
		cfg:    cfg,
	}
}

func (m *metricsMiddleware) Middleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if !m.cfg.Enabled {
			return ctx.Next()
		}

		start := time.Now()
		err := ctx.Next()

		route := ctx.Route().Path
		method := ctx.Method()
		status := strconv.Itoa(ctx.Response().StatusCode())

		metrics.HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
		if m.cfg.EnableLatency {
			metrics.HTTPRequestDuration.WithLabelValues(method, route).
				Observe(time.Since(start).Seconds())
		}

		return err
	}
}
