package middleware

import (
	"context"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/artfolio/artfolio/pkg/common"
)

type authMiddleware struct {
	logger    *logrus.Logger
	jwtSecret []byte
}

func NewAuthMiddleware(logger *logrus.Logger, jwtSecret string) Middleware {
	return &authMiddleware{
		logger:    logger,
		jwtSecret: []byte(jwtSecret),
	}
}

// Middleware validates the auth provider's bearer token and resolves the
// authenticated user ID into both fiber locals and the request context.
func (m *authMiddleware) Middleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		header := ctx.Get(fiber.HeaderAuthorization)
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			m.logger.Debug("no bearer token provided")
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authentication required"})
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return m.jwtSecret, nil
		})
		if err != nil || !token.Valid {
			m.logger.WithError(err).Debug("invalid token")
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token claims"})
		}

		subject, err := claims.GetSubject()
		if err != nil || subject == "" {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token subject"})
		}

		userID, err := uuid.Parse(subject)
		if err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token subject"})
		}

		ctx.Locals(common.UserIDContextKey, userID)
		if username, ok := claims["username"].(string); ok {
			ctx.Locals(common.UsernameContextKey, username)
		}

		c := context.WithValue(ctx.UserContext(), common.UserIDContextKey, userID)
		ctx.SetUserContext(c)

		return ctx.Next()
	}
}

// UserID pulls the authenticated user out of fiber locals; handlers behind
// the auth middleware can rely on it being present.
func UserID(ctx *fiber.Ctx) (uuid.UUID, bool) {
	id, ok := ctx.Locals(common.UserIDContextKey).(uuid.UUID)
	return id, ok
}
