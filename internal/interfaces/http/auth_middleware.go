package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/comercio-api/internal/application/auth"
	"github.com/jhoicas/comercio-api/internal/domain"
	"github.com/jhoicas/comercio-api/internal/domain/entity"
)

// LocalUser key en c.Locals del principal autenticado (*entity.User).
const LocalUser = "user"

// ErrNotAuthenticated petición sin header Authorization.
var ErrNotAuthenticated = domain.NewError(domain.ErrUnauthorized, "Not authenticated")

// AuthMiddleware valida el Bearer Token, resuelve el principal con el guard y lo deja en c.Locals.
func AuthMiddleware(guard *auth.Guard) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return ErrNotAuthenticated
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return domain.ErrInvalidToken
		}
		user, err := guard.Authenticate(c.UserContext(), strings.TrimSpace(parts[1]))
		if err != nil {
			return err
		}
		c.Locals(LocalUser, user)
		return c.Next()
	}
}

// RequireRole exige que el principal tenga uno de los roles. Usar después de AuthMiddleware.
func RequireRole(guard *auth.Guard, roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := guard.RequireRole(GetUser(c), roles...); err != nil {
			return err
		}
		return c.Next()
	}
}

// GetUser devuelve el principal del contexto (nil antes de AuthMiddleware).
func GetUser(c *fiber.Ctx) *entity.User {
	u, _ := c.Locals(LocalUser).(*entity.User)
	return u
}
