package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-stock/internal/application/dto"
)

// SessionChecker lo que el middleware necesita del gestor de sesión.
type SessionChecker interface {
	Authenticated() bool
}

// RequireSession bloquea las rutas de la aplicación mientras no haya sesión iniciada.
func RequireSession(s SessionChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !s.Authenticated() {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "NOT_AUTHENTICATED", Message: "sesión no iniciada"})
		}
		return c.Next()
	}
}
