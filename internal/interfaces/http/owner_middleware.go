package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tortas-api/internal/application/dto"
	"github.com/jhoicas/tortas-api/internal/domain/entity"
)

// RequireSelfOrAdmin deja pasar si el email del parámetro de ruta es el de la sesión,
// o si la sesión es de un administrador. Debe usarse DESPUÉS de AuthMiddleware.
//
// Comportamiento:
//   - 401 si no hay sesión en el contexto.
//   - 403 si el email pertenece a otro cliente.
func RequireSelfOrAdmin(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s := GetSession(c)
		if s == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Error: "sesión requerida"})
		}
		if s.IsAdmin() {
			return c.Next()
		}
		if entity.NormalizeEmail(pathEmail(c, param)) != entity.NormalizeEmail(s.Email) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Error: "solo puede consultar sus propios datos"})
		}
		return c.Next()
	}
}

// pathEmail parámetro de ruta decodificado (los clientes suelen enviar %40 por @).
func pathEmail(c *fiber.Ctx, param string) string {
	raw := c.Params(param)
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}
