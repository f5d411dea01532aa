package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tortas-api/internal/application/dto"
	"github.com/jhoicas/tortas-api/internal/domain/entity"
	"github.com/jhoicas/tortas-api/pkg/jwt"
)

// Locals keys de la sesión en Fiber.
const (
	LocalUserID = "user_id"
	LocalEmail  = "email"
	LocalName   = "name"
	LocalRole   = "role"
)

// AuthMiddleware valida el Bearer Token JWT y deja la sesión en c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Error: "Authorization header requerido"})
		}
		tokenString, ok := bearerToken(authHeader)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Error: "formato: Bearer <token>"})
		}
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Error: "token vacío"})
		}
		id, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Error: "token inválido o expirado"})
		}
		setIdentity(c, id)
		return c.Next()
	}
}

// OptionalAuth como AuthMiddleware pero sin rechazar: un token ausente o inválido deja
// la petición anónima.
func OptionalAuth(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if tokenString, ok := bearerToken(c.Get("Authorization")); ok && tokenString != "" {
			if id, err := jwt.Parse(jwtSecret, tokenString); err == nil {
				setIdentity(c, id)
			}
		}
		return c.Next()
	}
}

// RequireRole exige que el rol de la sesión esté en roles. Va después de AuthMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Error: "rol no encontrado en el token"})
		}
		for _, r := range roles {
			if r == role {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Error: "no tiene permisos para este recurso"})
	}
}

// RoleResolver rol vigente de una sesión; "" si la cuenta ya no existe.
type RoleResolver interface {
	CurrentRole(ctx context.Context, s *entity.Session) (string, error)
}

// RefreshRole reemplaza el rol del token por el vigente en el store, de modo que una
// degradación o eliminación aplica sin esperar a que el token expire. Va después de
// AuthMiddleware y antes de RequireRole o RequireSelfOrAdmin.
func RefreshRole(resolver RoleResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s := GetSession(c)
		if s == nil {
			return c.Next()
		}
		role, err := resolver.CurrentRole(c.UserContext(), s)
		if err != nil {
			return err
		}
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "ACCOUNT_NOT_FOUND", Error: "la cuenta ya no existe"})
		}
		c.Locals(LocalRole, role)
		return c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return strings.TrimSpace(parts[1]), true
}

func setIdentity(c *fiber.Ctx, id jwt.Identity) {
	c.Locals(LocalUserID, id.UserID)
	c.Locals(LocalEmail, id.Email)
	c.Locals(LocalName, id.Name)
	c.Locals(LocalRole, id.Role)
}

func localString(c *fiber.Ctx, key string) string {
	s, _ := c.Locals(key).(string)
	return s
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string { return localString(c, LocalUserID) }

// GetEmail email normalizado de la sesión.
func GetEmail(c *fiber.Ctx) string { return localString(c, LocalEmail) }

// GetRole rol de la sesión; vacío si la petición es anónima.
func GetRole(c *fiber.Ctx) string { return localString(c, LocalRole) }

// GetSession sesión actual o nil si la petición es anónima.
func GetSession(c *fiber.Ctx) *entity.Session {
	id := GetUserID(c)
	if id == "" {
		return nil
	}
	return &entity.Session{
		UserID: id,
		Email:  GetEmail(c),
		Name:   localString(c, LocalName),
		Role:   GetRole(c),
	}
}
