package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tortas-api/internal/application/dto"
	"github.com/jhoicas/tortas-api/internal/domain"
	"github.com/jhoicas/tortas-api/pkg/logger"
)

// writeError responde con el cuerpo de error común.
func writeError(c *fiber.Ctx, status int, code, msg string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Error: msg, Code: code})
}

// respondError traduce errores de dominio a código HTTP. Lo no reconocido es 500 y se registra;
// el detalle interno no se expone al cliente.
func respondError(c *fiber.Ctx, log *logger.Logger, err error) error {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "datos inválidos", Code: "VALIDATION", Fields: verr.Fields})
	case errors.Is(err, errInvalidBody):
		return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	case errors.Is(err, domain.ErrInvalidStatus):
		return writeError(c, fiber.StatusBadRequest, "INVALID_STATUS", err.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		return writeError(c, fiber.StatusBadRequest, "VALIDATION", err.Error())
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return writeError(c, fiber.StatusBadRequest, "EMAIL_EXISTS", "el email ya está registrado")
	case errors.Is(err, domain.ErrUnauthorized):
		return writeError(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "credenciales inválidas")
	case errors.Is(err, domain.ErrForbidden):
		return writeError(c, fiber.StatusForbidden, "FORBIDDEN", "acceso denegado")
	case errors.Is(err, domain.ErrOrderNotFound):
		return writeError(c, fiber.StatusNotFound, "ORDER_NOT_FOUND", "pedido no encontrado")
	case errors.Is(err, domain.ErrUserNotFound):
		return writeError(c, fiber.StatusNotFound, "USER_NOT_FOUND", "usuario no encontrado")
	case errors.Is(err, domain.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "recurso no encontrado")
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrDuplicate):
		return writeError(c, fiber.StatusConflict, "CONFLICT", err.Error())
	case errors.Is(err, domain.ErrInvalidTransition):
		return writeError(c, fiber.StatusUnprocessableEntity, "INVALID_TRANSITION", err.Error())
	}
	log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error interno")
	return writeError(c, fiber.StatusInternalServerError, "INTERNAL", "error interno del servidor")
}

// ErrorHandler manejador global de Fiber: errores de ruteo (404, 405) y panics recuperados.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code := "HTTP_ERROR"
			switch fe.Code {
			case fiber.StatusNotFound:
				code = "NOT_FOUND"
			case fiber.StatusMethodNotAllowed:
				code = "METHOD_NOT_ALLOWED"
			case fiber.StatusRequestEntityTooLarge:
				code = "BODY_TOO_LARGE"
			}
			return writeError(c, fe.Code, code, fe.Message)
		}
		return respondError(c, log, err)
	}
}
