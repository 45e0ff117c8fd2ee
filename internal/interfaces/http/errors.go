package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/comercio-api/internal/application/dto"
	"github.com/jhoicas/comercio-api/internal/domain"
	"github.com/jhoicas/comercio-api/pkg/logger"
)

// Códigos de error expuestos en dto.ErrorResponse.
const (
	CodeValidation   = "VALIDATION"
	CodeConflict     = "CONFLICT"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeNotFound     = "NOT_FOUND"
	CodeInternal     = "INTERNAL"
)

// NewErrorHandler devuelve el fiber.ErrorHandler de la app:
// traduce errores de dominio a status + código y registra los inesperados sin exponer el detalle.
func NewErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status, body := resolveError(c, err, log)
		if status == fiber.StatusUnauthorized {
			c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
		}
		return c.Status(status).JSON(body)
	}
}

func resolveError(c *fiber.Ctx, err error, log *logger.Logger) (int, dto.ErrorResponse) {
	switch domain.Kind(err) {
	case domain.ErrInvalidInput:
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: CodeValidation, Message: err.Error()}
	case domain.ErrConflict:
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: CodeConflict, Message: err.Error()}
	case domain.ErrUnauthorized:
		return fiber.StatusUnauthorized, dto.ErrorResponse{Code: CodeUnauthorized, Message: err.Error()}
	case domain.ErrForbidden:
		return fiber.StatusForbidden, dto.ErrorResponse{Code: CodeForbidden, Message: err.Error()}
	case domain.ErrNotFound:
		return fiber.StatusNotFound, dto.ErrorResponse{Code: CodeNotFound, Message: err.Error()}
	}

	// Errores propios de Fiber (ruta inexistente, método no permitido, body ilegible).
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code, dto.ErrorResponse{Code: fiberCode(fe.Code), Message: fe.Message}
	}

	log.Error().
		Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Str("request_id", GetRequestID(c)).
		Msg("error no controlado")
	return fiber.StatusInternalServerError, dto.ErrorResponse{Code: CodeInternal, Message: "internal server error"}
}

func fiberCode(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return CodeNotFound
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusBadRequest, fiber.StatusUnprocessableEntity:
		return CodeValidation
	}
	return "HTTP_ERROR"
}
