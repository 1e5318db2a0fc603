package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/joyeria-api/internal/application/dto"
	"github.com/jhoicas/joyeria-api/internal/domain"
)

// respondError traduce un error de caso de uso a status + dto.ErrorResponse.
// Los errores de persistencia e internos no exponen el detalle al cliente.
func respondError(c *fiber.Ctx, err error) error {
	reason := domain.Reason(err)
	switch reason {
	case domain.ReasonNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: reason, Message: err.Error()})
	case domain.ReasonValidation:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: reason, Message: err.Error()})
	case domain.ReasonDuplicate:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: reason, Message: "el recurso ya existe"})
	case domain.ReasonUnauthorized:
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: reason, Message: "no autorizado"})
	case domain.ReasonForbidden:
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: reason, Message: "acceso denegado"})
	default:
		log.Error().Err(err).Str("path", c.Path()).Str("reason", reason).Msg("error no controlado")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: reason, Message: "error interno, intente más tarde"})
	}
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}
