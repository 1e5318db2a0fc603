package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/joyeria-api/internal/application/dto"
	"github.com/jhoicas/joyeria-api/internal/domain/entity"
)

// RequireSelfOrAdmin verifica que el parámetro de ruta param sea el propio usuario del token,
// salvo que el rol sea admin. Debe usarse DESPUÉS de AuthMiddleware.
//
// Comportamiento:
//   - admin: pasa siempre.
//   - distribuidor: pasa solo si c.Params(param) coincide con su user_id; si no, 403.
//   - sin user_id en el contexto: 401.
func RequireSelfOrAdmin(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetRole(c) == entity.RoleAdmin {
			return c.Next()
		}
		userID := GetUserID(c)
		if userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "user_id no encontrado en el token",
			})
		}
		if c.Params(param) != userID {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "solo puede consultar sus propias vitrinas",
			})
		}
		return c.Next()
	}
}

// canSeeDistributor regla usada por handlers que cargan el recurso antes de decidir.
func canSeeDistributor(c *fiber.Ctx, distributorID string) bool {
	return GetRole(c) == entity.RoleAdmin || GetUserID(c) == distributorID
}
