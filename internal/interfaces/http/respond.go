package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/AgriCore-api/internal/application/dto"
	"github.com/jhoicas/AgriCore-api/internal/domain"
)

// statusFor traduce errores de dominio a códigos HTTP. Cualquier error no
// reconocido se reporta como 500 sin filtrar detalles del almacenamiento.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInsufficientStock):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrAlreadyHarvested),
		errors.Is(err, domain.ErrDuplicate),
		errors.Is(err, domain.ErrUsernameTaken):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// respondError escribe la envoltura {success,message} según el error de dominio.
// Para errores internos devuelve un mensaje genérico; el detalle va al log.
func respondError(c *fiber.Ctx, err error) error {
	status := statusFor(err)
	msg := err.Error()
	if status == fiber.StatusInternalServerError {
		msg = "error interno del servidor"
	}
	return c.Status(status).JSON(dto.Fail(msg))
}
