package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/controlfacil/inventario-api/internal/application/dto"
	"github.com/controlfacil/inventario-api/internal/domain"
)

// statusForError mapea errores de dominio a códigos HTTP. Validaciones y
// stock insuficiente son 400 (recuperables, nada mutado); conflictos
// (lote duplicado, producto con salidas) 409; ausencias 404. Cualquier
// otro error es un fallo de la petición, no del proceso: 500.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrStockInsuficiente),
		errors.Is(err, domain.ErrStockLoteInsuficiente):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrLoteDuplicado),
		errors.Is(err, domain.ErrProductoConSalidas),
		errors.Is(err, domain.ErrUsuarioDuplicado),
		errors.Is(err, domain.ErrConflict):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrUsuarioNoEncontrado),
		errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden
	default:
		return fiber.StatusInternalServerError
	}
}

// fail responde el cuerpo de error estándar {success:false, error}.
// Los errores internos no exponen detalle al cliente.
func fail(c *fiber.Ctx, err error) error {
	status := statusForError(err)
	mensaje := err.Error()
	if status == fiber.StatusInternalServerError {
		mensaje = "error interno"
	}
	return c.Status(status).JSON(dto.Error(mensaje))
}
