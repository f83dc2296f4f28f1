package http

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"github.com/controlfacil/inventario-api/internal/domain"
)

// El mapeo de errores de dominio a códigos HTTP es parte del contrato:
// validaciones y stock insuficiente 400, conflictos 409, ausencias 404.
func TestStatusForError(t *testing.T) {
	casos := []struct {
		err    error
		status int
	}{
		{domain.ErrInvalidInput, fiber.StatusBadRequest},
		{fmt.Errorf("%w: la cantidad debe ser mayor a cero", domain.ErrInvalidInput), fiber.StatusBadRequest},
		{domain.ErrStockInsuficiente, fiber.StatusBadRequest},
		{domain.ErrStockLoteInsuficiente, fiber.StatusBadRequest},
		{domain.ErrLoteDuplicado, fiber.StatusConflict},
		{domain.ErrProductoConSalidas, fiber.StatusConflict},
		{domain.ErrUsuarioDuplicado, fiber.StatusConflict},
		{domain.ErrConflict, fiber.StatusConflict},
		{domain.ErrNotFound, fiber.StatusNotFound},
		{domain.ErrUsuarioNoEncontrado, fiber.StatusUnauthorized},
		{domain.ErrUnauthorized, fiber.StatusUnauthorized},
		{domain.ErrForbidden, fiber.StatusForbidden},
		{errors.New("fallo de conexión"), fiber.StatusInternalServerError},
	}
	for _, c := range casos {
		assert.Equal(t, c.status, statusForError(c.err), "error: %v", c.err)
	}
}
