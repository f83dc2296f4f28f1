package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/controlfacil/inventario-api/internal/application/dto"
	"github.com/controlfacil/inventario-api/internal/application/inventory"
)

// SalidaHandler maneja las peticiones HTTP de salidas de inventario.
type SalidaHandler struct {
	uc *inventory.SalidaUseCase
}

// NewSalidaHandler construye el handler.
func NewSalidaHandler(uc *inventory.SalidaUseCase) *SalidaHandler {
	return &SalidaHandler{uc: uc}
}

// List godoc
// @Summary      Listar salidas recientes
// @Tags         salidas
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/salidas [get]
func (h *SalidaHandler) List(c *fiber.Ctx) error {
	salidas, err := h.uc.ListRecientes(c.Context(), 20)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "data": salidas})
}

// Registrar godoc
// @Summary      Registrar una salida
// @Description  Valida disponibilidad (a nivel de lote si viene lote_id),
//
//	persiste el movimiento y resta el stock en una transacción.
//	Un lote que queda en cero se retira del inventario.
//
// @Tags         salidas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarSalidaRequest  true  "producto_id, cantidad, motivo, lote_id opcional"
// @Success      200   {object}  dto.RespuestaOK
// @Failure      400   {object}  dto.RespuestaError
// @Failure      404   {object}  dto.RespuestaError
// @Router       /api/salidas [post]
func (h *SalidaHandler) Registrar(c *fiber.Ctx) error {
	var in dto.RegistrarSalidaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("cuerpo inválido"))
	}
	if err := h.uc.Registrar(c.Context(), in); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OK("Salida registrada"))
}
