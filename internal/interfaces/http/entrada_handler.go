package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/controlfacil/inventario-api/internal/application/dto"
	"github.com/controlfacil/inventario-api/internal/application/inventory"
)

// EntradaHandler maneja las peticiones HTTP de entradas de inventario.
type EntradaHandler struct {
	uc *inventory.EntradaUseCase
}

// NewEntradaHandler construye el handler.
func NewEntradaHandler(uc *inventory.EntradaUseCase) *EntradaHandler {
	return &EntradaHandler{uc: uc}
}

// List godoc
// @Summary      Listar entradas recientes
// @Tags         entradas
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/entradas [get]
func (h *EntradaHandler) List(c *fiber.Ctx) error {
	entradas, err := h.uc.ListRecientes(c.Context(), 20)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "data": entradas})
}

// Registrar godoc
// @Summary      Registrar una entrada
// @Description  Resuelve o crea el producto, registra el lote (rechaza
//
//	duplicados), persiste el movimiento y suma el stock, todo
//	en una transacción.
//
// @Tags         entradas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarEntradaRequest  true  "producto, cantidad, unidad, lote, proveedor, fecha, vencimiento"
// @Success      200   {object}  dto.RespuestaOK
// @Failure      400   {object}  dto.RespuestaError
// @Failure      409   {object}  dto.RespuestaError
// @Router       /api/entradas [post]
func (h *EntradaHandler) Registrar(c *fiber.Ctx) error {
	var in dto.RegistrarEntradaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("cuerpo inválido"))
	}
	id, err := h.uc.Registrar(c.Context(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.RespuestaOK{Success: true, Message: "Entrada registrada", ID: id})
}

// Eliminar godoc
// @Summary      Eliminar una entrada (revierte su efecto en el stock)
// @Tags         entradas
// @Produce      json
// @Param        id   path      int  true  "ID de la entrada"
// @Success      200  {object}  dto.RespuestaOK
// @Failure      404  {object}  dto.RespuestaError
// @Router       /api/entradas/{id} [delete]
func (h *EntradaHandler) Eliminar(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("id inválido"))
	}
	if err := h.uc.Eliminar(c.Context(), id); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OK("Entrada eliminada"))
}
