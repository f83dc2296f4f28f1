package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/controlfacil/inventario-api/internal/application/dto"
	"github.com/controlfacil/inventario-api/internal/application/inventory"
)

// LoteHandler maneja las consultas HTTP de lotes y vencimientos.
type LoteHandler struct {
	uc *inventory.LoteUseCase
}

// NewLoteHandler construye el handler.
func NewLoteHandler(uc *inventory.LoteUseCase) *LoteHandler {
	return &LoteHandler{uc: uc}
}

// List godoc
// @Summary      Listar lotes activos con stock derivado
// @Tags         lotes
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/lotes [get]
func (h *LoteHandler) List(c *fiber.Ctx) error {
	lotes, err := h.uc.ListConStock(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "data": lotes})
}

// PorProducto godoc
// @Summary      Lotes activos de un producto
// @Tags         lotes
// @Produce      json
// @Param        producto_id  path  int  true  "ID del producto"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/lotes/producto/{producto_id} [get]
func (h *LoteHandler) PorProducto(c *fiber.Ctx) error {
	productoID, err := strconv.ParseInt(c.Params("producto_id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("producto_id inválido"))
	}
	lotes, producto, err := h.uc.PorProducto(c.Context(), productoID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"producto": producto,
			"lotes":    lotes,
		},
	})
}

// Verificar godoc
// @Summary      Pre-chequeo de número de lote duplicado
// @Description  Retroalimentación temprana antes de confirmar una entrada.
//
//	Usa la misma normalización que el camino de inserción; la
//	autoridad final sigue siendo el constraint único.
//
// @Tags         lotes
// @Produce      json
// @Param        numero_lote      query  string  false  "Número de lote"
// @Param        producto_nombre  query  string  false  "Nombre del producto"
// @Success      200  {object}  dto.VerificarLoteResponse
// @Router       /api/lotes/verificar [get]
func (h *LoteHandler) Verificar(c *fiber.Ctx) error {
	resp, err := h.uc.Verificar(c.Context(), c.Query("numero_lote"), c.Query("producto_nombre"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(resp)
}

// Vencimientos godoc
// @Summary      Lotes vencidos y próximos a vencer
// @Description  Clasifica por fecha calendario contra "hoy" en el offset
//
//	horario configurado (UTC-4 por defecto). El query param
//	fecha (YYYY-MM-DD) fija la fecha de referencia.
//
// @Tags         lotes
// @Produce      json
// @Param        fecha  query  string  false  "Fecha de referencia (YYYY-MM-DD)"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/lotes/vencimientos [get]
func (h *LoteHandler) Vencimientos(c *fiber.Ctx) error {
	var ref *time.Time
	if f := c.Query("fecha"); f != "" {
		t, err := time.Parse("2006-01-02", f)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Error("fecha inválida"))
		}
		ref = &t
	}
	resp, err := h.uc.Vencimientos(c.Context(), ref)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "data": resp})
}
