package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/controlfacil/inventario-api/internal/application/dto"
	"github.com/controlfacil/inventario-api/internal/application/inventory"
)

// ProductoHandler maneja las consultas y eliminación de productos.
type ProductoHandler struct {
	uc *inventory.ProductoUseCase
}

// NewProductoHandler construye el handler.
func NewProductoHandler(uc *inventory.ProductoUseCase) *ProductoHandler {
	return &ProductoHandler{uc: uc}
}

// List godoc
// @Summary      Productos con stock positivo (selector)
// @Tags         productos
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/productos [get]
func (h *ProductoHandler) List(c *fiber.Ctx) error {
	productos, err := h.uc.ListActivos(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "data": productos})
}

// Inventario godoc
// @Summary      Inventario agrupado por producto con conteo de lotes
// @Tags         productos
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/productos/inventario [get]
func (h *ProductoHandler) Inventario(c *fiber.Ctx) error {
	filas, err := h.uc.Inventario(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "data": filas})
}

// Resumen godoc
// @Summary      Totales del panel (productos, lotes, stock bajo)
// @Tags         productos
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/productos/resumen [get]
func (h *ProductoHandler) Resumen(c *fiber.Ctx) error {
	resumen, err := h.uc.Resumen(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "data": resumen})
}

// Eliminar godoc
// @Summary      Eliminar un producto del catálogo
// @Description  Bloqueado mientras el producto tenga salidas registradas;
//
//	el historial de egresos se preserva. Borra lotes y
//	entradas del producto en la misma transacción.
//
// @Tags         productos
// @Produce      json
// @Param        id   path      int  true  "ID del producto"
// @Success      200  {object}  dto.RespuestaOK
// @Failure      404  {object}  dto.RespuestaError
// @Failure      409  {object}  dto.RespuestaError
// @Router       /api/productos/{id} [delete]
func (h *ProductoHandler) Eliminar(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("id inválido"))
	}
	if err := h.uc.Eliminar(c.Context(), id); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OK("Producto eliminado correctamente"))
}
