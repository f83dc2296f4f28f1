package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/controlfacil/inventario-api/internal/application/inventory"
)

// ReporteHandler reportes de solo lectura sobre el journal de movimientos.
type ReporteHandler struct {
	salidas *inventory.SalidaUseCase
}

// NewReporteHandler construye el handler.
func NewReporteHandler(salidas *inventory.SalidaUseCase) *ReporteHandler {
	return &ReporteHandler{salidas: salidas}
}

// TopVentas godoc
// @Summary      Productos más vendidos (motivo venta)
// @Tags         reportes
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/reportes/top-ventas [get]
func (h *ReporteHandler) TopVentas(c *fiber.Ctx) error {
	filas, err := h.salidas.TopVentas(c.Context(), 20)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "data": filas})
}
