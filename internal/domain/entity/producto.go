package entity

import "time"

// Producto representa un producto del inventario con su stock agregado.
// Stock es el total autoritativo de lectura rápida; se mantiene con deltas
// relativos aplicados por el journal de movimientos, nunca por asignación
// directa. El stock por lote se deriva de los movimientos (ver LoteConStock).
type Producto struct {
	ID               int64
	Nombre           string // único por nombre normalizado (trim + casefold)
	Stock            int64
	Unidad           string
	FechaVencimiento *time.Time // vencimiento por defecto, opcional
	CreatedAt        time.Time
}

// ProductoInventario proyección para la vista de inventario agrupado:
// producto activo más el conteo de lotes con stock derivado positivo.
type ProductoInventario struct {
	ID         int64
	Nombre     string
	Stock      int64
	Unidad     string
	TotalLotes int64
}

// ResumenInventario totales para el panel de resumen.
type ResumenInventario struct {
	TotalProductos int64 // productos con stock > 0
	TotalLotes     int64 // lotes con stock derivado > 0
	StockBajo      int64 // productos con 0 < stock < umbral
}
