package dto

import "time"

// RegistrarEntradaRequest body para POST /api/entradas.
// Las fechas viajan como "YYYY-MM-DD"; vencimiento y lote son obligatorios.
type RegistrarEntradaRequest struct {
	Producto    string `json:"producto"`
	Cantidad    int64  `json:"cantidad"`
	Unidad      string `json:"unidad"`
	Lote        string `json:"lote"`
	Proveedor   string `json:"proveedor"`
	Fecha       string `json:"fecha"`
	Vencimiento string `json:"vencimiento"`
}

// RegistrarSalidaRequest body para POST /api/salidas.
// LoteID opcional: si viene, la disponibilidad se valida a nivel de lote.
type RegistrarSalidaRequest struct {
	ProductoID int64  `json:"producto_id"`
	Cantidad   int64  `json:"cantidad"`
	Motivo     string `json:"motivo"`
	LoteID     *int64 `json:"lote_id,omitempty"`
}

// EntradaDTO fila de listado de entradas.
type EntradaDTO struct {
	ID              int64     `json:"id"`
	ProductoID      int64     `json:"producto_id"`
	ProductoNombre  string    `json:"producto_nombre"`
	LoteID          *int64    `json:"lote_id,omitempty"`
	Lote            string    `json:"lote,omitempty"`
	Proveedor       string    `json:"proveedor,omitempty"`
	Cantidad        int64     `json:"cantidad"`
	Unidad          string    `json:"unidad"`
	Fecha           string    `json:"fecha"`
	LoteVencimiento *string   `json:"lote_vencimiento,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// SalidaDTO fila de listado de salidas.
type SalidaDTO struct {
	ID             int64     `json:"id"`
	ProductoID     int64     `json:"producto_id"`
	ProductoNombre string    `json:"producto_nombre"`
	LoteID         *int64    `json:"lote_id,omitempty"`
	Cantidad       int64     `json:"cantidad"`
	Motivo         string    `json:"motivo"`
	CreatedAt      time.Time `json:"created_at"`
}

// LoteDTO fila de listado de lotes con stock derivado.
type LoteDTO struct {
	ID               int64  `json:"id"`
	ProductoID       int64  `json:"producto_id"`
	NumeroLote       string `json:"numero_lote"`
	Proveedor        string `json:"proveedor,omitempty"`
	FechaVencimiento string `json:"fecha_vencimiento"`
	ProductoNombre   string `json:"producto_nombre"`
	Unidad           string `json:"unidad"`
	Stock            int64  `json:"stock"`
}

// VerificarLoteResponse respuesta del pre-chequeo de lote duplicado.
type VerificarLoteResponse struct {
	Success bool       `json:"success"`
	Existe  bool       `json:"existe"`
	Datos   *LoteDatos `json:"datos,omitempty"`
}

// LoteDatos detalle mínimo del lote existente que lanza la alerta temprana.
type LoteDatos struct {
	NumeroLote string `json:"numero_lote"`
	Proveedor  string `json:"proveedor"`
}

// VencimientosDTO buckets del clasificador de vencimientos.
type VencimientosDTO struct {
	Vencidos []LoteDTO `json:"vencidos"`
	Proximos []LoteDTO `json:"proximos"`
}

// ProductoDTO fila del selector de productos.
type ProductoDTO struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
	Stock  int64  `json:"stock"`
	Unidad string `json:"unidad"`
}

// ProductoInventarioDTO fila de la vista de inventario agrupado.
type ProductoInventarioDTO struct {
	ID         int64  `json:"id"`
	Nombre     string `json:"nombre"`
	Stock      int64  `json:"stock"`
	Unidad     string `json:"unidad"`
	TotalLotes int64  `json:"total_lotes"`
}

// ResumenDTO totales del panel de resumen.
type ResumenDTO struct {
	Total      int64 `json:"total"`
	TotalLotes int64 `json:"total_lotes"`
	Bajos      int64 `json:"bajos"`
}

// TopVentaDTO fila del reporte de más vendidos.
type TopVentaDTO struct {
	ProductoID    int64  `json:"producto_id"`
	Nombre        string `json:"producto_nombre"`
	Unidad        string `json:"unidad"`
	TotalVentas   int64  `json:"total_ventas"`
	CantidadTotal int64  `json:"cantidad_total"`
}
