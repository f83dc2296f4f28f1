package entity

import "time"

// Lote representa un batch de un producto: número único por producto
// (normalizado), proveedor y fecha de vencimiento propia.
// No almacena cantidad: el stock del lote se deriva sumando las entradas
// y restando las salidas que lo referencian.
type Lote struct {
	ID               int64
	ProductoID       int64
	NumeroLote       string
	Proveedor        string
	FechaVencimiento time.Time
	CreatedAt        time.Time
}

// LoteConStock es la proyección de un lote con su stock derivado y los
// datos de presentación del producto. Las vistas activas solo incluyen
// lotes con Stock > 0.
type LoteConStock struct {
	Lote
	ProductoNombre string
	Unidad         string
	Stock          int64
}
