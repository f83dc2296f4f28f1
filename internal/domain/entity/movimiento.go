package entity

import "time"

// Motivos de salida permitidos.
const (
	MotivoVenta      = "venta"
	MotivoConsumo    = "consumo_interno"
	MotivoPerdida    = "perdida"
	MotivoDevolucion = "devolucion"
)

// MotivoValido indica si el motivo de salida pertenece al catálogo.
func MotivoValido(motivo string) bool {
	switch motivo {
	case MotivoVenta, MotivoConsumo, MotivoPerdida, MotivoDevolucion:
		return true
	}
	return false
}

// Entrada registra un ingreso de stock para un producto, atado a un lote.
// TransaccionID agrupa las filas escritas por una misma operación del journal.
type Entrada struct {
	ID            int64
	TransaccionID string
	ProductoID    int64
	LoteID        *int64
	Cantidad      int64
	Unidad        string
	Fecha         time.Time
	CreatedAt     time.Time
}

// Salida registra un egreso de stock, opcionalmente atado a un lote,
// con un motivo del catálogo. Las salidas no son reversibles: sirven de
// rastro de auditoría y bloquean la eliminación del producto.
type Salida struct {
	ID            int64
	TransaccionID string
	ProductoID    int64
	LoteID        *int64
	Cantidad      int64
	Motivo        string
	CreatedAt     time.Time
}

// EntradaDetalle proyección de listado: entrada con nombres para mostrar.
type EntradaDetalle struct {
	Entrada
	ProductoNombre  string
	NumeroLote      string
	Proveedor       string
	LoteVencimiento *time.Time
}

// SalidaDetalle proyección de listado: salida con el nombre del producto.
type SalidaDetalle struct {
	Salida
	ProductoNombre string
}

// TopVenta fila del reporte de productos más vendidos (motivo venta).
type TopVenta struct {
	ProductoID    int64
	Nombre        string
	Unidad        string
	TotalVentas   int64
	CantidadTotal int64
}
