package repository

import "github.com/controlfacil/inventario-api/internal/domain/entity"

// SalidaRepository define el puerto de persistencia para Salida.
// Las salidas no se eliminan: son el rastro de auditoría que bloquea la
// eliminación del producto.
type SalidaRepository interface {
	Create(salida *entity.Salida) error
	ListRecientes(limit int) ([]entity.SalidaDetalle, error)
	CountPorProducto(productoID int64) (int64, error)
	// TopVentas productos más vendidos (motivo venta), por cantidad total.
	TopVentas(limit int) ([]entity.TopVenta, error)
}
