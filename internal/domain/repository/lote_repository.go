package repository

import "github.com/controlfacil/inventario-api/internal/domain/entity"

// LoteRepository define el puerto de persistencia para Lote.
// El stock por lote nunca se almacena: se deriva de entradas y salidas.
type LoteRepository interface {
	// Create persiste el lote; devuelve domain.ErrLoteDuplicado si ya existe
	// un lote con el mismo número normalizado para el producto (constraint
	// único en la base como autoridad final).
	Create(lote *entity.Lote) error
	GetByID(id int64) (*entity.Lote, error)
	// BuscarPorNumero busca por (producto, número de lote normalizado);
	// nil si no existe. Misma normalización que el camino de inserción.
	BuscarPorNumero(productoID int64, numeroLote string) (*entity.Lote, error)
	// BuscarPorNumeroGlobal busca el número de lote en cualquier producto.
	BuscarPorNumeroGlobal(numeroLote string) (*entity.Lote, error)
	// StockDerivado calcula SUM(entradas) - SUM(salidas) del lote.
	StockDerivado(loteID int64) (int64, error)
	// ListConStock lista lotes con stock derivado positivo, con datos del
	// producto, ordenados por producto y número de lote.
	ListConStock() ([]entity.LoteConStock, error)
	ListPorProducto(productoID int64) ([]entity.LoteConStock, error)
	// ListVencimientos lista lotes con fecha de vencimiento y stock
	// positivo, ascendente por vencimiento (orden que hereda el clasificador).
	ListVencimientos() ([]entity.LoteConStock, error)
	Delete(id int64) error
	DeletePorProducto(productoID int64) error
}
