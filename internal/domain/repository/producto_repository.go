package repository

import (
	"time"

	"github.com/controlfacil/inventario-api/internal/domain/entity"
)

// ProductoRepository define el puerto de persistencia para Producto (DIP).
type ProductoRepository interface {
	// FindOrCreate busca por nombre normalizado; si no existe lo crea con
	// stock 0. Seguro ante inserciones concurrentes: el índice único por
	// nombre normalizado es la autoridad final.
	FindOrCreate(nombre, unidad string, vencimiento *time.Time) (*entity.Producto, error)
	GetByID(id int64) (*entity.Producto, error)
	GetByNombre(nombre string) (*entity.Producto, error)
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE) para
	// serializar las verificaciones de stock dentro de la transacción.
	GetForUpdate(id int64) (*entity.Producto, error)
	// AjustarStock aplica un delta relativo al stock en el servidor
	// (stock = stock + delta); no valida no-negatividad, eso es del caller.
	AjustarStock(id, delta int64) error
	ListActivos() ([]entity.Producto, error)
	ListInventario() ([]entity.ProductoInventario, error)
	Resumen(umbralStockBajo int64) (*entity.ResumenInventario, error)
	Delete(id int64) error
}
