package repository

import "github.com/controlfacil/inventario-api/internal/domain/entity"

// EntradaRepository define el puerto de persistencia para Entrada.
type EntradaRepository interface {
	Create(entrada *entity.Entrada) error
	GetByID(id int64) (*entity.Entrada, error)
	// ListRecientes últimas entradas por id descendente, con nombres de
	// producto y lote para mostrar. Proyección de lectura, no estado autoritativo.
	ListRecientes(limit int) ([]entity.EntradaDetalle, error)
	Delete(id int64) error
	DeletePorProducto(productoID int64) error
}
