package inventory

import (
	"context"

	"github.com/controlfacil/inventario-api/internal/application/dto"
	"github.com/controlfacil/inventario-api/internal/domain"
	"github.com/controlfacil/inventario-api/internal/domain/repository"
)

// UmbralStockBajoDefault productos con stock por debajo de este valor
// cuentan como "stock bajo" en el resumen.
const UmbralStockBajoDefault = 10

// ProductoUseCase consultas del catálogo y eliminación de productos.
type ProductoUseCase struct {
	txRunner        TxRunner
	productoRepo    repository.ProductoRepository
	umbralStockBajo int64
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(txRunner TxRunner, productoRepo repository.ProductoRepository, umbralStockBajo int64) *ProductoUseCase {
	if umbralStockBajo <= 0 {
		umbralStockBajo = UmbralStockBajoDefault
	}
	return &ProductoUseCase{txRunner: txRunner, productoRepo: productoRepo, umbralStockBajo: umbralStockBajo}
}

// ListActivos productos con stock positivo, para el selector.
func (uc *ProductoUseCase) ListActivos(ctx context.Context) ([]dto.ProductoDTO, error) {
	productos, err := uc.productoRepo.ListActivos()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductoDTO, 0, len(productos))
	for _, p := range productos {
		out = append(out, dto.ProductoDTO{ID: p.ID, Nombre: p.Nombre, Stock: p.Stock, Unidad: p.Unidad})
	}
	return out, nil
}

// Inventario productos activos con su conteo de lotes activos.
func (uc *ProductoUseCase) Inventario(ctx context.Context) ([]dto.ProductoInventarioDTO, error) {
	filas, err := uc.productoRepo.ListInventario()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductoInventarioDTO, 0, len(filas))
	for _, f := range filas {
		out = append(out, dto.ProductoInventarioDTO{
			ID: f.ID, Nombre: f.Nombre, Stock: f.Stock, Unidad: f.Unidad, TotalLotes: f.TotalLotes,
		})
	}
	return out, nil
}

// Resumen totales del panel: productos activos, lotes activos, stock bajo.
func (uc *ProductoUseCase) Resumen(ctx context.Context) (*dto.ResumenDTO, error) {
	r, err := uc.productoRepo.Resumen(uc.umbralStockBajo)
	if err != nil {
		return nil, err
	}
	return &dto.ResumenDTO{Total: r.TotalProductos, TotalLotes: r.TotalLotes, Bajos: r.StockBajo}, nil
}

// Eliminar borra un producto del catálogo con sus lotes y entradas, en una
// transacción. Bloqueado con domain.ErrProductoConSalidas mientras existan
// salidas: el historial de lo vendido/consumido se preserva aunque el
// producto salga del catálogo.
func (uc *ProductoUseCase) Eliminar(ctx context.Context, id int64) error {
	return uc.txRunner.Run(ctx, func(
		productoRepo repository.ProductoRepository,
		loteRepo repository.LoteRepository,
		entradaRepo repository.EntradaRepository,
		salidaRepo repository.SalidaRepository,
	) error {
		producto, err := productoRepo.GetByID(id)
		if err != nil {
			return err
		}
		if producto == nil {
			return domain.ErrNotFound
		}
		salidas, err := salidaRepo.CountPorProducto(id)
		if err != nil {
			return err
		}
		if salidas > 0 {
			return domain.ErrProductoConSalidas
		}
		if err := entradaRepo.DeletePorProducto(id); err != nil {
			return err
		}
		if err := loteRepo.DeletePorProducto(id); err != nil {
			return err
		}
		return productoRepo.Delete(id)
	})
}
