package postgres

import (
	"context"
	"fmt"

	"github.com/controlfacil/inventario-api/internal/domain/entity"
	"github.com/controlfacil/inventario-api/internal/domain/repository"
)

var _ repository.SalidaRepository = (*SalidaRepo)(nil)

// SalidaRepo implementación del puerto SalidaRepository sobre PostgreSQL
// (usable con pool o tx). Sin Delete: las salidas son el rastro de
// auditoría del inventario.
type SalidaRepo struct {
	q Querier
}

// NewSalidaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSalidaRepository(q Querier) *SalidaRepo {
	return &SalidaRepo{q: q}
}

// Create persiste una salida y asigna su ID.
func (r *SalidaRepo) Create(salida *entity.Salida) error {
	query := `
		INSERT INTO salidas (transaccion_id, producto_id, lote_id, cantidad, motivo, created_at)
		VALUES ($1, $2, $3, $4, $5, now())
		RETURNING id, created_at`
	err := r.q.QueryRow(context.Background(), query,
		salida.TransaccionID, salida.ProductoID, salida.LoteID, salida.Cantidad, salida.Motivo,
	).Scan(&salida.ID, &salida.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert salida: %w", err)
	}
	return nil
}

// ListRecientes últimas salidas por id descendente con el nombre del producto.
func (r *SalidaRepo) ListRecientes(limit int) ([]entity.SalidaDetalle, error) {
	query := `
		SELECT s.id, s.transaccion_id, s.producto_id, s.lote_id, s.cantidad, s.motivo, s.created_at,
		       COALESCE(p.nombre, '')
		FROM salidas s
		LEFT JOIN productos p ON p.id = s.producto_id
		ORDER BY s.id DESC
		LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list salidas: %w", err)
	}
	defer rows.Close()
	var list []entity.SalidaDetalle
	for rows.Next() {
		var s entity.SalidaDetalle
		if err := rows.Scan(&s.ID, &s.TransaccionID, &s.ProductoID, &s.LoteID,
			&s.Cantidad, &s.Motivo, &s.CreatedAt, &s.ProductoNombre); err != nil {
			return nil, fmt.Errorf("scan salida: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// CountPorProducto cuenta las salidas de un producto; usada como guardia de
// inmutabilidad antes de eliminar el producto.
func (r *SalidaRepo) CountPorProducto(productoID int64) (int64, error) {
	var n int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM salidas WHERE producto_id = $1`, productoID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count salidas: %w", err)
	}
	return n, nil
}

// TopVentas productos más vendidos (solo motivo venta) por cantidad total.
func (r *SalidaRepo) TopVentas(limit int) ([]entity.TopVenta, error) {
	query := `
		SELECT p.id, p.nombre, p.unidad, COUNT(s.id), COALESCE(SUM(s.cantidad), 0)
		FROM salidas s
		JOIN productos p ON p.id = s.producto_id
		WHERE s.motivo = $1
		GROUP BY p.id, p.nombre, p.unidad
		ORDER BY SUM(s.cantidad) DESC
		LIMIT $2`
	rows, err := r.q.Query(context.Background(), query, entity.MotivoVenta, limit)
	if err != nil {
		return nil, fmt.Errorf("top ventas: %w", err)
	}
	defer rows.Close()
	var list []entity.TopVenta
	for rows.Next() {
		var t entity.TopVenta
		if err := rows.Scan(&t.ProductoID, &t.Nombre, &t.Unidad, &t.TotalVentas, &t.CantidadTotal); err != nil {
			return nil, fmt.Errorf("scan top venta: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}
