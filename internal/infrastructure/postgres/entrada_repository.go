package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/controlfacil/inventario-api/internal/domain/entity"
	"github.com/controlfacil/inventario-api/internal/domain/repository"
)

var _ repository.EntradaRepository = (*EntradaRepo)(nil)

// EntradaRepo implementación del puerto EntradaRepository sobre PostgreSQL
// (usable con pool o tx).
type EntradaRepo struct {
	q Querier
}

// NewEntradaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEntradaRepository(q Querier) *EntradaRepo {
	return &EntradaRepo{q: q}
}

// Create persiste una entrada y asigna su ID.
func (r *EntradaRepo) Create(entrada *entity.Entrada) error {
	query := `
		INSERT INTO entradas (transaccion_id, producto_id, lote_id, cantidad, unidad, fecha, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())
		RETURNING id, created_at`
	err := r.q.QueryRow(context.Background(), query,
		entrada.TransaccionID, entrada.ProductoID, entrada.LoteID,
		entrada.Cantidad, entrada.Unidad, entrada.Fecha,
	).Scan(&entrada.ID, &entrada.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert entrada: %w", err)
	}
	return nil
}

// GetByID obtiene una entrada por ID; nil si no existe.
func (r *EntradaRepo) GetByID(id int64) (*entity.Entrada, error) {
	query := `
		SELECT id, transaccion_id, producto_id, lote_id, cantidad, unidad, fecha, created_at
		FROM entradas WHERE id = $1`
	var e entity.Entrada
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.TransaccionID, &e.ProductoID, &e.LoteID, &e.Cantidad, &e.Unidad, &e.Fecha, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get entrada: %w", err)
	}
	return &e, nil
}

// ListRecientes últimas entradas por id descendente, con nombres de
// producto y lote para mostrar (proyección de lectura).
func (r *EntradaRepo) ListRecientes(limit int) ([]entity.EntradaDetalle, error) {
	query := `
		SELECT e.id, e.transaccion_id, e.producto_id, e.lote_id, e.cantidad, e.unidad, e.fecha, e.created_at,
		       COALESCE(p.nombre, ''), COALESCE(l.numero_lote, ''), COALESCE(l.proveedor, ''), l.fecha_vencimiento
		FROM entradas e
		LEFT JOIN productos p ON p.id = e.producto_id
		LEFT JOIN lotes l ON l.id = e.lote_id
		ORDER BY e.id DESC
		LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list entradas: %w", err)
	}
	defer rows.Close()
	var list []entity.EntradaDetalle
	for rows.Next() {
		var e entity.EntradaDetalle
		if err := rows.Scan(&e.ID, &e.TransaccionID, &e.ProductoID, &e.LoteID,
			&e.Cantidad, &e.Unidad, &e.Fecha, &e.CreatedAt,
			&e.ProductoNombre, &e.NumeroLote, &e.Proveedor, &e.LoteVencimiento); err != nil {
			return nil, fmt.Errorf("scan entrada: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// Delete elimina una entrada por ID (reversión explícita de un ingreso).
func (r *EntradaRepo) Delete(id int64) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM entradas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete entrada: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("delete entrada: entrada %d no existe", id)
	}
	return nil
}

// DeletePorProducto elimina las entradas de un producto (cascada de la
// eliminación del producto).
func (r *EntradaRepo) DeletePorProducto(productoID int64) error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM entradas WHERE producto_id = $1`, productoID); err != nil {
		return fmt.Errorf("delete entradas por producto: %w", err)
	}
	return nil
}
