package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/controlfacil/inventario-api/internal/domain/entity"
	"github.com/controlfacil/inventario-api/internal/domain/repository"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo implementación del puerto ProductoRepository sobre
// PostgreSQL (usable con pool o tx).
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

const productoCols = `id, nombre, stock, unidad, fecha_vencimiento, created_at`

// FindOrCreate busca por nombre normalizado; si no existe inserta con stock
// 0. El INSERT usa ON CONFLICT DO NOTHING sobre el índice único por nombre
// normalizado: si otra transacción insertó primero, se relee la fila
// ganadora en vez de fallar.
func (r *ProductoRepo) FindOrCreate(nombre, unidad string, vencimiento *time.Time) (*entity.Producto, error) {
	existente, err := r.GetByNombre(nombre)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return existente, nil
	}

	query := `
		INSERT INTO productos (nombre, stock, unidad, fecha_vencimiento, created_at)
		VALUES (btrim($1), 0, $2, $3, now())
		ON CONFLICT ((lower(btrim(nombre)))) DO NOTHING
		RETURNING ` + productoCols
	var p entity.Producto
	err = r.q.QueryRow(context.Background(), query, nombre, unidad, vencimiento).Scan(
		&p.ID, &p.Nombre, &p.Stock, &p.Unidad, &p.FechaVencimiento, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Otra transacción ganó la inserción: releer.
			return r.GetByNombre(nombre)
		}
		return nil, fmt.Errorf("insert producto: %w", err)
	}
	return &p, nil
}

// GetByID obtiene un producto por ID; nil si no existe.
func (r *ProductoRepo) GetByID(id int64) (*entity.Producto, error) {
	return r.scanOne(`SELECT `+productoCols+` FROM productos WHERE id = $1`, id)
}

// GetByNombre busca por nombre normalizado (trim + lower); nil si no existe.
func (r *ProductoRepo) GetByNombre(nombre string) (*entity.Producto, error) {
	query := `SELECT ` + productoCols + ` FROM productos WHERE lower(btrim(nombre)) = lower(btrim($1))`
	return r.scanOne(query, nombre)
}

// GetForUpdate obtiene el producto y bloquea la fila (SELECT FOR UPDATE)
// para serializar chequeos de stock dentro de la transacción.
func (r *ProductoRepo) GetForUpdate(id int64) (*entity.Producto, error) {
	return r.scanOne(`SELECT `+productoCols+` FROM productos WHERE id = $1 FOR UPDATE`, id)
}

// AjustarStock aplica un delta relativo en el servidor; evita lost updates
// bajo entradas/salidas concurrentes sobre el mismo producto.
func (r *ProductoRepo) AjustarStock(id, delta int64) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE productos SET stock = stock + $2 WHERE id = $1`, id, delta)
	if err != nil {
		return fmt.Errorf("ajustar stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("ajustar stock: producto %d no existe", id)
	}
	return nil
}

// ListActivos productos con stock positivo, orden alfabético.
func (r *ProductoRepo) ListActivos() ([]entity.Producto, error) {
	query := `SELECT ` + productoCols + ` FROM productos WHERE stock > 0 ORDER BY nombre`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	var list []entity.Producto
	for rows.Next() {
		var p entity.Producto
		if err := rows.Scan(&p.ID, &p.Nombre, &p.Stock, &p.Unidad, &p.FechaVencimiento, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// ListInventario productos activos con el conteo de lotes cuyo stock
// derivado (entradas menos salidas) es positivo.
func (r *ProductoRepo) ListInventario() ([]entity.ProductoInventario, error) {
	query := `
		SELECT p.id, p.nombre, p.stock, p.unidad,
		       (SELECT COUNT(*) FROM lotes l
		         WHERE l.producto_id = p.id
		           AND (SELECT COALESCE(SUM(e.cantidad), 0) FROM entradas e WHERE e.lote_id = l.id)
		             - (SELECT COALESCE(SUM(s.cantidad), 0) FROM salidas s WHERE s.lote_id = l.id) > 0
		       ) AS total_lotes
		FROM productos p
		WHERE p.stock > 0
		ORDER BY p.nombre`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list inventario: %w", err)
	}
	defer rows.Close()
	var list []entity.ProductoInventario
	for rows.Next() {
		var p entity.ProductoInventario
		if err := rows.Scan(&p.ID, &p.Nombre, &p.Stock, &p.Unidad, &p.TotalLotes); err != nil {
			return nil, fmt.Errorf("scan inventario: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Resumen totales del panel: productos activos, lotes activos y productos
// con stock bajo (positivo pero por debajo del umbral).
func (r *ProductoRepo) Resumen(umbralStockBajo int64) (*entity.ResumenInventario, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM productos WHERE stock > 0),
			(SELECT COUNT(*) FROM lotes l
			  WHERE (SELECT COALESCE(SUM(e.cantidad), 0) FROM entradas e WHERE e.lote_id = l.id)
			      - (SELECT COALESCE(SUM(s.cantidad), 0) FROM salidas s WHERE s.lote_id = l.id) > 0),
			(SELECT COUNT(*) FROM productos WHERE stock > 0 AND stock < $1)`
	var res entity.ResumenInventario
	err := r.q.QueryRow(context.Background(), query, umbralStockBajo).Scan(
		&res.TotalProductos, &res.TotalLotes, &res.StockBajo,
	)
	if err != nil {
		return nil, fmt.Errorf("resumen inventario: %w", err)
	}
	return &res, nil
}

// Delete elimina un producto por ID. Los lotes caen por cascada; las
// entradas las borra antes el caso de uso dentro de la misma transacción.
func (r *ProductoRepo) Delete(id int64) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM productos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete producto: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("delete producto: producto %d no existe", id)
	}
	return nil
}

func (r *ProductoRepo) scanOne(query string, args ...any) (*entity.Producto, error) {
	var p entity.Producto
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&p.ID, &p.Nombre, &p.Stock, &p.Unidad, &p.FechaVencimiento, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return &p, nil
}
