package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/controlfacil/inventario-api/internal/domain"
	"github.com/controlfacil/inventario-api/internal/domain/entity"
	"github.com/controlfacil/inventario-api/internal/domain/repository"
)

var _ repository.LoteRepository = (*LoteRepo)(nil)

// LoteRepo implementación del puerto LoteRepository sobre PostgreSQL
// (usable con pool o tx). El stock del lote nunca se almacena: se deriva
// de entradas menos salidas en cada consulta.
type LoteRepo struct {
	q Querier
}

// NewLoteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLoteRepository(q Querier) *LoteRepo {
	return &LoteRepo{q: q}
}

// stockDerivado expresión SQL del stock derivado del lote `l`.
const stockDerivado = `(SELECT COALESCE(SUM(e.cantidad), 0) FROM entradas e WHERE e.lote_id = l.id)
		 - (SELECT COALESCE(SUM(s.cantidad), 0) FROM salidas s WHERE s.lote_id = l.id)`

const loteCols = `l.id, l.producto_id, l.numero_lote, l.proveedor, l.fecha_vencimiento, l.created_at`

// Create persiste el lote y asigna su ID. El índice único
// (producto_id, lower(btrim(numero_lote))) es la autoridad final: una
// violación se remapea a domain.ErrLoteDuplicado aunque el pre-chequeo
// hubiera pasado.
func (r *LoteRepo) Create(lote *entity.Lote) error {
	query := `
		INSERT INTO lotes (producto_id, numero_lote, proveedor, fecha_vencimiento, created_at)
		VALUES ($1, btrim($2), $3, $4, now())
		RETURNING id, created_at`
	err := r.q.QueryRow(context.Background(), query,
		lote.ProductoID, lote.NumeroLote, lote.Proveedor, lote.FechaVencimiento,
	).Scan(&lote.ID, &lote.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrLoteDuplicado
		}
		return fmt.Errorf("insert lote: %w", err)
	}
	return nil
}

// GetByID obtiene un lote por ID; nil si no existe.
func (r *LoteRepo) GetByID(id int64) (*entity.Lote, error) {
	return r.scanOne(`SELECT `+loteCols+` FROM lotes l WHERE l.id = $1`, id)
}

// BuscarPorNumero busca por (producto, número normalizado); nil si no
// existe. Usa la misma normalización que el camino de inserción.
func (r *LoteRepo) BuscarPorNumero(productoID int64, numeroLote string) (*entity.Lote, error) {
	query := `
		SELECT ` + loteCols + ` FROM lotes l
		WHERE l.producto_id = $1 AND lower(btrim(l.numero_lote)) = lower(btrim($2))`
	return r.scanOne(query, productoID, numeroLote)
}

// BuscarPorNumeroGlobal busca el número de lote en cualquier producto.
func (r *LoteRepo) BuscarPorNumeroGlobal(numeroLote string) (*entity.Lote, error) {
	query := `
		SELECT ` + loteCols + ` FROM lotes l
		WHERE lower(btrim(l.numero_lote)) = lower(btrim($1))
		ORDER BY l.id LIMIT 1`
	return r.scanOne(query, numeroLote)
}

// StockDerivado calcula entradas menos salidas del lote. Devuelve 0 si el
// lote no tiene movimientos (o ya no existe).
func (r *LoteRepo) StockDerivado(loteID int64) (int64, error) {
	query := `
		SELECT (SELECT COALESCE(SUM(e.cantidad), 0) FROM entradas e WHERE e.lote_id = $1)
		     - (SELECT COALESCE(SUM(s.cantidad), 0) FROM salidas s WHERE s.lote_id = $1)`
	var stock int64
	if err := r.q.QueryRow(context.Background(), query, loteID).Scan(&stock); err != nil {
		return 0, fmt.Errorf("stock derivado: %w", err)
	}
	return stock, nil
}

// ListConStock lotes con stock derivado positivo, con datos del producto,
// ordenados por producto y número de lote.
func (r *LoteRepo) ListConStock() ([]entity.LoteConStock, error) {
	query := `
		SELECT ` + loteCols + `, p.nombre, p.unidad, ` + stockDerivado + ` AS stock
		FROM lotes l
		JOIN productos p ON p.id = l.producto_id
		WHERE ` + stockDerivado + ` > 0
		ORDER BY p.nombre, l.numero_lote`
	return r.list(query)
}

// ListPorProducto lotes activos de un producto, por número de lote.
func (r *LoteRepo) ListPorProducto(productoID int64) ([]entity.LoteConStock, error) {
	query := `
		SELECT ` + loteCols + `, p.nombre, p.unidad, ` + stockDerivado + ` AS stock
		FROM lotes l
		JOIN productos p ON p.id = l.producto_id
		WHERE l.producto_id = $1 AND ` + stockDerivado + ` > 0
		ORDER BY l.numero_lote`
	return r.list(query, productoID)
}

// ListVencimientos lotes activos ordenados por fecha de vencimiento
// ascendente; este orden lo hereda el clasificador.
func (r *LoteRepo) ListVencimientos() ([]entity.LoteConStock, error) {
	query := `
		SELECT ` + loteCols + `, p.nombre, p.unidad, ` + stockDerivado + ` AS stock
		FROM lotes l
		JOIN productos p ON p.id = l.producto_id
		WHERE ` + stockDerivado + ` > 0
		ORDER BY l.fecha_vencimiento ASC`
	return r.list(query)
}

// Delete elimina un lote por ID (retiro de lote terminado). Las entradas y
// salidas que lo referencian conservan su fila con lote_id en NULL.
func (r *LoteRepo) Delete(id int64) error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM lotes WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete lote: %w", err)
	}
	return nil
}

// DeletePorProducto elimina todos los lotes de un producto (cascada de la
// eliminación del producto, dentro de su transacción).
func (r *LoteRepo) DeletePorProducto(productoID int64) error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM lotes WHERE producto_id = $1`, productoID); err != nil {
		return fmt.Errorf("delete lotes por producto: %w", err)
	}
	return nil
}

func (r *LoteRepo) scanOne(query string, args ...any) (*entity.Lote, error) {
	var l entity.Lote
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&l.ID, &l.ProductoID, &l.NumeroLote, &l.Proveedor, &l.FechaVencimiento, &l.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lote: %w", err)
	}
	return &l, nil
}

func (r *LoteRepo) list(query string, args ...any) ([]entity.LoteConStock, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list lotes: %w", err)
	}
	defer rows.Close()
	var list []entity.LoteConStock
	for rows.Next() {
		var l entity.LoteConStock
		if err := rows.Scan(&l.ID, &l.ProductoID, &l.NumeroLote, &l.Proveedor,
			&l.FechaVencimiento, &l.CreatedAt, &l.ProductoNombre, &l.Unidad, &l.Stock); err != nil {
			return nil, fmt.Errorf("scan lote: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}
