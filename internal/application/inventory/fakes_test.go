package inventory_test

import (
	"context"
	"sort"
	"time"

	"github.com/controlfacil/inventario-api/internal/domain"
	"github.com/controlfacil/inventario-api/internal/domain/entity"
	domaininv "github.com/controlfacil/inventario-api/internal/domain/inventory"
	"github.com/controlfacil/inventario-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake en memoria del almacenamiento: mismos contratos que los adaptadores
// de PostgreSQL (normalización de nombres, stock derivado por lote, conflicto
// de lote duplicado) para ejercitar los casos de uso sin base de datos.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	nextID    int64
	productos []entity.Producto
	lotes     []entity.Lote
	entradas  []entity.Entrada
	salidas   []entity.Salida
}

func newMemStore() *memStore { return &memStore{} }

func (s *memStore) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *memStore) clone() *memStore {
	c := &memStore{nextID: s.nextID}
	c.productos = append([]entity.Producto(nil), s.productos...)
	c.lotes = append([]entity.Lote(nil), s.lotes...)
	c.entradas = append([]entity.Entrada(nil), s.entradas...)
	c.salidas = append([]entity.Salida(nil), s.salidas...)
	return c
}

func (s *memStore) restore(snap *memStore) {
	s.nextID = snap.nextID
	s.productos = snap.productos
	s.lotes = snap.lotes
	s.entradas = snap.entradas
	s.salidas = snap.salidas
}

// stockDerivado SUM(entradas) - SUM(salidas) del lote, igual que el SQL.
func (s *memStore) stockDerivado(loteID int64) int64 {
	var total int64
	for _, e := range s.entradas {
		if e.LoteID != nil && *e.LoteID == loteID {
			total += e.Cantidad
		}
	}
	for _, sa := range s.salidas {
		if sa.LoteID != nil && *sa.LoteID == loteID {
			total -= sa.Cantidad
		}
	}
	return total
}

func (s *memStore) producto(id int64) *entity.Producto {
	for i := range s.productos {
		if s.productos[i].ID == id {
			return &s.productos[i]
		}
	}
	return nil
}

func (s *memStore) loteConStock(l entity.Lote) entity.LoteConStock {
	out := entity.LoteConStock{Lote: l, Stock: s.stockDerivado(l.ID)}
	if p := s.producto(l.ProductoID); p != nil {
		out.ProductoNombre = p.Nombre
		out.Unidad = p.Unidad
	}
	return out
}

// ── ProductoRepository ───────────────────────────────────────────────────────

type fakeProductoRepo struct{ s *memStore }

var _ repository.ProductoRepository = fakeProductoRepo{}

func (r fakeProductoRepo) FindOrCreate(nombre, unidad string, vencimiento *time.Time) (*entity.Producto, error) {
	for i := range r.s.productos {
		if domaininv.MismoNombre(r.s.productos[i].Nombre, nombre) {
			return &r.s.productos[i], nil
		}
	}
	p := entity.Producto{
		ID:               r.s.id(),
		Nombre:           nombre,
		Unidad:           unidad,
		FechaVencimiento: vencimiento,
		CreatedAt:        time.Now(),
	}
	r.s.productos = append(r.s.productos, p)
	return &r.s.productos[len(r.s.productos)-1], nil
}

func (r fakeProductoRepo) GetByID(id int64) (*entity.Producto, error) {
	if p := r.s.producto(id); p != nil {
		copia := *p
		return &copia, nil
	}
	return nil, nil
}

func (r fakeProductoRepo) GetByNombre(nombre string) (*entity.Producto, error) {
	for i := range r.s.productos {
		if domaininv.MismoNombre(r.s.productos[i].Nombre, nombre) {
			copia := r.s.productos[i]
			return &copia, nil
		}
	}
	return nil, nil
}

func (r fakeProductoRepo) GetForUpdate(id int64) (*entity.Producto, error) {
	return r.GetByID(id)
}

func (r fakeProductoRepo) AjustarStock(id, delta int64) error {
	p := r.s.producto(id)
	if p == nil {
		return domain.ErrNotFound
	}
	p.Stock += delta
	return nil
}

func (r fakeProductoRepo) ListActivos() ([]entity.Producto, error) {
	var out []entity.Producto
	for _, p := range r.s.productos {
		if p.Stock > 0 {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r fakeProductoRepo) ListInventario() ([]entity.ProductoInventario, error) {
	var out []entity.ProductoInventario
	for _, p := range r.s.productos {
		if p.Stock <= 0 {
			continue
		}
		var lotes int64
		for _, l := range r.s.lotes {
			if l.ProductoID == p.ID && r.s.stockDerivado(l.ID) > 0 {
				lotes++
			}
		}
		out = append(out, entity.ProductoInventario{
			ID: p.ID, Nombre: p.Nombre, Stock: p.Stock, Unidad: p.Unidad, TotalLotes: lotes,
		})
	}
	return out, nil
}

func (r fakeProductoRepo) Resumen(umbralStockBajo int64) (*entity.ResumenInventario, error) {
	var res entity.ResumenInventario
	for _, p := range r.s.productos {
		if p.Stock > 0 {
			res.TotalProductos++
			if p.Stock < umbralStockBajo {
				res.StockBajo++
			}
		}
	}
	for _, l := range r.s.lotes {
		if r.s.stockDerivado(l.ID) > 0 {
			res.TotalLotes++
		}
	}
	return &res, nil
}

func (r fakeProductoRepo) Delete(id int64) error {
	for i := range r.s.productos {
		if r.s.productos[i].ID == id {
			r.s.productos = append(r.s.productos[:i:i], r.s.productos[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// ── LoteRepository ───────────────────────────────────────────────────────────

type fakeLoteRepo struct{ s *memStore }

var _ repository.LoteRepository = fakeLoteRepo{}

func (r fakeLoteRepo) Create(lote *entity.Lote) error {
	for _, l := range r.s.lotes {
		if l.ProductoID == lote.ProductoID && domaininv.MismoNombre(l.NumeroLote, lote.NumeroLote) {
			return domain.ErrLoteDuplicado
		}
	}
	lote.ID = r.s.id()
	r.s.lotes = append(r.s.lotes, *lote)
	return nil
}

func (r fakeLoteRepo) GetByID(id int64) (*entity.Lote, error) {
	for _, l := range r.s.lotes {
		if l.ID == id {
			copia := l
			return &copia, nil
		}
	}
	return nil, nil
}

func (r fakeLoteRepo) BuscarPorNumero(productoID int64, numeroLote string) (*entity.Lote, error) {
	for _, l := range r.s.lotes {
		if l.ProductoID == productoID && domaininv.MismoNombre(l.NumeroLote, numeroLote) {
			copia := l
			return &copia, nil
		}
	}
	return nil, nil
}

func (r fakeLoteRepo) BuscarPorNumeroGlobal(numeroLote string) (*entity.Lote, error) {
	for _, l := range r.s.lotes {
		if domaininv.MismoNombre(l.NumeroLote, numeroLote) {
			copia := l
			return &copia, nil
		}
	}
	return nil, nil
}

func (r fakeLoteRepo) StockDerivado(loteID int64) (int64, error) {
	return r.s.stockDerivado(loteID), nil
}

func (r fakeLoteRepo) ListConStock() ([]entity.LoteConStock, error) {
	var out []entity.LoteConStock
	for _, l := range r.s.lotes {
		if cs := r.s.loteConStock(l); cs.Stock > 0 {
			out = append(out, cs)
		}
	}
	return out, nil
}

func (r fakeLoteRepo) ListPorProducto(productoID int64) ([]entity.LoteConStock, error) {
	var out []entity.LoteConStock
	for _, l := range r.s.lotes {
		if l.ProductoID != productoID {
			continue
		}
		if cs := r.s.loteConStock(l); cs.Stock > 0 {
			out = append(out, cs)
		}
	}
	return out, nil
}

func (r fakeLoteRepo) ListVencimientos() ([]entity.LoteConStock, error) {
	out, _ := r.ListConStock()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].FechaVencimiento.Before(out[j].FechaVencimiento)
	})
	return out, nil
}

func (r fakeLoteRepo) Delete(id int64) error {
	for i := range r.s.lotes {
		if r.s.lotes[i].ID == id {
			r.s.lotes = append(r.s.lotes[:i:i], r.s.lotes[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r fakeLoteRepo) DeletePorProducto(productoID int64) error {
	var rest []entity.Lote
	for _, l := range r.s.lotes {
		if l.ProductoID != productoID {
			rest = append(rest, l)
		}
	}
	r.s.lotes = rest
	return nil
}

// ── EntradaRepository ────────────────────────────────────────────────────────

type fakeEntradaRepo struct{ s *memStore }

var _ repository.EntradaRepository = fakeEntradaRepo{}

func (r fakeEntradaRepo) Create(entrada *entity.Entrada) error {
	entrada.ID = r.s.id()
	r.s.entradas = append(r.s.entradas, *entrada)
	return nil
}

func (r fakeEntradaRepo) GetByID(id int64) (*entity.Entrada, error) {
	for _, e := range r.s.entradas {
		if e.ID == id {
			copia := e
			return &copia, nil
		}
	}
	return nil, nil
}

func (r fakeEntradaRepo) ListRecientes(limit int) ([]entity.EntradaDetalle, error) {
	var out []entity.EntradaDetalle
	for i := len(r.s.entradas) - 1; i >= 0 && len(out) < limit; i-- {
		e := r.s.entradas[i]
		d := entity.EntradaDetalle{Entrada: e}
		if p := r.s.producto(e.ProductoID); p != nil {
			d.ProductoNombre = p.Nombre
		}
		if e.LoteID != nil {
			for _, l := range r.s.lotes {
				if l.ID == *e.LoteID {
					d.NumeroLote = l.NumeroLote
					d.Proveedor = l.Proveedor
					venc := l.FechaVencimiento
					d.LoteVencimiento = &venc
				}
			}
		}
		out = append(out, d)
	}
	return out, nil
}

func (r fakeEntradaRepo) Delete(id int64) error {
	for i := range r.s.entradas {
		if r.s.entradas[i].ID == id {
			r.s.entradas = append(r.s.entradas[:i:i], r.s.entradas[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r fakeEntradaRepo) DeletePorProducto(productoID int64) error {
	var rest []entity.Entrada
	for _, e := range r.s.entradas {
		if e.ProductoID != productoID {
			rest = append(rest, e)
		}
	}
	r.s.entradas = rest
	return nil
}

// ── SalidaRepository ─────────────────────────────────────────────────────────

type fakeSalidaRepo struct{ s *memStore }

var _ repository.SalidaRepository = fakeSalidaRepo{}

func (r fakeSalidaRepo) Create(salida *entity.Salida) error {
	salida.ID = r.s.id()
	r.s.salidas = append(r.s.salidas, *salida)
	return nil
}

func (r fakeSalidaRepo) ListRecientes(limit int) ([]entity.SalidaDetalle, error) {
	var out []entity.SalidaDetalle
	for i := len(r.s.salidas) - 1; i >= 0 && len(out) < limit; i-- {
		sa := r.s.salidas[i]
		d := entity.SalidaDetalle{Salida: sa}
		if p := r.s.producto(sa.ProductoID); p != nil {
			d.ProductoNombre = p.Nombre
		}
		out = append(out, d)
	}
	return out, nil
}

func (r fakeSalidaRepo) CountPorProducto(productoID int64) (int64, error) {
	var n int64
	for _, sa := range r.s.salidas {
		if sa.ProductoID == productoID {
			n++
		}
	}
	return n, nil
}

func (r fakeSalidaRepo) TopVentas(limit int) ([]entity.TopVenta, error) {
	porProducto := map[int64]*entity.TopVenta{}
	for _, sa := range r.s.salidas {
		if sa.Motivo != entity.MotivoVenta {
			continue
		}
		fila := porProducto[sa.ProductoID]
		if fila == nil {
			fila = &entity.TopVenta{ProductoID: sa.ProductoID}
			if p := r.s.producto(sa.ProductoID); p != nil {
				fila.Nombre = p.Nombre
				fila.Unidad = p.Unidad
			}
			porProducto[sa.ProductoID] = fila
		}
		fila.TotalVentas++
		fila.CantidadTotal += sa.Cantidad
	}
	out := make([]entity.TopVenta, 0, len(porProducto))
	for _, f := range porProducto {
		out = append(out, *f)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CantidadTotal > out[j].CantidadTotal })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// ── TxRunner ─────────────────────────────────────────────────────────────────

// fakeTxRunner pasa los repos atados al store y emula el rollback: si la
// función devuelve error, el estado vuelve al snapshot previo.
type fakeTxRunner struct{ s *memStore }

func (t fakeTxRunner) Run(ctx context.Context, fn func(
	productoRepo repository.ProductoRepository,
	loteRepo repository.LoteRepository,
	entradaRepo repository.EntradaRepository,
	salidaRepo repository.SalidaRepository,
) error) error {
	snap := t.s.clone()
	err := fn(fakeProductoRepo{t.s}, fakeLoteRepo{t.s}, fakeEntradaRepo{t.s}, fakeSalidaRepo{t.s})
	if err != nil {
		t.s.restore(snap)
	}
	return err
}
