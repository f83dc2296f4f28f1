package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/controlfacil/inventario-api/internal/application/dto"
	"github.com/controlfacil/inventario-api/internal/domain/entity"
	domaininv "github.com/controlfacil/inventario-api/internal/domain/inventory"
	"github.com/controlfacil/inventario-api/internal/domain/repository"
)

// VencimientoConfig parámetros del clasificador de vencimientos.
// El offset es una regla de negocio (el inventario opera en hora de
// Caracas, UTC-4), no la zona local del servidor.
type VencimientoConfig struct {
	OffsetHoras int // offset fijo respecto a UTC para calcular "hoy"
	DiasAlerta  int // ventana de "próximo a vencer"
}

// LoteUseCase consultas de lotes: listados con stock derivado, pre-chequeo
// de duplicados y clasificación de vencimientos.
type LoteUseCase struct {
	loteRepo     repository.LoteRepository
	productoRepo repository.ProductoRepository
	venc         VencimientoConfig
}

// NewLoteUseCase construye el caso de uso.
func NewLoteUseCase(loteRepo repository.LoteRepository, productoRepo repository.ProductoRepository, venc VencimientoConfig) *LoteUseCase {
	if venc.DiasAlerta <= 0 {
		venc.DiasAlerta = domaininv.DiasProximoVencimiento
	}
	return &LoteUseCase{loteRepo: loteRepo, productoRepo: productoRepo, venc: venc}
}

// ListConStock lista todos los lotes activos (stock derivado > 0).
func (uc *LoteUseCase) ListConStock(ctx context.Context) ([]dto.LoteDTO, error) {
	lotes, err := uc.loteRepo.ListConStock()
	if err != nil {
		return nil, err
	}
	return toLoteDTOs(lotes), nil
}

// PorProducto lista los lotes activos de un producto junto con el producto.
func (uc *LoteUseCase) PorProducto(ctx context.Context, productoID int64) ([]dto.LoteDTO, *dto.ProductoDTO, error) {
	lotes, err := uc.loteRepo.ListPorProducto(productoID)
	if err != nil {
		return nil, nil, err
	}
	producto, err := uc.productoRepo.GetByID(productoID)
	if err != nil {
		return nil, nil, err
	}
	var p *dto.ProductoDTO
	if producto != nil {
		p = &dto.ProductoDTO{ID: producto.ID, Nombre: producto.Nombre, Stock: producto.Stock, Unidad: producto.Unidad}
	}
	return toLoteDTOs(lotes), p, nil
}

// Verificar es el pre-chequeo de lote duplicado previo a confirmar una
// entrada. Usa la misma normalización que el camino de inserción; es solo
// retroalimentación temprana, la autoridad final es el constraint único.
func (uc *LoteUseCase) Verificar(ctx context.Context, numeroLote, productoNombre string) (*dto.VerificarLoteResponse, error) {
	if strings.TrimSpace(numeroLote) == "" {
		return &dto.VerificarLoteResponse{Success: true, Existe: false}, nil
	}

	if strings.TrimSpace(productoNombre) != "" {
		producto, err := uc.productoRepo.GetByNombre(productoNombre)
		if err != nil {
			return nil, err
		}
		if producto != nil {
			lote, err := uc.loteRepo.BuscarPorNumero(producto.ID, numeroLote)
			if err != nil {
				return nil, err
			}
			return verificacion(lote), nil
		}
	}

	// Sin producto (o producto aún inexistente): buscar en cualquier producto.
	lote, err := uc.loteRepo.BuscarPorNumeroGlobal(numeroLote)
	if err != nil {
		return nil, err
	}
	return verificacion(lote), nil
}

// Vencimientos clasifica los lotes activos en vencidos y próximos a vencer.
// ref permite fijar la fecha de referencia (consultas históricas y tests);
// nil usa "hoy" en el offset configurado.
func (uc *LoteUseCase) Vencimientos(ctx context.Context, ref *time.Time) (*dto.VencimientosDTO, error) {
	lotes, err := uc.loteRepo.ListVencimientos()
	if err != nil {
		return nil, err
	}
	hoy := domaininv.HoyEn(uc.venc.OffsetHoras)
	if ref != nil {
		hoy = *ref
	}
	c := domaininv.Clasificar(lotes, hoy, uc.venc.DiasAlerta)
	return &dto.VencimientosDTO{
		Vencidos: toLoteDTOs(c.Vencidos),
		Proximos: toLoteDTOs(c.Proximos),
	}, nil
}

func verificacion(lote *entity.Lote) *dto.VerificarLoteResponse {
	if lote == nil {
		return &dto.VerificarLoteResponse{Success: true, Existe: false}
	}
	return &dto.VerificarLoteResponse{
		Success: true,
		Existe:  true,
		Datos:   &dto.LoteDatos{NumeroLote: lote.NumeroLote, Proveedor: lote.Proveedor},
	}
}

func toLoteDTOs(lotes []entity.LoteConStock) []dto.LoteDTO {
	out := make([]dto.LoteDTO, 0, len(lotes))
	for _, l := range lotes {
		out = append(out, dto.LoteDTO{
			ID:               l.ID,
			ProductoID:       l.ProductoID,
			NumeroLote:       l.NumeroLote,
			Proveedor:        l.Proveedor,
			FechaVencimiento: l.FechaVencimiento.Format(formatoFecha),
			ProductoNombre:   l.ProductoNombre,
			Unidad:           l.Unidad,
			Stock:            l.Stock,
		})
	}
	return out
}
