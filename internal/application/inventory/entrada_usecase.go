package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/controlfacil/inventario-api/internal/application/dto"
	"github.com/controlfacil/inventario-api/internal/domain"
	"github.com/controlfacil/inventario-api/internal/domain/entity"
	"github.com/controlfacil/inventario-api/internal/domain/repository"
)

// formato de fecha del contrato HTTP ("YYYY-MM-DD").
const formatoFecha = "2006-01-02"

// EntradaUseCase registra y revierte entradas de inventario de forma
// transaccional. Una entrada resuelve-o-crea el producto, registra el lote
// (rechazando duplicados), persiste el movimiento y suma el stock; los
// cuatro pasos comparten la misma transacción.
type EntradaUseCase struct {
	txRunner    TxRunner
	entradaRepo repository.EntradaRepository
}

// NewEntradaUseCase construye el caso de uso.
func NewEntradaUseCase(txRunner TxRunner, entradaRepo repository.EntradaRepository) *EntradaUseCase {
	return &EntradaUseCase{txRunner: txRunner, entradaRepo: entradaRepo}
}

// Registrar valida y persiste una entrada. Devuelve el ID del movimiento.
// Errores: domain.ErrInvalidInput (cantidad no positiva, lote o vencimiento
// ausentes, fechas mal formadas), domain.ErrLoteDuplicado (número de lote ya
// registrado para el producto, detectado por el constraint único).
func (uc *EntradaUseCase) Registrar(ctx context.Context, in dto.RegistrarEntradaRequest) (int64, error) {
	nombre := strings.TrimSpace(in.Producto)
	numeroLote := strings.TrimSpace(in.Lote)
	if nombre == "" {
		return 0, fmt.Errorf("%w: el producto es obligatorio", domain.ErrInvalidInput)
	}
	if in.Cantidad <= 0 {
		return 0, fmt.Errorf("%w: la cantidad debe ser mayor a cero", domain.ErrInvalidInput)
	}
	if numeroLote == "" {
		return 0, fmt.Errorf("%w: el número de lote es obligatorio", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(in.Vencimiento) == "" {
		return 0, fmt.Errorf("%w: la fecha de vencimiento es obligatoria", domain.ErrInvalidInput)
	}
	vencimiento, err := time.Parse(formatoFecha, in.Vencimiento)
	if err != nil {
		return 0, fmt.Errorf("%w: fecha de vencimiento inválida", domain.ErrInvalidInput)
	}
	fecha := time.Now()
	if strings.TrimSpace(in.Fecha) != "" {
		fecha, err = time.Parse(formatoFecha, in.Fecha)
		if err != nil {
			return 0, fmt.Errorf("%w: fecha inválida", domain.ErrInvalidInput)
		}
	}

	now := time.Now()
	txID := uuid.New().String()

	var entradaID int64
	err = uc.txRunner.Run(ctx, func(
		productoRepo repository.ProductoRepository,
		loteRepo repository.LoteRepository,
		entradaRepo repository.EntradaRepository,
		_ repository.SalidaRepository,
	) error {
		producto, err := productoRepo.FindOrCreate(nombre, in.Unidad, &vencimiento)
		if err != nil {
			return err
		}
		lote := &entity.Lote{
			ProductoID:       producto.ID,
			NumeroLote:       numeroLote,
			Proveedor:        strings.TrimSpace(in.Proveedor),
			FechaVencimiento: vencimiento,
			CreatedAt:        now,
		}
		// ErrLoteDuplicado revierte todo: ningún stock sin movimiento
		// persistido, ningún movimiento sin lote.
		if err := loteRepo.Create(lote); err != nil {
			return err
		}
		entrada := &entity.Entrada{
			TransaccionID: txID,
			ProductoID:    producto.ID,
			LoteID:        &lote.ID,
			Cantidad:      in.Cantidad,
			Unidad:        in.Unidad,
			Fecha:         fecha,
			CreatedAt:     now,
		}
		if err := entradaRepo.Create(entrada); err != nil {
			return err
		}
		if err := productoRepo.AjustarStock(producto.ID, in.Cantidad); err != nil {
			return err
		}
		entradaID = entrada.ID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return entradaID, nil
}

// Eliminar borra una entrada y revierte su efecto en el stock del producto,
// en una sola transacción. domain.ErrNotFound si la entrada no existe.
func (uc *EntradaUseCase) Eliminar(ctx context.Context, id int64) error {
	return uc.txRunner.Run(ctx, func(
		productoRepo repository.ProductoRepository,
		_ repository.LoteRepository,
		entradaRepo repository.EntradaRepository,
		_ repository.SalidaRepository,
	) error {
		entrada, err := entradaRepo.GetByID(id)
		if err != nil {
			return err
		}
		if entrada == nil {
			return domain.ErrNotFound
		}
		if err := entradaRepo.Delete(id); err != nil {
			return err
		}
		return productoRepo.AjustarStock(entrada.ProductoID, -entrada.Cantidad)
	})
}

// ListRecientes devuelve las últimas entradas (id descendente) con nombres
// de producto y lote.
func (uc *EntradaUseCase) ListRecientes(ctx context.Context, limit int) ([]dto.EntradaDTO, error) {
	if limit <= 0 {
		limit = 20
	}
	entradas, err := uc.entradaRepo.ListRecientes(limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EntradaDTO, 0, len(entradas))
	for _, e := range entradas {
		out = append(out, toEntradaDTO(e))
	}
	return out, nil
}

func toEntradaDTO(e entity.EntradaDetalle) dto.EntradaDTO {
	d := dto.EntradaDTO{
		ID:             e.ID,
		ProductoID:     e.ProductoID,
		ProductoNombre: e.ProductoNombre,
		LoteID:         e.LoteID,
		Lote:           e.NumeroLote,
		Proveedor:      e.Proveedor,
		Cantidad:       e.Cantidad,
		Unidad:         e.Unidad,
		Fecha:          e.Fecha.Format(formatoFecha),
		CreatedAt:      e.CreatedAt,
	}
	if e.LoteVencimiento != nil {
		s := e.LoteVencimiento.Format(formatoFecha)
		d.LoteVencimiento = &s
	}
	return d
}
