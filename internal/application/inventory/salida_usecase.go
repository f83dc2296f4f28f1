package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/controlfacil/inventario-api/internal/application/dto"
	"github.com/controlfacil/inventario-api/internal/domain"
	"github.com/controlfacil/inventario-api/internal/domain/entity"
	domaininv "github.com/controlfacil/inventario-api/internal/domain/inventory"
	"github.com/controlfacil/inventario-api/internal/domain/repository"
)

// SalidaUseCase registra salidas de inventario. La verificación de
// disponibilidad y la resta de stock ocurren con la fila del producto
// bloqueada (SELECT FOR UPDATE) dentro de una transacción, para que dos
// salidas concurrentes no pasen ambas el chequeo con el mismo stock.
type SalidaUseCase struct {
	txRunner   TxRunner
	salidaRepo repository.SalidaRepository
}

// NewSalidaUseCase construye el caso de uso.
func NewSalidaUseCase(txRunner TxRunner, salidaRepo repository.SalidaRepository) *SalidaUseCase {
	return &SalidaUseCase{txRunner: txRunner, salidaRepo: salidaRepo}
}

// Registrar valida y persiste una salida. Si viene lote_id la disponibilidad
// se evalúa sobre el stock derivado del lote; si no, sobre el stock del
// producto. Tras restar, un lote cuyo stock derivado queda en cero o menos
// se retira (se elimina, no se deja en cero): los lotes terminados
// desaparecen de las vistas activas.
func (uc *SalidaUseCase) Registrar(ctx context.Context, in dto.RegistrarSalidaRequest) error {
	if in.Cantidad <= 0 {
		return fmt.Errorf("%w: la cantidad debe ser mayor a cero", domain.ErrInvalidInput)
	}
	if !entity.MotivoValido(in.Motivo) {
		return fmt.Errorf("%w: motivo desconocido %q", domain.ErrInvalidInput, in.Motivo)
	}

	now := time.Now()
	txID := uuid.New().String()

	return uc.txRunner.Run(ctx, func(
		productoRepo repository.ProductoRepository,
		loteRepo repository.LoteRepository,
		_ repository.EntradaRepository,
		salidaRepo repository.SalidaRepository,
	) error {
		// El lock de la fila del producto serializa el chequeo y la resta
		// frente a otras entradas/salidas del mismo producto.
		producto, err := productoRepo.GetForUpdate(in.ProductoID)
		if err != nil {
			return err
		}
		if producto == nil {
			return domain.ErrNotFound
		}

		if in.LoteID != nil {
			lote, err := loteRepo.GetByID(*in.LoteID)
			if err != nil {
				return err
			}
			if lote == nil || lote.ProductoID != producto.ID {
				return domain.ErrNotFound
			}
			disponible, err := loteRepo.StockDerivado(lote.ID)
			if err != nil {
				return err
			}
			if disponible < in.Cantidad {
				return domain.ErrStockLoteInsuficiente
			}
		} else if producto.Stock < in.Cantidad {
			return domain.ErrStockInsuficiente
		}

		salida := &entity.Salida{
			TransaccionID: txID,
			ProductoID:    producto.ID,
			LoteID:        in.LoteID,
			Cantidad:      in.Cantidad,
			Motivo:        in.Motivo,
			CreatedAt:     now,
		}
		if err := salidaRepo.Create(salida); err != nil {
			return err
		}
		if err := productoRepo.AjustarStock(producto.ID, -in.Cantidad); err != nil {
			return err
		}

		if in.LoteID != nil {
			// El stock derivado ya descuenta la salida recién insertada.
			restante, err := loteRepo.StockDerivado(*in.LoteID)
			if err != nil {
				return err
			}
			if domaininv.DebeRetirarse(restante) {
				if err := loteRepo.Delete(*in.LoteID); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// ListRecientes devuelve las últimas salidas (id descendente) con el nombre
// del producto.
func (uc *SalidaUseCase) ListRecientes(ctx context.Context, limit int) ([]dto.SalidaDTO, error) {
	if limit <= 0 {
		limit = 20
	}
	salidas, err := uc.salidaRepo.ListRecientes(limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SalidaDTO, 0, len(salidas))
	for _, s := range salidas {
		out = append(out, dto.SalidaDTO{
			ID:             s.ID,
			ProductoID:     s.ProductoID,
			ProductoNombre: s.ProductoNombre,
			LoteID:         s.LoteID,
			Cantidad:       s.Cantidad,
			Motivo:         s.Motivo,
			CreatedAt:      s.CreatedAt,
		})
	}
	return out, nil
}

// TopVentas devuelve los productos más vendidos (solo motivo venta),
// ordenados por cantidad total.
func (uc *SalidaUseCase) TopVentas(ctx context.Context, limit int) ([]dto.TopVentaDTO, error) {
	if limit <= 0 {
		limit = 20
	}
	filas, err := uc.salidaRepo.TopVentas(limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TopVentaDTO, 0, len(filas))
	for _, f := range filas {
		out = append(out, dto.TopVentaDTO{
			ProductoID:    f.ProductoID,
			Nombre:        f.Nombre,
			Unidad:        f.Unidad,
			TotalVentas:   f.TotalVentas,
			CantidadTotal: f.CantidadTotal,
		})
	}
	return out, nil
}
