package inventory

import (
	"context"

	"github.com/controlfacil/inventario-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que las operaciones multi-paso
// del journal (entrada: producto → lote → movimiento → stock) sean todo o
// nada: cualquier error revierte la transacción completa.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productoRepo repository.ProductoRepository,
		loteRepo repository.LoteRepository,
		entradaRepo repository.EntradaRepository,
		salidaRepo repository.SalidaRepository,
	) error) error
}
