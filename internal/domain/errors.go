package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound              = errors.New("recurso no encontrado")
	ErrInvalidInput          = errors.New("entrada inválida")
	ErrLoteDuplicado         = errors.New("el lote ya está registrado para este producto")
	ErrConflict              = errors.New("conflicto con el estado actual")
	ErrStockInsuficiente     = errors.New("stock insuficiente")
	ErrStockLoteInsuficiente = errors.New("stock del lote insuficiente")
	ErrProductoConSalidas    = errors.New("el producto tiene salidas registradas")
	ErrUsuarioNoEncontrado   = errors.New("usuario o contraseña incorrectos")
	ErrUsuarioDuplicado      = errors.New("el nombre de usuario ya existe")
	ErrUnauthorized          = errors.New("no autorizado")
	ErrForbidden             = errors.New("acceso denegado: permisos insuficientes")
)
