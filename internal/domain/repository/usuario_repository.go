package repository

import "github.com/controlfacil/inventario-api/internal/domain/entity"

// UsuarioRepository define el puerto de persistencia para Usuario.
type UsuarioRepository interface {
	// Create persiste el usuario; domain.ErrUsuarioDuplicado si el nombre ya existe.
	Create(usuario *entity.Usuario) error
	FindByNombre(nombreDeUsuario string) (*entity.Usuario, error)
	List() ([]entity.Usuario, error)
	Delete(id int64) error
}
