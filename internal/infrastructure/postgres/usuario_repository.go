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

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación del puerto UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

// Create persiste el usuario; domain.ErrUsuarioDuplicado si el nombre ya existe.
func (r *UsuarioRepo) Create(usuario *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (nombre_de_usuario, clave_hash, rol, created_at)
		VALUES ($1, $2, $3, now())
		RETURNING id, created_at`
	err := r.q.QueryRow(context.Background(), query,
		usuario.NombreDeUsuario, usuario.ClaveHash, usuario.Rol,
	).Scan(&usuario.ID, &usuario.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUsuarioDuplicado
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// FindByNombre busca por nombre de usuario exacto; nil si no existe.
func (r *UsuarioRepo) FindByNombre(nombreDeUsuario string) (*entity.Usuario, error) {
	query := `
		SELECT id, nombre_de_usuario, clave_hash, rol, created_at
		FROM usuarios WHERE nombre_de_usuario = $1`
	var u entity.Usuario
	err := r.q.QueryRow(context.Background(), query, nombreDeUsuario).Scan(
		&u.ID, &u.NombreDeUsuario, &u.ClaveHash, &u.Rol, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}

// List usuarios por id ascendente.
func (r *UsuarioRepo) List() ([]entity.Usuario, error) {
	query := `
		SELECT id, nombre_de_usuario, clave_hash, rol, created_at
		FROM usuarios ORDER BY id ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()
	var list []entity.Usuario
	for rows.Next() {
		var u entity.Usuario
		if err := rows.Scan(&u.ID, &u.NombreDeUsuario, &u.ClaveHash, &u.Rol, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// Delete elimina el usuario por ID.
func (r *UsuarioRepo) Delete(id int64) error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM usuarios WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete usuario: %w", err)
	}
	return nil
}
