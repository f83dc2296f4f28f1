package entity

import "time"

// Roles de la aplicación.
const (
	RolUsuario    = "us"
	RolAdmin      = "admin"
	RolSuperAdmin = "super admin"
)

// Usuario cuenta de acceso con rol plano. La clave se guarda hasheada (bcrypt).
type Usuario struct {
	ID              int64
	NombreDeUsuario string
	ClaveHash       string
	Rol             string
	CreatedAt       time.Time
}
