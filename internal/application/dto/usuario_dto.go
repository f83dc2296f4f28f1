package dto

// LoginRequest body para POST /api/usuarios/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse usuario autenticado más el token con su rol.
type LoginResponse struct {
	Success bool       `json:"success"`
	Token   string     `json:"token"`
	User    UsuarioDTO `json:"user"`
}

// UsuarioDTO usuario sin credenciales.
type UsuarioDTO struct {
	ID              int64  `json:"id"`
	Rol             string `json:"rol"`
	NombreDeUsuario string `json:"nombre_de_usuario"`
}

// CrearUsuarioRequest body para POST /api/usuarios.
type CrearUsuarioRequest struct {
	NombreDeUsuario string `json:"nombre_de_usuario"`
	Clave           string `json:"clave"`
	Rol             string `json:"rol"`
}
