package auth

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"github.com/controlfacil/inventario-api/internal/application/dto"
	"github.com/controlfacil/inventario-api/internal/domain"
	"github.com/controlfacil/inventario-api/internal/domain/entity"
	"github.com/controlfacil/inventario-api/internal/domain/repository"
	"github.com/controlfacil/inventario-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase login y administración de usuarios. El token emitido lleva el
// rol para que el gate de autorización no consulte la DB por petición.
type AuthUseCase struct {
	usuarioRepo repository.UsuarioRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(usuarioRepo repository.UsuarioRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{usuarioRepo: usuarioRepo, jwtCfg: jwtCfg}
}

// Login verifica usuario/clave (bcrypt) y emite un JWT con el rol.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	usuario, err := uc.usuarioRepo.FindByNombre(strings.TrimSpace(in.Username))
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUsuarioNoEncontrado
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.ClaveHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUsuarioNoEncontrado
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, usuario.ID, usuario.Rol, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Success: true,
		Token:   token,
		User:    toUsuarioDTO(usuario),
	}, nil
}

// CrearUsuario valida la política de claves, hashea con bcrypt y persiste.
func (uc *AuthUseCase) CrearUsuario(in dto.CrearUsuarioRequest) error {
	nombre := strings.TrimSpace(in.NombreDeUsuario)
	if nombre == "" || in.Clave == "" || in.Rol == "" {
		return fmt.Errorf("%w: todos los campos son obligatorios", domain.ErrInvalidInput)
	}
	if err := validarClave(in.Clave); err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Clave), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	usuario := &entity.Usuario{
		NombreDeUsuario: nombre,
		ClaveHash:       string(hash),
		Rol:             in.Rol,
		CreatedAt:       time.Now(),
	}
	return uc.usuarioRepo.Create(usuario)
}

// ListUsuarios usuarios sin credenciales, orden por id.
func (uc *AuthUseCase) ListUsuarios() ([]dto.UsuarioDTO, error) {
	usuarios, err := uc.usuarioRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UsuarioDTO, 0, len(usuarios))
	for i := range usuarios {
		out = append(out, toUsuarioDTO(&usuarios[i]))
	}
	return out, nil
}

// EliminarUsuario borra la cuenta por id.
func (uc *AuthUseCase) EliminarUsuario(id int64) error {
	return uc.usuarioRepo.Delete(id)
}

// validarClave política mínima: 8 caracteres, una mayúscula, un dígito.
func validarClave(clave string) error {
	if len(clave) < 8 {
		return fmt.Errorf("%w: la contraseña debe tener al menos 8 caracteres", domain.ErrInvalidInput)
	}
	var mayuscula, digito bool
	for _, r := range clave {
		if unicode.IsUpper(r) {
			mayuscula = true
		}
		if unicode.IsDigit(r) {
			digito = true
		}
	}
	if !mayuscula {
		return fmt.Errorf("%w: la contraseña debe contener al menos una letra mayúscula", domain.ErrInvalidInput)
	}
	if !digito {
		return fmt.Errorf("%w: la contraseña debe contener al menos un número", domain.ErrInvalidInput)
	}
	return nil
}

func toUsuarioDTO(u *entity.Usuario) dto.UsuarioDTO {
	return dto.UsuarioDTO{ID: u.ID, Rol: u.Rol, NombreDeUsuario: u.NombreDeUsuario}
}
