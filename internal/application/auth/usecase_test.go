package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/controlfacil/inventario-api/internal/application/auth"
	"github.com/controlfacil/inventario-api/internal/application/dto"
	"github.com/controlfacil/inventario-api/internal/domain"
	"github.com/controlfacil/inventario-api/internal/domain/entity"
	pkgjwt "github.com/controlfacil/inventario-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake del repositorio de usuarios
// ──────────────────────────────────────────────────────────────────────────────

type fakeUsuarioRepo struct {
	usuarios []entity.Usuario
	nextID   int64
}

func (r *fakeUsuarioRepo) Create(u *entity.Usuario) error {
	for _, e := range r.usuarios {
		if e.NombreDeUsuario == u.NombreDeUsuario {
			return domain.ErrUsuarioDuplicado
		}
	}
	r.nextID++
	u.ID = r.nextID
	r.usuarios = append(r.usuarios, *u)
	return nil
}

func (r *fakeUsuarioRepo) FindByNombre(nombre string) (*entity.Usuario, error) {
	for _, u := range r.usuarios {
		if u.NombreDeUsuario == nombre {
			copia := u
			return &copia, nil
		}
	}
	return nil, nil
}

func (r *fakeUsuarioRepo) List() ([]entity.Usuario, error) { return r.usuarios, nil }

func (r *fakeUsuarioRepo) Delete(id int64) error {
	for i := range r.usuarios {
		if r.usuarios[i].ID == id {
			r.usuarios = append(r.usuarios[:i:i], r.usuarios[i+1:]...)
			return nil
		}
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const testSecret = "test-secret-key-for-unit-tests"

func newAuthUC(repo *fakeUsuarioRepo) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "control-facil-test",
	})
}

func sembrarUsuario(t *testing.T, repo *fakeUsuarioRepo, nombre, clave, rol string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(clave), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, repo.Create(&entity.Usuario{
		NombreDeUsuario: nombre,
		ClaveHash:       string(hash),
		Rol:             rol,
		CreatedAt:       time.Now(),
	}))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Login
// ──────────────────────────────────────────────────────────────────────────────

// Credenciales correctas: el token emitido lleva el rol del usuario.
func TestLogin_EmiteTokenConRol(t *testing.T) {
	repo := &fakeUsuarioRepo{}
	sembrarUsuario(t, repo, "maria", "Clave123", entity.RolAdmin)

	resp, err := newAuthUC(repo).Login(dto.LoginRequest{Username: "maria", Password: "Clave123"})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "maria", resp.User.NombreDeUsuario)
	assert.Equal(t, entity.RolAdmin, resp.User.Rol)

	userID, rol, err := pkgjwt.Parse(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, userID)
	assert.Equal(t, entity.RolAdmin, rol)
}

// Clave incorrecta y usuario inexistente responden igual: no se filtra
// cuál de los dos falló.
func TestLogin_CredencialesInvalidas(t *testing.T) {
	repo := &fakeUsuarioRepo{}
	sembrarUsuario(t, repo, "maria", "Clave123", entity.RolUsuario)
	uc := newAuthUC(repo)

	_, err := uc.Login(dto.LoginRequest{Username: "maria", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUsuarioNoEncontrado)

	_, err = uc.Login(dto.LoginRequest{Username: "nadie", Password: "Clave123"})
	assert.ErrorIs(t, err, domain.ErrUsuarioNoEncontrado)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests CrearUsuario
// ──────────────────────────────────────────────────────────────────────────────

func TestCrearUsuario_HasheaLaClave(t *testing.T) {
	repo := &fakeUsuarioRepo{}
	uc := newAuthUC(repo)

	err := uc.CrearUsuario(dto.CrearUsuarioRequest{
		NombreDeUsuario: "pedro",
		Clave:           "Segura99",
		Rol:             entity.RolUsuario,
	})
	require.NoError(t, err)
	require.Len(t, repo.usuarios, 1)
	assert.NotEqual(t, "Segura99", repo.usuarios[0].ClaveHash, "la clave nunca se guarda en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.usuarios[0].ClaveHash), []byte("Segura99")))
}

// Política de claves: mínimo 8 caracteres, una mayúscula y un dígito.
func TestCrearUsuario_PoliticaDeClaves(t *testing.T) {
	casos := []struct {
		nombre string
		clave  string
	}{
		{"muy corta", "Ab1"},
		{"sin mayúscula", "segura99"},
		{"sin dígito", "SeguraAA"},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			err := newAuthUC(&fakeUsuarioRepo{}).CrearUsuario(dto.CrearUsuarioRequest{
				NombreDeUsuario: "pedro",
				Clave:           c.clave,
				Rol:             entity.RolUsuario,
			})
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestCrearUsuario_CamposObligatorios(t *testing.T) {
	err := newAuthUC(&fakeUsuarioRepo{}).CrearUsuario(dto.CrearUsuarioRequest{
		NombreDeUsuario: "  ",
		Clave:           "Segura99",
		Rol:             entity.RolUsuario,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCrearUsuario_Duplicado(t *testing.T) {
	repo := &fakeUsuarioRepo{}
	uc := newAuthUC(repo)
	in := dto.CrearUsuarioRequest{NombreDeUsuario: "pedro", Clave: "Segura99", Rol: entity.RolUsuario}

	require.NoError(t, uc.CrearUsuario(in))
	err := uc.CrearUsuario(in)
	assert.ErrorIs(t, err, domain.ErrUsuarioDuplicado)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ListUsuarios / EliminarUsuario
// ──────────────────────────────────────────────────────────────────────────────

func TestListUsuarios_SinCredenciales(t *testing.T) {
	repo := &fakeUsuarioRepo{}
	sembrarUsuario(t, repo, "maria", "Clave123", entity.RolSuperAdmin)
	uc := newAuthUC(repo)

	lista, err := uc.ListUsuarios()
	require.NoError(t, err)
	require.Len(t, lista, 1)
	assert.Equal(t, "maria", lista[0].NombreDeUsuario)
	assert.Equal(t, entity.RolSuperAdmin, lista[0].Rol)

	require.NoError(t, uc.EliminarUsuario(lista[0].ID))
	assert.Empty(t, repo.usuarios)
}
